package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberField_DigitsOnly(t *testing.T) {
	tests := []struct {
		name  string
		keys  []Key
		want  string
		value float64
	}{
		{name: "digits", keys: []Key{'4', '2'}, want: "42", value: 42},
		{name: "letters ignored", keys: []Key{'1', 'a', 'x', '2'}, want: "12", value: 12},
		{name: "punctuation ignored", keys: []Key{'.', '3', '-', '5', ' '}, want: "35", value: 35},
		{name: "backspace", keys: []Key{'1', '2', KeyBackspace, '5'}, want: "15", value: 15},
		{name: "leading zeros", keys: []Key{'0', '0', '7'}, want: "007", value: 7},
		{name: "enter ignored", keys: []Key{'9', KeyEnter}, want: "9", value: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewNumberField(newScreen(), "Points Lost", 0, 0)
			for _, k := range tt.keys {
				require.NoError(t, f.HandleKey(k))
			}
			assert.Equal(t, tt.want, f.Buffer())

			require.NoError(t, f.Select())
			got, ok := f.Choice().Get()
			require.True(t, ok)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestNumberField_EmptySelectIsAbsent(t *testing.T) {
	f := NewNumberField(newScreen(), "Non-Errors", 0, 80)
	require.NoError(t, f.Select())
	assert.False(t, f.Choice().Present())
	assert.Equal(t, "none", f.Choice().String())

	// Backspace on an empty buffer stays empty.
	require.NoError(t, f.HandleKey(KeyBackspace))
	require.NoError(t, f.Select())
	assert.False(t, f.Choice().Present())
}

func TestNumberField_ZeroIsPresent(t *testing.T) {
	f := NewNumberField(newScreen(), "Points Lost", 0, 0)
	typeKeys(f, "0")
	require.NoError(t, f.Select())
	got, ok := f.Choice().Get()
	assert.True(t, ok)
	assert.Zero(t, got)
}

func TestNumberField_Rendering(t *testing.T) {
	s := newScreen()
	f := NewNumberField(s, "Points Lost", 3, 10)
	assert.Equal(t, "          Points Lost:", s.text(3))

	typeKeys(f, "123")
	assert.Equal(t, "          123", s.text(4))
	assert.Equal(t, 4, s.line)
	assert.Equal(t, 13, s.col)

	require.NoError(t, f.HandleKey(KeyBackspace))
	assert.Equal(t, "          12", s.text(4))
	assert.Equal(t, 12, s.col)

	// An ignored key still places the cursor.
	s.MoveCursor(0, 0)
	require.NoError(t, f.HandleKey('x'))
	assert.Equal(t, 4, s.line)
	assert.Equal(t, 12, s.col)
}

func TestNumberField_Overflow(t *testing.T) {
	f := NewNumberField(newScreen(), "Points Lost", 0, 0)
	for i := 0; i < 400; i++ {
		require.NoError(t, f.HandleKey('9'))
	}
	err := f.Select()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Points Lost")
	assert.False(t, f.Choice().Present())
}
