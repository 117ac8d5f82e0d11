package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextField_Enter(t *testing.T) {
	var created []string
	s := newScreen()
	f := NewTextField(s, 0, 50, func(v string) error {
		created = append(created, v)
		return nil
	})

	typeKeys(f, "Sign errorr")
	require.NoError(t, f.HandleKey(KeyBackspace))
	assert.Equal(t, "Sign error", f.Buffer())
	require.NoError(t, f.HandleKey(KeyEnter))

	assert.Equal(t, []string{"Sign error"}, created)
	assert.Equal(t, "Sign error", f.Buffer())
	assert.Equal(t, "Create New Type:", s.text(0)[50:])
}

func TestTextField_AcceptsAnyCode(t *testing.T) {
	f := NewTextField(newScreen(), 0, 0, func(string) error { return nil })
	for _, k := range []Key{'H', 'D', 'Q', '7', ' ', '!'} {
		require.NoError(t, f.HandleKey(k))
	}
	assert.Equal(t, "HDQ7 !", f.Buffer())
}

func TestTextField_CreateError(t *testing.T) {
	boom := errors.New("database is locked")
	f := NewTextField(newScreen(), 0, 0, func(string) error { return boom })
	typeKeys(f, "x")
	assert.ErrorIs(t, f.HandleKey(KeyEnter), boom)
}

func TestTextField_SelectIsNoop(t *testing.T) {
	calls := 0
	f := NewTextField(newScreen(), 0, 0, func(string) error {
		calls++
		return nil
	})
	typeKeys(f, "abc")
	require.NoError(t, f.Select())
	assert.Equal(t, "abc", f.Buffer())
	assert.Zero(t, calls)
}
