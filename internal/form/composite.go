package form

// Offsets of the sub-fields of an ErrorEntry relative to its origin.
const (
	PointsLostOffset = 35

	typeLabel       = "Type"
	pointsLostLabel = "Points Lost"

	// MinEntryWidth is the column span an ErrorEntry draws on before
	// its points-lost input begins.
	MinEntryWidth = PointsLostOffset + len(pointsLostLabel+": ")
)

// ErrorEntry binds an error-type search field and a points-lost number
// field into one graded mistake.
type ErrorEntry[T any] struct {
	line   int
	col    int
	types  []T
	format func(T) string

	typeField   *SearchField[T]
	pointsField *NumberField
}

// ErrorChoices is the combined result of an ErrorEntry.
type ErrorChoices struct {
	Type       Choice[int]
	PointsLost Choice[float64]
}

// Complete reports whether both halves were committed.
func (c ErrorChoices) Complete() bool {
	return c.Type.Present() && c.PointsLost.Present()
}

// NewErrorEntry returns an entry that still has to be deployed.
func NewErrorEntry[T any](line, col int, types []T, format func(T) string) *ErrorEntry[T] {
	return &ErrorEntry[T]{
		line:   line,
		col:    col,
		types:  types,
		format: format,
	}
}

// Deploy creates and draws the two sub-fields. Deploying twice returns
// the fields created the first time.
func (e *ErrorEntry[T]) Deploy(s Surface) (*SearchField[T], *NumberField) {
	if e.Deployed() {
		return e.typeField, e.pointsField
	}
	e.typeField = NewSearchField(s, typeLabel, e.line, e.col, e.types, e.format)
	e.pointsField = NewNumberField(s, pointsLostLabel, e.line, e.col+PointsLostOffset)
	return e.typeField, e.pointsField
}

// Deployed reports whether Deploy has run.
func (e *ErrorEntry[T]) Deployed() bool {
	return e.typeField != nil && e.pointsField != nil
}

// Choices returns the committed type index and points lost.
func (e *ErrorEntry[T]) Choices() (ErrorChoices, error) {
	if !e.Deployed() {
		return ErrorChoices{}, ErrNotDeployed
	}
	return ErrorChoices{
		Type:       e.typeField.Choice(),
		PointsLost: e.pointsField.Choice(),
	}, nil
}

// Type resolves the committed type against the current catalog.
func (e *ErrorEntry[T]) Type() (T, bool) {
	if !e.Deployed() {
		var zero T
		return zero, false
	}
	return e.typeField.Chosen()
}

// Rebind replaces the type catalog, including the deployed field's.
func (e *ErrorEntry[T]) Rebind(types []T) {
	e.types = types
	if e.typeField != nil {
		e.typeField.Rebind(types)
	}
}
