package game

import "fmt"

// ErrorKind tells why an action was rejected.
type ErrorKind int

const (
	UnknownColumn ErrorKind = iota + 1
	FullColumn
)

// ActionError is returned by ApplyAction for an action that cannot be played.
type ActionError struct {
	Kind   ErrorKind
	Column int
}

var (
	ErrUnknownColumn = &ActionError{Kind: UnknownColumn}
	ErrFullColumn    = &ActionError{Kind: FullColumn}
)

func (e *ActionError) Error() string {
	switch e.Kind {
	case UnknownColumn:
		return fmt.Sprintf("column must be between 0 and %d, got %d", Cols-1, e.Column)
	case FullColumn:
		return fmt.Sprintf("column %d is full", e.Column)
	default:
		return fmt.Sprintf("invalid action on column %d", e.Column)
	}
}

// Is matches any ActionError of the same kind, so errors.Is(err, ErrFullColumn)
// holds regardless of the column.
func (e *ActionError) Is(target error) bool {
	t, ok := target.(*ActionError)
	return ok && t.Kind == e.Kind
}
