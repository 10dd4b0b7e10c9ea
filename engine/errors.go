package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrRemoved is returned by operations on a torn-down grid
	ErrRemoved = errors.New("grid removed")
	// ErrOccupied is returned when attaching an occupant to a cell that already has one
	ErrOccupied = errors.New("cell already occupied")
)

// UnknownCodonError reports a codon with no compiled program.
// The grid is left untouched: lookup happens before any token runs.
type UnknownCodonError struct {
	Codon string
}

func (e *UnknownCodonError) Error() string {
	return fmt.Sprintf("unknown codon %q", e.Codon)
}

// UnknownTokenError reports a token string the cell cannot execute
type UnknownTokenError struct {
	Token string
	Index int
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("unknown token %q at index %d", e.Token, e.Index)
}

// OccupantNotificationError wraps a failure raised by occupant code.
// Panics are recovered and carried in Err as well.
type OccupantNotificationError struct {
	Row, Col int
	Call     string // "init", "listen" or "remove"
	Err      error
}

func (e *OccupantNotificationError) Error() string {
	return fmt.Sprintf("occupant %s at (%d,%d): %v", e.Call, e.Row, e.Col, e.Err)
}

func (e *OccupantNotificationError) Unwrap() error {
	return e.Err
}
