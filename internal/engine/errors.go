package engine

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the targeted row does not exist.
var ErrNotFound = errors.New("record not found")

// ErrConflict indicates a uniqueness rule violation: the gamer already
// owns the game.
var ErrConflict = errors.New("gamer already owns this game")

// ValidationError reports malformed caller input. It is always raised
// before any store call is made.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// StoreError wraps an underlying data-access failure with the operation
// that issued it.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *StoreError) Unwrap() error { return e.Err }

func storeErr(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
