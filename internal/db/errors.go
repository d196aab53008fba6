package db

import "fmt"

// PersistenceError represents a store write or read failure.
type PersistenceError struct {
	Store   string
	Message string
	Cause   error
}

func (e *PersistenceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("persistence error in %s store: %s: %v", e.Store, e.Message, e.Cause)
	}
	return fmt.Sprintf("persistence error in %s store: %s", e.Store, e.Message)
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}
