// Package optimizer splits a resource budget between two unit types with a coarse-to-fine grid search.
package optimizer

import "fmt"

// Error represents an error that occurs while optimizing an allocation
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}
