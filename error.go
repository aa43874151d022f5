package banco

import (
	"fmt"
)

// ErrInvalidOperation is returned when a precondition detectable from the
// inputs alone does not hold. Nothing has been mutated when it is returned.
type ErrInvalidOperation struct {
	Op     string `json:"op"`
	Reason string `json:"reason"`
}

func (e ErrInvalidOperation) Error() string {
	return fmt.Sprintf("%s: invalid operation: %s", e.Op, e.Reason)
}

// ErrApplication is returned when a collaborator failed or declined after
// being invoked with a valid request.
type ErrApplication struct {
	Op     string `json:"op"`
	Reason string `json:"reason"`
	Err    error  `json:"-"`
}

func (e ErrApplication) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e ErrApplication) Unwrap() error {
	return e.Err
}

type ErrNotFound struct {
	Key string `json:"key"`
}

func (e ErrNotFound) Error() string {
	return "record not found"
}

func invalid(op, reason string) error {
	return ErrInvalidOperation{Op: op, Reason: reason}
}
