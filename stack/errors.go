package stack

import (
	"errors"
	"fmt"
)

// Operations that can underflow.
const (
	OpPop  = "pop"
	OpPeek = "peek"
)

// ErrEmpty matches every *EmptyStackError under errors.Is.
var ErrEmpty = errors.New("stack is empty")

// EmptyStackError is returned when Pop or Peek is called on a stack that holds no elements.
type EmptyStackError struct {
	// Op is the rejected operation, OpPop or OpPeek.
	Op string
}

func (e *EmptyStackError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, ErrEmpty)
}

func (e *EmptyStackError) Is(target error) bool {
	return target == ErrEmpty
}
