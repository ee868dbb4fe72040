package lazy

import (
	"fmt"
	"runtime/debug"
)

// ValueAbsentError reports a read of a data cell whose cache slot is empty.
// Under the construction contract a root always carries a value, so hitting
// this means a programming error, such as loading a snapshot that captured
// an absent state and reading the cell without setting it first.
type ValueAbsentError struct {
	Cell string
}

func (e *ValueAbsentError) Error() string {
	return fmt.Sprintf("lazy: value absent in %s", e.Cell)
}

// TypeMismatchError reports a snapshot payload whose dynamic type does not
// match the cell it is being loaded into. It is raised at load time, before
// the payload is installed.
type TypeMismatchError struct {
	Cell     string
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("lazy: type mismatch loading %s: got %s, want %s", e.Cell, e.Actual, e.Expected)
}

func newTypeMismatchError(cell AnyCell, want, got any) *TypeMismatchError {
	return &TypeMismatchError{
		Cell:     describeCell(cell),
		Expected: fmt.Sprintf("%T", want),
		Actual:   fmt.Sprintf("%T", got),
	}
}

// ComputeError wraps a failure of a user-supplied cell function. It is
// attached once, at the cell whose function failed; cells further downstream
// propagate it unwrapped. The failing cell's cache stays absent, so a later
// Get retries the computation.
type ComputeError struct {
	Cell       string
	Cause      error
	StackTrace []byte
}

func (e *ComputeError) Error() string {
	return fmt.Sprintf("lazy: computing %s: %v", e.Cell, e.Cause)
}

func (e *ComputeError) Unwrap() error {
	return e.Cause
}

func newComputeError(cell AnyCell, cause error) *ComputeError {
	return &ComputeError{
		Cell:       describeCell(cell),
		Cause:      cause,
		StackTrace: debug.Stack(),
	}
}
