package interview

import "fmt"

// ValidationError reports invalid local input. It is returned before
// any network traffic happens.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + e.Reason
}

// InvalidStateError reports an operation attempted in a session state
// that forbids it, e.g. submitting after the interview completed.
type InvalidStateError struct {
	Op    string
	State Status
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s while session is %s", e.Op, e.State)
}
