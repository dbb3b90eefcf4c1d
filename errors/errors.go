package errors

import "fmt"

// Error kinds surfaced by a unit of work. Callers classify with errors.Is.
var (
	ErrInvalidInput = fmt.Errorf("invalid input")
	ErrStore        = fmt.Errorf("store failure")
	ErrUnexpected   = fmt.Errorf("unexpected failure")
)

var (
	ErrWorkerPanic             = fmt.Errorf("worker panic")
	ErrExecutorStopped         = fmt.Errorf("executor stopped")
	ErrIdentityAlreadyAssigned = fmt.Errorf("message identity already assigned")
	ErrUnknownStoreDriver      = fmt.Errorf("unknown store driver")
)
