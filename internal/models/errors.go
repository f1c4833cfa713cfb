package models

// ValidationError reports a field value that violates a domain invariant.
// Handlers translate it to a 400 response; every other failure type passes
// through untouched.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
