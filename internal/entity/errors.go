package entity

// ValidationError is returned by entity constructors when the payload does
// not satisfy the entity's contract. Code is a stable machine-readable
// identifier in the form "<ENTITY>.<REASON>".
type ValidationError struct {
	Code string
}

func (e *ValidationError) Error() string {
	return e.Code
}

func NewValidationError(code string) *ValidationError {
	return &ValidationError{Code: code}
}
