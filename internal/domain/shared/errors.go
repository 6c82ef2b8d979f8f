package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound           = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists      = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput       = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrUnauthorized       = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrDuplicateResidency = NewDomainError("DUPLICATE_RESIDENCY", "Person already has an active residency")
	ErrVillageNotFound    = NewDomainError("VILLAGE_NOT_FOUND", "Village not found")
	ErrInvalidTransition  = NewDomainError("INVALID_TRANSITION", "Status change not allowed from current state")
	ErrTransactionFailure = NewDomainError("TRANSACTION_FAILURE", "Operation rolled back, no changes were applied")
)
