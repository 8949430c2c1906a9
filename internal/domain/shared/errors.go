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

// Is reports whether target is a DomainError with the same code.
// Sentinel comparisons via errors.Is keep working even when an
// operation substitutes a more specific message.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Common domain errors
var (
	ErrNotFound              = NewDomainError("NOT_FOUND", "Resource not found")
	ErrDuplicateID           = NewDomainError("DUPLICATE_ID", "Resource with this id already exists")
	ErrDuplicateName         = NewDomainError("DUPLICATE_NAME", "Resource with this name already exists")
	ErrInvalidInput          = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidState          = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrInsufficientInventory = NewDomainError("INSUFFICIENT_INVENTORY", "Insufficient inventory available")
	ErrInvalidCredentials    = NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
)

// NotFoundError returns a NOT_FOUND error with an operation-specific message
func NotFoundError(message string) *DomainError {
	return NewDomainError(ErrNotFound.Code, message)
}

// InvalidInputError returns an INVALID_INPUT error with an operation-specific message
func InvalidInputError(message string) *DomainError {
	return NewDomainError(ErrInvalidInput.Code, message)
}

// InvalidStateError returns an INVALID_STATE error with an operation-specific message
func InvalidStateError(message string) *DomainError {
	return NewDomainError(ErrInvalidState.Code, message)
}
