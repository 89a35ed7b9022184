package error

import "errors"

// Member domain errors.
var (
	// ErrMemberNotFound is returned when a referenced member does not exist.
	ErrMemberNotFound = errors.New("member not found")

	// ErrInvalidMemberCategory is returned when a member category is not
	// one of the known categories.
	ErrInvalidMemberCategory = errors.New("invalid member category")

	// ErrInvalidMemberRole is returned when a member role is unknown.
	ErrInvalidMemberRole = errors.New("invalid member role")

	// ErrMemberNameRequired is returned when a member is created or
	// updated without a name.
	ErrMemberNameRequired = errors.New("member name is required")
)

// MemberErrorCode defines error codes for member errors.
// Format: MBR-XXYYYY where XX is category and YYYY is specific error.
type MemberErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMemberCategory MemberErrorCode = "MBR-010001"
	ErrCodeInvalidMemberRole     MemberErrorCode = "MBR-010002"
	ErrCodeMemberNameRequired    MemberErrorCode = "MBR-010003"

	// Lookup errors (02XXXX)
	ErrCodeMemberNotFound MemberErrorCode = "MBR-020001"

	// Persistence errors (03XXXX)
	ErrCodeMemberSaveFailed   MemberErrorCode = "MBR-030001"
	ErrCodeMemberDeleteFailed MemberErrorCode = "MBR-030002"
)

// MemberError represents a member error with code and message.
type MemberError struct {
	Code    MemberErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MemberError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MemberError) Unwrap() error {
	return e.Err
}

// NewMemberError creates a new MemberError with the given code and message.
func NewMemberError(code MemberErrorCode, message string, err error) *MemberError {
	return &MemberError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
