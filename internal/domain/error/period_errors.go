package error

import "errors"

// Period domain errors.
var (
	// ErrPeriodExists is returned when a period with the same name already exists.
	ErrPeriodExists = errors.New("period already exists")

	// ErrInvalidPeriodRange is returned when a period's end date is not
	// strictly after its start date.
	ErrInvalidPeriodRange = errors.New("period end date must be after start date")

	// ErrInvalidPeriodDate is returned when a period boundary is not a
	// valid ISO date.
	ErrInvalidPeriodDate = errors.New("invalid period date, expected YYYY-MM-DD")

	// ErrMembershipNotFound is returned when a member has no draw
	// membership in the requested period.
	ErrMembershipNotFound = errors.New("member is not enrolled in this period")

	// ErrAlreadyDrawn is returned when a draw is attempted for a member
	// whose turn has already been taken.
	ErrAlreadyDrawn = errors.New("member has already been drawn this period")
)

// PeriodErrorCode defines error codes for period errors.
// Format: PRD-XXYYYY where XX is category and YYYY is specific error.
type PeriodErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPeriodRange PeriodErrorCode = "PRD-010001"
	ErrCodeInvalidPeriodDate  PeriodErrorCode = "PRD-010002"
	ErrCodePeriodExists       PeriodErrorCode = "PRD-010003"

	// Lookup errors (02XXXX)
	ErrCodePeriodNotFound     PeriodErrorCode = "PRD-020001"
	ErrCodeMembershipNotFound PeriodErrorCode = "PRD-020002"

	// Draw errors (03XXXX)
	ErrCodeAlreadyDrawn PeriodErrorCode = "PRD-030001"

	// Persistence errors (04XXXX)
	ErrCodePeriodSaveFailed   PeriodErrorCode = "PRD-040001"
	ErrCodePeriodDeleteFailed PeriodErrorCode = "PRD-040002"
)

// PeriodError represents a period error with code and message.
type PeriodError struct {
	Code    PeriodErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PeriodError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PeriodError) Unwrap() error {
	return e.Err
}

// NewPeriodError creates a new PeriodError with the given code and message.
func NewPeriodError(code PeriodErrorCode, message string, err error) *PeriodError {
	return &PeriodError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
