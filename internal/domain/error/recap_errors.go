// Package error defines domain-specific errors for the community
// bookkeeping application.
package error

import "errors"

// Recap domain errors.
var (
	// ErrPeriodNotFound is returned when a referenced period does not exist.
	ErrPeriodNotFound = errors.New("period not found")

	// ErrNoPeriodAvailable is returned when no period exists to fall back to.
	ErrNoPeriodAvailable = errors.New("no period available")

	// ErrMissingDiscriminator is returned when neither a period nor a year
	// could be resolved for a recap request.
	ErrMissingDiscriminator = errors.New("either a period or a year is required")

	// ErrInvalidRecapDate is returned when a recap date is not a valid ISO date.
	ErrInvalidRecapDate = errors.New("invalid date, expected YYYY-MM-DD")

	// ErrInvalidPaymentStatus is returned when a payment status is not
	// one of paid/unpaid.
	ErrInvalidPaymentStatus = errors.New("invalid payment status")

	// ErrInvalidLedgerFund is returned when the requested ledger fund is unknown.
	ErrInvalidLedgerFund = errors.New("unknown ledger fund")

	// ErrEmptyUpsertBatch is returned when an upsert batch carries no items.
	ErrEmptyUpsertBatch = errors.New("upsert batch cannot be empty")

	// ErrUpsertBatchFailed is returned when persisting an upsert batch
	// failed and the whole batch was rolled back.
	ErrUpsertBatchFailed = errors.New("failed to save recap batch")

	// ErrExportFailed is returned when assembling export bytes failed.
	ErrExportFailed = errors.New("failed to assemble export")
)

// RecapErrorCode defines error codes for recap errors.
// Format: RCP-XXYYYY where XX is category and YYYY is specific error.
type RecapErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidLedgerFund    RecapErrorCode = "RCP-010001"
	ErrCodeInvalidRecapDate     RecapErrorCode = "RCP-010002"
	ErrCodeInvalidPaymentStatus RecapErrorCode = "RCP-010003"
	ErrCodeEmptyUpsertBatch     RecapErrorCode = "RCP-010004"
	ErrCodeMissingDiscriminator RecapErrorCode = "RCP-010005"
	ErrCodeUnknownRecapMember   RecapErrorCode = "RCP-010006"

	// Resolution errors (02XXXX)
	ErrCodeRecapPeriodNotFound RecapErrorCode = "RCP-020001"
	ErrCodeNoPeriodAvailable   RecapErrorCode = "RCP-020002"

	// Persistence errors (03XXXX)
	ErrCodeUpsertBatchFailed RecapErrorCode = "RCP-030001"

	// Export errors (04XXXX)
	ErrCodeExportFailed RecapErrorCode = "RCP-040001"
)

// RecapError represents a recap error with code and message.
type RecapError struct {
	Code    RecapErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecapError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecapError) Unwrap() error {
	return e.Err
}

// NewRecapError creates a new RecapError with the given code and message.
func NewRecapError(code RecapErrorCode, message string, err error) *RecapError {
	return &RecapError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
