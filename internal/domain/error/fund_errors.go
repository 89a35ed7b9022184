package error

import "errors"

// Cash fund domain errors.
var (
	// ErrInvalidCashFund is returned when the requested cash fund is unknown.
	ErrInvalidCashFund = errors.New("unknown cash fund")

	// ErrInvalidFlowType is returned when a transaction direction is not
	// inflow or outflow.
	ErrInvalidFlowType = errors.New("invalid flow type")

	// ErrInvalidFundAmount is returned when a transaction amount is not
	// a positive number.
	ErrInvalidFundAmount = errors.New("transaction amount must be positive")

	// ErrFundTransactionNotFound is returned when a referenced fund
	// transaction does not exist.
	ErrFundTransactionNotFound = errors.New("fund transaction not found")
)

// FundErrorCode defines error codes for cash fund errors.
// Format: FND-XXYYYY where XX is category and YYYY is specific error.
type FundErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidCashFund   FundErrorCode = "FND-010001"
	ErrCodeInvalidFlowType   FundErrorCode = "FND-010002"
	ErrCodeInvalidFundAmount FundErrorCode = "FND-010003"
	ErrCodeInvalidFundDate   FundErrorCode = "FND-010004"

	// Lookup errors (02XXXX)
	ErrCodeFundTransactionNotFound FundErrorCode = "FND-020001"

	// Persistence errors (03XXXX)
	ErrCodeFundSaveFailed   FundErrorCode = "FND-030001"
	ErrCodeFundDeleteFailed FundErrorCode = "FND-030002"

	// Export errors (04XXXX)
	ErrCodeFundExportFailed FundErrorCode = "FND-040001"
)

// FundError represents a cash fund error with code and message.
type FundError struct {
	Code    FundErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FundError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FundError) Unwrap() error {
	return e.Err
}

// NewFundError creates a new FundError with the given code and message.
func NewFundError(code FundErrorCode, message string, err error) *FundError {
	return &FundError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
