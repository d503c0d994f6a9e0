package apperror

// Codes returned in the error envelope. Clients branch on these, never on
// the message text.
const (
	CodeInvalidInput = "INVALID_INPUT"
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	// CodeConflict covers stale versions and lost races on unique keys.
	CodeConflict = "CONFLICT"
	// CodeInvalidState is a lifecycle move the record's status does not allow.
	CodeInvalidState = "INVALID_STATE"
	CodeRateLimited  = "RATE_LIMITED"

	CodeInternalError = "INTERNAL_ERROR"
)
