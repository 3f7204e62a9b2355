package errors

// Error codes for standardized error responses
const (
	// Authentication errors
	ErrCodeInvalidToken           = "invalid_token"
	ErrCodeTokenExpired           = "token_expired"
	ErrCodeAuthenticationRequired = "authentication_required"
	ErrCodePlayerMismatch         = "player_mismatch"

	// Validation errors
	ErrCodeInvalidRequest = "invalid_request"

	// Quiz errors
	ErrCodeQuizBuildFailed     = "quiz_build_failed"
	ErrCodeFocusFailed         = "focus_failed"
	ErrCodeInvalidQuestionBank = "invalid_question_bank"
	ErrCodeInvalidMastery      = "invalid_mastery"

	// Server errors
	ErrCodeInternalError      = "internal_error"
	ErrCodeServiceUnavailable = "service_unavailable"
	ErrCodeUpstreamError      = "upstream_error"
)
