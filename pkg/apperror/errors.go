package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Webhooks (WHK) ----

func ErrMalformedNotification(detail string) *AppError {
	return New("WHK_001", "Malformed notification: "+detail, http.StatusBadRequest)
}

func ErrInvalidWebhookSignature() *AppError {
	return New("WHK_002", "Invalid webhook signature", http.StatusUnauthorized)
}

// ---- Provider (PRV) ----

func ErrProviderLookupFailed(err error) *AppError {
	return Wrap("PRV_001", "Payment provider unavailable", http.StatusBadGateway, err)
}

// ---- Cobro state (STA) ----

func ErrStateConflict(err error) *AppError {
	return Wrap("STA_001", "Cobro state changed concurrently", http.StatusConflict, err)
}

func ErrInvalidState(state string) *AppError {
	return New("STA_002", fmt.Sprintf("Invalid state %q", state), http.StatusBadRequest)
}

// ErrCobroClosed is returned when an action needs a cobro that can still be paid.
func ErrCobroClosed(state string) *AppError {
	return New("STA_003", fmt.Sprintf("Cobro is %s", state), http.StatusConflict)
}

// ---- Public links (LNK) ----

func ErrSlugCollision(err error) *AppError {
	return Wrap("LNK_001", "Could not allocate a unique slug", http.StatusInternalServerError, err)
}

// ---- Generic (GEN) ----

func ErrInvalidRequest(message string) *AppError {
	return New("GEN_001", message, http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New("GEN_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ErrNotAvailable is what payers see for missing, inactive or expired links.
func ErrNotAvailable() *AppError {
	return New("GEN_004", "Not available", http.StatusNotFound)
}

func ErrPayloadTooLarge() *AppError {
	return New("GEN_005", "Request body too large", http.StatusRequestEntityTooLarge)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a GEN_001-style validation error.
func Validation(message string) *AppError {
	return ErrInvalidRequest(message)
}
