package handler

import (
	"errors"
	"net/http"

	"federation-payments/internal/core/domain"
	"federation-payments/pkg/apperror"
)

// adminError maps service errors to the admin API's error codes.
func adminError(err error, entity string) error {
	var appErr *apperror.AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, domain.ErrNotFound):
		return apperror.ErrNotFound(entity)
	case errors.Is(err, domain.ErrProviderLookupFailed):
		return apperror.ErrProviderLookupFailed(err)
	case errors.Is(err, domain.ErrStateConflict):
		return apperror.ErrStateConflict(err)
	case errors.Is(err, domain.ErrInvalidState):
		return apperror.New("STA_003", "Cobro can no longer be paid", http.StatusConflict)
	case errors.Is(err, domain.ErrSlugCollision):
		return apperror.ErrSlugCollision(err)
	default:
		return apperror.InternalError(err)
	}
}

// publicError maps service errors for payers. Anything about a missing
// resource reads as "not available" and provider details never leak.
func publicError(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return apperror.ErrNotAvailable()
	case errors.Is(err, domain.ErrProviderLookupFailed):
		return apperror.New("PRV_001", "Payment provider unavailable, try again later", http.StatusBadGateway)
	case errors.Is(err, domain.ErrInvalidState):
		return apperror.New("STA_003", "Cobro can no longer be paid", http.StatusConflict)
	default:
		return apperror.InternalError(err)
	}
}
