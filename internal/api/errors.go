package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/flipwise/flipwise/internal/api/shared"
	"github.com/flipwise/flipwise/internal/domain"
	"github.com/flipwise/flipwise/internal/domain/study"
	"github.com/flipwise/flipwise/internal/importer"
	"github.com/flipwise/flipwise/internal/service"
	"github.com/flipwise/flipwise/internal/service/study_session"
	"github.com/flipwise/flipwise/internal/store"
	"github.com/go-playground/validator/v10"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// exposing the error itself.
func MapErrorToStatusCode(err error) int {
	var vErrs validator.ValidationErrors
	switch {
	case err == nil:
		return http.StatusOK

	// Bad request
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrEmptyContent),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, study.ErrInvalidOutcome),
		errors.Is(err, study_session.ErrNoCategories),
		errors.Is(err, service.ErrNothingToImport),
		errors.Is(err, importer.ErrUnknownSheet),
		errors.Is(err, shared.ErrEmptyBody),
		errors.As(err, &vErrs):
		return http.StatusBadRequest

	// Not found
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, study_session.ErrSessionNotFound):
		return http.StatusNotFound

	// Conflict
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	case errors.Is(err, study.ErrEmptyDeck):
		return http.StatusUnprocessableEntity

	case errors.Is(err, study.ErrSessionComplete),
		errors.Is(err, study.ErrNotStarted):
		return http.StatusGone

	case errors.Is(err, study_session.ErrTooManySessions):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-facing message for err.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var vErr *domain.ValidationError
	var vErrs validator.ValidationErrors
	switch {
	case errors.As(err, &vErr):
		return fmt.Sprintf("Invalid %s: %s", vErr.Field, vErr.Message)
	case errors.As(err, &vErrs):
		return SanitizeValidationError(vErrs)

	case errors.Is(err, store.ErrDeckNotFound):
		return "Deck not found"
	case errors.Is(err, store.ErrCategoryNotFound):
		return "Category not found"
	case errors.Is(err, store.ErrWordNotFound):
		return "Word not found"
	case errors.Is(err, study_session.ErrSessionNotFound):
		return "Study session not found or expired"

	case errors.Is(err, store.ErrDeckNameExists):
		return "A deck with this name already exists"
	case errors.Is(err, store.ErrCategoryNameExists):
		return "A category with this name already exists in the deck"
	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"

	case errors.Is(err, study.ErrInvalidOutcome):
		return "Outcome must be one of: struggled, easy"
	case errors.Is(err, study_session.ErrNoCategories):
		return "At least one category is required"
	case errors.Is(err, service.ErrNothingToImport):
		return "The spreadsheet contains no usable rows"
	case errors.Is(err, importer.ErrUnknownSheet):
		return "The requested sheet does not exist in the workbook"
	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body is required"
	case errors.Is(err, study.ErrEmptyDeck):
		return "The selected categories contain no words"
	case errors.Is(err, study.ErrSessionComplete),
		errors.Is(err, study.ErrNotStarted):
		return "The study session has ended"
	case errors.Is(err, study_session.ErrTooManySessions):
		return "Too many active study sessions, try again later"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError describes the first failed field of a validator
// error without echoing the submitted value.
func SanitizeValidationError(err error) string {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) || len(vErrs) == 0 {
		return "Validation error"
	}
	fe := vErrs[0]
	return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
}

func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "len":
		return "wrong length"
	case "oneof":
		return "invalid value"
	case "uuid":
		return "invalid identifier"
	case "dive":
		return "invalid element"
	default:
		return "validation failed"
	}
}
