package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/flipwise/flipwise/internal/api/shared"
	"github.com/flipwise/flipwise/internal/domain"
	"github.com/flipwise/flipwise/internal/domain/study"
	"github.com/flipwise/flipwise/internal/importer"
	"github.com/flipwise/flipwise/internal/service"
	"github.com/flipwise/flipwise/internal/service/study_session"
	"github.com/flipwise/flipwise/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", domain.NewValidationError("name", "cannot be empty", domain.ErrEmptyContent), http.StatusBadRequest},
		{"invalid id", domain.NewValidationError("id", "has invalid format", domain.ErrInvalidID), http.StatusBadRequest},
		{"invalid outcome", fmt.Errorf("%w: %q", study.ErrInvalidOutcome, "meh"), http.StatusBadRequest},
		{"no categories", study_session.ErrNoCategories, http.StatusBadRequest},
		{"nothing to import", service.ErrNothingToImport, http.StatusBadRequest},
		{"unknown sheet", fmt.Errorf("%w: %q", importer.ErrUnknownSheet, "Words"), http.StatusBadRequest},
		{"empty body", shared.ErrEmptyBody, http.StatusBadRequest},
		{"deck not found", store.ErrDeckNotFound, http.StatusNotFound},
		{"wrapped word not found", fmt.Errorf("get word: %w", store.ErrWordNotFound), http.StatusNotFound},
		{"session not found", study_session.ErrSessionNotFound, http.StatusNotFound},
		{"duplicate deck", store.ErrDeckNameExists, http.StatusConflict},
		{"empty deck", study.ErrEmptyDeck, http.StatusUnprocessableEntity},
		{"session complete", study.ErrSessionComplete, http.StatusGone},
		{"too many sessions", study_session.ErrTooManySessions, http.StatusServiceUnavailable},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	assert.Equal(t, "Deck not found", GetSafeErrorMessage(fmt.Errorf("x: %w", store.ErrDeckNotFound)))
	assert.Equal(t, "Category not found", GetSafeErrorMessage(store.ErrCategoryNotFound))
	assert.Equal(t, "Invalid name: cannot be empty",
		GetSafeErrorMessage(domain.NewValidationError("name", "cannot be empty", nil)))
	assert.Equal(t, "A deck with this name already exists", GetSafeErrorMessage(store.ErrDeckNameExists))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(errors.New("pq: SELECT * FROM decks")))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
}

func TestSanitizeValidationError(t *testing.T) {
	err := shared.ValidateRequest(&DeckRequest{Name: ""})
	assert.Equal(t, "Invalid Name: required field", SanitizeValidationError(err))

	err = shared.ValidateRequest(&DeckRequest{Name: "Japanese", Code: "JPN"})
	assert.Equal(t, "Invalid Code: too long", SanitizeValidationError(err))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("other")))
}
