package api

import (
	"time"

	"github.com/flipwise/flipwise/internal/domain"
	"github.com/flipwise/flipwise/internal/domain/study"
	"github.com/flipwise/flipwise/internal/importer"
	"github.com/flipwise/flipwise/internal/service/study_session"
	"github.com/google/uuid"
)

// DeckRequest is the body of POST /api/decks and PUT /api/decks/{id}.
type DeckRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	// Code is a two-letter country code; anything else falls back to the
	// generic deck icon.
	Code string `json:"code" validate:"omitempty,max=2"`
}

// DeckResponse is the API view of a deck.
type DeckResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Flag      string    `json:"flag"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryRequest is the body of category create and update requests.
type CategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// CategoryResponse is the API view of a category.
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	DeckID    uuid.UUID `json:"deck_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WordRequest is the body of word create and update requests.
type WordRequest struct {
	Native       string `json:"native"       validate:"required,max=200"`
	Romanization string `json:"romanization" validate:"required,max=200"`
	Translation  string `json:"translation"  validate:"required,max=200"`
}

func (r WordRequest) content() domain.WordContent {
	return domain.WordContent{
		Native:       r.Native,
		Romanization: r.Romanization,
		Translation:  r.Translation,
	}
}

// WordResponse is the API view of a word.
type WordResponse struct {
	ID           uuid.UUID `json:"id"`
	CategoryID   uuid.UUID `json:"category_id"`
	Native       string    `json:"native"`
	Romanization string    `json:"romanization"`
	Translation  string    `json:"translation"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ImportResponse reports the outcome of a spreadsheet import.
type ImportResponse struct {
	Imported int                 `json:"imported"`
	Words    []WordResponse      `json:"words"`
	Skipped  []importer.RowError `json:"skipped"`
	Blank    int                 `json:"blank"`
}

// StartSessionRequest is the body of POST /api/sessions.
type StartSessionRequest struct {
	CategoryIDs []uuid.UUID `json:"category_ids" validate:"required,min=1,max=100"`
}

// AnswerRequest is the body of POST /api/sessions/{id}/answers.
type AnswerRequest struct {
	Outcome string `json:"outcome" validate:"required"`
}

// SessionResponse is returned when a session starts.
type SessionResponse struct {
	Session study_session.Summary `json:"session"`
	Card    *study.Card           `json:"card,omitempty"`
}

// CardResponse is the card currently shown in a session.
type CardResponse struct {
	SessionID uuid.UUID  `json:"session_id"`
	Card      study.Card `json:"card"`
}

func deckToResponse(d *domain.Deck) DeckResponse {
	return DeckResponse{
		ID:        d.ID,
		Name:      d.Name,
		Code:      d.Code,
		Flag:      d.Flag(),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func categoryToResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		DeckID:    c.DeckID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func wordToResponse(w *domain.Word) WordResponse {
	return WordResponse{
		ID:           w.ID,
		CategoryID:   w.CategoryID,
		Native:       w.Native,
		Romanization: w.Romanization,
		Translation:  w.Translation,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}
}

func wordsToResponse(words []*domain.Word) []WordResponse {
	out := make([]WordResponse, 0, len(words))
	for _, w := range words {
		out = append(out, wordToResponse(w))
	}
	return out
}
