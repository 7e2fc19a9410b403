package domain

import (
	"strings"
	"time"

	"github.com/flipwise/flipwise/internal/domain/study"
	"github.com/google/uuid"
)

// Word is a vocabulary entry: the native-script form, its romanization and
// its translation.
type Word struct {
	ID           uuid.UUID `json:"id"`
	CategoryID   uuid.UUID `json:"category_id"`
	Native       string    `json:"native"`
	Romanization string    `json:"romanization"`
	Translation  string    `json:"translation"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// WordContent holds the editable text fields of a Word.
type WordContent struct {
	Native       string
	Romanization string
	Translation  string
}

// normalize trims every field and capitalizes the translation.
func (c WordContent) normalize() WordContent {
	return WordContent{
		Native:       strings.TrimSpace(c.Native),
		Romanization: strings.TrimSpace(c.Romanization),
		Translation:  CapitalizeFirst(strings.TrimSpace(c.Translation)),
	}
}

// NewWord creates a Word in categoryID from content.
func NewWord(categoryID uuid.UUID, content WordContent) (*Word, error) {
	content = content.normalize()
	now := time.Now().UTC()
	word := &Word{
		ID:           uuid.New(),
		CategoryID:   categoryID,
		Native:       content.Native,
		Romanization: content.Romanization,
		Translation:  content.Translation,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := word.Validate(); err != nil {
		return nil, err
	}
	return word, nil
}

// Validate checks IDs and that all three text fields are present.
func (w *Word) Validate() error {
	if w.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if w.CategoryID == uuid.Nil {
		return NewValidationError("category_id", "cannot be empty", ErrInvalidID)
	}
	if w.Native == "" {
		return NewValidationError("native", "cannot be empty", ErrEmptyContent)
	}
	if w.Romanization == "" {
		return NewValidationError("romanization", "cannot be empty", ErrEmptyContent)
	}
	if w.Translation == "" {
		return NewValidationError("translation", "cannot be empty", ErrEmptyContent)
	}
	return nil
}

// Update replaces the text fields and bumps UpdatedAt.
func (w *Word) Update(content WordContent) error {
	content = content.normalize()
	updated := *w
	updated.Native = content.Native
	updated.Romanization = content.Romanization
	updated.Translation = content.Translation
	if err := updated.Validate(); err != nil {
		return err
	}
	updated.UpdatedAt = time.Now().UTC()
	*w = updated
	return nil
}

// Card converts the word into a study card keyed by its native form.
func (w *Word) Card() study.Card {
	return study.Card{
		Key:       w.Native,
		Prompt:    w.Native,
		Auxiliary: w.Romanization,
		Answer:    w.Translation,
	}
}

// CardsFromWords converts words into study cards, preserving order.
func CardsFromWords(words []*Word) []study.Card {
	cards := make([]study.Card, 0, len(words))
	for _, w := range words {
		cards = append(cards, w.Card())
	}
	return cards
}
