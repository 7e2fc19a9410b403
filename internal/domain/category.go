package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category groups words inside a deck, e.g. "Food" or "Verbs".
type Category struct {
	ID        uuid.UUID `json:"id"`
	DeckID    uuid.UUID `json:"deck_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCategory creates a Category in deckID with a title-cased name.
func NewCategory(deckID uuid.UUID, name string) (*Category, error) {
	now := time.Now().UTC()
	category := &Category{
		ID:        uuid.New(),
		DeckID:    deckID,
		Name:      TitleCase(name),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}
	return category, nil
}

// Validate checks IDs and name.
func (c *Category) Validate() error {
	if c.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if c.DeckID == uuid.Nil {
		return NewValidationError("deck_id", "cannot be empty", ErrInvalidID)
	}
	if strings.TrimSpace(c.Name) == "" {
		return NewValidationError("name", "cannot be empty", ErrEmptyContent)
	}
	return nil
}

// Rename changes the category name and bumps UpdatedAt.
func (c *Category) Rename(name string) error {
	updated := *c
	updated.Name = TitleCase(name)
	if err := updated.Validate(); err != nil {
		return err
	}
	updated.UpdatedAt = time.Now().UTC()
	*c = updated
	return nil
}
