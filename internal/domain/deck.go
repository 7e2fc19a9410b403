package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultDeckCode marks a deck without a country.
const DefaultDeckCode = "XX"

// Deck is a named collection of categories, typically one per language.
type Deck struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewDeck creates a Deck with a fresh ID. The name is title-cased and the
// code normalized with NormalizeDeckCode.
func NewDeck(name, code string) (*Deck, error) {
	now := time.Now().UTC()
	deck := &Deck{
		ID:        uuid.New(),
		Name:      TitleCase(name),
		Code:      NormalizeDeckCode(code),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := deck.Validate(); err != nil {
		return nil, err
	}
	return deck, nil
}

// Validate checks that the deck has an ID and a name.
func (d *Deck) Validate() error {
	if d.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if strings.TrimSpace(d.Name) == "" {
		return NewValidationError("name", "cannot be empty", ErrEmptyContent)
	}
	return nil
}

// Rename applies a new name and code and bumps UpdatedAt.
func (d *Deck) Rename(name, code string) error {
	updated := *d
	updated.Name = TitleCase(name)
	updated.Code = NormalizeDeckCode(code)
	if err := updated.Validate(); err != nil {
		return err
	}
	updated.UpdatedAt = time.Now().UTC()
	*d = updated
	return nil
}

// Flag returns the regional-indicator emoji for the deck's country code,
// or a book for decks without one.
func (d *Deck) Flag() string {
	if d.Code == DefaultDeckCode || !isCountryCode(d.Code) {
		return "📚"
	}
	const regionalA = 0x1F1E6
	return string([]rune{
		rune(regionalA + int(d.Code[0]-'A')),
		rune(regionalA + int(d.Code[1]-'A')),
	})
}

// NormalizeDeckCode upper-cases a two-letter country code. Anything else,
// including an empty code, becomes DefaultDeckCode.
func NormalizeDeckCode(code string) string {
	c := strings.ToUpper(strings.TrimSpace(code))
	if !isCountryCode(c) {
		return DefaultDeckCode
	}
	return c
}

func isCountryCode(c string) bool {
	if len(c) != 2 {
		return false
	}
	for i := 0; i < len(c); i++ {
		if c[i] < 'A' || c[i] > 'Z' {
			return false
		}
	}
	return true
}
