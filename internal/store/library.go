package store

import (
	"context"
	"database/sql"

	"github.com/flipwise/flipwise/internal/domain"
	"github.com/google/uuid"
)

// DeckStore persists decks.
type DeckStore interface {
	// Create saves a new deck. Returns ErrDeckNameExists on a name clash.
	Create(ctx context.Context, deck *domain.Deck) error

	// GetByID returns ErrDeckNotFound if the deck does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Deck, error)

	// List returns every deck ordered by name.
	List(ctx context.Context) ([]*domain.Deck, error)

	Update(ctx context.Context, deck *domain.Deck) error

	// Delete removes the deck together with its categories and words.
	Delete(ctx context.Context, id uuid.UUID) error

	WithTx(tx *sql.Tx) DeckStore
}

// CategoryStore persists categories.
type CategoryStore interface {
	// Create returns ErrDeckNotFound if the parent deck is missing and
	// ErrCategoryNameExists on a name clash inside the deck.
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)

	// ListByDeck returns the deck's categories ordered by name.
	ListByDeck(ctx context.Context, deckID uuid.UUID) ([]*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error

	// Delete removes the category and its words.
	Delete(ctx context.Context, id uuid.UUID) error

	WithTx(tx *sql.Tx) CategoryStore
}

// WordStore persists words.
type WordStore interface {
	// Create returns ErrCategoryNotFound if the parent category is missing.
	Create(ctx context.Context, word *domain.Word) error

	// CreateMultiple inserts all words or none. Callers that need
	// atomicity with other stores should use WithTx.
	CreateMultiple(ctx context.Context, words []*domain.Word) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)

	// ListByCategory returns words in insertion order.
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*domain.Word, error)

	// ListByCategories returns the words of all given categories. Unknown
	// IDs contribute nothing.
	ListByCategories(ctx context.Context, categoryIDs []uuid.UUID) ([]*domain.Word, error)
	Update(ctx context.Context, word *domain.Word) error
	Delete(ctx context.Context, id uuid.UUID) error

	WithTx(tx *sql.Tx) WordStore
}
