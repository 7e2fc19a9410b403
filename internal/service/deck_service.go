package service

import (
	"context"
	"log/slog"

	"github.com/flipwise/flipwise/internal/domain"
	"github.com/flipwise/flipwise/internal/platform/logger"
	"github.com/flipwise/flipwise/internal/store"
	"github.com/google/uuid"
)

// DeckService manages decks.
type DeckService interface {
	CreateDeck(ctx context.Context, name, code string) (*domain.Deck, error)
	GetDeck(ctx context.Context, id uuid.UUID) (*domain.Deck, error)
	ListDecks(ctx context.Context) ([]*domain.Deck, error)
	// UpdateDeck renames the deck and sets its country code.
	UpdateDeck(ctx context.Context, id uuid.UUID, name, code string) (*domain.Deck, error)
	// DeleteDeck removes the deck with all categories and words.
	DeleteDeck(ctx context.Context, id uuid.UUID) error
}

type deckServiceImpl struct {
	decks  store.DeckStore
	logger *slog.Logger
}

var _ DeckService = (*deckServiceImpl)(nil)

// NewDeckService creates a DeckService.
func NewDeckService(decks store.DeckStore, logger *slog.Logger) (DeckService, error) {
	if decks == nil {
		return nil, domain.NewValidationError("decks", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &deckServiceImpl{
		decks:  decks,
		logger: logger.With(slog.String("component", "deck_service")),
	}, nil
}

func (s *deckServiceImpl) CreateDeck(ctx context.Context, name, code string) (*domain.Deck, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	deck, err := domain.NewDeck(name, code)
	if err != nil {
		log.Debug("invalid deck", slog.String("error", err.Error()))
		return nil, err
	}
	if err := s.decks.Create(ctx, deck); err != nil {
		return nil, err
	}

	log.Info("deck created",
		slog.String("deck_id", deck.ID.String()),
		slog.String("name", deck.Name),
		slog.String("code", deck.Code))
	return deck, nil
}

func (s *deckServiceImpl) GetDeck(ctx context.Context, id uuid.UUID) (*domain.Deck, error) {
	return s.decks.GetByID(ctx, id)
}

func (s *deckServiceImpl) ListDecks(ctx context.Context) ([]*domain.Deck, error) {
	decks, err := s.decks.List(ctx)
	if err != nil {
		return nil, newServiceError("deck", "list", err)
	}
	return decks, nil
}

func (s *deckServiceImpl) UpdateDeck(ctx context.Context, id uuid.UUID, name, code string) (*domain.Deck, error) {
	deck, err := s.decks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := deck.Rename(name, code); err != nil {
		return nil, err
	}
	if err := s.decks.Update(ctx, deck); err != nil {
		return nil, err
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("deck updated",
		slog.String("deck_id", deck.ID.String()))
	return deck, nil
}

func (s *deckServiceImpl) DeleteDeck(ctx context.Context, id uuid.UUID) error {
	return s.decks.Delete(ctx, id)
}
