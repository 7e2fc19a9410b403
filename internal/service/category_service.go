package service

import (
	"context"
	"log/slog"

	"github.com/flipwise/flipwise/internal/domain"
	"github.com/flipwise/flipwise/internal/platform/logger"
	"github.com/flipwise/flipwise/internal/store"
	"github.com/google/uuid"
)

// CategoryService manages the categories of a deck.
type CategoryService interface {
	// CreateCategory returns store.ErrDeckNotFound for an unknown deck.
	CreateCategory(ctx context.Context, deckID uuid.UUID, name string) (*domain.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	// ListCategories returns store.ErrDeckNotFound for an unknown deck.
	ListCategories(ctx context.Context, deckID uuid.UUID) ([]*domain.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, name string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type categoryServiceImpl struct {
	decks      store.DeckStore
	categories store.CategoryStore
	logger     *slog.Logger
}

var _ CategoryService = (*categoryServiceImpl)(nil)

// NewCategoryService creates a CategoryService.
func NewCategoryService(
	decks store.DeckStore,
	categories store.CategoryStore,
	logger *slog.Logger,
) (CategoryService, error) {
	if decks == nil {
		return nil, domain.NewValidationError("decks", "cannot be nil", domain.ErrValidation)
	}
	if categories == nil {
		return nil, domain.NewValidationError("categories", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &categoryServiceImpl{
		decks:      decks,
		categories: categories,
		logger:     logger.With(slog.String("component", "category_service")),
	}, nil
}

func (s *categoryServiceImpl) CreateCategory(
	ctx context.Context,
	deckID uuid.UUID,
	name string,
) (*domain.Category, error) {
	if _, err := s.decks.GetByID(ctx, deckID); err != nil {
		return nil, err
	}

	category, err := domain.NewCategory(deckID, name)
	if err != nil {
		return nil, err
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("category created",
		slog.String("category_id", category.ID.String()),
		slog.String("deck_id", deckID.String()),
		slog.String("name", category.Name))
	return category, nil
}

func (s *categoryServiceImpl) GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	return s.categories.GetByID(ctx, id)
}

func (s *categoryServiceImpl) ListCategories(ctx context.Context, deckID uuid.UUID) ([]*domain.Category, error) {
	if _, err := s.decks.GetByID(ctx, deckID); err != nil {
		return nil, err
	}
	categories, err := s.categories.ListByDeck(ctx, deckID)
	if err != nil {
		return nil, newServiceError("category", "list", err)
	}
	return categories, nil
}

func (s *categoryServiceImpl) UpdateCategory(ctx context.Context, id uuid.UUID, name string) (*domain.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := category.Rename(name); err != nil {
		return nil, err
	}
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryServiceImpl) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("category deleted",
		slog.String("category_id", id.String()))
	return nil
}
