package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/flipwise/flipwise/internal/domain"
	"github.com/flipwise/flipwise/internal/platform/logger"
	"github.com/flipwise/flipwise/internal/store"
	"github.com/google/uuid"
)

// WordService manages the words of a category.
type WordService interface {
	// CreateWord returns store.ErrCategoryNotFound for an unknown category.
	CreateWord(ctx context.Context, categoryID uuid.UUID, content domain.WordContent) (*domain.Word, error)
	GetWord(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	// ListWords returns store.ErrCategoryNotFound for an unknown category.
	ListWords(ctx context.Context, categoryID uuid.UUID) ([]*domain.Word, error)
	UpdateWord(ctx context.Context, id uuid.UUID, content domain.WordContent) (*domain.Word, error)
	DeleteWord(ctx context.Context, id uuid.UUID) error

	// ImportWords creates all entries in categoryID or none of them.
	ImportWords(ctx context.Context, categoryID uuid.UUID, entries []domain.WordContent) ([]*domain.Word, error)

	// WordsForCategories returns the words of every listed category.
	// Unknown categories contribute no words.
	WordsForCategories(ctx context.Context, categoryIDs []uuid.UUID) ([]*domain.Word, error)
}

type wordServiceImpl struct {
	categories store.CategoryStore
	words      store.WordStore
	logger     *slog.Logger
}

var _ WordService = (*wordServiceImpl)(nil)

// NewWordService creates a WordService.
func NewWordService(
	categories store.CategoryStore,
	words store.WordStore,
	logger *slog.Logger,
) (WordService, error) {
	if categories == nil {
		return nil, domain.NewValidationError("categories", "cannot be nil", domain.ErrValidation)
	}
	if words == nil {
		return nil, domain.NewValidationError("words", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &wordServiceImpl{
		categories: categories,
		words:      words,
		logger:     logger.With(slog.String("component", "word_service")),
	}, nil
}

func (s *wordServiceImpl) CreateWord(
	ctx context.Context,
	categoryID uuid.UUID,
	content domain.WordContent,
) (*domain.Word, error) {
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}

	word, err := domain.NewWord(categoryID, content)
	if err != nil {
		return nil, err
	}
	if err := s.words.Create(ctx, word); err != nil {
		return nil, err
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("word created",
		slog.String("word_id", word.ID.String()),
		slog.String("category_id", categoryID.String()))
	return word, nil
}

func (s *wordServiceImpl) GetWord(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	return s.words.GetByID(ctx, id)
}

func (s *wordServiceImpl) ListWords(ctx context.Context, categoryID uuid.UUID) ([]*domain.Word, error) {
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}
	words, err := s.words.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, newServiceError("word", "list", err)
	}
	return words, nil
}

func (s *wordServiceImpl) UpdateWord(
	ctx context.Context,
	id uuid.UUID,
	content domain.WordContent,
) (*domain.Word, error) {
	word, err := s.words.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := word.Update(content); err != nil {
		return nil, err
	}
	if err := s.words.Update(ctx, word); err != nil {
		return nil, err
	}
	return word, nil
}

func (s *wordServiceImpl) DeleteWord(ctx context.Context, id uuid.UUID) error {
	return s.words.Delete(ctx, id)
}

func (s *wordServiceImpl) ImportWords(
	ctx context.Context,
	categoryID uuid.UUID,
	entries []domain.WordContent,
) ([]*domain.Word, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(entries) == 0 {
		return nil, ErrNothingToImport
	}
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}

	words := make([]*domain.Word, 0, len(entries))
	for i, entry := range entries {
		word, err := domain.NewWord(categoryID, entry)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		words = append(words, word)
	}

	if err := s.words.CreateMultiple(ctx, words); err != nil {
		log.Error("word import failed",
			slog.String("error", err.Error()),
			slog.String("category_id", categoryID.String()),
			slog.Int("count", len(words)))
		return nil, err
	}

	log.Info("words imported",
		slog.String("category_id", categoryID.String()),
		slog.Int("count", len(words)))
	return words, nil
}

func (s *wordServiceImpl) WordsForCategories(ctx context.Context, categoryIDs []uuid.UUID) ([]*domain.Word, error) {
	words, err := s.words.ListByCategories(ctx, categoryIDs)
	if err != nil {
		return nil, newServiceError("word", "list_by_categories", err)
	}
	return words, nil
}
