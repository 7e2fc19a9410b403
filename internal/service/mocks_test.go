package service

import (
	"context"
	"database/sql"

	"github.com/flipwise/flipwise/internal/domain"
	"github.com/flipwise/flipwise/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockDeckStore struct {
	mock.Mock
}

func (m *MockDeckStore) Create(ctx context.Context, deck *domain.Deck) error {
	return m.Called(ctx, deck).Error(0)
}

func (m *MockDeckStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Deck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deck), args.Error(1)
}

func (m *MockDeckStore) List(ctx context.Context) ([]*domain.Deck, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Deck), args.Error(1)
}

func (m *MockDeckStore) Update(ctx context.Context, deck *domain.Deck) error {
	return m.Called(ctx, deck).Error(0)
}

func (m *MockDeckStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDeckStore) WithTx(*sql.Tx) store.DeckStore { return m }

type MockCategoryStore struct {
	mock.Mock
}

func (m *MockCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryStore) ListByDeck(ctx context.Context, deckID uuid.UUID) ([]*domain.Category, error) {
	args := m.Called(ctx, deckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *MockCategoryStore) Update(ctx context.Context, category *domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCategoryStore) WithTx(*sql.Tx) store.CategoryStore { return m }

type MockWordStore struct {
	mock.Mock
}

func (m *MockWordStore) Create(ctx context.Context, word *domain.Word) error {
	return m.Called(ctx, word).Error(0)
}

func (m *MockWordStore) CreateMultiple(ctx context.Context, words []*domain.Word) error {
	return m.Called(ctx, words).Error(0)
}

func (m *MockWordStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordStore) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*domain.Word, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Word), args.Error(1)
}

func (m *MockWordStore) ListByCategories(ctx context.Context, categoryIDs []uuid.UUID) ([]*domain.Word, error) {
	args := m.Called(ctx, categoryIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Word), args.Error(1)
}

func (m *MockWordStore) Update(ctx context.Context, word *domain.Word) error {
	return m.Called(ctx, word).Error(0)
}

func (m *MockWordStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockWordStore) WithTx(*sql.Tx) store.WordStore { return m }
