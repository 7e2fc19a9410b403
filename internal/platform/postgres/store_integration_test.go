//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/flipwise/flipwise/internal/domain"
	"github.com/flipwise/flipwise/internal/platform/postgres"
	"github.com/flipwise/flipwise/internal/store"
	"github.com/flipwise/flipwise/internal/testdb"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryStores_Integration(t *testing.T) {
	db := testdb.Open(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		decks := postgres.NewPostgresDeckStore(tx, discard)
		categories := postgres.NewPostgresCategoryStore(tx, discard)

		deck := mustDeck(t, "integration "+uuid.NewString()[:8])
		require.NoError(t, decks.Create(ctx, deck))

		got, err := decks.GetByID(ctx, deck.ID)
		require.NoError(t, err)
		assert.Equal(t, deck.Name, got.Name)
		assert.Equal(t, "JP", got.Code)

		food, err := domain.NewCategory(deck.ID, "food")
		require.NoError(t, err)
		require.NoError(t, categories.Create(ctx, food))

		dup, err := domain.NewCategory(deck.ID, "Food")
		require.NoError(t, err)
		assert.ErrorIs(t, categories.Create(ctx, dup), store.ErrCategoryNameExists)
	})
}

func TestWordsCascade_Integration(t *testing.T) {
	db := testdb.Open(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		decks := postgres.NewPostgresDeckStore(tx, discard)
		categories := postgres.NewPostgresCategoryStore(tx, discard)
		words := postgres.NewPostgresWordStore(tx, discard)

		deck := mustDeck(t, "cascade "+uuid.NewString()[:8])
		require.NoError(t, decks.Create(ctx, deck))
		category, err := domain.NewCategory(deck.ID, "verbs")
		require.NoError(t, err)
		require.NoError(t, categories.Create(ctx, category))

		batch := []*domain.Word{mustWord(t, category.ID, "たべる"), mustWord(t, category.ID, "のむ")}
		require.NoError(t, words.CreateMultiple(ctx, batch))

		listed, err := words.ListByCategories(ctx, []uuid.UUID{category.ID, uuid.New()})
		require.NoError(t, err)
		assert.Len(t, listed, 2)

		require.NoError(t, decks.Delete(ctx, deck.ID))

		_, err = words.GetByID(ctx, batch[0].ID)
		assert.ErrorIs(t, err, store.ErrWordNotFound)
		_, err = categories.GetByID(ctx, category.ID)
		assert.ErrorIs(t, err, store.ErrCategoryNotFound)
	})
}
