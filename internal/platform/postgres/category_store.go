package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/flipwise/flipwise/internal/domain"
	"github.com/flipwise/flipwise/internal/platform/logger"
	"github.com/flipwise/flipwise/internal/store"
	"github.com/google/uuid"
)

// PostgresCategoryStore implements store.CategoryStore.
type PostgresCategoryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCategoryStore creates a category store on db.
func NewPostgresCategoryStore(db store.DBTX, logger *slog.Logger) *PostgresCategoryStore {
	if db == nil {
		panic("db cannot be nil") // ALLOW-PANIC
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresCategoryStore{
		db:     db,
		logger: logger.With(slog.String("component", "category_store")),
	}
}

var _ store.CategoryStore = (*PostgresCategoryStore)(nil)

const categoryColumns = `id, deck_id, name, created_at, updated_at`

func scanCategory(row interface{ Scan(...any) error }) (*domain.Category, error) {
	var c domain.Category
	if err := row.Scan(&c.ID, &c.DeckID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts category.
func (s *PostgresCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := category.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (`+categoryColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		category.ID, category.DeckID, category.Name, category.CreatedAt, category.UpdatedAt)
	if err != nil {
		switch {
		case IsForeignKeyViolation(err):
			return fmt.Errorf("%w: %s", store.ErrDeckNotFound, category.DeckID)
		case IsUniqueViolation(err):
			return fmt.Errorf("%w: %q", store.ErrCategoryNameExists, category.Name)
		}
		log.Error("failed to create category",
			slog.String("error", err.Error()),
			slog.String("category_id", category.ID.String()))
		return store.NewStoreError("category", "create", "insert failed", MapError(err))
	}

	log.Debug("category created",
		slog.String("category_id", category.ID.String()),
		slog.String("deck_id", category.DeckID.String()))
	return nil
}

// GetByID returns store.ErrCategoryNotFound when no category has id.
func (s *PostgresCategoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)

	category, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCategoryNotFound
		}
		return nil, store.NewStoreError("category", "get", "query failed", MapError(err))
	}
	return category, nil
}

// ListByDeck returns the categories of deckID ordered by name.
func (s *PostgresCategoryStore) ListByDeck(ctx context.Context, deckID uuid.UUID) ([]*domain.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE deck_id = $1 ORDER BY name, id`, deckID)
	if err != nil {
		return nil, store.NewStoreError("category", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	categories := []*domain.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, store.NewStoreError("category", "list", "scan failed", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("category", "list", "iteration failed", err)
	}
	return categories, nil
}

// Update saves the category name.
func (s *PostgresCategoryStore) Update(ctx context.Context, category *domain.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE categories SET name = $1, updated_at = $2 WHERE id = $3`,
		category.Name, category.UpdatedAt, category.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: %q", store.ErrCategoryNameExists, category.Name)
		}
		return store.NewStoreError("category", "update", "update failed", MapError(err))
	}
	return CheckRowsAffected(result, store.ErrCategoryNotFound)
}

// Delete removes the category and its words.
func (s *PostgresCategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return store.NewStoreError("category", "delete", "delete failed", MapError(err))
	}
	return CheckRowsAffected(result, store.ErrCategoryNotFound)
}

// WithTx returns a store bound to tx.
func (s *PostgresCategoryStore) WithTx(tx *sql.Tx) store.CategoryStore {
	return &PostgresCategoryStore{db: tx, logger: s.logger}
}
