package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/flipwise/flipwise/internal/domain"
	"github.com/flipwise/flipwise/internal/platform/logger"
	"github.com/flipwise/flipwise/internal/store"
	"github.com/google/uuid"
)

// PostgresWordStore implements store.WordStore.
type PostgresWordStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresWordStore creates a word store on db.
func NewPostgresWordStore(db store.DBTX, logger *slog.Logger) *PostgresWordStore {
	if db == nil {
		panic("db cannot be nil") // ALLOW-PANIC
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresWordStore{
		db:     db,
		logger: logger.With(slog.String("component", "word_store")),
	}
}

var _ store.WordStore = (*PostgresWordStore)(nil)

const (
	wordColumns = `id, category_id, native, romanization, translation, created_at, updated_at`
	insertWord  = `INSERT INTO words (` + wordColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
)

func scanWord(row interface{ Scan(...any) error }) (*domain.Word, error) {
	var w domain.Word
	err := row.Scan(&w.ID, &w.CategoryID, &w.Native, &w.Romanization, &w.Translation,
		&w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func insertWordOn(ctx context.Context, db store.DBTX, word *domain.Word) error {
	if err := word.Validate(); err != nil {
		return err
	}
	_, err := db.ExecContext(ctx, insertWord,
		word.ID, word.CategoryID, word.Native, word.Romanization, word.Translation,
		word.CreatedAt, word.UpdatedAt)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: %s", store.ErrCategoryNotFound, word.CategoryID)
		}
		return store.NewStoreError("word", "create", "insert failed", MapError(err))
	}
	return nil
}

// Create inserts word.
func (s *PostgresWordStore) Create(ctx context.Context, word *domain.Word) error {
	if err := insertWordOn(ctx, s.db, word); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("failed to create word",
			slog.String("error", err.Error()),
			slog.String("word_id", word.ID.String()))
		return err
	}
	return nil
}

// CreateMultiple inserts words atomically. When the store is already bound
// to a transaction the caller's transaction is used.
func (s *PostgresWordStore) CreateMultiple(ctx context.Context, words []*domain.Word) error {
	if len(words) == 0 {
		return nil
	}

	insertAll := func(ctx context.Context, db store.DBTX) error {
		for i, word := range words {
			if err := insertWordOn(ctx, db, word); err != nil {
				return fmt.Errorf("word %d: %w", i, err)
			}
		}
		return nil
	}

	var err error
	if pool, ok := s.db.(*sql.DB); ok {
		err = store.RunInTransaction(ctx, pool, func(ctx context.Context, tx *sql.Tx) error {
			return insertAll(ctx, tx)
		})
	} else {
		err = insertAll(ctx, s.db)
	}
	if err != nil {
		return err
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("words created",
		slog.Int("count", len(words)))
	return nil
}

// GetByID returns store.ErrWordNotFound when no word has id.
func (s *PostgresWordStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+wordColumns+` FROM words WHERE id = $1`, id)

	word, err := scanWord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrWordNotFound
		}
		return nil, store.NewStoreError("word", "get", "query failed", MapError(err))
	}
	return word, nil
}

// ListByCategory returns the words of categoryID oldest first.
func (s *PostgresWordStore) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*domain.Word, error) {
	return s.list(ctx,
		`SELECT `+wordColumns+` FROM words WHERE category_id = $1 ORDER BY created_at, id`,
		categoryID)
}

// ListByCategories returns the words of every category in categoryIDs,
// oldest first.
func (s *PostgresWordStore) ListByCategories(ctx context.Context, categoryIDs []uuid.UUID) ([]*domain.Word, error) {
	if len(categoryIDs) == 0 {
		return []*domain.Word{}, nil
	}

	placeholders := make([]string, len(categoryIDs))
	args := make([]any, len(categoryIDs))
	for i, id := range categoryIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := `SELECT ` + wordColumns + ` FROM words WHERE category_id IN (` +
		strings.Join(placeholders, ", ") + `) ORDER BY created_at, id`
	return s.list(ctx, query, args...)
}

func (s *PostgresWordStore) list(ctx context.Context, query string, args ...any) ([]*domain.Word, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list words",
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("word", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	words := []*domain.Word{}
	for rows.Next() {
		word, err := scanWord(rows)
		if err != nil {
			return nil, store.NewStoreError("word", "list", "scan failed", err)
		}
		words = append(words, word)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("word", "list", "iteration failed", err)
	}
	return words, nil
}

// Update saves the word's text fields.
func (s *PostgresWordStore) Update(ctx context.Context, word *domain.Word) error {
	if err := word.Validate(); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE words SET native = $1, romanization = $2, translation = $3, updated_at = $4 WHERE id = $5`,
		word.Native, word.Romanization, word.Translation, word.UpdatedAt, word.ID)
	if err != nil {
		return store.NewStoreError("word", "update", "update failed", MapError(err))
	}
	return CheckRowsAffected(result, store.ErrWordNotFound)
}

// Delete removes a word.
func (s *PostgresWordStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM words WHERE id = $1`, id)
	if err != nil {
		return store.NewStoreError("word", "delete", "delete failed", MapError(err))
	}
	return CheckRowsAffected(result, store.ErrWordNotFound)
}

// WithTx returns a store bound to tx.
func (s *PostgresWordStore) WithTx(tx *sql.Tx) store.WordStore {
	return &PostgresWordStore{db: tx, logger: s.logger}
}
