// Package storage provides SQLite persistence for extracted recipes and
// rejected candidates.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/cookscan/cookscan/internal/domain"
)

const (
	// DefaultMaxOpenConns keeps writes serialized; SQLite allows one writer.
	DefaultMaxOpenConns = 1
	// DefaultPingTimeout is the default timeout for ping operations
	DefaultPingTimeout = 5 * time.Second
)

const schema = `
CREATE TABLE IF NOT EXISTS recipes (
	id            TEXT PRIMARY KEY,
	title         TEXT NOT NULL,
	category      TEXT NOT NULL DEFAULT '',
	ingredients   TEXT NOT NULL,
	instructions  TEXT NOT NULL,
	servings      TEXT NOT NULL DEFAULT '',
	total_time    TEXT NOT NULL DEFAULT '',
	description   TEXT NOT NULL DEFAULT '',
	source        TEXT NOT NULL DEFAULT '',
	page_number   INTEGER NOT NULL DEFAULT 0,
	confidence    REAL NOT NULL DEFAULT 0,
	created_at    TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS rejections (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	page_number INTEGER NOT NULL DEFAULT 0,
	reason      TEXT NOT NULL,
	confidence  REAL NOT NULL DEFAULT 0,
	source      TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_recipes_source ON recipes(source);
CREATE INDEX IF NOT EXISTS idx_rejections_reason ON rejections(reason);
`

// Store persists recipes and rejections in a SQLite database.
type Store struct {
	db *sqlx.DB
}

// Open connects to the SQLite database at path and ensures the schema
// exists. Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sqlx.Connect("sqlite3", path+"?_busy_timeout=5000&_fk=1")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(DefaultMaxOpenConns)

	ctx, cancel := context.WithTimeout(context.Background(), DefaultPingTimeout)
	defer cancel()

	if pingErr := db.PingContext(ctx); pingErr != nil {
		return nil, fmt.Errorf("failed to ping database: %w", pingErr)
	}

	if _, execErr := db.ExecContext(ctx, schema); execErr != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", execErr)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRecipe inserts an accepted recipe. Missing ID and CreatedAt are
// filled in.
func (s *Store) SaveRecipe(ctx context.Context, recipe *domain.RecipeRecord) error {
	if recipe.ID == "" {
		recipe.ID = uuid.NewString()
	}
	if recipe.CreatedAt.IsZero() {
		recipe.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO recipes (
			id, title, category, ingredients, instructions,
			servings, total_time, description, source, page_number,
			confidence, created_at
		)
		VALUES (
			:id, :title, :category, :ingredients, :instructions,
			:servings, :total_time, :description, :source, :page_number,
			:confidence, :created_at
		)
	`

	if _, err := s.db.NamedExecContext(ctx, query, recipe); err != nil {
		return fmt.Errorf("failed to save recipe: %w", err)
	}
	return nil
}

// SaveRejection records a candidate that failed validation.
func (s *Store) SaveRejection(ctx context.Context, rejection *domain.Rejection) error {
	if rejection.ID == "" {
		rejection.ID = uuid.NewString()
	}
	if rejection.CreatedAt.IsZero() {
		rejection.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO rejections (
			id, title, page_number, reason, confidence, source, created_at
		)
		VALUES (
			:id, :title, :page_number, :reason, :confidence, :source, :created_at
		)
	`

	if _, err := s.db.NamedExecContext(ctx, query, rejection); err != nil {
		return fmt.Errorf("failed to save rejection: %w", err)
	}
	return nil
}

// GetRecipe retrieves one recipe by ID. Returns nil when not found.
func (s *Store) GetRecipe(ctx context.Context, id string) (*domain.RecipeRecord, error) {
	var recipe domain.RecipeRecord
	err := s.db.GetContext(ctx, &recipe, `SELECT * FROM recipes WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return &recipe, nil
}

// ListRecipes returns recipes ordered by source page, newest source first.
func (s *Store) ListRecipes(ctx context.Context, limit int) ([]domain.RecipeRecord, error) {
	recipes := []domain.RecipeRecord{}
	query := `SELECT * FROM recipes ORDER BY source, page_number LIMIT ?`
	if err := s.db.SelectContext(ctx, &recipes, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

// CountRecipes returns the number of stored recipes.
func (s *Store) CountRecipes(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM recipes`); err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	return count, nil
}

// RejectionTally returns rejection counts grouped by reason.
func (s *Store) RejectionTally(ctx context.Context) (map[string]int, error) {
	rows := []struct {
		Reason string `db:"reason"`
		Count  int    `db:"count"`
	}{}
	query := `SELECT reason, COUNT(*) AS count FROM rejections GROUP BY reason`
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to tally rejections: %w", err)
	}

	tally := make(map[string]int, len(rows))
	for _, row := range rows {
		tally[row.Reason] = row.Count
	}
	return tally, nil
}
