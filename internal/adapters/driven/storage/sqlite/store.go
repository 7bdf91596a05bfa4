package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/mathgen/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/mathgen/internal/core/domain"
	"github.com/custodia-labs/mathgen/internal/core/ports/driven"
)

// dbFileName is the database file inside the data directory.
const dbFileName = "datasets.db"

// Store is a SQLite-based storage for generated datasets.
type Store struct {
	db   *sql.DB
	path string
}

// dsnPragmas enables WAL, a busy timeout and foreign key enforcement.
const dsnPragmas = "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.mathgen/data/datasets.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".mathgen", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)

	// Pragmas in the DSN apply to every pooled connection.
	db, err := sql.Open("sqlite", dbPath+dsnPragmas)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// GenerationStore returns a GenerationStore interface backed by this store.
func (s *Store) GenerationStore() driven.GenerationStore {
	return &generationStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Generation Store ====================

// generationStore implements driven.GenerationStore.
type generationStore struct {
	store *Store
}

var _ driven.GenerationStore = (*generationStore)(nil)

// Save stores or replaces a generation and its items in one transaction.
func (s *generationStore) Save(ctx context.Context, gen *domain.Generation) (err error) {
	if gen == nil || gen.ID == "" {
		return domain.ErrInvalidInput
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback() //nolint:errcheck
		}
	}()

	req := gen.Request
	_, err = tx.ExecContext(ctx, `
		INSERT INTO generations (
			id, filter, difficulty, entropy_range, label, range_min, range_max, seed,
			requested, generated, dropped, attempts, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			filter = excluded.filter,
			difficulty = excluded.difficulty,
			entropy_range = excluded.entropy_range,
			label = excluded.label,
			range_min = excluded.range_min,
			range_max = excluded.range_max,
			seed = excluded.seed,
			requested = excluded.requested,
			generated = excluded.generated,
			dropped = excluded.dropped,
			attempts = excluded.attempts,
			created_at = excluded.created_at
	`, gen.ID, req.Filter, string(req.Difficulty), req.EntropyRange, gen.Label,
		gen.Range.Min, gen.Range.Max, gen.Seed,
		gen.Result.Requested, gen.Result.Generated, gen.Result.Dropped, gen.Result.Attempts,
		gen.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("saving generation: %w", err)
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM items WHERE generation_id = ?", gen.ID); err != nil {
		return fmt.Errorf("clearing items: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO items (generation_id, position, question, answer) VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing item insert: %w", err)
	}
	defer stmt.Close()

	for i, item := range gen.Result.Items {
		if _, err = stmt.ExecContext(ctx, gen.ID, i, item.Question, item.Answer); err != nil {
			return fmt.Errorf("saving item %d: %w", i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing generation: %w", err)
	}
	return nil
}

// Get retrieves a generation with its items.
func (s *generationStore) Get(ctx context.Context, id string) (*domain.Generation, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, filter, difficulty, entropy_range, label, range_min, range_max, seed,
			requested, generated, dropped, attempts, created_at
		FROM generations WHERE id = ?
	`, id)

	var gen domain.Generation
	var difficulty string
	var createdAt sql.NullTime
	if err := row.Scan(&gen.ID, &gen.Request.Filter, &difficulty, &gen.Request.EntropyRange,
		&gen.Label, &gen.Range.Min, &gen.Range.Max, &gen.Seed,
		&gen.Result.Requested, &gen.Result.Generated, &gen.Result.Dropped, &gen.Result.Attempts,
		&createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning generation: %w", err)
	}
	gen.Request.Difficulty = domain.Difficulty(difficulty)
	gen.Request.Count = gen.Result.Requested
	gen.Request.Seed = gen.Seed
	if createdAt.Valid {
		gen.CreatedAt = createdAt.Time
	}

	items, err := s.items(ctx, id)
	if err != nil {
		return nil, err
	}
	gen.Result.Items = items

	return &gen, nil
}

// items loads the items of a generation in generation order.
func (s *generationStore) items(ctx context.Context, id string) ([]domain.Problem, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT question, answer FROM items WHERE generation_id = ? ORDER BY position
	`, id)
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}
	defer rows.Close()

	items := []domain.Problem{}
	for rows.Next() {
		var p domain.Problem
		if err := rows.Scan(&p.Question, &p.Answer); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return items, nil
}

// List returns generation summaries, newest first.
func (s *generationStore) List(ctx context.Context, limit int) ([]domain.GenerationSummary, error) {
	query := `
		SELECT id, label, filter, requested, generated, dropped, seed, created_at
		FROM generations
		ORDER BY created_at DESC, id ASC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying generations: %w", err)
	}
	defer rows.Close()

	var summaries []domain.GenerationSummary //nolint:prealloc // size unknown from query
	for rows.Next() {
		var sum domain.GenerationSummary
		var createdAt sql.NullTime
		if err := rows.Scan(&sum.ID, &sum.Label, &sum.Filter, &sum.Requested,
			&sum.Generated, &sum.Dropped, &sum.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning generation: %w", err)
		}
		if createdAt.Valid {
			sum.CreatedAt = createdAt.Time
		}
		summaries = append(summaries, sum)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating generations: %w", err)
	}

	return summaries, nil
}

// Delete removes a generation; its items are removed by cascade.
func (s *generationStore) Delete(ctx context.Context, id string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM generations WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting generation: %w", err)
	}
	return nil
}
