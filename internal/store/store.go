package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/portfolio-studio/internal/schemas"
	"github.com/jonathan/portfolio-studio/internal/types"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	user_id    TEXT PRIMARY KEY,
	record     TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS portfolio_exports (
	user_id     TEXT NOT NULL,
	template_id TEXT NOT NULL,
	format      TEXT NOT NULL,
	content     BLOB NOT NULL,
	created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (user_id, template_id, format)
);
`

// Store persists one profile record per user id in a local SQLite database,
// plus a cache of rendered exports.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database under dataDir and ensures the schema
// exists. Pass ":memory:" as dataDir for an in-memory database (used by tests).
func Open(dataDir string) (*Store, error) {
	var dsn string
	if dataDir == ":memory:" {
		dsn = ":memory:"
	} else {
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		dsn = filepath.Join(dataDir, "portfolio.db")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	// Limit to single connection to avoid "database is locked" errors.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting journal mode: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the durable profile record for userID. A missing record returns
// ErrNotFound; a record that fails JSON parsing or schema validation returns
// a CorruptRecordError, which also matches ErrNotFound so callers can treat
// the user as new.
func (s *Store) Load(ctx context.Context, userID uuid.UUID) (*types.Profile, error) {
	var record string
	err := s.db.QueryRowContext(ctx,
		`SELECT record FROM profiles WHERE user_id = ?`, userID.String(),
	).Scan(&record)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading profile %s: %w", userID, err)
	}

	if err := schemas.ValidateProfileJSON([]byte(record)); err != nil {
		return nil, &CorruptRecordError{UserID: userID, Cause: err}
	}

	var profile types.Profile
	if err := json.Unmarshal([]byte(record), &profile); err != nil {
		return nil, &CorruptRecordError{UserID: userID, Cause: err}
	}

	profile.Normalize()
	return &profile, nil
}

// Save replaces the durable record for profile.ID wholesale. Serialization
// happens before any write, so a failure leaves the stored record untouched;
// the single upsert statement keeps the replacement atomic.
func (s *Store) Save(ctx context.Context, profile *types.Profile) error {
	if profile == nil {
		return fmt.Errorf("profile is nil")
	}
	if profile.ID == uuid.Nil {
		return fmt.Errorf("profile has no id")
	}

	profile.Normalize()
	profile.UpdatedAt = time.Now().UTC()

	record, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("serializing profile %s: %w", profile.ID, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO profiles (user_id, record, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(user_id) DO UPDATE SET record = excluded.record, updated_at = CURRENT_TIMESTAMP`,
		profile.ID.String(), string(record),
	)
	if err != nil {
		return fmt.Errorf("saving profile %s: %w", profile.ID, err)
	}
	return nil
}

// Clear removes the durable record and any cached exports for userID.
// Clearing an unknown user is not an error.
func (s *Store) Clear(ctx context.Context, userID uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning clear transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM profiles WHERE user_id = ?`, userID.String()); err != nil {
		tx.Rollback()
		return fmt.Errorf("clearing profile %s: %w", userID, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM portfolio_exports WHERE user_id = ?`, userID.String()); err != nil {
		tx.Rollback()
		return fmt.Errorf("clearing exports for %s: %w", userID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing clear: %w", err)
	}
	return nil
}
