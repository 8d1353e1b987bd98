package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// SaveExport caches a rendered export (HTML or PDF bytes) for a user and
// template, replacing any previous copy.
func (s *Store) SaveExport(ctx context.Context, userID uuid.UUID, templateID, format string, content []byte) error {
	if templateID == "" || format == "" {
		return fmt.Errorf("template id and format are required")
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO portfolio_exports (user_id, template_id, format, content, created_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(user_id, template_id, format) DO UPDATE SET content = excluded.content, created_at = CURRENT_TIMESTAMP`,
		userID.String(), templateID, format, content,
	)
	if err != nil {
		return fmt.Errorf("saving export %s/%s: %w", templateID, format, err)
	}
	return nil
}

// LoadExport retrieves a cached export. Returns ErrNotFound when absent.
func (s *Store) LoadExport(ctx context.Context, userID uuid.UUID, templateID, format string) ([]byte, error) {
	var content []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT content FROM portfolio_exports WHERE user_id = ? AND template_id = ? AND format = ?`,
		userID.String(), templateID, format,
	).Scan(&content)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading export %s/%s: %w", templateID, format, err)
	}
	return content, nil
}
