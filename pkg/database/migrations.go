package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes enable efficient full-text search on proposal title and
// description fields from the admin API.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for proposal title full-text search
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_proposals_title_gin
		ON proposals USING gin(to_tsvector('english', title))`)
	if err != nil {
		return fmt.Errorf("failed to create title GIN index: %w", err)
	}

	// GIN index for proposal description full-text search
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_proposals_description_gin
		ON proposals USING gin(to_tsvector('english', COALESCE(description, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create description GIN index: %w", err)
	}

	return nil
}
