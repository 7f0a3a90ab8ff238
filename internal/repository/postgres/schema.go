package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the tables the repositories read from, if missing.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS ` + tables.Orgs + ` (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			domain TEXT UNIQUE,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.Workspaces + ` (
			id SERIAL PRIMARY KEY,
			org_id INTEGER NOT NULL REFERENCES ` + tables.Orgs + `(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.Documents + ` (
			id TEXT PRIMARY KEY,
			url_id TEXT UNIQUE,
			name TEXT NOT NULL,
			workspace_id INTEGER NOT NULL REFERENCES ` + tables.Workspaces + `(id) ON DELETE CASCADE,
			owner_id TEXT NOT NULL,
			removed_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tables.Documents + `_owner ON ` + tables.Documents + `(owner_id)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("run schema: %w", err)
		}
	}
	return nil
}

// DropSchema drops the tables created by EnsureSchema.
func DropSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	query := fmt.Sprintf(`DROP TABLE IF EXISTS %s, %s, %s CASCADE`,
		tables.Documents, tables.Workspaces, tables.Orgs)
	if _, err := pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("drop schema: %w", err)
	}
	return nil
}
