package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"gridnav/internal/domain"
	"gridnav/internal/domain/models/navigation"
	"gridnav/internal/domain/repositories"
)

// PostgresDocumentRepository implements the DocumentRepository interface
type PostgresDocumentRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(config *RepositoryConfig) repositories.DocumentRepository {
	return &PostgresDocumentRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// GetByID looks a document up by id or urlId, joined through its workspace
// to the org domain used in links.
func (r *PostgresDocumentRepository) GetByID(ctx context.Context, id, userID string) (*navigation.DocumentRef, error) {
	query := fmt.Sprintf(`
		SELECT d.id, d.url_id, d.name, d.workspace_id, COALESCE(o.domain, '')
		FROM %s d
		JOIN %s w ON w.id = d.workspace_id
		JOIN %s o ON o.id = w.org_id
		WHERE (d.id = $1 OR d.url_id = $1) AND d.owner_id = $2 AND d.removed_at IS NULL
		ORDER BY d.id = $1 DESC
		LIMIT 1
	`, r.tables.Documents, r.tables.Workspaces, r.tables.Orgs)

	var (
		doc         navigation.DocumentRef
		workspaceID int
	)
	err := r.pool.QueryRow(ctx, query, id, userID).Scan(
		&doc.ID,
		&doc.URLID,
		&doc.Name,
		&workspaceID,
		&doc.Org,
	)
	if err != nil {
		if IsPgNoRowsError(err) || IsPgInvalidTextError(err) {
			return nil, fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	doc.WorkspaceID = &workspaceID

	r.logger.Debug("document loaded", "id", doc.ID, "workspace_id", workspaceID)
	return &doc, nil
}
