package repositories

import (
	"context"

	"gridnav/internal/domain/models/navigation"
)

// DocumentRepository defines data access operations for documents
type DocumentRepository interface {
	// GetByID retrieves a document the user owns by its id or its urlId.
	// Returns domain.ErrNotFound when no such document is visible to the user.
	GetByID(ctx context.Context, id, userID string) (*navigation.DocumentRef, error)
}
