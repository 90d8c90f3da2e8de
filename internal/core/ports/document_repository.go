package ports

import (
	"context"

	"github.com/argomobile/studio-api/internal/core/domain"
)

// DocumentRepository defines persistence operations for project documents.
type DocumentRepository interface {
	Insert(ctx context.Context, d *domain.Document) (*domain.Document, error)
	FindByID(ctx context.Context, id int64) (*domain.Document, error)
	ListByProject(ctx context.Context, projectID int64) ([]domain.Document, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
