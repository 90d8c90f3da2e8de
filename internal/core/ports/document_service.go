package ports

import (
	"context"

	"github.com/argomobile/studio-api/internal/core/domain"
)

// CreateDocumentInput carries all data to attach a document to a project.
type CreateDocumentInput struct {
	Name string `validate:"required"`
	Type string `validate:"required,oneof=document image audio code"`
	URL  string `validate:"required,url"`
}

// DocumentService defines use-case operations for project documents.
type DocumentService interface {
	CreateDocument(ctx context.Context, p domain.Principal, projectID int64, in CreateDocumentInput) (*domain.Document, error)
	ListDocuments(ctx context.Context, p domain.Principal, projectID int64) ([]domain.Document, error)
	// DeleteDocument removes a record. Allowed for admins, the project
	// creator, and the uploader.
	DeleteDocument(ctx context.Context, p domain.Principal, id int64) error
}
