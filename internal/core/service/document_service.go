package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/argomobile/studio-api/internal/core/domain"
	"github.com/argomobile/studio-api/internal/core/policy"
	"github.com/argomobile/studio-api/internal/core/ports"
)

// DocumentService implements project file attachments. Only references are
// stored; the bytes live wherever the URL points.
type DocumentService struct {
	mu        *sync.RWMutex
	documents ports.DocumentRepository
	projects  ports.ProjectRepository
	members   ports.MemberRepository
	logger    zerolog.Logger
}

func NewDocumentService(
	mu *sync.RWMutex,
	documents ports.DocumentRepository,
	projects ports.ProjectRepository,
	members ports.MemberRepository,
	logger zerolog.Logger,
) *DocumentService {
	return &DocumentService{mu: mu, documents: documents, projects: projects, members: members, logger: logger}
}

func (s *DocumentService) CreateDocument(ctx context.Context, p domain.Principal, projectID int64, in ports.CreateDocumentInput) (*domain.Document, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	members, err := s.members.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !policy.CanReadProject(p, project, members) {
		return nil, domain.ErrForbidden
	}

	doc, err := s.documents.Insert(ctx, &domain.Document{
		ProjectID:    projectID,
		Name:         in.Name,
		Type:         in.Type,
		URL:          in.URL,
		UploadedByID: p.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}

	s.logger.Info().Int64("document_id", doc.ID).Int64("project_id", projectID).Int64("user_id", p.ID).Msg("document created")
	return doc, nil
}

func (s *DocumentService) ListDocuments(ctx context.Context, p domain.Principal, projectID int64) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	members, err := s.members.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !policy.CanReadProject(p, project, members) {
		return nil, domain.ErrForbidden
	}
	return s.documents.ListByProject(ctx, projectID)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, p domain.Principal, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.documents.FindByID(ctx, id)
	if err != nil {
		return err
	}
	project, err := s.projects.FindByID(ctx, doc.ProjectID)
	if err != nil {
		return err
	}
	if !policy.CanDeleteDocument(p, project, doc) {
		return domain.ErrForbidden
	}

	if _, err := s.documents.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}

	s.logger.Info().Int64("document_id", id).Int64("user_id", p.ID).Msg("document deleted")
	return nil
}
