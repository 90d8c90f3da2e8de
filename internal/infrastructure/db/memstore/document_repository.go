package memstore

import (
	"context"

	"github.com/argomobile/studio-api/internal/core/domain"
)

type DocumentRepository struct {
	t *table[domain.Document]
}

func NewDocumentRepository() *DocumentRepository {
	return &DocumentRepository{t: newTable[domain.Document]()}
}

func (r *DocumentRepository) Insert(_ context.Context, d *domain.Document) (*domain.Document, error) {
	rec := r.t.insert(*d, func(d domain.Document, id int64) domain.Document {
		d.ID = id
		return d
	})
	return &rec, nil
}

func (r *DocumentRepository) FindByID(_ context.Context, id int64) (*domain.Document, error) {
	rec, ok := r.t.get(id)
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	return &rec, nil
}

func (r *DocumentRepository) ListByProject(_ context.Context, projectID int64) ([]domain.Document, error) {
	return r.t.filter(func(d domain.Document) bool { return d.ProjectID == projectID }), nil
}

func (r *DocumentRepository) Delete(_ context.Context, id int64) (bool, error) {
	return r.t.delete(id), nil
}
