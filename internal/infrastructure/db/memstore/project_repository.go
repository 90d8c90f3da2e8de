package memstore

import (
	"context"

	"github.com/argomobile/studio-api/internal/core/domain"
	"github.com/argomobile/studio-api/internal/core/ports"
)

type ProjectRepository struct {
	t *table[domain.Project]
}

func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{t: newTable[domain.Project]()}
}

func (r *ProjectRepository) Insert(_ context.Context, p *domain.Project) (*domain.Project, error) {
	rec := r.t.insert(*p, func(p domain.Project, id int64) domain.Project {
		p.ID = id
		return p
	})
	return &rec, nil
}

func (r *ProjectRepository) FindByID(_ context.Context, id int64) (*domain.Project, error) {
	rec, ok := r.t.get(id)
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	return &rec, nil
}

func (r *ProjectRepository) Update(_ context.Context, id int64, patch ports.ProjectPatch) (*domain.Project, error) {
	rec, ok := r.t.update(id, func(p domain.Project) domain.Project {
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Status != nil {
			p.Status = domain.ProjectStatus(*patch.Status)
		}
		if patch.StartDate != nil {
			p.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			p.EndDate = patch.EndDate
		}
		if patch.Thumbnail != nil {
			p.Thumbnail = patch.Thumbnail
		}
		if patch.Platform != nil {
			p.Platform = *patch.Platform
		}
		if patch.Genre != nil {
			p.Genre = *patch.Genre
		}
		return p
	})
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	return &rec, nil
}

func (r *ProjectRepository) Delete(_ context.Context, id int64) (bool, error) {
	return r.t.delete(id), nil
}

func (r *ProjectRepository) List(_ context.Context) ([]domain.Project, error) {
	return r.t.list(), nil
}

type MemberRepository struct {
	t *table[domain.ProjectMember]
}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{t: newTable[domain.ProjectMember]()}
}

func (r *MemberRepository) Insert(_ context.Context, m *domain.ProjectMember) (*domain.ProjectMember, error) {
	rec := r.t.insert(*m, func(m domain.ProjectMember, id int64) domain.ProjectMember {
		m.ID = id
		return m
	})
	return &rec, nil
}

func (r *MemberRepository) FindByProjectAndUser(_ context.Context, projectID, userID int64) (*domain.ProjectMember, error) {
	rec, ok := r.t.find(func(m domain.ProjectMember) bool {
		return m.ProjectID == projectID && m.UserID == userID
	})
	if !ok {
		return nil, domain.ErrMemberNotFound
	}
	return &rec, nil
}

func (r *MemberRepository) ListByProject(_ context.Context, projectID int64) ([]domain.ProjectMember, error) {
	return r.t.filter(func(m domain.ProjectMember) bool { return m.ProjectID == projectID }), nil
}

func (r *MemberRepository) ListByUser(_ context.Context, userID int64) ([]domain.ProjectMember, error) {
	return r.t.filter(func(m domain.ProjectMember) bool { return m.UserID == userID }), nil
}

func (r *MemberRepository) Delete(_ context.Context, id int64) (bool, error) {
	return r.t.delete(id), nil
}
