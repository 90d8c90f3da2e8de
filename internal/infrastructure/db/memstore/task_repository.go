package memstore

import (
	"context"

	"github.com/argomobile/studio-api/internal/core/domain"
	"github.com/argomobile/studio-api/internal/core/ports"
)

type TaskRepository struct {
	t *table[domain.Task]
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{t: newTable[domain.Task]()}
}

func (r *TaskRepository) Insert(_ context.Context, task *domain.Task) (*domain.Task, error) {
	rec := r.t.insert(*task, func(t domain.Task, id int64) domain.Task {
		t.ID = id
		return t
	})
	return &rec, nil
}

func (r *TaskRepository) FindByID(_ context.Context, id int64) (*domain.Task, error) {
	rec, ok := r.t.get(id)
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return &rec, nil
}

func (r *TaskRepository) Update(_ context.Context, id int64, patch ports.TaskPatch) (*domain.Task, error) {
	rec, ok := r.t.update(id, func(t domain.Task) domain.Task {
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.Status != nil {
			t.Status = domain.TaskStatus(*patch.Status)
		}
		if patch.Priority != nil {
			t.Priority = domain.TaskPriority(*patch.Priority)
		}
		if patch.DueDate != nil {
			t.DueDate = patch.DueDate
		}
		if patch.AssignedToID != nil {
			t.AssignedToID = patch.AssignedToID
		}
		return t
	})
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return &rec, nil
}

func (r *TaskRepository) Delete(_ context.Context, id int64) (bool, error) {
	return r.t.delete(id), nil
}

func (r *TaskRepository) ListByProject(_ context.Context, projectID int64) ([]domain.Task, error) {
	return r.t.filter(func(t domain.Task) bool { return t.ProjectID == projectID }), nil
}

func (r *TaskRepository) ListByAssignee(_ context.Context, userID int64) ([]domain.Task, error) {
	return r.t.filter(func(t domain.Task) bool {
		return t.AssignedToID != nil && *t.AssignedToID == userID
	}), nil
}
