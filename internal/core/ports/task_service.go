package ports

import (
	"context"
	"time"

	"github.com/argomobile/studio-api/internal/core/domain"
)

// CreateTaskInput carries all data needed to open a task in a project.
type CreateTaskInput struct {
	Title        string     `validate:"required,min=3"`
	Description  string     `validate:"required,min=10"`
	Status       string     `validate:"required,oneof=pending in_progress done"`
	Priority     string     `validate:"required,oneof=low medium high"`
	DueDate      *time.Time `validate:"-"`
	AssignedToID *int64     `validate:"-"`
}

// UpdateTaskInput is the validated form of a task patch.
type UpdateTaskInput struct {
	Title        *string    `validate:"omitempty,min=3"`
	Description  *string    `validate:"omitempty,min=10"`
	Status       *string    `validate:"omitempty,oneof=pending in_progress done"`
	Priority     *string    `validate:"omitempty,oneof=low medium high"`
	DueDate      *time.Time `validate:"-"`
	AssignedToID *int64     `validate:"-"`
}

// TaskService defines use-case operations for tasks.
type TaskService interface {
	CreateTask(ctx context.Context, p domain.Principal, projectID int64, in CreateTaskInput) (*domain.Task, error)
	UpdateTask(ctx context.Context, p domain.Principal, id int64, in UpdateTaskInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, p domain.Principal, id int64) error
	ListTasksForProject(ctx context.Context, p domain.Principal, projectID int64) ([]domain.Task, error)
	// ListTasksAssignedToMe returns the principal's assignments across all
	// projects. Being authenticated is the only requirement.
	ListTasksAssignedToMe(ctx context.Context, p domain.Principal) ([]domain.Task, error)
}
