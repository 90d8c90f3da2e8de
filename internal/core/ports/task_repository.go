package ports

import (
	"context"
	"time"

	"github.com/argomobile/studio-api/internal/core/domain"
)

// TaskPatch is a partial update for a task. Nil fields are left untouched.
type TaskPatch struct {
	Title        *string
	Description  *string
	Status       *string
	Priority     *string
	DueDate      *time.Time
	AssignedToID *int64
}

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	Insert(ctx context.Context, t *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id int64) (*domain.Task, error)
	Update(ctx context.Context, id int64, patch TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ListByProject(ctx context.Context, projectID int64) ([]domain.Task, error)
	ListByAssignee(ctx context.Context, userID int64) ([]domain.Task, error)
}
