package ports

import (
	"context"
	"time"

	"github.com/argomobile/studio-api/internal/core/domain"
)

// ProjectPatch is a partial update for a project. Nil fields are left
// untouched (shallow merge).
type ProjectPatch struct {
	Name        *string
	Description *string
	Status      *string
	StartDate   *time.Time
	EndDate     *time.Time
	Thumbnail   *string
	Platform    *string
	Genre       *string
}

// ProjectRepository defines persistence operations for projects. The
// repository knows nothing about members or tasks; cross-entity rules live
// in the services.
type ProjectRepository interface {
	Insert(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id int64) (*domain.Project, error)
	Update(ctx context.Context, id int64, patch ProjectPatch) (*domain.Project, error)
	// Delete reports whether a record was removed; deleting a missing id is
	// not an error.
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]domain.Project, error)
}

// MemberRepository defines persistence operations for project membership
// rows. Uniqueness of (project, user) is a service invariant, not a store
// one.
type MemberRepository interface {
	Insert(ctx context.Context, m *domain.ProjectMember) (*domain.ProjectMember, error)
	FindByProjectAndUser(ctx context.Context, projectID, userID int64) (*domain.ProjectMember, error)
	ListByProject(ctx context.Context, projectID int64) ([]domain.ProjectMember, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.ProjectMember, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
