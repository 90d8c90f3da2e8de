package ports

import (
	"context"
	"time"

	"github.com/argomobile/studio-api/internal/core/domain"
)

// CreateProjectInput carries all data needed to create a project. The
// caller becomes the owner; CreatedByID is never taken from input.
type CreateProjectInput struct {
	Name        string     `validate:"required"`
	Description string     `validate:"required"`
	Status      string     `validate:"required,oneof=in_progress completed paused"`
	StartDate   time.Time  `validate:"required"`
	EndDate     *time.Time `validate:"-"`
	Thumbnail   *string    `validate:"-"`
	Platform    string     `validate:"required,oneof=ios android both"`
	Genre       string     `validate:"required"`
}

// UpdateProjectInput is the validated form of a project patch.
type UpdateProjectInput struct {
	Name        *string    `validate:"omitempty,min=1"`
	Description *string    `validate:"omitempty,min=1"`
	Status      *string    `validate:"omitempty,oneof=in_progress completed paused"`
	StartDate   *time.Time `validate:"-"`
	EndDate     *time.Time `validate:"-"`
	Thumbnail   *string    `validate:"-"`
	Platform    *string    `validate:"omitempty,oneof=ios android both"`
	Genre       *string    `validate:"omitempty,min=1"`
}

// MemberWithUser is a membership row joined with the member's public
// profile. User is nil when the referenced account no longer exists.
type MemberWithUser struct {
	ID        int64               `json:"id"`
	ProjectID int64               `json:"project_id"`
	UserID    int64               `json:"user_id"`
	Role      string              `json:"role"`
	User      *domain.UserProfile `json:"user"`
}

// ProjectService defines use-case operations for projects and membership.
type ProjectService interface {
	CreateProject(ctx context.Context, p domain.Principal, in CreateProjectInput) (*domain.Project, error)
	GetProject(ctx context.Context, p domain.Principal, id int64) (*domain.Project, error)
	UpdateProject(ctx context.Context, p domain.Principal, id int64, in UpdateProjectInput) (*domain.Project, error)
	// DeleteProject removes the project record. Member and task rows that
	// reference it are left orphaned unless cascade is set.
	DeleteProject(ctx context.Context, p domain.Principal, id int64, cascade bool) error
	// ListProjects returns every project for admins, and the union of owned
	// and member-of projects for everyone else.
	ListProjects(ctx context.Context, p domain.Principal) ([]domain.Project, error)

	AddMember(ctx context.Context, p domain.Principal, projectID, userID int64, role string) (*MemberWithUser, error)
	RemoveMember(ctx context.Context, p domain.Principal, projectID, userID int64) error
	ListMembers(ctx context.Context, p domain.Principal, projectID int64) ([]MemberWithUser, error)
}
