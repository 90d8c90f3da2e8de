package domain

import "time"

// ProjectStatus represents the lifecycle state of a project. Any status may
// be set at any time; there is no enforced transition graph.
type ProjectStatus string

const (
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectPaused     ProjectStatus = "paused"
)

// Target platforms.
const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
	PlatformBoth    = "both"
)

// Project is a game in development. CreatedByID is a weak reference to the
// owning user; the owner's lifetime is independent of the project's.
type Project struct {
	ID          int64         `json:"id" bson:"_id"`
	Name        string        `json:"name" bson:"name"`
	Description string        `json:"description" bson:"description"`
	Status      ProjectStatus `json:"status" bson:"status"`
	StartDate   time.Time     `json:"start_date" bson:"start_date"`
	EndDate     *time.Time    `json:"end_date,omitempty" bson:"end_date,omitempty"`
	Thumbnail   *string       `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	Platform    string        `json:"platform" bson:"platform"`
	Genre       string        `json:"genre" bson:"genre"`
	CreatedByID int64         `json:"created_by_id" bson:"created_by_id"`
}

// ProjectMember roles within a project. The project creator is inserted with
// RoleInProjectManager at creation time.
const (
	RoleInProjectDesigner   = "designer"
	RoleInProjectProgrammer = "programmer"
	RoleInProjectManager    = "manager"
)

// ProjectMember links a user to a project with a project-scoped role. At
// most one row exists per (ProjectID, UserID) pair; the services enforce
// this, not the store.
type ProjectMember struct {
	ID        int64  `json:"id" bson:"_id"`
	ProjectID int64  `json:"project_id" bson:"project_id"`
	UserID    int64  `json:"user_id" bson:"user_id"`
	Role      string `json:"role" bson:"role"`
}
