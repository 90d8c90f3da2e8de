package domain

import "time"

// TaskStatus represents the lifecycle state of a task. As with projects,
// any status may be set by anyone holding write access; the dashboard is
// the only thing that cares about ordering.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

// TaskPriority represents how urgent a task is.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Task is a unit of work inside a project. AssignedToID, when set, must
// name a current member of ProjectID; the constraint is checked at write
// time only, so removing the member later leaves a dangling assignment.
type Task struct {
	ID           int64        `json:"id" bson:"_id"`
	ProjectID    int64        `json:"project_id" bson:"project_id"`
	Title        string       `json:"title" bson:"title"`
	Description  string       `json:"description" bson:"description"`
	Status       TaskStatus   `json:"status" bson:"status"`
	Priority     TaskPriority `json:"priority" bson:"priority"`
	DueDate      *time.Time   `json:"due_date,omitempty" bson:"due_date,omitempty"`
	AssignedToID *int64       `json:"assigned_to_id,omitempty" bson:"assigned_to_id,omitempty"`
	CreatedByID  int64        `json:"created_by_id" bson:"created_by_id"`
}
