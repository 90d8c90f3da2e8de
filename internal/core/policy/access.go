// Package policy holds the access-control rules for the dashboard as pure
// predicates over (principal, resource). Every predicate is total and
// side-effect free; services consult them before touching the store.
package policy

import "github.com/argomobile/studio-api/internal/core/domain"

// isMember reports whether userID has an explicit membership row in members.
func isMember(userID int64, members []domain.ProjectMember) bool {
	for _, m := range members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// CanReadProject allows admins, the project owner, and explicit members.
func CanReadProject(p domain.Principal, project *domain.Project, members []domain.ProjectMember) bool {
	return p.IsAdmin() || p.ID == project.CreatedByID || isMember(p.ID, members)
}

// CanWriteProject allows admins and the project owner. Plain membership is
// not sufficient to edit or delete a project.
func CanWriteProject(p domain.Principal, project *domain.Project) bool {
	return p.IsAdmin() || p.ID == project.CreatedByID
}

// CanManageMembers mirrors CanWriteProject: only admins and the owner may
// add or remove members.
func CanManageMembers(p domain.Principal, project *domain.Project) bool {
	return CanWriteProject(p, project)
}

// CanRemoveMember forbids removing the project creator's membership row, no
// matter who asks. Admins are not exempt.
func CanRemoveMember(project *domain.Project, targetUserID int64) bool {
	return targetUserID != project.CreatedByID
}

// CanCreateTask allows any reader of the project to open tasks in it.
func CanCreateTask(p domain.Principal, project *domain.Project, members []domain.ProjectMember) bool {
	return CanReadProject(p, project, members)
}

// CanWriteTask allows admins, the project owner, the task creator, and the
// current assignee to edit a task.
func CanWriteTask(p domain.Principal, project *domain.Project, task *domain.Task) bool {
	if p.IsAdmin() || p.ID == project.CreatedByID || p.ID == task.CreatedByID {
		return true
	}
	return task.AssignedToID != nil && *task.AssignedToID == p.ID
}

// CanDeleteTask allows admins, the project owner, and the task creator.
// The assignee alone may edit but not delete.
func CanDeleteTask(p domain.Principal, project *domain.Project, task *domain.Task) bool {
	return p.IsAdmin() || p.ID == project.CreatedByID || p.ID == task.CreatedByID
}

// CanAccessTaskComments follows project readability.
func CanAccessTaskComments(p domain.Principal, project *domain.Project, members []domain.ProjectMember) bool {
	return CanReadProject(p, project, members)
}

// CanDeleteDocument allows admins, the project owner, and the uploader.
func CanDeleteDocument(p domain.Principal, project *domain.Project, doc *domain.Document) bool {
	return p.IsAdmin() || p.ID == project.CreatedByID || p.ID == doc.UploadedByID
}
