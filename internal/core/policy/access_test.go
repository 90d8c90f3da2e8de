package policy

import (
	"testing"

	"github.com/argomobile/studio-api/internal/core/domain"
)

var (
	admin    = domain.Principal{ID: 1, Role: domain.RoleAdmin}
	owner    = domain.Principal{ID: 2, Role: domain.RoleProgrammer}
	member   = domain.Principal{ID: 3, Role: domain.RoleDesigner}
	stranger = domain.Principal{ID: 4, Role: domain.RoleProgrammer}
)

func fixtureProject() *domain.Project {
	return &domain.Project{ID: 10, Name: "Nebula Run", CreatedByID: owner.ID}
}

func fixtureMembers() []domain.ProjectMember {
	return []domain.ProjectMember{
		{ID: 1, ProjectID: 10, UserID: owner.ID, Role: domain.RoleInProjectManager},
		{ID: 2, ProjectID: 10, UserID: member.ID, Role: domain.RoleInProjectDesigner},
	}
}

func TestCanReadProject(t *testing.T) {
	project := fixtureProject()
	members := fixtureMembers()

	cases := []struct {
		name string
		p    domain.Principal
		want bool
	}{
		{"admin", admin, true},
		{"owner", owner, true},
		{"member", member, true},
		{"stranger", stranger, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanReadProject(tc.p, project, members); got != tc.want {
				t.Fatalf("CanReadProject(%s) = %v, want %v", tc.name, got, tc.want)
			}
		})
	}
}

func TestCanWriteProject_MembershipNotSufficient(t *testing.T) {
	project := fixtureProject()

	if !CanWriteProject(admin, project) {
		t.Fatal("admin should be able to write any project")
	}
	if !CanWriteProject(owner, project) {
		t.Fatal("owner should be able to write their project")
	}
	if CanWriteProject(member, project) {
		t.Fatal("plain member must not be able to write the project")
	}
	if CanManageMembers(member, project) {
		t.Fatal("plain member must not be able to manage members")
	}
}

func TestCanRemoveMember_CreatorProtected(t *testing.T) {
	project := fixtureProject()

	// The rule is independent of the caller: even an admin can never remove
	// the creator's membership row.
	if CanRemoveMember(project, project.CreatedByID) {
		t.Fatal("creator removal must always be denied")
	}
	if !CanRemoveMember(project, member.ID) {
		t.Fatal("removing a regular member must be allowed by the hard rule")
	}
}

func TestCanWriteTask(t *testing.T) {
	project := fixtureProject()
	assignee := int64(7)
	task := &domain.Task{ID: 1, ProjectID: 10, CreatedByID: member.ID, AssignedToID: &assignee}

	cases := []struct {
		name string
		p    domain.Principal
		want bool
	}{
		{"admin", admin, true},
		{"project owner", owner, true},
		{"task creator", member, true},
		{"assignee", domain.Principal{ID: assignee, Role: domain.RoleProgrammer}, true},
		{"stranger", stranger, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanWriteTask(tc.p, project, task); got != tc.want {
				t.Fatalf("CanWriteTask(%s) = %v, want %v", tc.name, got, tc.want)
			}
		})
	}
}

func TestCanDeleteTask_AssigneeExcluded(t *testing.T) {
	project := fixtureProject()
	assignee := int64(7)
	task := &domain.Task{ID: 1, ProjectID: 10, CreatedByID: member.ID, AssignedToID: &assignee}

	if CanDeleteTask(domain.Principal{ID: assignee, Role: domain.RoleProgrammer}, project, task) {
		t.Fatal("assignee alone must not be able to delete a task")
	}
	if !CanDeleteTask(member, project, task) {
		t.Fatal("task creator should be able to delete their task")
	}
}

func TestCanWriteTask_NilAssignee(t *testing.T) {
	project := fixtureProject()
	task := &domain.Task{ID: 1, ProjectID: 10, CreatedByID: member.ID}

	if CanWriteTask(stranger, project, task) {
		t.Fatal("stranger must not pass the assignee branch when assignee is unset")
	}
}

func TestCanDeleteDocument(t *testing.T) {
	project := fixtureProject()
	doc := &domain.Document{ID: 1, ProjectID: 10, UploadedByID: member.ID}

	if !CanDeleteDocument(member, project, doc) {
		t.Fatal("uploader should be able to delete their document")
	}
	if CanDeleteDocument(stranger, project, doc) {
		t.Fatal("stranger must not delete another user's document")
	}
}
