package service

import (
	"context"
	"errors"
	"testing"

	"github.com/argomobile/studio-api/internal/core/domain"
	"github.com/argomobile/studio-api/internal/core/ports"
)

func TestCreateProject_InsertsCreatorMembership(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.seedUser(t, "ana", domain.RoleProgrammer)

	project, err := e.projects.CreateProject(ctx, owner, validProjectInput("Nebula Run"))
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if project.CreatedByID != owner.ID {
		t.Fatalf("CreatedByID = %d, want %d", project.CreatedByID, owner.ID)
	}

	member, err := e.store.Members.FindByProjectAndUser(ctx, project.ID, owner.ID)
	if err != nil {
		t.Fatalf("creator membership row missing: %v", err)
	}
	if member.Role != domain.RoleInProjectManager {
		t.Fatalf("creator role = %s, want manager", member.Role)
	}
}

func TestCreateProject_Validation(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.seedUser(t, "ana", domain.RoleProgrammer)

	in := validProjectInput("Nebula Run")
	in.Status = "shipped" // not in the enumeration
	if _, err := e.projects.CreateProject(ctx, owner, in); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	in = validProjectInput("")
	if _, err := e.projects.CreateProject(ctx, owner, in); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for empty name, got %v", err)
	}
}

func TestGetProject_ExistenceBeforeAuthorization(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.seedUser(t, "ana", domain.RoleProgrammer)
	stranger := e.seedUser(t, "zoe", domain.RoleDesigner)
	project := e.seedProject(t, owner, "Nebula Run")

	if _, err := e.projects.GetProject(ctx, stranger, 9999); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("missing id: expected ErrProjectNotFound, got %v", err)
	}
	if _, err := e.projects.GetProject(ctx, stranger, project.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("non-member: expected ErrForbidden, got %v", err)
	}
	if _, err := e.projects.GetProject(ctx, owner, project.ID); err != nil {
		t.Fatalf("owner read failed: %v", err)
	}
}

func TestUpdateProject_MemberCannotWrite(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.seedUser(t, "ana", domain.RoleProgrammer)
	member := e.seedUser(t, "bruno", domain.RoleDesigner)
	project := e.seedProject(t, owner, "Nebula Run")

	if _, err := e.projects.AddMember(ctx, owner, project.ID, member.ID, domain.RoleInProjectDesigner); err != nil {
		t.Fatalf("AddMember: %v", err)
	}

	// The member can read but not write.
	if _, err := e.projects.GetProject(ctx, member, project.ID); err != nil {
		t.Fatalf("member read failed: %v", err)
	}
	status := string(domain.ProjectPaused)
	if _, err := e.projects.UpdateProject(ctx, member, project.ID, ports.UpdateProjectInput{Status: &status}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("member write: expected ErrForbidden, got %v", err)
	}
	if err := e.projects.DeleteProject(ctx, member, project.ID, false); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("member delete: expected ErrForbidden, got %v", err)
	}
	if _, err := e.projects.AddMember(ctx, member, project.ID, owner.ID, domain.RoleInProjectDesigner); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("member addMember: expected ErrForbidden, got %v", err)
	}
	if err := e.projects.RemoveMember(ctx, member, project.ID, member.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("member removeMember: expected ErrForbidden, got %v", err)
	}
}

func TestUpdateProject_StatusUnconstrained(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.seedUser(t, "ana", domain.RoleProgrammer)
	project := e.seedProject(t, owner, "Nebula Run")

	// Any enum value may follow any other; there is no transition graph.
	for _, status := range []string{"completed", "in_progress", "paused", "in_progress"} {
		updated, err := e.projects.UpdateProject(ctx, owner, project.ID, ports.UpdateProjectInput{Status: &status})
		if err != nil {
			t.Fatalf("status %s: %v", status, err)
		}
		if string(updated.Status) != status {
			t.Fatalf("status = %s, want %s", updated.Status, status)
		}
	}
}

func TestListProjects_ReadScoping(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	admin := e.seedUser(t, "root", domain.RoleAdmin)
	ana := e.seedUser(t, "ana", domain.RoleProgrammer)
	bruno := e.seedUser(t, "bruno", domain.RoleDesigner)

	owned := e.seedProject(t, ana, "Owned by Ana")
	other := e.seedProject(t, bruno, "Owned by Bruno")
	shared := e.seedProject(t, bruno, "Shared")
	if _, err := e.projects.AddMember(ctx, bruno, shared.ID, ana.ID, domain.RoleInProjectProgrammer); err != nil {
		t.Fatalf("AddMember: %v", err)
	}

	got, err := e.projects.ListProjects(ctx, ana)
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	ids := map[int64]bool{}
	for _, p := range got {
		ids[p.ID] = true
	}
	if len(got) != 2 || !ids[owned.ID] || !ids[shared.ID] {
		t.Fatalf("ana sees %v, want exactly {%d, %d}", ids, owned.ID, shared.ID)
	}
	if ids[other.ID] {
		t.Fatal("ana must not see Bruno's private project")
	}

	all, err := e.projects.ListProjects(ctx, admin)
	if err != nil {
		t.Fatalf("ListProjects(admin): %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("admin sees %d projects, want 3", len(all))
	}
}

func TestDeleteProject_SecondCallNotFound(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.seedUser(t, "ana", domain.RoleProgrammer)
	project := e.seedProject(t, owner, "Nebula Run")

	if err := e.projects.DeleteProject(ctx, owner, project.ID, false); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := e.projects.DeleteProject(ctx, owner, project.ID, false); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("second delete: expected ErrProjectNotFound, got %v", err)
	}
}

func TestDeleteProject_OrphanByDefaultCascadeOnRequest(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.seedUser(t, "ana", domain.RoleProgrammer)
	project := e.seedProject(t, owner, "Nebula Run")
	if _, err := e.tasks.CreateTask(ctx, owner, project.ID, validTaskInput("Build level 1")); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	if err := e.projects.DeleteProject(ctx, owner, project.ID, false); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}
	// Orphan-and-ignore: the task row survives the project.
	orphans, _ := e.store.Tasks.ListByProject(ctx, project.ID)
	if len(orphans) != 1 {
		t.Fatalf("expected 1 orphaned task, got %d", len(orphans))
	}

	// With cascade, referencing rows go too.
	second := e.seedProject(t, owner, "Second")
	if _, err := e.tasks.CreateTask(ctx, owner, second.ID, validTaskInput("Build level 2")); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if err := e.projects.DeleteProject(ctx, owner, second.ID, true); err != nil {
		t.Fatalf("DeleteProject(cascade): %v", err)
	}
	leftTasks, _ := e.store.Tasks.ListByProject(ctx, second.ID)
	leftMembers, _ := e.store.Members.ListByProject(ctx, second.ID)
	if len(leftTasks) != 0 || len(leftMembers) != 0 {
		t.Fatalf("cascade left %d tasks, %d members", len(leftTasks), len(leftMembers))
	}
}

func TestRemoveMember_CreatorProtectedEvenFromAdmin(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	admin := e.seedUser(t, "root", domain.RoleAdmin)
	owner := e.seedUser(t, "ana", domain.RoleProgrammer)
	project := e.seedProject(t, owner, "Nebula Run")

	if err := e.projects.RemoveMember(ctx, admin, project.ID, owner.ID); !errors.Is(err, domain.ErrCreatorRemoval) {
		t.Fatalf("admin removing creator: expected ErrCreatorRemoval, got %v", err)
	}
	if err := e.projects.RemoveMember(ctx, owner, project.ID, owner.ID); !errors.Is(err, domain.ErrCreatorRemoval) {
		t.Fatalf("owner removing self: expected ErrCreatorRemoval, got %v", err)
	}
}

func TestAddMember_DuplicateAndMissing(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.seedUser(t, "ana", domain.RoleProgrammer)
	bruno := e.seedUser(t, "bruno", domain.RoleDesigner)
	project := e.seedProject(t, owner, "Nebula Run")

	joined, err := e.projects.AddMember(ctx, owner, project.ID, bruno.ID, domain.RoleInProjectDesigner)
	if err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	if joined.User == nil || joined.User.Username != "bruno" {
		t.Fatalf("joined profile missing: %+v", joined)
	}

	if _, err := e.projects.AddMember(ctx, owner, project.ID, bruno.ID, domain.RoleInProjectProgrammer); !errors.Is(err, domain.ErrDuplicateMember) {
		t.Fatalf("duplicate: expected ErrDuplicateMember, got %v", err)
	}
	if _, err := e.projects.AddMember(ctx, owner, project.ID, 9999, domain.RoleInProjectDesigner); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("missing user: expected ErrUserNotFound, got %v", err)
	}
	if _, err := e.projects.AddMember(ctx, owner, 9999, bruno.ID, domain.RoleInProjectDesigner); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("missing project: expected ErrProjectNotFound, got %v", err)
	}

	// The new member got a feed entry.
	found := false
	for _, n := range e.notifier.published {
		if n.UserID == bruno.ID {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a notification published for the new member")
	}
}

func TestRemoveMember_MissingRow(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.seedUser(t, "ana", domain.RoleProgrammer)
	bruno := e.seedUser(t, "bruno", domain.RoleDesigner)
	project := e.seedProject(t, owner, "Nebula Run")

	if err := e.projects.RemoveMember(ctx, owner, project.ID, bruno.ID); !errors.Is(err, domain.ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}
}

func TestListMembers_DanglingUserYieldsNilProfile(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.seedUser(t, "ana", domain.RoleProgrammer)
	project := e.seedProject(t, owner, "Nebula Run")

	// Membership row referencing an account that never existed, as left
	// behind by an out-of-band deletion.
	if _, err := e.store.Members.Insert(ctx, &domain.ProjectMember{ProjectID: project.ID, UserID: 404, Role: domain.RoleInProjectDesigner}); err != nil {
		t.Fatalf("Insert member: %v", err)
	}

	members, err := e.projects.ListMembers(ctx, owner, project.ID)
	if err != nil {
		t.Fatalf("ListMembers: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("got %d members, want 2", len(members))
	}
	for _, m := range members {
		if m.UserID == 404 && m.User != nil {
			t.Fatal("dangling reference must join as nil profile")
		}
		if m.UserID == owner.ID && m.User == nil {
			t.Fatal("live reference must join a profile")
		}
	}
}
