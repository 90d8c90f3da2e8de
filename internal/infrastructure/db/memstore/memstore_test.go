package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/argomobile/studio-api/internal/core/domain"
	"github.com/argomobile/studio-api/internal/core/ports"
)

func TestIDsMonotonicAcrossDeletes(t *testing.T) {
	repo := NewProjectRepository()
	ctx := context.Background()

	var ids []int64
	for i := 0; i < 3; i++ {
		p, err := repo.Insert(ctx, &domain.Project{Name: "p", CreatedByID: 1})
		if err != nil {
			t.Fatalf("Insert: %v", err)
		}
		ids = append(ids, p.ID)
	}

	// Delete everything; the counter must not rewind.
	for _, id := range ids {
		if ok, _ := repo.Delete(ctx, id); !ok {
			t.Fatalf("Delete(%d) = false", id)
		}
	}

	p, err := repo.Insert(ctx, &domain.Project{Name: "p", CreatedByID: 1})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if p.ID <= ids[len(ids)-1] {
		t.Fatalf("id %d reused after delete (last was %d)", p.ID, ids[len(ids)-1])
	}
	for i := 1; i < len(ids); i++ {
		if ids[i] <= ids[i-1] {
			t.Fatalf("ids not strictly increasing: %v", ids)
		}
	}
}

func TestDeleteIdempotent(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()

	task, _ := repo.Insert(ctx, &domain.Task{ProjectID: 1, Title: "t", CreatedByID: 1})
	if ok, _ := repo.Delete(ctx, task.ID); !ok {
		t.Fatal("first delete should report true")
	}
	if ok, _ := repo.Delete(ctx, task.ID); ok {
		t.Fatal("second delete should report false")
	}
}

func TestUpdateShallowMerge(t *testing.T) {
	repo := NewProjectRepository()
	ctx := context.Background()

	p, _ := repo.Insert(ctx, &domain.Project{
		Name:        "Nebula Run",
		Description: "endless runner",
		Status:      domain.ProjectInProgress,
		Platform:    domain.PlatformIOS,
		Genre:       "racing",
		CreatedByID: 1,
	})

	status := string(domain.ProjectPaused)
	updated, err := repo.Update(ctx, p.ID, ports.ProjectPatch{Status: &status})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != domain.ProjectPaused {
		t.Fatalf("status not merged: %s", updated.Status)
	}
	if updated.Name != "Nebula Run" || updated.Genre != "racing" {
		t.Fatal("untouched fields must survive the merge")
	}

	if _, err := repo.Update(ctx, 9999, ports.ProjectPatch{Status: &status}); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestReturnedRecordsAreSnapshots(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	u, _ := repo.Insert(ctx, &domain.User{Username: "ana", Name: "Ana", Email: "ana@studio.dev", Role: domain.RoleDesigner})
	u.Name = "mutated"

	stored, err := repo.FindByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if stored.Name != "Ana" {
		t.Fatal("mutating a returned record must not affect the store")
	}
}

func TestUserSecondaryLookups(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	_, _ = repo.Insert(ctx, &domain.User{Username: "ana", Email: "ana@studio.dev", Role: domain.RoleDesigner})
	_, _ = repo.Insert(ctx, &domain.User{Username: "bruno", Email: "bruno@studio.dev", Role: domain.RoleProgrammer})

	if u, err := repo.FindByUsername(ctx, "bruno"); err != nil || u.Email != "bruno@studio.dev" {
		t.Fatalf("FindByUsername: %v %+v", err, u)
	}
	if u, err := repo.FindByEmail(ctx, "ana@studio.dev"); err != nil || u.Username != "ana" {
		t.Fatalf("FindByEmail: %v %+v", err, u)
	}
	if _, err := repo.FindByUsername(ctx, "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	designers, _ := repo.ListByRole(ctx, domain.RoleDesigner)
	if len(designers) != 1 || designers[0].Username != "ana" {
		t.Fatalf("ListByRole: %+v", designers)
	}
}

func TestCommentOrderingAscending(t *testing.T) {
	repo := NewCommentRepository()
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	// Insert out of chronological order on purpose.
	_, _ = repo.Insert(ctx, &domain.Comment{TaskID: 1, Content: "second", UserID: 1, CreatedAt: base.Add(time.Minute)})
	_, _ = repo.Insert(ctx, &domain.Comment{TaskID: 1, Content: "third", UserID: 1, CreatedAt: base.Add(2 * time.Minute)})
	_, _ = repo.Insert(ctx, &domain.Comment{TaskID: 1, Content: "first", UserID: 1, CreatedAt: base})

	got, _ := repo.ListByTask(ctx, 1)
	want := []string{"first", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("got %d comments, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Content != want[i] {
			t.Fatalf("position %d: got %q, want %q", i, got[i].Content, want[i])
		}
	}
}

func TestNotificationOrderingDescendingAndMarkRead(t *testing.T) {
	repo := NewNotificationRepository()
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	n1, _ := repo.Insert(ctx, &domain.Notification{UserID: 7, Title: "N1", CreatedAt: base})
	_, _ = repo.Insert(ctx, &domain.Notification{UserID: 7, Title: "N2", CreatedAt: base.Add(time.Minute)})
	_, _ = repo.Insert(ctx, &domain.Notification{UserID: 7, Title: "N3", CreatedAt: base.Add(2 * time.Minute)})
	_, _ = repo.Insert(ctx, &domain.Notification{UserID: 8, Title: "other user", CreatedAt: base})

	got, _ := repo.ListByUser(ctx, 7)
	want := []string{"N3", "N2", "N1"}
	if len(got) != len(want) {
		t.Fatalf("got %d notifications, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Title != want[i] {
			t.Fatalf("position %d: got %q, want %q", i, got[i].Title, want[i])
		}
	}

	if ok, _ := repo.MarkRead(ctx, n1.ID); !ok {
		t.Fatal("MarkRead on existing id should report true")
	}
	stored, _ := repo.FindByID(ctx, n1.ID)
	if !stored.Read {
		t.Fatal("read flag not persisted")
	}
	if ok, _ := repo.MarkRead(ctx, 9999); ok {
		t.Fatal("MarkRead on missing id should report false")
	}
}

func TestTaskAssigneeLookup(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()
	assignee := int64(5)

	_, _ = repo.Insert(ctx, &domain.Task{ProjectID: 1, Title: "mine", AssignedToID: &assignee, CreatedByID: 2})
	_, _ = repo.Insert(ctx, &domain.Task{ProjectID: 1, Title: "unassigned", CreatedByID: 2})

	got, _ := repo.ListByAssignee(ctx, assignee)
	if len(got) != 1 || got[0].Title != "mine" {
		t.Fatalf("ListByAssignee: %+v", got)
	}
}
