package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/argomobile/studio-api/internal/core/domain"
	"github.com/argomobile/studio-api/internal/core/ports"
)

type recordingNotifications struct {
	mu       sync.Mutex
	inserted []domain.Notification
}

func (r *recordingNotifications) Insert(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := *n
	rec.ID = int64(len(r.inserted) + 1)
	r.inserted = append(r.inserted, rec)
	return &rec, nil
}

func (r *recordingNotifications) FindByID(context.Context, int64) (*domain.Notification, error) {
	return nil, domain.ErrNotificationNotFound
}

func (r *recordingNotifications) ListByUser(_ context.Context, userID int64) ([]domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Notification
	for _, n := range r.inserted {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *recordingNotifications) MarkRead(context.Context, int64) (bool, error) { return false, nil }
func (r *recordingNotifications) Delete(context.Context, int64) (bool, error)  { return false, nil }

func (r *recordingNotifications) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.inserted)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within deadline")
}

func TestDispatcher_DeliversToStore(t *testing.T) {
	repo := &recordingNotifications{}
	d := NewDispatcher(2, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Publish(ports.NotificationInput{UserID: 1, Title: "Added to project", Message: "You joined Nebula Racer"})
	d.Publish(ports.NotificationInput{UserID: 2, Title: "Task assigned", Message: "Design the HUD"})

	waitFor(t, func() bool { return repo.count() == 2 })
}

func TestDispatcher_PerUserOrdering(t *testing.T) {
	repo := &recordingNotifications{}
	d := NewDispatcher(4, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	const n = 20
	for i := 0; i < n; i++ {
		d.Publish(ports.NotificationInput{UserID: 7, Title: "t", Message: string(rune('a' + i))})
	}

	waitFor(t, func() bool { return repo.count() == n })

	feed, err := repo.ListByUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i, got := range feed {
		if got.Message != string(rune('a'+i)) {
			t.Fatalf("feed out of order at %d: %q", i, got.Message)
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &recordingNotifications{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}

func TestDispatcher_StableSharding(t *testing.T) {
	d := NewDispatcher(4, &recordingNotifications{}, zerolog.Nop())
	first := d.shardIndex(42)
	for i := 0; i < 100; i++ {
		if d.shardIndex(42) != first {
			t.Fatalf("shard index not deterministic")
		}
	}
}
