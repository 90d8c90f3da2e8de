package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/argomobile/studio-api/internal/core/domain"
	"github.com/argomobile/studio-api/internal/core/ports"
	"github.com/argomobile/studio-api/internal/infrastructure/db/memstore"
)

// captureNotifier records published notifications without delivering them.
type captureNotifier struct {
	published []ports.NotificationInput
}

func (n *captureNotifier) Publish(in ports.NotificationInput) {
	n.published = append(n.published, in)
}

// env wires every service against one isolated in-memory store, the way
// cmd/api does in production.
type env struct {
	store         *memstore.Store
	notifier      *captureNotifier
	projects      *ProjectService
	tasks         *TaskService
	comments      *CommentService
	notifications *NotificationService
	users         *UserService
	documents     *DocumentService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := memstore.New()
	mu := &sync.RWMutex{}
	notifier := &captureNotifier{}
	log := zerolog.Nop()

	return &env{
		store:    store,
		notifier: notifier,
		projects: NewProjectService(mu, store.Projects, store.Members, store.Users,
			store.Tasks, store.Comments, store.Documents, notifier, log),
		tasks:         NewTaskService(mu, store.Tasks, store.Projects, store.Members, notifier, log),
		comments:      NewCommentService(mu, store.Comments, store.Tasks, store.Projects, store.Members, store.Users, notifier, log),
		notifications: NewNotificationService(mu, store.Notifications, log),
		users:         NewUserService(mu, store.Users, log),
		documents:     NewDocumentService(mu, store.Documents, store.Projects, store.Members, log),
	}
}

// seedUser inserts a user directly into the store and returns its
// principal.
func (e *env) seedUser(t *testing.T, username, role string) domain.Principal {
	t.Helper()
	u, err := e.store.Users.Insert(context.Background(), &domain.User{
		Username: username,
		Name:     username,
		Email:    username + "@studio.dev",
		Role:     role,
	})
	if err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return domain.Principal{ID: u.ID, Role: u.Role}
}

// seedProject creates a project owned by owner through the service, so the
// implicit membership row is present.
func (e *env) seedProject(t *testing.T, owner domain.Principal, name string) *domain.Project {
	t.Helper()
	p, err := e.projects.CreateProject(context.Background(), owner, validProjectInput(name))
	if err != nil {
		t.Fatalf("seed project %s: %v", name, err)
	}
	return p
}

func validProjectInput(name string) ports.CreateProjectInput {
	return ports.CreateProjectInput{
		Name:        name,
		Description: "a game in development",
		Status:      string(domain.ProjectInProgress),
		StartDate:   time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Platform:    domain.PlatformBoth,
		Genre:       "rpg",
	}
}

func validTaskInput(title string) ports.CreateTaskInput {
	return ports.CreateTaskInput{
		Title:       title,
		Description: "a task that needs doing soon",
		Status:      string(domain.TaskPending),
		Priority:    string(domain.PriorityMedium),
	}
}
