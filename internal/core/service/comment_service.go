package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/argomobile/studio-api/internal/core/domain"
	"github.com/argomobile/studio-api/internal/core/policy"
	"github.com/argomobile/studio-api/internal/core/ports"
)

// CommentService implements the append-only discussion log on tasks.
type CommentService struct {
	mu       *sync.RWMutex
	comments ports.CommentRepository
	tasks    ports.TaskRepository
	projects ports.ProjectRepository
	members  ports.MemberRepository
	users    ports.UserRepository
	notifier ports.NotificationPublisher
	logger   zerolog.Logger
	now      func() time.Time
}

func NewCommentService(
	mu *sync.RWMutex,
	comments ports.CommentRepository,
	tasks ports.TaskRepository,
	projects ports.ProjectRepository,
	members ports.MemberRepository,
	users ports.UserRepository,
	notifier ports.NotificationPublisher,
	logger zerolog.Logger,
) *CommentService {
	return &CommentService{
		mu:       mu,
		comments: comments,
		tasks:    tasks,
		projects: projects,
		members:  members,
		users:    users,
		notifier: notifier,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *CommentService) AddComment(ctx context.Context, p domain.Principal, taskID int64, content string) (*ports.CommentWithAuthor, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task, project, members, err := s.resolveTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !policy.CanAccessTaskComments(p, project, members) {
		return nil, domain.ErrForbidden
	}

	comment, err := s.comments.Insert(ctx, &domain.Comment{
		TaskID:    taskID,
		Content:   content,
		UserID:    p.ID,
		CreatedAt: s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}

	s.notifyParticipants(task, project, p)

	joined := &ports.CommentWithAuthor{Comment: *comment}
	if author, err := s.users.FindByID(ctx, p.ID); err == nil {
		profile := author.AuthorProfile()
		joined.User = &profile
	}

	s.logger.Info().Int64("task_id", taskID).Int64("user_id", p.ID).Msg("comment added")
	return joined, nil
}

// ListComments returns the task's comments oldest first, each joined with
// its author's reduced profile. A deleted author yields a nil profile.
func (s *CommentService) ListComments(ctx context.Context, p domain.Principal, taskID int64) ([]ports.CommentWithAuthor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, project, members, err := s.resolveTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !policy.CanAccessTaskComments(p, project, members) {
		return nil, domain.ErrForbidden
	}

	comments, err := s.comments.ListByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	out := make([]ports.CommentWithAuthor, 0, len(comments))
	for _, c := range comments {
		joined := ports.CommentWithAuthor{Comment: c}
		if author, err := s.users.FindByID(ctx, c.UserID); err == nil {
			profile := author.AuthorProfile()
			joined.User = &profile
		}
		out = append(out, joined)
	}
	return out, nil
}

// resolveTask loads the task, its parent project, and the project's member
// rows in one step.
func (s *CommentService) resolveTask(ctx context.Context, taskID int64) (*domain.Task, *domain.Project, []domain.ProjectMember, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, nil, nil, err
	}
	project, err := s.projects.FindByID(ctx, task.ProjectID)
	if err != nil {
		return nil, nil, nil, err
	}
	members, err := s.members.ListByProject(ctx, task.ProjectID)
	if err != nil {
		return nil, nil, nil, err
	}
	return task, project, members, nil
}

// notifyParticipants tells the task creator and the assignee about a new
// comment, skipping the commenter themselves.
func (s *CommentService) notifyParticipants(task *domain.Task, project *domain.Project, p domain.Principal) {
	if s.notifier == nil {
		return
	}
	seen := map[int64]struct{}{p.ID: {}}
	recipients := []int64{task.CreatedByID}
	if task.AssignedToID != nil {
		recipients = append(recipients, *task.AssignedToID)
	}
	for _, userID := range recipients {
		if _, dup := seen[userID]; dup {
			continue
		}
		seen[userID] = struct{}{}
		s.notifier.Publish(ports.NotificationInput{
			UserID:  userID,
			Title:   "New comment",
			Message: fmt.Sprintf("New comment on %q in %q", task.Title, project.Name),
		})
	}
}
