package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/argomobile/studio-api/internal/core/domain"
	"github.com/argomobile/studio-api/internal/core/policy"
	"github.com/argomobile/studio-api/internal/core/ports"
)

// TaskService implements task use cases. The assignee-must-be-member rule
// is checked at write time only; removing the member afterwards leaves the
// assignment dangling, which readers must tolerate.
type TaskService struct {
	mu       *sync.RWMutex
	tasks    ports.TaskRepository
	projects ports.ProjectRepository
	members  ports.MemberRepository
	notifier ports.NotificationPublisher
	logger   zerolog.Logger
}

func NewTaskService(
	mu *sync.RWMutex,
	tasks ports.TaskRepository,
	projects ports.ProjectRepository,
	members ports.MemberRepository,
	notifier ports.NotificationPublisher,
	logger zerolog.Logger,
) *TaskService {
	return &TaskService{
		mu:       mu,
		tasks:    tasks,
		projects: projects,
		members:  members,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, p domain.Principal, projectID int64, in ports.CreateTaskInput) (*domain.Task, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	members, err := s.members.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !policy.CanCreateTask(p, project, members) {
		return nil, domain.ErrForbidden
	}

	if in.AssignedToID != nil && !memberOf(members, *in.AssignedToID) {
		return nil, fmt.Errorf("%w: assignee must be a member of the project", domain.ErrValidation)
	}

	task, err := s.tasks.Insert(ctx, &domain.Task{
		ProjectID:    projectID,
		Title:        in.Title,
		Description:  in.Description,
		Status:       domain.TaskStatus(in.Status),
		Priority:     domain.TaskPriority(in.Priority),
		DueDate:      in.DueDate,
		AssignedToID: in.AssignedToID,
		CreatedByID:  p.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	s.notifyAssignment(project, task, p)

	s.logger.Info().Int64("task_id", task.ID).Int64("project_id", projectID).Int64("user_id", p.ID).Msg("task created")
	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, p domain.Principal, id int64, in ports.UpdateTaskInput) (*domain.Task, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// A task whose project vanished surfaces as the missing parent, not a
	// crash.
	project, err := s.projects.FindByID(ctx, task.ProjectID)
	if err != nil {
		return nil, err
	}
	if !policy.CanWriteTask(p, project, task) {
		return nil, domain.ErrForbidden
	}

	reassigned := in.AssignedToID != nil &&
		(task.AssignedToID == nil || *in.AssignedToID != *task.AssignedToID)
	if reassigned {
		members, err := s.members.ListByProject(ctx, task.ProjectID)
		if err != nil {
			return nil, err
		}
		if !memberOf(members, *in.AssignedToID) {
			return nil, fmt.Errorf("%w: assignee must be a member of the project", domain.ErrValidation)
		}
	}

	updated, err := s.tasks.Update(ctx, id, ports.TaskPatch{
		Title:        in.Title,
		Description:  in.Description,
		Status:       in.Status,
		Priority:     in.Priority,
		DueDate:      in.DueDate,
		AssignedToID: in.AssignedToID,
	})
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	if reassigned {
		s.notifyAssignment(project, updated, p)
	}

	s.logger.Info().Int64("task_id", id).Int64("user_id", p.ID).Msg("task updated")
	return updated, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, p domain.Principal, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return err
	}
	project, err := s.projects.FindByID(ctx, task.ProjectID)
	if err != nil {
		return err
	}
	if !policy.CanDeleteTask(p, project, task) {
		return domain.ErrForbidden
	}

	if _, err := s.tasks.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	s.logger.Info().Int64("task_id", id).Int64("user_id", p.ID).Msg("task deleted")
	return nil
}

func (s *TaskService) ListTasksForProject(ctx context.Context, p domain.Principal, projectID int64) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	members, err := s.members.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !policy.CanReadProject(p, project, members) {
		return nil, domain.ErrForbidden
	}
	return s.tasks.ListByProject(ctx, projectID)
}

// ListTasksAssignedToMe returns the principal's assignments across all
// projects. Users always see their own assignments.
func (s *TaskService) ListTasksAssignedToMe(ctx context.Context, p domain.Principal) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tasks.ListByAssignee(ctx, p.ID)
}

// notifyAssignment tells the assignee about their new task, unless they
// assigned it to themselves.
func (s *TaskService) notifyAssignment(project *domain.Project, task *domain.Task, p domain.Principal) {
	if s.notifier == nil || task.AssignedToID == nil || *task.AssignedToID == p.ID {
		return
	}
	s.notifier.Publish(ports.NotificationInput{
		UserID:  *task.AssignedToID,
		Title:   "Task assigned",
		Message: fmt.Sprintf("You were assigned %q in %q", task.Title, project.Name),
	})
}

func memberOf(members []domain.ProjectMember, userID int64) bool {
	for _, m := range members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}
