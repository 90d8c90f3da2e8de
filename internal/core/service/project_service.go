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

// ProjectService implements project and membership use cases. All write
// operations hold mu exclusively across their whole check-then-act span, so
// invariants like "at most one membership row per (project, user)" cannot
// be raced past.
type ProjectService struct {
	mu        *sync.RWMutex
	projects  ports.ProjectRepository
	members   ports.MemberRepository
	users     ports.UserRepository
	tasks     ports.TaskRepository
	comments  ports.CommentRepository
	documents ports.DocumentRepository
	notifier  ports.NotificationPublisher
	logger    zerolog.Logger
}

func NewProjectService(
	mu *sync.RWMutex,
	projects ports.ProjectRepository,
	members ports.MemberRepository,
	users ports.UserRepository,
	tasks ports.TaskRepository,
	comments ports.CommentRepository,
	documents ports.DocumentRepository,
	notifier ports.NotificationPublisher,
	logger zerolog.Logger,
) *ProjectService {
	return &ProjectService{
		mu:        mu,
		projects:  projects,
		members:   members,
		users:     users,
		tasks:     tasks,
		comments:  comments,
		documents: documents,
		notifier:  notifier,
		logger:    logger,
	}
}

// CreateProject inserts the project and the creator's implicit manager
// membership row in one critical section.
func (s *ProjectService) CreateProject(ctx context.Context, p domain.Principal, in ports.CreateProjectInput) (*domain.Project, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// CreatedByID must reference an existing user at creation time.
	if _, err := s.users.FindByID(ctx, p.ID); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	project, err := s.projects.Insert(ctx, &domain.Project{
		Name:        in.Name,
		Description: in.Description,
		Status:      domain.ProjectStatus(in.Status),
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Thumbnail:   in.Thumbnail,
		Platform:    in.Platform,
		Genre:       in.Genre,
		CreatedByID: p.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	if _, err := s.members.Insert(ctx, &domain.ProjectMember{
		ProjectID: project.ID,
		UserID:    p.ID,
		Role:      domain.RoleInProjectManager,
	}); err != nil {
		return nil, fmt.Errorf("create project: creator membership: %w", err)
	}

	s.logger.Info().Int64("project_id", project.ID).Int64("user_id", p.ID).Msg("project created")
	return project, nil
}

func (s *ProjectService) GetProject(ctx context.Context, p domain.Principal, id int64) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	members, err := s.members.ListByProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanReadProject(p, project, members) {
		return nil, domain.ErrForbidden
	}
	return project, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, p domain.Principal, id int64, in ports.UpdateProjectInput) (*domain.Project, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanWriteProject(p, project) {
		return nil, domain.ErrForbidden
	}

	updated, err := s.projects.Update(ctx, id, ports.ProjectPatch{
		Name:        in.Name,
		Description: in.Description,
		Status:      in.Status,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Thumbnail:   in.Thumbnail,
		Platform:    in.Platform,
		Genre:       in.Genre,
	})
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	s.logger.Info().Int64("project_id", id).Int64("user_id", p.ID).Msg("project updated")
	return updated, nil
}

// DeleteProject removes the project record. Rows referencing it are left
// orphaned unless cascade is set, matching the dashboard's historical
// behavior; cascade also removes members, tasks, task comments, and
// documents.
func (s *ProjectService) DeleteProject(ctx context.Context, p domain.Principal, id int64, cascade bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanWriteProject(p, project) {
		return domain.ErrForbidden
	}

	if cascade {
		if err := s.cascadeDelete(ctx, id); err != nil {
			return fmt.Errorf("delete project: cascade: %w", err)
		}
	}

	if _, err := s.projects.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	s.logger.Info().Int64("project_id", id).Int64("user_id", p.ID).Bool("cascade", cascade).Msg("project deleted")
	return nil
}

func (s *ProjectService) cascadeDelete(ctx context.Context, projectID int64) error {
	members, err := s.members.ListByProject(ctx, projectID)
	if err != nil {
		return err
	}
	for _, m := range members {
		if _, err := s.members.Delete(ctx, m.ID); err != nil {
			return err
		}
	}

	tasks, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return err
	}
	for _, t := range tasks {
		comments, err := s.comments.ListByTask(ctx, t.ID)
		if err != nil {
			return err
		}
		for _, c := range comments {
			if _, err := s.comments.Delete(ctx, c.ID); err != nil {
				return err
			}
		}
		if _, err := s.tasks.Delete(ctx, t.ID); err != nil {
			return err
		}
	}

	docs, err := s.documents.ListByProject(ctx, projectID)
	if err != nil {
		return err
	}
	for _, d := range docs {
		if _, err := s.documents.Delete(ctx, d.ID); err != nil {
			return err
		}
	}
	return nil
}

// ListProjects returns every project for admins; for everyone else, the
// union of projects they created and projects they hold a membership row
// in, each project exactly once.
func (s *ProjectService) ListProjects(ctx context.Context, p domain.Principal) ([]domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	if p.IsAdmin() {
		return all, nil
	}

	memberships, err := s.members.ListByUser(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	memberOf := make(map[int64]struct{}, len(memberships))
	for _, m := range memberships {
		memberOf[m.ProjectID] = struct{}{}
	}

	visible := make([]domain.Project, 0)
	for _, project := range all {
		if project.CreatedByID == p.ID {
			visible = append(visible, project)
			continue
		}
		if _, ok := memberOf[project.ID]; ok {
			visible = append(visible, project)
		}
	}
	return visible, nil
}

func (s *ProjectService) AddMember(ctx context.Context, p domain.Principal, projectID, userID int64, role string) (*ports.MemberWithUser, error) {
	switch role {
	case domain.RoleInProjectDesigner, domain.RoleInProjectProgrammer, domain.RoleInProjectManager:
	default:
		return nil, fmt.Errorf("%w: role must be one of: designer programmer manager", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !policy.CanManageMembers(p, project) {
		return nil, domain.ErrForbidden
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, err := s.members.FindByProjectAndUser(ctx, projectID, userID); err == nil {
		return nil, domain.ErrDuplicateMember
	}

	member, err := s.members.Insert(ctx, &domain.ProjectMember{
		ProjectID: projectID,
		UserID:    userID,
		Role:      role,
	})
	if err != nil {
		return nil, fmt.Errorf("add member: %w", err)
	}

	if s.notifier != nil {
		s.notifier.Publish(ports.NotificationInput{
			UserID:  userID,
			Title:   "Added to project",
			Message: fmt.Sprintf("You were added to %q as %s", project.Name, role),
		})
	}

	s.logger.Info().Int64("project_id", projectID).Int64("member_user_id", userID).Str("role", role).Msg("member added")
	profile := user.Profile()
	return &ports.MemberWithUser{
		ID:        member.ID,
		ProjectID: member.ProjectID,
		UserID:    member.UserID,
		Role:      member.Role,
		User:      &profile,
	}, nil
}

// RemoveMember deletes a membership row. The project creator's row is
// protected unconditionally, admins included.
func (s *ProjectService) RemoveMember(ctx context.Context, p domain.Principal, projectID, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return err
	}
	if !policy.CanManageMembers(p, project) {
		return domain.ErrForbidden
	}
	if !policy.CanRemoveMember(project, userID) {
		return domain.ErrCreatorRemoval
	}

	member, err := s.members.FindByProjectAndUser(ctx, projectID, userID)
	if err != nil {
		return err
	}
	if _, err := s.members.Delete(ctx, member.ID); err != nil {
		return fmt.Errorf("remove member: %w", err)
	}

	s.logger.Info().Int64("project_id", projectID).Int64("member_user_id", userID).Msg("member removed")
	return nil
}

func (s *ProjectService) ListMembers(ctx context.Context, p domain.Principal, projectID int64) ([]ports.MemberWithUser, error) {
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

	out := make([]ports.MemberWithUser, 0, len(members))
	for _, m := range members {
		joined := ports.MemberWithUser{
			ID:        m.ID,
			ProjectID: m.ProjectID,
			UserID:    m.UserID,
			Role:      m.Role,
		}
		// A deleted account leaves the profile nil rather than failing the
		// whole listing.
		if user, err := s.users.FindByID(ctx, m.UserID); err == nil {
			profile := user.Profile()
			joined.User = &profile
		}
		out = append(out, joined)
	}
	return out, nil
}
