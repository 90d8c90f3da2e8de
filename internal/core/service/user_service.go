package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/argomobile/studio-api/internal/core/domain"
	"github.com/argomobile/studio-api/internal/core/ports"
)

// UserService implements account provisioning and the studio directory.
// Credentials are hashed here, at the provisioning boundary; the rest of
// the core treats them as opaque.
type UserService struct {
	mu     *sync.RWMutex
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(mu *sync.RWMutex, users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{mu: mu, users: users, logger: logger}
}

// CreateUser provisions a new account. Admin only; username and email must
// be unique.
func (s *UserService) CreateUser(ctx context.Context, p domain.Principal, in ports.CreateUserInput) (*domain.UserProfile, error) {
	if !p.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if err := checkInput(in); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.users.FindByUsername(ctx, in.Username); err == nil {
		return nil, fmt.Errorf("%w: username taken", domain.ErrUserExists)
	}
	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, fmt.Errorf("%w: email taken", domain.ErrUserExists)
	}

	user, err := s.users.Insert(ctx, &domain.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		Name:         in.Name,
		Email:        in.Email,
		Role:         in.Role,
		Avatar:       in.Avatar,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info().Int64("user_id", user.ID).Str("username", user.Username).Str("role", user.Role).Msg("user created")
	profile := user.Profile()
	return &profile, nil
}

// UpdateUser modifies an account in place. Allowed for the account holder
// and admins.
func (s *UserService) UpdateUser(ctx context.Context, p domain.Principal, id int64, in ports.UpdateUserInput) (*domain.UserProfile, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.users.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if !p.IsAdmin() && p.ID != id {
		return nil, domain.ErrForbidden
	}

	patch := ports.UserPatch{
		Name:   in.Name,
		Email:  in.Email,
		Avatar: in.Avatar,
	}
	if in.Email != nil {
		if existing, err := s.users.FindByEmail(ctx, *in.Email); err == nil && existing.ID != id {
			return nil, fmt.Errorf("%w: email taken", domain.ErrUserExists)
		}
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}
		h := string(hash)
		patch.PasswordHash = &h
	}

	user, err := s.users.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.logger.Info().Int64("user_id", id).Msg("user updated")
	profile := user.Profile()
	return &profile, nil
}

func (s *UserService) GetUser(ctx context.Context, _ domain.Principal, id int64) (*domain.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	profile := user.Profile()
	return &profile, nil
}

// ListUsers returns the studio directory. Any authenticated user may read
// it; credentials never leave the service.
func (s *UserService) ListUsers(ctx context.Context, _ domain.Principal) ([]domain.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.UserProfile, 0, len(users))
	for _, u := range users {
		out = append(out, u.Profile())
	}
	return out, nil
}
