package ports

import (
	"context"

	"github.com/argomobile/studio-api/internal/core/domain"
)

// CreateUserInput carries all data for admin user provisioning. Password is
// the plaintext credential; the service hashes it before storage.
type CreateUserInput struct {
	Username string  `validate:"required,min=3"`
	Password string  `validate:"required,min=6"`
	Name     string  `validate:"required"`
	Email    string  `validate:"required,email"`
	Role     string  `validate:"required,oneof=admin manager programmer designer"`
	Avatar   *string `validate:"-"`
}

// UpdateUserInput is the validated form of a user patch. Password, when
// set, is re-hashed by the service.
type UpdateUserInput struct {
	Name     *string `validate:"omitempty,min=1"`
	Email    *string `validate:"omitempty,email"`
	Password *string `validate:"omitempty,min=6"`
	Avatar   *string `validate:"-"`
}

// UserService defines user provisioning and directory operations.
type UserService interface {
	// CreateUser provisions a new account. Admin only.
	CreateUser(ctx context.Context, p domain.Principal, in CreateUserInput) (*domain.UserProfile, error)
	// UpdateUser modifies an account. Allowed for the account holder and
	// admins.
	UpdateUser(ctx context.Context, p domain.Principal, id int64, in UpdateUserInput) (*domain.UserProfile, error)
	GetUser(ctx context.Context, p domain.Principal, id int64) (*domain.UserProfile, error)
	// ListUsers returns the studio directory with credentials stripped.
	ListUsers(ctx context.Context, p domain.Principal) ([]domain.UserProfile, error)
}
