package ports

import (
	"context"

	"github.com/argomobile/studio-api/internal/core/domain"
)

// UserPatch is a partial update for a user. Nil fields are left untouched.
type UserPatch struct {
	Username     *string
	PasswordHash *string
	Name         *string
	Email        *string
	Role         *string
	Avatar       *string
}

// UserRepository defines persistence operations for users. Implementations
// assign ids on Insert (strictly increasing, never reused) and return
// domain.ErrUserNotFound when an id or lookup key does not resolve.
type UserRepository interface {
	Insert(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id int64, patch UserPatch) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ListByRole(ctx context.Context, role string) ([]domain.User, error)
}
