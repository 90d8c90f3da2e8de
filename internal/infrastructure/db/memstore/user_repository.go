package memstore

import (
	"context"

	"github.com/argomobile/studio-api/internal/core/domain"
	"github.com/argomobile/studio-api/internal/core/ports"
)

type UserRepository struct {
	t *table[domain.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{t: newTable[domain.User]()}
}

func (r *UserRepository) Insert(_ context.Context, u *domain.User) (*domain.User, error) {
	rec := r.t.insert(*u, func(u domain.User, id int64) domain.User {
		u.ID = id
		return u
	})
	return &rec, nil
}

func (r *UserRepository) FindByID(_ context.Context, id int64) (*domain.User, error) {
	rec, ok := r.t.get(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &rec, nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	rec, ok := r.t.find(func(u domain.User) bool { return u.Username == username })
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &rec, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	rec, ok := r.t.find(func(u domain.User) bool { return u.Email == email })
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &rec, nil
}

func (r *UserRepository) Update(_ context.Context, id int64, patch ports.UserPatch) (*domain.User, error) {
	rec, ok := r.t.update(id, func(u domain.User) domain.User {
		if patch.Username != nil {
			u.Username = *patch.Username
		}
		if patch.PasswordHash != nil {
			u.PasswordHash = *patch.PasswordHash
		}
		if patch.Name != nil {
			u.Name = *patch.Name
		}
		if patch.Email != nil {
			u.Email = *patch.Email
		}
		if patch.Role != nil {
			u.Role = *patch.Role
		}
		if patch.Avatar != nil {
			u.Avatar = patch.Avatar
		}
		return u
	})
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &rec, nil
}

func (r *UserRepository) List(_ context.Context) ([]domain.User, error) {
	return r.t.list(), nil
}

func (r *UserRepository) ListByRole(_ context.Context, role string) ([]domain.User, error) {
	return r.t.filter(func(u domain.User) bool { return u.Role == role }), nil
}
