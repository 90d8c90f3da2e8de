package memstore

import (
	"context"
	"sort"

	"github.com/argomobile/studio-api/internal/core/domain"
)

type CommentRepository struct {
	t *table[domain.Comment]
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{t: newTable[domain.Comment]()}
}

func (r *CommentRepository) Insert(_ context.Context, c *domain.Comment) (*domain.Comment, error) {
	rec := r.t.insert(*c, func(c domain.Comment, id int64) domain.Comment {
		c.ID = id
		return c
	})
	return &rec, nil
}

// ListByTask returns the task's comments oldest first.
func (r *CommentRepository) ListByTask(_ context.Context, taskID int64) ([]domain.Comment, error) {
	out := r.t.filter(func(c domain.Comment) bool { return c.TaskID == taskID })
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *CommentRepository) Delete(_ context.Context, id int64) (bool, error) {
	return r.t.delete(id), nil
}

type NotificationRepository struct {
	t *table[domain.Notification]
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{t: newTable[domain.Notification]()}
}

func (r *NotificationRepository) Insert(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	rec := r.t.insert(*n, func(n domain.Notification, id int64) domain.Notification {
		n.ID = id
		return n
	})
	return &rec, nil
}

func (r *NotificationRepository) FindByID(_ context.Context, id int64) (*domain.Notification, error) {
	rec, ok := r.t.get(id)
	if !ok {
		return nil, domain.ErrNotificationNotFound
	}
	return &rec, nil
}

// ListByUser returns the user's feed newest first.
func (r *NotificationRepository) ListByUser(_ context.Context, userID int64) ([]domain.Notification, error) {
	out := r.t.filter(func(n domain.Notification) bool { return n.UserID == userID })
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *NotificationRepository) MarkRead(_ context.Context, id int64) (bool, error) {
	_, ok := r.t.update(id, func(n domain.Notification) domain.Notification {
		n.Read = true
		return n
	})
	return ok, nil
}

func (r *NotificationRepository) Delete(_ context.Context, id int64) (bool, error) {
	return r.t.delete(id), nil
}
