package ports

import (
	"context"

	"github.com/argomobile/studio-api/internal/core/domain"
)

// CommentRepository defines persistence operations for task comments.
// Comments are append-only from the service layer's perspective; Delete
// exists for store completeness but no exposed operation reaches it.
type CommentRepository interface {
	Insert(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	// ListByTask returns comments ordered by CreatedAt ascending.
	ListByTask(ctx context.Context, taskID int64) ([]domain.Comment, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// NotificationRepository defines persistence operations for notification
// feed entries.
type NotificationRepository interface {
	Insert(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	FindByID(ctx context.Context, id int64) (*domain.Notification, error)
	// ListByUser returns notifications ordered by CreatedAt descending.
	ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error)
	// MarkRead flips the read flag to true. It reports false when the id
	// does not exist.
	MarkRead(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
