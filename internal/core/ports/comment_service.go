package ports

import (
	"context"

	"github.com/argomobile/studio-api/internal/core/domain"
)

// CommentWithAuthor is a comment joined with its author's reduced public
// profile (no email or role). User is nil when the account no longer
// exists.
type CommentWithAuthor struct {
	domain.Comment
	User *domain.UserProfile `json:"user"`
}

// CommentService defines use-case operations for task comments.
type CommentService interface {
	AddComment(ctx context.Context, p domain.Principal, taskID int64, content string) (*CommentWithAuthor, error)
	ListComments(ctx context.Context, p domain.Principal, taskID int64) ([]CommentWithAuthor, error)
}

// NotificationService defines use-case operations for the notification
// feed. A principal only ever sees their own feed.
type NotificationService interface {
	ListNotifications(ctx context.Context, p domain.Principal) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, p domain.Principal, id int64) error
}

// NotificationInput is a feed entry awaiting delivery.
type NotificationInput struct {
	UserID  int64
	Title   string
	Message string
}

// NotificationPublisher accepts feed entries for asynchronous delivery.
// Services publish after their critical section; delivery order is
// preserved per recipient.
type NotificationPublisher interface {
	Publish(n NotificationInput)
}
