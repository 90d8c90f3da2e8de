package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/argomobile/studio-api/internal/core/domain"
	"github.com/argomobile/studio-api/internal/core/ports"
)

// NotificationService implements the per-user notification feed.
//
// MarkNotificationRead verifies the notification belongs to the caller and
// returns ErrForbidden on mismatch. The dashboard historically skipped this
// check; the stricter behavior is deliberate.
type NotificationService struct {
	mu            *sync.RWMutex
	notifications ports.NotificationRepository
	logger        zerolog.Logger
}

func NewNotificationService(mu *sync.RWMutex, notifications ports.NotificationRepository, logger zerolog.Logger) *NotificationService {
	return &NotificationService{mu: mu, notifications: notifications, logger: logger}
}

// ListNotifications returns the principal's feed newest first. There is no
// way to read another user's feed.
func (s *NotificationService) ListNotifications(ctx context.Context, p domain.Principal) ([]domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notifications.ListByUser(ctx, p.ID)
}

func (s *NotificationService) MarkNotificationRead(ctx context.Context, p domain.Principal, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.notifications.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if n.UserID != p.ID {
		return domain.ErrForbidden
	}

	if _, err := s.notifications.MarkRead(ctx, id); err != nil {
		return err
	}
	s.logger.Debug().Int64("notification_id", id).Int64("user_id", p.ID).Msg("notification read")
	return nil
}
