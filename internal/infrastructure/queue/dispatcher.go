package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/argomobile/studio-api/internal/api/metrics"
	"github.com/argomobile/studio-api/internal/core/domain"
	"github.com/argomobile/studio-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher delivers notification feed entries through a fixed set of
// workers using consistent hashing on the recipient id, guaranteeing
// per-user feed ordering. Services publish after their critical section;
// delivery happens off the request path.
type Dispatcher struct {
	workers       []chan ports.NotificationInput
	notifications ports.NotificationRepository
	log           zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, notifications ports.NotificationRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:       make([]chan ports.NotificationInput, numWorkers),
		notifications: notifications,
		log:           log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.NotificationInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Publish sends an entry to the worker responsible for its recipient.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Publish(n ports.NotificationInput) {
	idx := d.shardIndex(n.UserID)
	d.workers[idx] <- n
	metrics.NotificationsQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *Dispatcher) shardIndex(userID int64) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strconv.FormatInt(userID, 10)))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.NotificationInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			_, err := d.notifications.Insert(ctx, &domain.Notification{
				UserID:    n.UserID,
				Title:     n.Title,
				Message:   n.Message,
				CreatedAt: time.Now().UTC(),
			})
			if err != nil {
				metrics.NotificationsDeliveryErrors.Inc()
				d.log.Error().Err(err).
					Int64("user_id", n.UserID).
					Int("worker_id", id).
					Msg("notification delivery failed")
				continue
			}
			metrics.NotificationsDeliveredTotal.Inc()
		}
	}
}
