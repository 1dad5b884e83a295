package worker

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/polkiloo/freelancehub/internal/domain/model"
	"github.com/polkiloo/freelancehub/internal/domain/repository"
)

// CounterInvalidator drops a cached unread counter.
type CounterInvalidator interface {
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// EventPublisher forwards committed booking events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, event model.BookingEvent) error
}

type notificationJob struct {
	ctx    context.Context
	notice model.BookingNotice
}

// NotificationDispatcher delivers booking notices in the background with a fixed pool of workers.
// Delivery is best effort: failures are logged and never reach the caller of Notify.
type NotificationDispatcher struct {
	notifications repository.NotificationRepository
	counter       CounterInvalidator
	publisher     EventPublisher
	workers       int
	queueSize     int
	timeout       time.Duration
	logger        *zap.Logger

	mu      sync.RWMutex
	jobs    chan notificationJob
	running bool
	wg      sync.WaitGroup
}

// NewNotificationDispatcher constructs the dispatcher. counter and publisher are optional.
func NewNotificationDispatcher(
	notifications repository.NotificationRepository,
	counter CounterInvalidator,
	publisher EventPublisher,
	workers, queueSize int,
	timeout time.Duration,
	logger *zap.Logger,
) *NotificationDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = workers
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationDispatcher{
		notifications: notifications,
		counter:       counter,
		publisher:     publisher,
		workers:       workers,
		queueSize:     queueSize,
		timeout:       timeout,
		logger:        logger,
	}
}

// Start launches the workers. Calling Start on a running dispatcher is a no-op.
func (d *NotificationDispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running {
		return
	}

	d.jobs = make(chan notificationJob, d.queueSize)
	d.running = true
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(d.jobs)
	}
}

// Stop refuses new notices, lets the workers drain the queue and waits for them
// until ctx is done.
func (d *NotificationDispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.running {
		d.running = false
		close(d.jobs)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Notify enqueues notice without blocking. When the dispatcher is stopped or
// the queue is full the notice is dropped.
func (d *NotificationDispatcher) Notify(ctx context.Context, notice model.BookingNotice) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if !d.running {
		d.drop(notice, "dispatcher not running")
		return
	}

	select {
	case d.jobs <- notificationJob{ctx: context.WithoutCancel(ctx), notice: notice}:
	default:
		d.drop(notice, "queue full")
	}
}

func (d *NotificationDispatcher) drop(notice model.BookingNotice, reason string) {
	d.logger.Warn("notification dropped",
		zap.String("reason", reason),
		zap.Stringer("booking_id", notice.Event.BookingID),
		zap.Stringer("recipient", notice.Notification.UserID),
		zap.String("type", string(notice.Notification.Type)),
	)
}

func (d *NotificationDispatcher) worker(jobs <-chan notificationJob) {
	defer d.wg.Done()
	for job := range jobs {
		d.deliver(job)
	}
}

// deliver runs every step even when an earlier one failed.
func (d *NotificationDispatcher) deliver(job notificationJob) {
	ctx, cancel := context.WithTimeout(job.ctx, d.timeout)
	defer cancel()

	n := job.notice.Notification
	log := d.logger.With(
		zap.Stringer("booking_id", job.notice.Event.BookingID),
		zap.Stringer("recipient", n.UserID),
		zap.String("type", string(n.Type)),
	)

	if _, err := d.notifications.Create(ctx, &n); err != nil {
		log.Error("persist notification failed", zap.Error(err))
	}

	if d.counter != nil {
		if err := d.counter.Invalidate(ctx, n.UserID); err != nil {
			log.Warn("invalidate unread counter failed", zap.Error(err))
		}
	}

	if d.publisher != nil {
		if err := d.publisher.Publish(ctx, job.notice.Event); err != nil {
			log.Warn("publish booking event failed", zap.Error(err))
		}
	}
}
