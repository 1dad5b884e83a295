package test

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/polkiloo/freelancehub/internal/domain/model"
)

// NotifierStub records every notice handed to it.
type NotifierStub struct {
	mu      sync.Mutex
	notices []model.BookingNotice
}

// Notify stores notice.
func (n *NotifierStub) Notify(_ context.Context, notice model.BookingNotice) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice)
}

// Notices returns a snapshot of recorded notices.
func (n *NotifierStub) Notices() []model.BookingNotice {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]model.BookingNotice(nil), n.notices...)
}

// UnreadCounterStub is an in-memory unread counter cache.
type UnreadCounterStub struct {
	GetErr        error
	SetErr        error
	InvalidateErr error

	mu          sync.Mutex
	Counts      map[uuid.UUID]int64
	Invalidated []uuid.UUID
}

func (c *UnreadCounterStub) Get(_ context.Context, userID uuid.UUID) (int64, bool, error) {
	if c.GetErr != nil {
		return 0, false, c.GetErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	n, ok := c.Counts[userID]
	return n, ok, nil
}

func (c *UnreadCounterStub) Set(_ context.Context, userID uuid.UUID, count int64) error {
	if c.SetErr != nil {
		return c.SetErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Counts == nil {
		c.Counts = make(map[uuid.UUID]int64)
	}
	c.Counts[userID] = count
	return nil
}

func (c *UnreadCounterStub) Invalidate(_ context.Context, userID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Invalidated = append(c.Invalidated, userID)
	if c.InvalidateErr != nil {
		return c.InvalidateErr
	}
	delete(c.Counts, userID)
	return nil
}

// InvalidatedUsers returns a snapshot of invalidated user ids.
func (c *UnreadCounterStub) InvalidatedUsers() []uuid.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]uuid.UUID(nil), c.Invalidated...)
}

// EventPublisherStub records published booking events.
type EventPublisherStub struct {
	Err error

	mu     sync.Mutex
	events []model.BookingEvent
}

func (p *EventPublisherStub) Publish(_ context.Context, event model.BookingEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.Err
}

// Events returns a snapshot of published events.
func (p *EventPublisherStub) Events() []model.BookingEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]model.BookingEvent(nil), p.events...)
}
