package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType tags the lifecycle event a notification reports.
type NotificationType string

const (
	NotificationBookingRequested NotificationType = "booking_requested"
	NotificationBookingAccepted  NotificationType = "booking_accepted"
	NotificationWorkStarted      NotificationType = "work_started"
	NotificationWorkSubmitted    NotificationType = "work_submitted"
	NotificationWorkApproved     NotificationType = "work_approved"
	NotificationPaymentReceived  NotificationType = "payment_received"
	NotificationBookingCancelled NotificationType = "booking_cancelled"
)

// Notification is an in-app message addressed to a single user.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      NotificationType
	Message   string
	IsRead    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingEvent describes a committed booking transition.
type BookingEvent struct {
	BookingID    uuid.UUID     `json:"bookingId"`
	Action       string        `json:"action"`
	From         BookingStatus `json:"from,omitempty"`
	To           BookingStatus `json:"to"`
	ActorID      uuid.UUID     `json:"actorId"`
	ClientID     uuid.UUID     `json:"clientId"`
	FreelancerID uuid.UUID     `json:"freelancerId"`
	OccurredAt   time.Time     `json:"occurredAt"`
}

// BookingNotice is what the lifecycle hands to the notifier after a transition.
type BookingNotice struct {
	Notification Notification
	Event        BookingEvent
}
