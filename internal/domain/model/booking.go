package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BookingStatus describes the booking lifecycle.
type BookingStatus string

const (
	BookingStatusRequested  BookingStatus = "requested"
	BookingStatusAccepted   BookingStatus = "accepted"
	BookingStatusInProgress BookingStatus = "in-progress"
	BookingStatusSubmitted  BookingStatus = "submitted"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusPaid       BookingStatus = "paid"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// BookingBriefMaxLen bounds the brief length in characters.
const BookingBriefMaxLen = 2000

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusRequested:  {BookingStatusAccepted, BookingStatusCancelled},
	BookingStatusAccepted:   {BookingStatusInProgress},
	BookingStatusInProgress: {BookingStatusSubmitted},
	BookingStatusSubmitted:  {BookingStatusCompleted},
	BookingStatusCompleted:  {BookingStatusPaid},
	BookingStatusPaid:       {},
	BookingStatusCancelled:  {},
}

// ParseBookingStatus rejects anything outside the seven known statuses.
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if _, ok := bookingTransitions[status]; !ok {
		return "", fmt.Errorf("unknown booking status %q", s)
	}
	return status, nil
}

// CanTransitionTo reports whether next directly follows s.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s BookingStatus) IsTerminal() bool {
	next, ok := bookingTransitions[s]
	return ok && len(next) == 0
}

// Booking is a unit of work contracted between a client and a freelancer.
type Booking struct {
	ID               uuid.UUID
	ClientID         uuid.UUID
	FreelancerID     uuid.UUID
	PricingPackageID *uuid.UUID
	Title            string
	Brief            string
	Status           BookingStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsParty reports whether userID is the client or the freelancer of the booking.
func (b *Booking) IsParty(userID uuid.UUID) bool {
	return b.ClientID == userID || b.FreelancerID == userID
}

// Counterparty returns the other side of the booking relative to userID.
func (b *Booking) Counterparty(userID uuid.UUID) uuid.UUID {
	if userID == b.ClientID {
		return b.FreelancerID
	}
	return b.ClientID
}
