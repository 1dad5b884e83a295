package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/polkiloo/freelancehub/internal/domain/model"
	"github.com/polkiloo/freelancehub/internal/server/http/dto"
	"github.com/polkiloo/freelancehub/internal/usecase"
)

const bookingNotFound = "Booking not found"

type transitionFunc func(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Booking, error)

// BookingHandler serves the booking lifecycle endpoints.
type BookingHandler struct {
	facade BookingFacade
}

// NewBookingHandler constructs BookingHandler.
func NewBookingHandler(facade BookingFacade) *BookingHandler {
	return &BookingHandler{facade: facade}
}

// Create handles POST /api/bookings.
func (h *BookingHandler) Create(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	in := usecase.CreateBookingInput{Title: req.Title, Brief: req.Brief}
	if req.FreelancerID != "" {
		id, err := uuid.Parse(req.FreelancerID)
		if err != nil {
			respondMessage(c, http.StatusBadRequest, "Invalid freelancer id")
			return
		}
		in.FreelancerID = id
	}
	if req.PricingPackageID != nil && *req.PricingPackageID != "" {
		id, err := uuid.Parse(*req.PricingPackageID)
		if err != nil {
			respondMessage(c, http.StatusBadRequest, "Invalid pricing package id")
			return
		}
		in.PricingPackageID = &id
	}

	booking, err := h.facade.CreateBooking(c.Request.Context(), CurrentActor(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toBookingResponse(booking))
}

// List handles GET /api/bookings.
func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.facade.Bookings(c.Request.Context(), CurrentActor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		response = append(response, toBookingResponse(&bookings[i]))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/bookings/:id.
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", bookingNotFound)
	if !ok {
		return
	}
	booking, err := h.facade.Booking(c.Request.Context(), CurrentActor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(booking))
}

// Accept handles PATCH /api/bookings/:id/accept.
func (h *BookingHandler) Accept(c *gin.Context) { h.transition(c, h.facade.AcceptBooking) }

// Start handles PATCH /api/bookings/:id/start.
func (h *BookingHandler) Start(c *gin.Context) { h.transition(c, h.facade.StartBooking) }

// Submit handles PATCH /api/bookings/:id/submit.
func (h *BookingHandler) Submit(c *gin.Context) { h.transition(c, h.facade.SubmitBooking) }

// Approve handles PATCH /api/bookings/:id/approve.
func (h *BookingHandler) Approve(c *gin.Context) { h.transition(c, h.facade.ApproveBooking) }

// MarkPaid handles PATCH /api/bookings/:id/mark-paid.
func (h *BookingHandler) MarkPaid(c *gin.Context) { h.transition(c, h.facade.MarkBookingPaid) }

// Cancel handles PATCH /api/bookings/:id/cancel.
func (h *BookingHandler) Cancel(c *gin.Context) {
	booking, ok := h.apply(c, h.facade.CancelBooking)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.CancelBookingResponse{
		Message: "Booking cancelled successfully",
		Booking: toBookingResponse(booking),
	})
}

func (h *BookingHandler) transition(c *gin.Context, fn transitionFunc) {
	booking, ok := h.apply(c, fn)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(booking))
}

func (h *BookingHandler) apply(c *gin.Context, fn transitionFunc) (*model.Booking, bool) {
	id, ok := pathID(c, "id", bookingNotFound)
	if !ok {
		return nil, false
	}
	booking, err := fn(c.Request.Context(), CurrentActor(c), id)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return booking, true
}

func toBookingResponse(b *model.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:               b.ID,
		ClientID:         b.ClientID,
		FreelancerID:     b.FreelancerID,
		PricingPackageID: b.PricingPackageID,
		Title:            b.Title,
		Brief:            b.Brief,
		Status:           string(b.Status),
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}
