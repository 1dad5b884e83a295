package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/freelancehub/internal/domain/errors"
	"github.com/polkiloo/freelancehub/internal/domain/model"
	"github.com/polkiloo/freelancehub/internal/server/http/dto"
	"github.com/polkiloo/freelancehub/internal/test/facadestub"
	"github.com/polkiloo/freelancehub/internal/usecase"
)

func TestBookingHandlerCreate(t *testing.T) {
	client := model.Actor{ID: uuid.New(), Role: model.RoleClient}
	freelancerID := uuid.New()
	packageID := uuid.New()

	var got usecase.CreateBookingInput
	facade := facadestub.BookingFacadeStub{CreateFn: func(ctx context.Context, actor model.Actor, in usecase.CreateBookingInput) (*model.Booking, error) {
		got = in
		return facadestub.BookingFacadeStub{}.CreateBooking(ctx, actor, in)
	}}
	handler := NewBookingHandler(facade)

	body := []byte(fmt.Sprintf(`{"freelancerId":%q,"pricingPackageId":%q,"title":"Logo","brief":"Minimal"}`, freelancerID, packageID))
	resp := performRequest(t, http.MethodPost, "/bookings", "/bookings", handler.Create, as(client), body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", resp.Code, resp.Body.String())
	}
	if got.FreelancerID != freelancerID || got.PricingPackageID == nil || *got.PricingPackageID != packageID {
		t.Fatalf("unexpected input: %+v", got)
	}

	var booking dto.BookingResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &booking); err != nil {
		t.Fatalf("failed to decode booking: %v", err)
	}
	if booking.Status != "requested" || booking.ClientID != client.ID {
		t.Fatalf("unexpected booking: %+v", booking)
	}
}

func TestBookingHandlerCreateFailures(t *testing.T) {
	client := model.Actor{ID: uuid.New(), Role: model.RoleClient}
	forbidden := facadestub.BookingFacadeStub{CreateFn: func(context.Context, model.Actor, usecase.CreateBookingInput) (*model.Booking, error) {
		return nil, domainErrors.New(domainErrors.ErrForbidden, "Only clients can create bookings")
	}}

	tests := []struct {
		name    string
		facade  facadestub.BookingFacadeStub
		body    string
		status  int
		message string
	}{
		{name: "bad json", body: `{`, status: http.StatusBadRequest, message: "Invalid request body"},
		{name: "bad freelancer", body: `{"freelancerId":"x","title":"t","brief":"b"}`, status: http.StatusBadRequest, message: "Invalid freelancer id"},
		{name: "bad package", body: fmt.Sprintf(`{"freelancerId":%q,"pricingPackageId":"x"}`, uuid.New()), status: http.StatusBadRequest, message: "Invalid pricing package id"},
		{name: "not a client", facade: forbidden, body: fmt.Sprintf(`{"freelancerId":%q,"title":"t","brief":"b"}`, uuid.New()), status: http.StatusForbidden, message: "Only clients can create bookings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/bookings", "/bookings", NewBookingHandler(tt.facade).Create, as(client), []byte(tt.body), jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
			if msg := decodeMessage(t, resp); msg != tt.message {
				t.Fatalf("expected message %q, got %q", tt.message, msg)
			}
		})
	}
}

func TestBookingHandlerList(t *testing.T) {
	actor := model.Actor{ID: uuid.New(), Role: model.RoleFreelancer}

	resp := performRequest(t, http.MethodGet, "/bookings", "/bookings", NewBookingHandler(facadestub.BookingFacadeStub{}).List, as(actor), nil, nil)
	if resp.Code != http.StatusOK || resp.Body.String() != "[]" {
		t.Fatalf("expected empty array, got %d %s", resp.Code, resp.Body.String())
	}

	facade := facadestub.BookingFacadeStub{ListFn: func(context.Context, model.Actor) ([]model.Booking, error) {
		return []model.Booking{
			{ID: uuid.New(), FreelancerID: actor.ID, Status: model.BookingStatusInProgress},
			{ID: uuid.New(), FreelancerID: actor.ID, Status: model.BookingStatusRequested},
		}, nil
	}}
	resp = performRequest(t, http.MethodGet, "/bookings", "/bookings", NewBookingHandler(facade).List, as(actor), nil, nil)
	var list []dto.BookingResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &list); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(list) != 2 || list[0].Status != "in-progress" {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestBookingHandlerGet(t *testing.T) {
	actor := model.Actor{ID: uuid.New(), Role: model.RoleClient}
	id := uuid.New()

	facade := facadestub.BookingFacadeStub{GetFn: func(_ context.Context, _ model.Actor, got uuid.UUID) (*model.Booking, error) {
		if got != id {
			return nil, domainErrors.New(domainErrors.ErrNotFound, "Booking not found")
		}
		return nil, domainErrors.New(domainErrors.ErrForbidden, "Not authorized to view this booking")
	}}
	handler := NewBookingHandler(facade)

	tests := []struct {
		target string
		status int
	}{
		{"/bookings/" + id.String(), http.StatusForbidden},
		{"/bookings/" + uuid.NewString(), http.StatusNotFound},
		{"/bookings/not-a-uuid", http.StatusNotFound},
	}
	for _, tt := range tests {
		resp := performRequest(t, http.MethodGet, "/bookings/:id", tt.target, handler.Get, as(actor), nil, nil)
		if resp.Code != tt.status {
			t.Fatalf("%s: expected %d, got %d", tt.target, tt.status, resp.Code)
		}
	}
}

func TestBookingHandlerTransitions(t *testing.T) {
	actor := model.Actor{ID: uuid.New(), Role: model.RoleFreelancer}
	id := uuid.New()

	var calls []string
	facade := facadestub.BookingFacadeStub{TransitionFn: func(ctx context.Context, action string, a model.Actor, got uuid.UUID) (*model.Booking, error) {
		calls = append(calls, action)
		if got != id || a != actor {
			t.Fatalf("unexpected transition arguments: %s %v", got, a)
		}
		return facadestub.BookingFacadeStub{}.AcceptBooking(ctx, a, got)
	}}
	handler := NewBookingHandler(facade)

	routes := []struct {
		action  string
		handler gin.HandlerFunc
	}{
		{"accept", handler.Accept},
		{"start", handler.Start},
		{"submit", handler.Submit},
		{"approve", handler.Approve},
		{"mark-paid", handler.MarkPaid},
	}
	for _, r := range routes {
		resp := performRequest(t, http.MethodPatch, "/bookings/:id/"+r.action, "/bookings/"+id.String()+"/"+r.action, r.handler, as(actor), nil, nil)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", r.action, resp.Code)
		}
	}
	if len(calls) != len(routes) {
		t.Fatalf("expected %d transitions, got %v", len(routes), calls)
	}
	for i, r := range routes {
		if calls[i] != r.action {
			t.Fatalf("expected action %q, got %q", r.action, calls[i])
		}
	}
}

func TestBookingHandlerTransitionFailures(t *testing.T) {
	actor := model.Actor{ID: uuid.New(), Role: model.RoleClient}
	target := "/bookings/" + uuid.NewString() + "/approve"

	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"wrong state", domainErrors.New(domainErrors.ErrInvalidState, "Cannot approve booking in requested state"), http.StatusBadRequest, "Cannot approve booking in requested state"},
		{"wrong party", domainErrors.New(domainErrors.ErrForbidden, "Only the client can approve work"), http.StatusForbidden, "Only the client can approve work"},
		{"missing", domainErrors.New(domainErrors.ErrNotFound, "Booking not found"), http.StatusNotFound, "Booking not found"},
		{"store failure", fmt.Errorf("update status: %w", context.DeadlineExceeded), http.StatusInternalServerError, internalErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := facadestub.BookingFacadeStub{TransitionFn: func(context.Context, string, model.Actor, uuid.UUID) (*model.Booking, error) {
				return nil, tt.err
			}}
			resp := performRequest(t, http.MethodPatch, "/bookings/:id/approve", target, NewBookingHandler(facade).Approve, as(actor), nil, nil)
			if resp.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, resp.Code)
			}
			if msg := decodeMessage(t, resp); msg != tt.message {
				t.Fatalf("expected %q, got %q", tt.message, msg)
			}
		})
	}
}

func TestBookingHandlerCancel(t *testing.T) {
	actor := model.Actor{ID: uuid.New(), Role: model.RoleClient}
	id := uuid.New()

	resp := performRequest(t, http.MethodPatch, "/bookings/:id/cancel", "/bookings/"+id.String()+"/cancel", NewBookingHandler(facadestub.BookingFacadeStub{}).Cancel, as(actor), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var payload dto.CancelBookingResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Message != "Booking cancelled successfully" || payload.Booking.Status != "cancelled" || payload.Booking.ID != id {
		t.Fatalf("unexpected payload: %+v", payload)
	}

	resp = performRequest(t, http.MethodPatch, "/bookings/:id/cancel", "/bookings/bad/cancel", NewBookingHandler(facadestub.BookingFacadeStub{}).Cancel, as(actor), nil, nil)
	if resp.Code != http.StatusNotFound || decodeMessage(t, resp) != bookingNotFound {
		t.Fatalf("unexpected response for malformed id: %d %s", resp.Code, resp.Body.String())
	}
}
