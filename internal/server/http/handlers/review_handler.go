package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/polkiloo/freelancehub/internal/domain/model"
	"github.com/polkiloo/freelancehub/internal/server/http/dto"
	"github.com/polkiloo/freelancehub/internal/usecase"
)

// ReviewHandler serves client reviews of finished bookings.
type ReviewHandler struct {
	facade ReviewFacade
}

func NewReviewHandler(facade ReviewFacade) *ReviewHandler {
	return &ReviewHandler{facade: facade}
}

// Create handles POST /api/reviews.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	review, err := h.facade.CreateReview(c.Request.Context(), CurrentActor(c), usecase.CreateReviewInput{
		BookingID: bookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toReviewResponse(review))
}

// ListByFreelancer handles GET /api/reviews/:freelancerId.
func (h *ReviewHandler) ListByFreelancer(c *gin.Context) {
	freelancerID, err := uuid.Parse(c.Param("freelancerId"))
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid freelancer id")
		return
	}

	reviews, err := h.facade.FreelancerReviews(c.Request.Context(), freelancerID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		response = append(response, toReviewResponse(&reviews[i]))
	}
	c.JSON(http.StatusOK, response)
}

func toReviewResponse(r *model.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:           r.ID,
		BookingID:    r.BookingID,
		ClientID:     r.ClientID,
		FreelancerID: r.FreelancerID,
		Rating:       r.Rating,
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
