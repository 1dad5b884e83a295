package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/freelancehub/internal/domain/model"
	"github.com/polkiloo/freelancehub/internal/server/http/dto"
	"github.com/polkiloo/freelancehub/internal/usecase"
)

// ProfileHandler manages the acting freelancer's public profile.
type ProfileHandler struct {
	facade ProfileFacade
}

func NewProfileHandler(facade ProfileFacade) *ProfileHandler {
	return &ProfileHandler{facade: facade}
}

// Create handles POST /api/freelancer/profile.
func (h *ProfileHandler) Create(c *gin.Context) {
	var req dto.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	profile, err := h.facade.CreateProfile(c.Request.Context(), CurrentActor(c), usecase.ProfileInput{
		Specialization: req.Specialization,
		Skills:         req.Skills,
		Experience:     req.Experience,
		Description:    req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProfileResponse(profile, ""))
}

// Get handles GET /api/freelancer/profile/:userId.
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := pathID(c, "userId", "Freelancer profile not found")
	if !ok {
		return
	}
	summary, err := h.facade.FreelancerProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(&summary.Profile, summary.Name))
}

// Update handles PUT /api/freelancer/profile.
func (h *ProfileHandler) Update(c *gin.Context) {
	var req dto.ProfilePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	profile, err := h.facade.UpdateProfile(c.Request.Context(), CurrentActor(c), usecase.ProfilePatch{
		Specialization: req.Specialization,
		Skills:         req.Skills,
		Experience:     req.Experience,
		Description:    req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(profile, ""))
}

// Delete handles DELETE /api/freelancer/profile.
func (h *ProfileHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteProfile(c.Request.Context(), CurrentActor(c)); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Profile deleted successfully.")
}

func toProfileResponse(p *model.FreelancerProfile, name string) dto.ProfileResponse {
	return dto.ProfileResponse{
		ID:             p.ID,
		UserID:         p.UserID,
		Name:           name,
		Specialization: p.Specialization,
		Skills:         nonNil(p.Skills),
		Experience:     p.Experience,
		Description:    p.Description,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// nonNil keeps empty lists encoded as [] rather than null.
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

