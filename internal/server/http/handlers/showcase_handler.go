package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/polkiloo/freelancehub/internal/domain/model"
	"github.com/polkiloo/freelancehub/internal/server/http/dto"
	"github.com/polkiloo/freelancehub/internal/usecase"
)

const showcaseNotFound = "Project showcase not found"

// ShowcaseHandler manages freelancer portfolio projects.
type ShowcaseHandler struct {
	facade ShowcaseFacade
}

func NewShowcaseHandler(facade ShowcaseFacade) *ShowcaseHandler {
	return &ShowcaseHandler{facade: facade}
}

// Create handles POST /api/projects.
func (h *ShowcaseHandler) Create(c *gin.Context) {
	in, ok := bindShowcaseInput(c)
	if !ok {
		return
	}
	showcase, err := h.facade.CreateShowcase(c.Request.Context(), CurrentActor(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toShowcaseResponse(showcase))
}

// ListByFreelancer handles GET /api/projects/freelancer/:freelancerId.
func (h *ShowcaseHandler) ListByFreelancer(c *gin.Context) {
	freelancerID, err := uuid.Parse(c.Param("freelancerId"))
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid freelancer id")
		return
	}

	showcases, err := h.facade.FreelancerShowcases(c.Request.Context(), freelancerID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.ShowcaseResponse, 0, len(showcases))
	for i := range showcases {
		response = append(response, toShowcaseResponse(&showcases[i]))
	}
	c.JSON(http.StatusOK, response)
}

// Update handles PUT /api/projects/:id.
func (h *ShowcaseHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", showcaseNotFound)
	if !ok {
		return
	}
	in, ok := bindShowcaseInput(c)
	if !ok {
		return
	}
	showcase, err := h.facade.UpdateShowcase(c.Request.Context(), CurrentActor(c), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toShowcaseResponse(showcase))
}

// Delete handles DELETE /api/projects/:id.
func (h *ShowcaseHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", showcaseNotFound)
	if !ok {
		return
	}
	if err := h.facade.DeleteShowcase(c.Request.Context(), CurrentActor(c), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Project showcase deleted successfully.")
}

func bindShowcaseInput(c *gin.Context) (usecase.ShowcaseInput, bool) {
	var req dto.ShowcaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return usecase.ShowcaseInput{}, false
	}
	return usecase.ShowcaseInput{
		Title:       req.Title,
		Description: req.Description,
		Images:      req.Images,
		Tags:        req.Tags,
	}, true
}

func toShowcaseResponse(p *model.ProjectShowcase) dto.ShowcaseResponse {
	return dto.ShowcaseResponse{
		ID:           p.ID,
		FreelancerID: p.FreelancerID,
		Title:        p.Title,
		Description:  p.Description,
		Images:       nonNil(p.Images),
		Tags:         nonNil(p.Tags),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
