package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/polkiloo/freelancehub/internal/domain/model"
	"github.com/polkiloo/freelancehub/internal/server/http/dto"
	"github.com/polkiloo/freelancehub/internal/usecase"
)

const pricingNotFound = "Pricing package not found"

// PricingHandler manages freelancer pricing packages.
type PricingHandler struct {
	facade PricingFacade
}

func NewPricingHandler(facade PricingFacade) *PricingHandler {
	return &PricingHandler{facade: facade}
}

// Create handles POST /api/pricing/packages.
func (h *PricingHandler) Create(c *gin.Context) {
	in, ok := bindPricingInput(c)
	if !ok {
		return
	}
	pkg, err := h.facade.CreatePricingPackage(c.Request.Context(), CurrentActor(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPricingResponse(pkg))
}

// ListByFreelancer handles GET /api/pricing/packages/:freelancerId.
func (h *PricingHandler) ListByFreelancer(c *gin.Context) {
	freelancerID, err := uuid.Parse(c.Param("freelancerId"))
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid freelancer id")
		return
	}

	packages, err := h.facade.FreelancerPricingPackages(c.Request.Context(), freelancerID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.PricingPackageResponse, 0, len(packages))
	for i := range packages {
		response = append(response, toPricingResponse(&packages[i]))
	}
	c.JSON(http.StatusOK, response)
}

// Update handles PUT /api/pricing/packages/:id.
func (h *PricingHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", pricingNotFound)
	if !ok {
		return
	}
	in, ok := bindPricingInput(c)
	if !ok {
		return
	}
	pkg, err := h.facade.UpdatePricingPackage(c.Request.Context(), CurrentActor(c), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPricingResponse(pkg))
}

// Delete handles DELETE /api/pricing/packages/:id.
func (h *PricingHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", pricingNotFound)
	if !ok {
		return
	}
	if err := h.facade.DeletePricingPackage(c.Request.Context(), CurrentActor(c), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Pricing package deleted successfully.")
}

func bindPricingInput(c *gin.Context) (usecase.PricingInput, bool) {
	var req dto.PricingPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return usecase.PricingInput{}, false
	}
	return usecase.PricingInput{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		DeliveryDays: req.DeliveryDays,
	}, true
}

func toPricingResponse(p *model.PricingPackage) dto.PricingPackageResponse {
	return dto.PricingPackageResponse{
		ID:           p.ID,
		FreelancerID: p.FreelancerID,
		Title:        p.Title,
		Description:  p.Description,
		Price:        p.Price,
		DeliveryDays: p.DeliveryDays,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
