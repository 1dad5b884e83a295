package handlers

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/freelancehub/internal/domain/model"
	"github.com/polkiloo/freelancehub/internal/server/http/dto"
)

// FreelancerHandler serves the public freelancer directory.
type FreelancerHandler struct {
	facade FreelancerFacade
}

func NewFreelancerHandler(facade FreelancerFacade) *FreelancerHandler {
	return &FreelancerHandler{facade: facade}
}

// List handles GET /api/freelancers.
func (h *FreelancerHandler) List(c *gin.Context) {
	filter, ok := parseFreelancerFilter(c)
	if !ok {
		return
	}
	list, err := h.facade.BrowseFreelancers(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.FreelancerSummaryResponse, 0, len(list))
	for i := range list {
		response = append(response, toFreelancerSummaryResponse(&list[i]))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/freelancers/:id.
func (h *FreelancerHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "Freelancer not found")
	if !ok {
		return
	}
	details, err := h.facade.FreelancerDetails(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	reviews := make([]dto.ReviewResponse, 0, len(details.Reviews))
	for i := range details.Reviews {
		reviews = append(reviews, toReviewResponse(&details.Reviews[i]))
	}
	c.JSON(http.StatusOK, dto.FreelancerDetailsResponse{
		FreelancerSummaryResponse: toFreelancerSummaryResponse(&details.FreelancerSummary),
		Phone:                     details.Phone,
		Reviews:                   reviews,
	})
}

func parseFreelancerFilter(c *gin.Context) (model.FreelancerFilter, bool) {
	filter := model.FreelancerFilter{
		Specialization: strings.TrimSpace(c.Query("specialization")),
		Search:         strings.TrimSpace(c.Query("search")),
	}
	if raw := c.Query("skills"); raw != "" {
		for _, skill := range strings.Split(raw, ",") {
			if skill = strings.TrimSpace(skill); skill != "" {
				filter.Skills = append(filter.Skills, skill)
			}
		}
	}

	var err error
	if filter.MinExperience, err = queryInt(c, "minExperience"); err != nil {
		return filter, false
	}
	if filter.MaxExperience, err = queryInt(c, "maxExperience"); err != nil {
		return filter, false
	}
	if filter.MinRating, err = queryFloat(c, "minRating"); err != nil {
		return filter, false
	}
	if filter.MaxRating, err = queryFloat(c, "maxRating"); err != nil {
		return filter, false
	}
	return filter, true
}

// queryInt reads an optional integer parameter and answers 400 when it is malformed.
func queryInt(c *gin.Context, param string) (*int, error) {
	raw := c.Query(param)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid "+param)
		return nil, err
	}
	return &v, nil
}

func queryFloat(c *gin.Context, param string) (*float64, error) {
	raw := c.Query(param)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
		err = strconv.ErrSyntax
	}
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid "+param)
		return nil, err
	}
	return &v, nil
}

func toFreelancerSummaryResponse(s *model.FreelancerSummary) dto.FreelancerSummaryResponse {
	return dto.FreelancerSummaryResponse{
		Profile:     toProfileResponse(&s.Profile, ""),
		Name:        s.Name,
		Email:       s.Email,
		Bio:         s.Bio,
		AvgRating:   s.AvgRating,
		ReviewCount: s.ReviewCount,
	}
}
