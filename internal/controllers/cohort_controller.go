package controllers

import (
	"net/http"

	"cohort-tools-be/internal/models"
	"cohort-tools-be/internal/service"

	"github.com/gin-gonic/gin"
)

type CohortController struct {
	cohortService service.CohortService
}

func NewCohortController(cohortService service.CohortService) *CohortController {
	return &CohortController{
		cohortService: cohortService,
	}
}

// ListCohorts handles GET /api/cohorts
func (cc *CohortController) ListCohorts(c *gin.Context) {
	cohorts, err := cc.cohortService.ListCohorts()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cohorts)
}

// GetCohort handles GET /api/cohorts/:id
func (cc *CohortController) GetCohort(c *gin.Context) {
	cohort, err := cc.cohortService.GetCohort(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cohort)
}

// CreateCohort handles POST /api/cohorts
func (cc *CohortController) CreateCohort(c *gin.Context) {
	var req models.CreateCohortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	cohort, err := cc.cohortService.CreateCohort(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cohort)
}

// UpdateCohort handles PUT /api/cohorts/:id
func (cc *CohortController) UpdateCohort(c *gin.Context) {
	var req models.UpdateCohortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	cohort, err := cc.cohortService.UpdateCohort(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cohort)
}

// DeleteCohort handles DELETE /api/cohorts/:id - 204 whether or not the
// cohort existed
func (cc *CohortController) DeleteCohort(c *gin.Context) {
	if err := cc.cohortService.DeleteCohort(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
