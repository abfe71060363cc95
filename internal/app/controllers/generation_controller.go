package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/denizyilmaz/plansphere/internal/app/models"
	"github.com/denizyilmaz/plansphere/internal/app/models/dto"
	"github.com/denizyilmaz/plansphere/internal/app/repositories"
	"github.com/denizyilmaz/plansphere/internal/app/services"
	"github.com/denizyilmaz/plansphere/internal/middleware"
)

// GenerationController handles AI schedule generation
type GenerationController struct {
	generationService *services.GenerationService
	scheduleService   *services.ScheduleService
	catalogRepository *repositories.CatalogRepository
}

// NewGenerationController creates a new GenerationController
func NewGenerationController(generationService *services.GenerationService, scheduleService *services.ScheduleService, catalogRepository *repositories.CatalogRepository) *GenerationController {
	return &GenerationController{
		generationService: generationService,
		scheduleService:   scheduleService,
		catalogRepository: catalogRepository,
	}
}

// GenerateSchedule runs the generation pipeline and installs the result
// @Summary Generate a schedule
// @Description Runs the five-stage generation pipeline for the owner's catalog and preference, validates the result and installs it as the owner's schedule
// @Tags generation
// @Accept json
// @Produce json
// @Param email path string true "Owner email"
// @Param request body dto.GenerateScheduleRequest true "Catalog JSON and student preference"
// @Success 200 {object} dto.APIResponse{data=dto.GenerateScheduleResponse} "Generated schedule installed"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Owner not found"
// @Failure 422 {object} dto.ErrorResponse "Generated output failed validation"
// @Failure 502 {object} dto.ErrorResponse "Generation provider failed"
// @Router /schedules/{email}/generate [post]
func (c *GenerationController) GenerateSchedule(ctx *gin.Context) {
	var req dto.GenerateScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid generation request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	catalogJSON := req.JsonData
	if catalogJSON == "" {
		marshaled, err := c.catalogRepository.MarshalCatalog()
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		catalogJSON = marshaled
	}

	result, err := c.generationService.Run(ctx, catalogJSON, req.UserPreference)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.enrichFromCatalog(result.Years)

	schedule, err := c.scheduleService.Replace(ctx, ctx.Param("email"), result.Years)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.GenerateScheduleResponse{
			Schedule:  schedule,
			FinalText: result.FinalText,
		},
		Timestamp: time.Now(),
	})
}

// enrichFromCatalog fills in catalog detail the generated output omits.
// Generated courses usually carry only code, title and credits.
func (c *GenerationController) enrichFromCatalog(years []models.Year) {
	catalog := c.catalogRepository.GetCatalog()
	for yi := range years {
		for si := range years[yi].Semesters {
			courses := years[yi].Semesters[si].Courses
			for ci := range courses {
				full, ok := catalog.FindCourse(courses[ci].Code)
				if !ok {
					continue
				}
				if courses[ci].Title == "" {
					courses[ci].Title = full.Title
				}
				if courses[ci].Credits == 0 {
					courses[ci].Credits = full.Credits
				}
				if courses[ci].Description == "" {
					courses[ci].Description = full.Description
				}
				if courses[ci].Prerequisites == nil {
					courses[ci].Prerequisites = full.Prerequisites
				}
				if courses[ci].Corequisites == nil {
					courses[ci].Corequisites = full.Corequisites
				}
				if courses[ci].Attributes == nil {
					courses[ci].Attributes = full.Attributes
				}
			}
		}
	}
}
