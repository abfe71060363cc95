package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/denizyilmaz/plansphere/internal/app/models"
	"github.com/denizyilmaz/plansphere/internal/app/models/dto"
	"github.com/denizyilmaz/plansphere/internal/app/services"
	"github.com/denizyilmaz/plansphere/internal/middleware"
)

// ScheduleController handles schedule retrieval and mutation operations
type ScheduleController struct {
	scheduleService *services.ScheduleService
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(scheduleService *services.ScheduleService) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
	}
}

// GetSchedule retrieves a schedule by owner email
// @Summary Get a schedule
// @Description Retrieves the schedule for the given owner, creating an empty one on first access
// @Tags schedules
// @Accept json
// @Produce json
// @Param email path string true "Owner email"
// @Success 200 {object} dto.APIResponse{data=models.Schedule} "Schedule retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Owner not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/{email} [get]
func (c *ScheduleController) GetSchedule(ctx *gin.Context) {
	schedule, err := c.scheduleService.GetOrCreate(ctx, ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      schedule,
		Timestamp: time.Now(),
	})
}

// MoveCourse relocates one placed course
// @Summary Move a placed course
// @Description Moves a placement to another slot, or removes it when discard is set
// @Tags schedules
// @Accept json
// @Produce json
// @Param email path string true "Owner email"
// @Param request body dto.MoveCourseRequest true "Move description"
// @Success 200 {object} dto.APIResponse{data=models.Schedule} "Schedule after the move"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or slot reference"
// @Failure 404 {object} dto.ErrorResponse "Owner not found"
// @Failure 409 {object} dto.ErrorResponse "Destination semester is full"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/{email}/move [post]
func (c *ScheduleController) MoveCourse(ctx *gin.Context) {
	var req dto.MoveCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid move request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if !req.Discard && (req.DestYear == nil || req.DestSemester == nil || req.DestIndex == nil) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Destination is required unless the move discards the course")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	schedule, err := c.scheduleService.Move(ctx, ctx.Param("email"),
		*req.SourceYear, *req.SourceSemester, *req.SourceIndex,
		slotValue(req.DestYear), slotValue(req.DestSemester), slotValue(req.DestIndex),
		req.Discard)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      schedule,
		Timestamp: time.Now(),
	})
}

// RemoveCourse drops one placed course
// @Summary Remove a placed course
// @Description Removes the placement at the given slot
// @Tags schedules
// @Accept json
// @Produce json
// @Param email path string true "Owner email"
// @Param request body dto.RemoveCourseRequest true "Slot to clear"
// @Success 200 {object} dto.APIResponse{data=models.Schedule} "Schedule after the removal"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or slot reference"
// @Failure 404 {object} dto.ErrorResponse "Owner not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/{email}/remove [post]
func (c *ScheduleController) RemoveCourse(ctx *gin.Context) {
	var req dto.RemoveCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid remove request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	schedule, err := c.scheduleService.Remove(ctx, ctx.Param("email"),
		*req.Year, *req.Semester, *req.Index)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      schedule,
		Timestamp: time.Now(),
	})
}

// AddCourses places catalog courses into the earliest open slots
// @Summary Add courses to a schedule
// @Description Places the submitted courses greedily from the first semester onward; already placed codes are skipped
// @Tags schedules
// @Accept json
// @Produce json
// @Param email path string true "Owner email"
// @Param request body dto.AddCoursesRequest true "Courses to place"
// @Success 200 {object} dto.APIResponse{data=dto.AddCoursesResponse} "Schedule and unplaced count"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Owner not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/{email}/courses [post]
func (c *ScheduleController) AddCourses(ctx *gin.Context) {
	var req dto.AddCoursesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course list")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	courses := make([]models.Course, 0, len(req.Courses))
	for _, in := range req.Courses {
		courses = append(courses, models.Course{
			Code:          in.Code,
			Title:         in.Title,
			Credits:       in.Credits,
			Description:   in.Description,
			Prerequisites: in.Prerequisites,
			Corequisites:  in.Corequisites,
			Attributes:    in.Attributes,
		})
	}

	schedule, unplaced, err := c.scheduleService.AddCourses(ctx, ctx.Param("email"), courses)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.AddCoursesResponse{
			Schedule:      schedule,
			UnplacedCount: unplaced,
		},
		Timestamp: time.Now(),
	})
}

// CheckPlacement reports whether a course code is already placed
// @Summary Check course placement
// @Description Reports whether the given course code is already placed in the owner's schedule
// @Tags schedules
// @Accept json
// @Produce json
// @Param email path string true "Owner email"
// @Param code query string true "Course code"
// @Success 200 {object} dto.APIResponse{data=dto.PlacementCheckResponse} "Placement status"
// @Failure 400 {object} dto.ErrorResponse "Missing course code"
// @Failure 404 {object} dto.ErrorResponse "Owner not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/{email}/placed [get]
func (c *ScheduleController) CheckPlacement(ctx *gin.Context) {
	code := ctx.Query("code")
	if code == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Course code is required")
		errorDetail = errorDetail.WithField("code")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	placed, err := c.scheduleService.IsPlaced(ctx, ctx.Param("email"), code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PlacementCheckResponse{
			Code:   code,
			Placed: placed,
		},
		Timestamp: time.Now(),
	})
}

// slotValue unwraps an optional slot coordinate, defaulting to 0 for
// discard moves where the destination is irrelevant.
func slotValue(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
