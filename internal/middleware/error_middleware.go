package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/denizyilmaz/plansphere/internal/app/models"
	"github.com/denizyilmaz/plansphere/internal/app/models/dto"
	"github.com/denizyilmaz/plansphere/internal/app/repositories"
	"github.com/denizyilmaz/plansphere/internal/app/services"
	"github.com/denizyilmaz/plansphere/internal/pkg/apperrors"
)

// HandleAPIError maps domain errors onto API responses. Controllers call it
// for every service-layer failure so status codes stay consistent.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOwnerNotFound):
		respond(c, http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Schedule owner not found"))
	case errors.Is(err, repositories.ErrUserNotFound):
		respond(c, http.StatusNotFound, withErrorContext(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "User not found"), err))
	case errors.Is(err, repositories.ErrScheduleNotFound):
		respond(c, http.StatusNotFound, withErrorContext(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Schedule not found"), err))
	case errors.Is(err, repositories.ErrDepartmentNotFound):
		respond(c, http.StatusNotFound, withErrorContext(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Department not found"), err))
	case errors.Is(err, apperrors.ErrCourseNotFound):
		respond(c, http.StatusNotFound, withErrorContext(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Course not found"), err))
	case errors.Is(err, models.ErrSemesterFull):
		respond(c, http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeSemesterFull, "Semester already holds the maximum number of courses"))
	case errors.Is(err, models.ErrDuplicateCourse):
		respond(c, http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeDuplicateCourse, "Course is already placed in the schedule"))
	case errors.Is(err, models.ErrInvalidSlot):
		respond(c, http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeInvalidSlot, "Slot reference is outside the schedule"))
	case errors.Is(err, models.ErrInvalidPlan):
		respond(c, http.StatusUnprocessableEntity, dto.NewErrorDetail(dto.ErrorCodeInvalidPlan, "Plan violates schedule constraints").WithDetails(err.Error()))
	case errors.Is(err, apperrors.ErrMalformedOutput):
		detail := dto.NewErrorDetail(dto.ErrorCodeMalformedOutput, "Generated schedule could not be validated")
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			detail = detail.WithDetails(gin.H{"reason": verr.Reason, "rawText": verr.RawText})
		}
		respond(c, http.StatusUnprocessableEntity, detail)
	case errors.Is(err, apperrors.ErrProviderCall):
		respond(c, http.StatusBadGateway, dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, "Generation provider call failed").WithDetails(err.Error()))
	case errors.Is(err, apperrors.ErrValidationFailed):
		respond(c, http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed"))
	default:
		var stageErr *services.StageError
		if errors.As(err, &stageErr) {
			respond(c, http.StatusBadGateway, dto.NewErrorDetail(dto.ErrorCodeGenerationFailed, "Generation pipeline aborted").WithDetails(gin.H{"stage": stageErr.Stage, "error": stageErr.Err.Error()}))
			return
		}
		respond(c, http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"))
	}
}

func respond(c *gin.Context, status int, detail *dto.ErrorDetail) {
	c.JSON(status, dto.APIResponse{
		Error:     detail,
		Timestamp: time.Now(),
	})
}

// withErrorContext copies request-specific context off a CustomError onto
// the outgoing detail. The fixed per-sentinel message stays; the custom
// message and details ride along for the client.
func withErrorContext(detail *dto.ErrorDetail, err error) *dto.ErrorDetail {
	var ce *apperrors.CustomError
	if !errors.As(err, &ce) {
		return detail
	}

	if ce.Details != nil {
		detail = detail.WithDetails(ce.Details)
	} else if ce.Message != "" {
		detail = detail.WithDetails(ce.Message)
	}
	return detail
}
