package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denizyilmaz/plansphere/internal/app/models"
	"github.com/denizyilmaz/plansphere/internal/app/models/dto"
	"github.com/denizyilmaz/plansphere/internal/pkg/apperrors"
)

func handleError(t *testing.T, err error) (int, *dto.APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, err)

	var body dto.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder.Code, &body
}

func TestHandleAPIErrorSurfacesCustomErrorMessage(t *testing.T) {
	err := apperrors.NewCustomError(apperrors.ErrUserNotFound, "no user record for deniz@example.edu")

	status, body := handleError(t, err)
	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, body.Error)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, body.Error.Code)
	assert.Equal(t, "no user record for deniz@example.edu", body.Error.Details)
}

func TestHandleAPIErrorSurfacesCustomErrorDetails(t *testing.T) {
	err := apperrors.NewCustomError(apperrors.ErrDepartmentNotFound, "department is not in the catalog").
		WithDetails(map[string]interface{}{"code": "BIO"})

	status, body := handleError(t, err)
	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, body.Error)

	details, ok := body.Error.Details.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "BIO", details["code"])
}

func TestHandleAPIErrorMatchesWrappedCustomError(t *testing.T) {
	inner := apperrors.NewCustomError(apperrors.ErrScheduleNotFound, "no stored schedule for deniz@example.edu")
	wrapped := fmt.Errorf("loading schedule: %w", inner)

	status, body := handleError(t, wrapped)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "no stored schedule for deniz@example.edu", body.Error.Details)
}

func TestHandleAPIErrorPlacementConflicts(t *testing.T) {
	status, body := handleError(t, models.ErrSemesterFull)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, dto.ErrorCodeSemesterFull, body.Error.Code)

	status, body = handleError(t, models.ErrInvalidSlot)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, dto.ErrorCodeInvalidSlot, body.Error.Code)
}

func TestHandleAPIErrorUnknownErrorIs500(t *testing.T) {
	status, body := handleError(t, fmt.Errorf("boom"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, dto.ErrorCodeInternalServer, body.Error.Code)
}
