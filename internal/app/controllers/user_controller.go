package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/denizyilmaz/plansphere/internal/app/models"
	"github.com/denizyilmaz/plansphere/internal/app/models/dto"
	"github.com/denizyilmaz/plansphere/internal/middleware"
)

// UserDirectory is the lookup surface the user endpoints need.
type UserDirectory interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// UserController handles user lookup operations
type UserController struct {
	users UserDirectory
}

// NewUserController creates a new UserController
func NewUserController(users UserDirectory) *UserController {
	return &UserController{
		users: users,
	}
}

// GetUserByEmail retrieves a user by email
// @Summary Get user by email
// @Description Retrieves the user record for the given email
// @Tags users
// @Accept json
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} dto.APIResponse{data=models.User} "User retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{email} [get]
func (c *UserController) GetUserByEmail(ctx *gin.Context) {
	user, err := c.users.GetByEmail(ctx, ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      user,
		Timestamp: time.Now(),
	})
}

// GetUserByID retrieves a user by numeric ID
// @Summary Get user by ID
// @Description Retrieves the user record for the given ID
// @Tags users
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=models.User} "User retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/id/{userId} [get]
func (c *UserController) GetUserByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("userId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid user ID")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	user, err := c.users.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      user,
		Timestamp: time.Now(),
	})
}
