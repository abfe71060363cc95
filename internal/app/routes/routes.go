package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/denizyilmaz/plansphere/internal/app/controllers"
	"github.com/denizyilmaz/plansphere/internal/app/models/dto"
	"github.com/denizyilmaz/plansphere/internal/pkg/websocket"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	scheduleController *controllers.ScheduleController,
	generationController *controllers.GenerationController,
	catalogController *controllers.CatalogController,
	userController *controllers.UserController,
	wsHandler *websocket.Handler,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Catalog routes
	catalog := v1.Group("/catalog")
	{
		catalog.GET("", catalogController.GetCatalog)
		catalog.GET("/departments", catalogController.GetDepartments)
		catalog.GET("/departments/:code", catalogController.GetDepartmentByCode)
		catalog.GET("/departments/:code/courses", catalogController.GetDepartmentCourses)
	}

	// User routes
	users := v1.Group("/users")
	{
		users.GET("/:email", userController.GetUserByEmail)
		users.GET("/id/:userId", userController.GetUserByID)
	}

	// Schedule routes, keyed by owner email
	schedules := v1.Group("/schedules")
	{
		schedules.GET("/:email", scheduleController.GetSchedule)
		schedules.GET("/:email/placed", scheduleController.CheckPlacement)
		schedules.POST("/:email/move", scheduleController.MoveCourse)
		schedules.POST("/:email/remove", scheduleController.RemoveCourse)
		schedules.POST("/:email/courses", scheduleController.AddCourses)
		schedules.POST("/:email/generate", generationController.GenerateSchedule)
	}

	// Collaboration websocket endpoint
	collab := v1.Group("/collab")
	{
		collab.GET("/ws", wsHandler.HandleConnection)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger routes are set up in bootstrap.go already
}
