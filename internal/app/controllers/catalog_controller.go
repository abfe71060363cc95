package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/denizyilmaz/plansphere/internal/app/models/dto"
	"github.com/denizyilmaz/plansphere/internal/app/repositories"
	"github.com/denizyilmaz/plansphere/internal/middleware"
)

// CatalogController serves the course catalog
type CatalogController struct {
	catalogRepository *repositories.CatalogRepository
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogRepository *repositories.CatalogRepository) *CatalogController {
	return &CatalogController{
		catalogRepository: catalogRepository,
	}
}

// GetCatalog returns the full course catalog
// @Summary Get the course catalog
// @Description Retrieves every department with its courses
// @Tags catalog
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.Catalog} "Catalog retrieved successfully"
// @Router /catalog [get]
func (c *CatalogController) GetCatalog(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.catalogRepository.GetCatalog(),
		Timestamp: time.Now(),
	})
}

// GetDepartments lists catalog departments
// @Summary List departments
// @Description Retrieves all departments in the catalog
// @Tags catalog
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Department} "Departments retrieved successfully"
// @Router /catalog/departments [get]
func (c *CatalogController) GetDepartments(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.catalogRepository.GetDepartments(),
		Timestamp: time.Now(),
	})
}

// GetDepartmentCourses lists the courses of one department
// @Summary List department courses
// @Description Retrieves the courses offered by a specific department
// @Tags catalog
// @Accept json
// @Produce json
// @Param code path string true "Department code"
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /catalog/departments/{code}/courses [get]
func (c *CatalogController) GetDepartmentCourses(ctx *gin.Context) {
	department, err := c.catalogRepository.GetDepartmentByCode(ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      department.Courses,
		Timestamp: time.Now(),
	})
}

// GetDepartmentByCode retrieves one department
// @Summary Get department by code
// @Description Retrieves a specific department and its courses by department code
// @Tags catalog
// @Accept json
// @Produce json
// @Param code path string true "Department code"
// @Success 200 {object} dto.APIResponse{data=models.Department} "Department retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /catalog/departments/{code} [get]
func (c *CatalogController) GetDepartmentByCode(ctx *gin.Context) {
	department, err := c.catalogRepository.GetDepartmentByCode(ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      department,
		Timestamp: time.Now(),
	})
}
