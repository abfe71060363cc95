package repositories

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/denizyilmaz/plansphere/internal/app/models"
	"github.com/denizyilmaz/plansphere/internal/pkg/apperrors"
)

// Catalog error types
var (
	ErrDepartmentNotFound = apperrors.ErrDepartmentNotFound
)

// CatalogRepository serves the static course catalog. The catalog is a
// read-only JSON document loaded once at startup; there is no mutation path.
type CatalogRepository struct {
	catalog *models.Catalog
}

// NewCatalogRepository loads the catalog from a JSON file
func NewCatalogRepository(path string) (*CatalogRepository, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var catalog models.Catalog
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	return &CatalogRepository{catalog: &catalog}, nil
}

// GetCatalog returns the whole catalog
func (r *CatalogRepository) GetCatalog() *models.Catalog {
	return r.catalog
}

// GetDepartments returns all catalog departments
func (r *CatalogRepository) GetDepartments() []models.Department {
	return r.catalog.Departments
}

// GetDepartmentByCode retrieves one department by its code
func (r *CatalogRepository) GetDepartmentByCode(code string) (*models.Department, error) {
	for i := range r.catalog.Departments {
		if r.catalog.Departments[i].Code == code {
			return &r.catalog.Departments[i], nil
		}
	}
	return nil, apperrors.NewCustomError(ErrDepartmentNotFound, "department is not in the catalog").
		WithDetails(map[string]interface{}{"code": code})
}

// MarshalCatalog serializes the catalog for embedding into generation
// prompts.
func (r *CatalogRepository) MarshalCatalog() (string, error) {
	raw, err := json.Marshal(r.catalog)
	if err != nil {
		return "", fmt.Errorf("failed to serialize catalog: %w", err)
	}
	return string(raw), nil
}
