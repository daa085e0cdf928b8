package repository

import (
	"maritime-maintenance/internal/database/models"

	"gorm.io/gorm"
)

// ComponentTypeRepository handles database operations for component types
type ComponentTypeRepository struct {
	db *gorm.DB
}

// NewComponentTypeRepository creates a new component type repository
func NewComponentTypeRepository(db *gorm.DB) *ComponentTypeRepository {
	return &ComponentTypeRepository{db: db}
}

// Create creates a new component type
func (r *ComponentTypeRepository) Create(componentType *models.ComponentType) error {
	return r.db.Create(componentType).Error
}

// GetByID retrieves a component type by ID
func (r *ComponentTypeRepository) GetByID(id uint) (*models.ComponentType, error) {
	var ct models.ComponentType
	if err := r.db.First(&ct, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ct, nil
}

// GetByName retrieves a component type by its unique name
func (r *ComponentTypeRepository) GetByName(name string) (*models.ComponentType, error) {
	var ct models.ComponentType
	if err := r.db.First(&ct, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &ct, nil
}

// GetAll retrieves every component type ordered by id
func (r *ComponentTypeRepository) GetAll() ([]models.ComponentType, error) {
	var types []models.ComponentType
	if err := r.db.Order("id").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}
