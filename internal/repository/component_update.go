package repository

import (
	"maritime-maintenance/internal/database/models"

	"gorm.io/gorm"
)

// ComponentUpdateRepository reads the append-only component history
type ComponentUpdateRepository struct {
	db *gorm.DB
}

// NewComponentUpdateRepository creates a new component update repository
func NewComponentUpdateRepository(db *gorm.DB) *ComponentUpdateRepository {
	return &ComponentUpdateRepository{db: db}
}

// ListByComponent returns a component's updates newest first, with the author
func (r *ComponentUpdateRepository) ListByComponent(componentID uint, limit, offset int) ([]models.ComponentUpdate, int64, error) {
	var updates []models.ComponentUpdate
	var total int64

	if err := r.db.Model(&models.ComponentUpdate{}).Where("component_id = ?", componentID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("User").
		Where("component_id = ?", componentID).
		Order("update_date DESC").Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&updates).Error
	if err != nil {
		return nil, 0, err
	}

	return updates, total, nil
}
