package repository

import (
	"context"
	"time"

	"maritime-maintenance/internal/database"
	"maritime-maintenance/internal/database/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ComponentRepository handles database operations for components
type ComponentRepository struct {
	db *gorm.DB
}

// NewComponentRepository creates a new component repository
func NewComponentRepository(db *gorm.DB) *ComponentRepository {
	return &ComponentRepository{db: db}
}

// Create creates a new component
func (r *ComponentRepository) Create(component *models.Component) error {
	return r.db.Create(component).Error
}

// GetByID retrieves a component with its ship and type
func (r *ComponentRepository) GetByID(id uint) (*models.Component, error) {
	var component models.Component
	err := r.db.Preload("Ship").Preload("ComponentType").First(&component, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

// ListByShip retrieves the components installed on a ship with pagination
func (r *ComponentRepository) ListByShip(shipID uint, limit, offset int) ([]models.Component, int64, error) {
	var components []models.Component
	var total int64

	if err := r.db.Model(&models.Component{}).Where("ship_id = ?", shipID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("ship_id = ?", shipID).Order("id").Limit(limit).Offset(offset).Find(&components).Error
	if err != nil {
		return nil, 0, err
	}

	return components, total, nil
}

// ListInspectedOnOrBefore returns components last inspected on or before
// cutoff, optionally restricted to one status. It is the candidate set for
// expiry checks: a component inspected after the end of the look-ahead
// window cannot expire inside it.
func (r *ComponentRepository) ListInspectedOnOrBefore(cutoff time.Time, status *string) ([]models.Component, error) {
	var components []models.Component

	query := r.db.Where("last_inspection_date <= ?", datatypes.Date(cutoff))
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Order("id").Find(&components).Error; err != nil {
		return nil, err
	}
	return components, nil
}

// Delete deletes a component; its update history cascades
func (r *ComponentRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Component{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ApplyStatusUpdate persists the changed component and appends its audit
// record in one transaction.
func (r *ComponentRepository) ApplyStatusUpdate(ctx context.Context, component *models.Component, update *models.ComponentUpdate) error {
	return database.InTx(ctx, r.db, func(tx *gorm.DB) error {
		result := tx.Model(&models.Component{}).Where("id = ?", component.ID).Updates(map[string]interface{}{
			"status":               component.Status,
			"service_life_months":  component.ServiceLifeMonths,
			"last_inspection_date": component.LastInspectionDate,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		update.ComponentID = component.ID
		return tx.Create(update).Error
	})
}
