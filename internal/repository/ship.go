package repository

import (
	"context"

	"maritime-maintenance/internal/database"
	"maritime-maintenance/internal/database/models"

	"gorm.io/gorm"
)

// ShipRepository handles database operations for ships
type ShipRepository struct {
	db *gorm.DB
}

// NewShipRepository creates a new ship repository
func NewShipRepository(db *gorm.DB) *ShipRepository {
	return &ShipRepository{db: db}
}

// Create creates a new ship
func (r *ShipRepository) Create(ship *models.Ship) error {
	return r.db.Create(ship).Error
}

// GetByID retrieves a ship by ID
func (r *ShipRepository) GetByID(id uint) (*models.Ship, error) {
	var ship models.Ship
	if err := r.db.First(&ship, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ship, nil
}

// GetByIMONumber retrieves a ship by IMO number
func (r *ShipRepository) GetByIMONumber(imo string) (*models.Ship, error) {
	var ship models.Ship
	if err := r.db.First(&ship, "imo_number = ?", imo).Error; err != nil {
		return nil, err
	}
	return &ship, nil
}

// List retrieves ships with pagination, ordered by id
func (r *ShipRepository) List(limit, offset int) ([]models.Ship, int64, error) {
	var ships []models.Ship
	var total int64

	if err := r.db.Model(&models.Ship{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("id").Limit(limit).Offset(offset).Find(&ships).Error
	if err != nil {
		return nil, 0, err
	}

	return ships, total, nil
}

// RetireComponentsAndDelete marks every non-retired component of the ship as
// retired, records one audit update per component built from audit, and then
// deletes the ship. Components and their history go with it through the
// foreign key cascade. Either everything happens or nothing does.
// It returns the number of components that were retired.
func (r *ShipRepository) RetireComponentsAndDelete(ctx context.Context, ship *models.Ship, audit models.ComponentUpdate) (int, error) {
	retired := 0

	err := database.InTx(ctx, r.db, func(tx *gorm.DB) error {
		var active []models.Component
		if err := tx.Where("ship_id = ? AND status <> ?", ship.ID, models.StatusRetired).
			Order("id").Find(&active).Error; err != nil {
			return err
		}

		for i := range active {
			c := &active[i]
			if err := tx.Model(c).Update("status", models.StatusRetired).Error; err != nil {
				return err
			}

			record := audit
			record.ID = 0
			record.ComponentID = c.ID
			record.NewStatus = models.StatusRetired
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
			retired++
		}

		result := tx.Delete(&models.Ship{}, ship.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return retired, nil
}
