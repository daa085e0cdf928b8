package repository

import (
	"maritime-maintenance/internal/database/models"

	"gorm.io/gorm"
)

// SubscriptionRepository handles database operations for component type subscriptions
type SubscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Create creates a new subscription
func (r *SubscriptionRepository) Create(subscription *models.ComponentSubscription) error {
	return r.db.Create(subscription).Error
}

// Get retrieves the subscription of a user to a component type
func (r *SubscriptionRepository) Get(userID, componentTypeID uint) (*models.ComponentSubscription, error) {
	var sub models.ComponentSubscription
	err := r.db.First(&sub, "user_id = ? AND component_type_id = ?", userID, componentTypeID).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// ListByUser retrieves every subscription of a user
func (r *SubscriptionRepository) ListByUser(userID uint) ([]models.ComponentSubscription, error) {
	var subs []models.ComponentSubscription
	if err := r.db.Where("user_id = ?", userID).Order("component_type_id").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

// Delete deletes a subscription by ID
func (r *SubscriptionRepository) Delete(id uint) error {
	result := r.db.Delete(&models.ComponentSubscription{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
