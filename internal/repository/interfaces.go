package repository

import (
	"context"
	"time"

	"maritime-maintenance/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	UpdateTelegramID(id uint, telegramID *int64) error
}

// ShipRepositoryInterface defines the interface for ship repository operations
type ShipRepositoryInterface interface {
	Create(ship *models.Ship) error
	GetByID(id uint) (*models.Ship, error)
	GetByIMONumber(imo string) (*models.Ship, error)
	List(limit, offset int) ([]models.Ship, int64, error)
	RetireComponentsAndDelete(ctx context.Context, ship *models.Ship, audit models.ComponentUpdate) (int, error)
}

// ComponentTypeRepositoryInterface defines the interface for component type repository operations
type ComponentTypeRepositoryInterface interface {
	Create(componentType *models.ComponentType) error
	GetByID(id uint) (*models.ComponentType, error)
	GetByName(name string) (*models.ComponentType, error)
	GetAll() ([]models.ComponentType, error)
}

// ComponentRepositoryInterface defines the interface for component repository operations
type ComponentRepositoryInterface interface {
	Create(component *models.Component) error
	GetByID(id uint) (*models.Component, error)
	ListByShip(shipID uint, limit, offset int) ([]models.Component, int64, error)
	ListInspectedOnOrBefore(cutoff time.Time, status *string) ([]models.Component, error)
	Delete(id uint) error
	ApplyStatusUpdate(ctx context.Context, component *models.Component, update *models.ComponentUpdate) error
}

// ComponentUpdateRepositoryInterface defines the interface for audit record queries
type ComponentUpdateRepositoryInterface interface {
	ListByComponent(componentID uint, limit, offset int) ([]models.ComponentUpdate, int64, error)
}

// SubscriptionRepositoryInterface defines the interface for subscription repository operations
type SubscriptionRepositoryInterface interface {
	Create(subscription *models.ComponentSubscription) error
	Get(userID, componentTypeID uint) (*models.ComponentSubscription, error)
	ListByUser(userID uint) ([]models.ComponentSubscription, error)
	Delete(id uint) error
}
