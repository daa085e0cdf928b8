package service

import (
	"context"

	"maritime-maintenance/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for account operations
type UserServiceInterface interface {
	Register(req *RegisterRequest) (*models.User, error)
	Authenticate(req *LoginRequest) (*models.User, error)
	GetByID(id uint) (*UserResponse, error)
	UpdateTelegramID(actorID, userID uint, req *UpdateUserRequest) (*UserResponse, error)
}

// ShipServiceInterface defines the interface for ship operations
type ShipServiceInterface interface {
	CreateShip(req *CreateShipRequest) (*ShipResponse, error)
	GetShip(id uint) (*ShipResponse, error)
	ListShips(page, perPage int) (*ShipListResponse, error)
	DeleteShip(ctx context.Context, id, actorID uint) (*DeleteShipResult, error)
}

// ComponentServiceInterface defines the interface for component operations
type ComponentServiceInterface interface {
	CreateComponent(shipID uint, req *CreateComponentRequest) (*ComponentSummary, error)
	GetComponent(id uint) (*ComponentDetailResponse, error)
	ListShipComponents(shipID uint, page, perPage int) (*ComponentListResponse, error)
	DeleteComponent(id uint) error
	UpdateStatus(ctx context.Context, id, actorID uint, req *UpdateStatusRequest) error
	ListUpdates(componentID uint, page, perPage int) (*ComponentUpdateListResponse, error)
	ListExpiring(status *string, page, perPage int) (*ExpiringListResponse, error)
}

// ComponentTypeServiceInterface defines the interface for component type operations
type ComponentTypeServiceInterface interface {
	ListTypes() ([]ComponentTypeResponse, error)
	CreateType(req *CreateComponentTypeRequest) (*ComponentTypeResponse, error)
}

// SubscriptionServiceInterface defines the interface for subscription operations
type SubscriptionServiceInterface interface {
	ListSubscribedTypeIDs(userID uint) ([]uint, error)
	Subscribe(userID uint, req *SubscribeRequest) error
	Unsubscribe(userID uint, req *UnsubscribeRequest) error
}
