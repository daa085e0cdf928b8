package service

import (
	"context"
	"fmt"
	"time"

	"maritime-maintenance/internal/clock"
	"maritime-maintenance/internal/database/models"
	apperrors "maritime-maintenance/internal/errors"
	"maritime-maintenance/internal/expiry"
	"maritime-maintenance/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
)

const shipRetirementUpdateName = "Списание при удалении судна"

// ShipService provides ship business logic
type ShipService struct {
	repo      repository.ShipRepositoryInterface
	validator *validator.Validate
	clock     clock.Clock
	loc       *time.Location
}

// Ensure ShipService implements ShipServiceInterface
var _ ShipServiceInterface = (*ShipService)(nil)

// NewShipService creates a new ShipService
func NewShipService(repo repository.ShipRepositoryInterface, validator *validator.Validate, clk clock.Clock) *ShipService {
	if clk == nil {
		clk = clock.New()
	}
	return &ShipService{
		repo:      repo,
		validator: validator,
		clock:     clk,
		loc:       time.UTC,
	}
}

// SetLocation sets the zone whose calendar date stamps retirement updates
func (s *ShipService) SetLocation(loc *time.Location) {
	s.loc = loc
}

// CreateShipRequest represents the request to register a ship
type CreateShipRequest struct {
	Name         string  `json:"name" validate:"required,max=32"`
	IMONumber    *string `json:"imo_number,omitempty" validate:"omitempty,max=50"`
	Type         *string `json:"type,omitempty" validate:"omitempty,max=32"`
	OwnerCompany *string `json:"owner_company,omitempty" validate:"omitempty,max=32"`
}

// ShipResponse represents a ship in API responses
type ShipResponse struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	IMONumber    *string `json:"imo_number"`
	Type         *string `json:"type"`
	OwnerCompany *string `json:"owner_company"`
}

// ShipListResponse represents a page of ships
type ShipListResponse struct {
	Ships []ShipResponse `json:"ships"`
	Pagination
}

// DeleteShipResult reports what a ship deletion did
type DeleteShipResult struct {
	RetiredComponents int `json:"retired_components"`
}

// CreateShip registers a new ship
func (s *ShipService) CreateShip(req *CreateShipRequest) (*ShipResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	imo := emptyToNil(req.IMONumber)
	if imo != nil {
		if _, err := s.repo.GetByIMONumber(*imo); err == nil {
			return nil, apperrors.ErrShipExists
		} else if !isNotFound(err) {
			return nil, dbError("check existing ship", err)
		}
	}

	ship := &models.Ship{
		Name:         req.Name,
		IMONumber:    imo,
		Type:         emptyToNil(req.Type),
		OwnerCompany: emptyToNil(req.OwnerCompany),
	}
	if err := s.repo.Create(ship); err != nil {
		if isDuplicate(err) {
			return nil, apperrors.ErrShipExists
		}
		return nil, dbError("create ship", err)
	}

	return toShipResponse(ship), nil
}

// GetShip returns one ship
func (s *ShipService) GetShip(id uint) (*ShipResponse, error) {
	ship, err := s.repo.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrShipNotFound
		}
		return nil, dbError("get ship", err)
	}
	return toShipResponse(ship), nil
}

// ListShips returns a page of ships
func (s *ShipService) ListShips(page, perPage int) (*ShipListResponse, error) {
	page, perPage, offset := normalizePage(page, perPage, DefaultPerPage)

	ships, total, err := s.repo.List(perPage, offset)
	if err != nil {
		return nil, dbError("list ships", err)
	}

	items := make([]ShipResponse, len(ships))
	for i := range ships {
		items[i] = *toShipResponse(&ships[i])
	}

	return &ShipListResponse{
		Ships:      items,
		Pagination: newPagination(total, page, perPage),
	}, nil
}

// DeleteShip retires every active component of the ship on behalf of actorID,
// recording one audit update each, and deletes the ship, atomically.
func (s *ShipService) DeleteShip(ctx context.Context, id, actorID uint) (*DeleteShipResult, error) {
	ship, err := s.repo.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrShipNotFound
		}
		return nil, dbError("get ship", err)
	}

	audit := models.ComponentUpdate{
		UserID:     actorID,
		UpdateName: shipRetirementUpdateName,
		UpdateDate: datatypes.Date(s.today()),
		NewStatus:  models.StatusRetired,
		Notes:      fmt.Sprintf("Компонент списан автоматически при удалении судна '%s'.", ship.Name),
	}

	retired, err := s.repo.RetireComponentsAndDelete(ctx, ship, audit)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrShipNotFound
		}
		return nil, dbError("delete ship", err)
	}

	return &DeleteShipResult{RetiredComponents: retired}, nil
}

func (s *ShipService) today() time.Time {
	return expiry.Today(s.clock.Now(), s.loc)
}

func toShipResponse(ship *models.Ship) *ShipResponse {
	return &ShipResponse{
		ID:           ship.ID,
		Name:         ship.Name,
		IMONumber:    ship.IMONumber,
		Type:         ship.Type,
		OwnerCompany: ship.OwnerCompany,
	}
}
