package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"maritime-maintenance/internal/clock"
	"maritime-maintenance/internal/database/models"
	apperrors "maritime-maintenance/internal/errors"
	"maritime-maintenance/internal/expiry"
	"maritime-maintenance/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
)

// ComponentService provides component lifecycle business logic
type ComponentService struct {
	repo       repository.ComponentRepositoryInterface
	shipRepo   repository.ShipRepositoryInterface
	typeRepo   repository.ComponentTypeRepositoryInterface
	updateRepo repository.ComponentUpdateRepositoryInterface
	validator  *validator.Validate
	clock      clock.Clock
	loc        *time.Location
	windowDays int
}

// Ensure ComponentService implements ComponentServiceInterface
var _ ComponentServiceInterface = (*ComponentService)(nil)

// NewComponentService creates a new ComponentService
func NewComponentService(
	repo repository.ComponentRepositoryInterface,
	shipRepo repository.ShipRepositoryInterface,
	typeRepo repository.ComponentTypeRepositoryInterface,
	updateRepo repository.ComponentUpdateRepositoryInterface,
	validator *validator.Validate,
	clk clock.Clock,
) *ComponentService {
	if clk == nil {
		clk = clock.New()
	}
	return &ComponentService{
		repo:       repo,
		shipRepo:   shipRepo,
		typeRepo:   typeRepo,
		updateRepo: updateRepo,
		validator:  validator,
		clock:      clk,
		loc:        time.UTC,
		windowDays: expiry.DefaultWindowDays,
	}
}

// SetWindowDays overrides the look-ahead used by ListExpiring
func (s *ComponentService) SetWindowDays(days int) {
	s.windowDays = days
}

// SetLocation sets the zone whose calendar date counts as today
func (s *ComponentService) SetLocation(loc *time.Location) {
	s.loc = loc
}

// CreateComponentRequest represents the request to install a component on a ship
type CreateComponentRequest struct {
	Name               string  `json:"name" validate:"required,max=32"`
	ComponentTypeID    *uint   `json:"component_type_id" validate:"required"`
	SerialNumber       *string `json:"serial_number,omitempty" validate:"omitempty,max=50"`
	ServiceLifeMonths  *int    `json:"service_life_months" validate:"required,min=1,max=600"`
	LastInspectionDate string  `json:"last_inspection_date" validate:"required,datetime=2006-01-02" example:"2024-01-15"`
	Status             *string `json:"status,omitempty" validate:"omitempty,max=32"`
}

// UpdateStatusRequest represents a lifecycle event on a component
type UpdateStatusRequest struct {
	UpdateName        string `json:"update_name" validate:"required,max=32"`
	NewStatus         string `json:"new_status" validate:"required,max=32"`
	Notes             string `json:"notes,omitempty"`
	ServiceLifeMonths *int   `json:"service_life_months,omitempty" validate:"omitempty,min=1,max=600"`
}

// ComponentSummary is the short form used in lists and create responses
type ComponentSummary struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	ComponentTypeID uint   `json:"component_type_id"`
	Status          string `json:"status"`
}

// Ref is an {id, name} pointer to a related entity
type Ref struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ComponentDetailResponse is the full view of one component
type ComponentDetailResponse struct {
	ID                 uint    `json:"id"`
	Name               string  `json:"name"`
	Ship               *Ref    `json:"ship"`
	ComponentType      *Ref    `json:"component_type"`
	SerialNumber       *string `json:"serial_number"`
	ServiceLifeMonths  int     `json:"service_life_months"`
	LastInspectionDate string  `json:"last_inspection_date"`
	Status             string  `json:"status"`
	ExpirationDate     string  `json:"expiration_date"`
	DaysRemaining      int     `json:"days_remaining"`
}

// ComponentListResponse represents a page of a ship's components
type ComponentListResponse struct {
	Components []ComponentSummary `json:"components"`
	Pagination
}

// UserRef identifies the author of an update
type UserRef struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// ComponentUpdateResponse is one audit record
type ComponentUpdateResponse struct {
	ID         uint     `json:"id"`
	UpdateName string   `json:"update_name"`
	UpdateDate string   `json:"update_date"`
	NewStatus  string   `json:"new_status"`
	Notes      string   `json:"notes"`
	User       *UserRef `json:"user"`
}

// ComponentUpdateListResponse represents a page of a component's history
type ComponentUpdateListResponse struct {
	Updates []ComponentUpdateResponse `json:"updates"`
	Pagination
}

// ExpiringComponentResponse is one row of the expiring listing
type ExpiringComponentResponse struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	ShipID          uint   `json:"ship_id"`
	ComponentTypeID uint   `json:"component_type_id"`
	Status          string `json:"status"`
	ExpirationDate  string `json:"expiration_date"`
	DaysRemaining   int    `json:"days_remaining"`
}

// ExpiringListResponse represents a page of expiring components
type ExpiringListResponse struct {
	Components []ExpiringComponentResponse `json:"expiring_components"`
	Pagination
}

// CreateComponent installs a new component on a ship
func (s *ComponentService) CreateComponent(shipID uint, req *CreateComponentRequest) (*ComponentSummary, error) {
	if _, err := s.shipRepo.GetByID(shipID); err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrShipNotFound
		}
		return nil, dbError("get ship", err)
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	inspected, err := expiry.Parse(req.LastInspectionDate)
	if err != nil {
		return nil, apperrors.NewValidationError("last_inspection_date", "must be a date in YYYY-MM-DD format")
	}

	if _, err := s.typeRepo.GetByID(*req.ComponentTypeID); err != nil {
		if isNotFound(err) {
			return nil, apperrors.NewValidationError("component_type_id", "component type not found")
		}
		return nil, dbError("get component type", err)
	}

	status := models.StatusOperational
	if req.Status != nil && strings.TrimSpace(*req.Status) != "" {
		status = *req.Status
	}

	component := &models.Component{
		Name:               req.Name,
		ShipID:             shipID,
		ComponentTypeID:    *req.ComponentTypeID,
		SerialNumber:       emptyToNil(req.SerialNumber),
		ServiceLifeMonths:  *req.ServiceLifeMonths,
		LastInspectionDate: datatypes.Date(inspected),
		Status:             status,
	}
	if err := s.repo.Create(component); err != nil {
		return nil, dbError("create component", err)
	}

	return toComponentSummary(component), nil
}

// GetComponent returns a component with its ship, type and computed expiry
func (s *ComponentService) GetComponent(id uint) (*ComponentDetailResponse, error) {
	component, err := s.repo.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrComponentNotFound
		}
		return nil, dbError("get component", err)
	}

	status := expiry.Evaluate(s.today(), component.InspectedOn(), component.ServiceLifeMonths, s.windowDays)

	resp := &ComponentDetailResponse{
		ID:                 component.ID,
		Name:               component.Name,
		SerialNumber:       component.SerialNumber,
		ServiceLifeMonths:  component.ServiceLifeMonths,
		LastInspectionDate: expiry.Format(component.InspectedOn()),
		Status:             component.Status,
		ExpirationDate:     expiry.Format(status.ExpirationDate),
		DaysRemaining:      status.DaysRemaining,
	}
	if component.Ship != nil {
		resp.Ship = &Ref{ID: component.Ship.ID, Name: component.Ship.Name}
	}
	if component.ComponentType != nil {
		resp.ComponentType = &Ref{ID: component.ComponentType.ID, Name: component.ComponentType.Name}
	}
	return resp, nil
}

// ListShipComponents returns a page of the components installed on a ship
func (s *ComponentService) ListShipComponents(shipID uint, page, perPage int) (*ComponentListResponse, error) {
	page, perPage, offset := normalizePage(page, perPage, DefaultPerPage)

	components, total, err := s.repo.ListByShip(shipID, perPage, offset)
	if err != nil {
		return nil, dbError("list components", err)
	}

	items := make([]ComponentSummary, len(components))
	for i := range components {
		items[i] = *toComponentSummary(&components[i])
	}

	return &ComponentListResponse{
		Components: items,
		Pagination: newPagination(total, page, perPage),
	}, nil
}

// DeleteComponent removes a component. Only retired components may be deleted.
func (s *ComponentService) DeleteComponent(id uint) error {
	component, err := s.repo.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return apperrors.ErrComponentNotFound
		}
		return dbError("get component", err)
	}

	if !models.IsRetired(component.Status) {
		return apperrors.ErrComponentNotRetired
	}

	if err := s.repo.Delete(id); err != nil {
		if isNotFound(err) {
			return apperrors.ErrComponentNotFound
		}
		return dbError("delete component", err)
	}
	return nil
}

// UpdateStatus records an inspection or lifecycle event: the component takes
// the new status, its inspection date becomes today, the service life may be
// changed, and one audit update is appended.
func (s *ComponentService) UpdateStatus(ctx context.Context, id, actorID uint, req *UpdateStatusRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err)
	}

	component, err := s.repo.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return apperrors.ErrComponentNotFound
		}
		return dbError("get component", err)
	}

	notes := req.Notes
	if req.ServiceLifeMonths != nil {
		previous := component.ServiceLifeMonths
		if *req.ServiceLifeMonths != previous {
			notes += fmt.Sprintf("\n(Срок службы обновлен с %d до %d мес.)", previous, *req.ServiceLifeMonths)
		}
		component.ServiceLifeMonths = *req.ServiceLifeMonths
	}

	today := datatypes.Date(s.today())
	component.Status = req.NewStatus
	component.LastInspectionDate = today

	update := &models.ComponentUpdate{
		UserID:     actorID,
		UpdateName: req.UpdateName,
		UpdateDate: today,
		NewStatus:  req.NewStatus,
		Notes:      strings.TrimSpace(notes),
	}

	if err := s.repo.ApplyStatusUpdate(ctx, component, update); err != nil {
		if isNotFound(err) {
			return apperrors.ErrComponentNotFound
		}
		return dbError("update component status", err)
	}
	return nil
}

// ListUpdates returns a page of a component's history, newest first
func (s *ComponentService) ListUpdates(componentID uint, page, perPage int) (*ComponentUpdateListResponse, error) {
	page, perPage, offset := normalizePage(page, perPage, DefaultUpdatesPerPage)

	updates, total, err := s.updateRepo.ListByComponent(componentID, perPage, offset)
	if err != nil {
		return nil, dbError("list component updates", err)
	}

	items := make([]ComponentUpdateResponse, len(updates))
	for i, u := range updates {
		items[i] = ComponentUpdateResponse{
			ID:         u.ID,
			UpdateName: u.UpdateName,
			UpdateDate: expiry.Format(u.UpdatedOn()),
			NewStatus:  u.NewStatus,
			Notes:      u.Notes,
		}
		if u.User != nil {
			items[i].User = &UserRef{ID: u.User.ID, Username: u.User.Username}
		}
	}

	return &ComponentUpdateListResponse{
		Updates:    items,
		Pagination: newPagination(total, page, perPage),
	}, nil
}

// ListExpiring returns components whose expiration date falls inside the
// look-ahead window, soonest first. status optionally restricts the listing
// to one status; nil lists every status.
func (s *ComponentService) ListExpiring(status *string, page, perPage int) (*ExpiringListResponse, error) {
	page, perPage, offset := normalizePage(page, perPage, DefaultPerPage)
	today := s.today()

	candidates, err := s.repo.ListInspectedOnOrBefore(expiry.LatestInspection(today, s.windowDays), status)
	if err != nil {
		return nil, dbError("list expiring components", err)
	}

	var matched []ExpiringComponentResponse
	for _, c := range candidates {
		st := expiry.Evaluate(today, c.InspectedOn(), c.ServiceLifeMonths, s.windowDays)
		if !st.Expiring {
			continue
		}
		matched = append(matched, ExpiringComponentResponse{
			ID:              c.ID,
			Name:            c.Name,
			ShipID:          c.ShipID,
			ComponentTypeID: c.ComponentTypeID,
			Status:          c.Status,
			ExpirationDate:  expiry.Format(st.ExpirationDate),
			DaysRemaining:   st.DaysRemaining,
		})
	}

	// Days remaining orders the same way as the expiration date.
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].DaysRemaining != matched[j].DaysRemaining {
			return matched[i].DaysRemaining < matched[j].DaysRemaining
		}
		return matched[i].ID < matched[j].ID
	})

	total := int64(len(matched))
	items := make([]ExpiringComponentResponse, 0)
	if offset >= 0 && offset < len(matched) {
		end := len(matched)
		if len(matched)-offset > perPage {
			end = offset + perPage
		}
		items = append(items, matched[offset:end]...)
	}

	return &ExpiringListResponse{
		Components: items,
		Pagination: newPagination(total, page, perPage),
	}, nil
}

func (s *ComponentService) today() time.Time {
	return expiry.Today(s.clock.Now(), s.loc)
}

func toComponentSummary(c *models.Component) *ComponentSummary {
	return &ComponentSummary{
		ID:              c.ID,
		Name:            c.Name,
		ComponentTypeID: c.ComponentTypeID,
		Status:          c.Status,
	}
}
