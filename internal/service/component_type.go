package service

import (
	"strings"

	"maritime-maintenance/internal/database/models"
	apperrors "maritime-maintenance/internal/errors"
	"maritime-maintenance/internal/repository"

	"github.com/go-playground/validator/v10"
)

// ComponentTypeService provides component type business logic
type ComponentTypeService struct {
	repo      repository.ComponentTypeRepositoryInterface
	validator *validator.Validate
}

// Ensure ComponentTypeService implements ComponentTypeServiceInterface
var _ ComponentTypeServiceInterface = (*ComponentTypeService)(nil)

// NewComponentTypeService creates a new ComponentTypeService
func NewComponentTypeService(repo repository.ComponentTypeRepositoryInterface, validator *validator.Validate) *ComponentTypeService {
	return &ComponentTypeService{
		repo:      repo,
		validator: validator,
	}
}

// CreateComponentTypeRequest represents the request to add a component type
type CreateComponentTypeRequest struct {
	Name string `json:"name" validate:"required,max=32"`
}

// ComponentTypeResponse represents a component type in API responses
type ComponentTypeResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ListTypes returns every component type
func (s *ComponentTypeService) ListTypes() ([]ComponentTypeResponse, error) {
	types, err := s.repo.GetAll()
	if err != nil {
		return nil, dbError("list component types", err)
	}

	out := make([]ComponentTypeResponse, len(types))
	for i, t := range types {
		out[i] = ComponentTypeResponse{ID: t.ID, Name: t.Name}
	}
	return out, nil
}

// CreateType adds a component type with a unique name
func (s *ComponentTypeService) CreateType(req *CreateComponentTypeRequest) (*ComponentTypeResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	if _, err := s.repo.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrComponentTypeExists
	} else if !isNotFound(err) {
		return nil, dbError("check existing component type", err)
	}

	ct := &models.ComponentType{Name: req.Name}
	if err := s.repo.Create(ct); err != nil {
		if isDuplicate(err) {
			return nil, apperrors.ErrComponentTypeExists
		}
		return nil, dbError("create component type", err)
	}

	return &ComponentTypeResponse{ID: ct.ID, Name: ct.Name}, nil
}
