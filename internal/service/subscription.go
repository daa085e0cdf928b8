package service

import (
	"maritime-maintenance/internal/database/models"
	apperrors "maritime-maintenance/internal/errors"
	"maritime-maintenance/internal/repository"

	"github.com/go-playground/validator/v10"
)

// SubscriptionService manages which component types a user is notified about
type SubscriptionService struct {
	repo      repository.SubscriptionRepositoryInterface
	typeRepo  repository.ComponentTypeRepositoryInterface
	validator *validator.Validate
}

// Ensure SubscriptionService implements SubscriptionServiceInterface
var _ SubscriptionServiceInterface = (*SubscriptionService)(nil)

// NewSubscriptionService creates a new SubscriptionService
func NewSubscriptionService(repo repository.SubscriptionRepositoryInterface, typeRepo repository.ComponentTypeRepositoryInterface, validator *validator.Validate) *SubscriptionService {
	return &SubscriptionService{
		repo:      repo,
		typeRepo:  typeRepo,
		validator: validator,
	}
}

// SubscribeRequest names the component type to follow
type SubscribeRequest struct {
	ComponentTypeName string `json:"component_type_name" validate:"required"`
}

// UnsubscribeRequest identifies the component type to stop following
type UnsubscribeRequest struct {
	ComponentTypeID *uint `json:"component_type_id" validate:"required"`
}

// ListSubscribedTypeIDs returns the ids of the types the user follows
func (s *SubscriptionService) ListSubscribedTypeIDs(userID uint) ([]uint, error) {
	subs, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, dbError("list subscriptions", err)
	}

	ids := make([]uint, len(subs))
	for i, sub := range subs {
		ids[i] = sub.ComponentTypeID
	}
	return ids, nil
}

// Subscribe starts notifications for a component type
func (s *SubscriptionService) Subscribe(userID uint, req *SubscribeRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err)
	}

	ct, err := s.typeRepo.GetByName(req.ComponentTypeName)
	if err != nil {
		if isNotFound(err) {
			return apperrors.ErrComponentTypeNotFound
		}
		return dbError("get component type", err)
	}

	if _, err := s.repo.Get(userID, ct.ID); err == nil {
		return apperrors.ErrSubscriptionExists
	} else if !isNotFound(err) {
		return dbError("check existing subscription", err)
	}

	sub := &models.ComponentSubscription{UserID: userID, ComponentTypeID: ct.ID}
	if err := s.repo.Create(sub); err != nil {
		if isDuplicate(err) {
			return apperrors.ErrSubscriptionExists
		}
		return dbError("create subscription", err)
	}
	return nil
}

// Unsubscribe stops notifications for a component type
func (s *SubscriptionService) Unsubscribe(userID uint, req *UnsubscribeRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err)
	}

	sub, err := s.repo.Get(userID, *req.ComponentTypeID)
	if err != nil {
		if isNotFound(err) {
			return apperrors.ErrSubscriptionNotFound
		}
		return dbError("get subscription", err)
	}

	if err := s.repo.Delete(sub.ID); err != nil {
		if isNotFound(err) {
			return apperrors.ErrSubscriptionNotFound
		}
		return dbError("delete subscription", err)
	}
	return nil
}
