package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"maritime-maintenance/internal/auth"
	"maritime-maintenance/internal/database/models"
	apperrors "maritime-maintenance/internal/errors"
	"maritime-maintenance/internal/repository"

	"github.com/go-playground/validator/v10"
)

// maxTelegramID is the exclusive upper bound accepted for a chat id
const maxTelegramID int64 = 9_000_000_000_000_000_000

// UserService provides account business logic
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// Ensure UserService implements UserServiceInterface
var _ UserServiceInterface = (*UserService)(nil)

// NewUserService creates a new UserService
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
	}
}

// RegisterRequest represents a sign-up request
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents a sign-in request
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest carries the raw telegram_id so that an absent field, an
// explicit null and a value can be told apart.
type UpdateUserRequest struct {
	TelegramID json.RawMessage `json:"telegram_id" swaggertype:"string"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID         uint   `json:"id"`
	Username   string `json:"username"`
	RoleID     uint   `json:"role_id"`
	TelegramID *int64 `json:"telegram_id"`
}

// Register creates a regular user account
func (s *UserService) Register(req *RegisterRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	if _, err := s.repo.GetByUsername(req.Username); err == nil {
		return nil, apperrors.ErrUserExists
	} else if !isNotFound(err) {
		return nil, dbError("check existing user", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: hash,
		RoleID:       models.RoleUser,
	}
	if err := s.repo.Create(user); err != nil {
		if isDuplicate(err) {
			return nil, apperrors.ErrUserExists
		}
		return nil, dbError("create user", err)
	}

	return user, nil
}

// Authenticate checks credentials and returns the matching user
func (s *UserService) Authenticate(req *LoginRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	user, err := s.repo.GetByUsername(req.Username)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, dbError("load user", err)
	}

	ok, err := auth.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil || !ok {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

// GetByID returns a user's public profile
func (s *UserService) GetByID(id uint) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, dbError("get user", err)
	}
	return toUserResponse(user), nil
}

// UpdateTelegramID lets a user set or clear their own Telegram chat id
func (s *UserService) UpdateTelegramID(actorID, userID uint, req *UpdateUserRequest) (*UserResponse, error) {
	if actorID != userID {
		return nil, apperrors.ErrForbidden
	}

	user, err := s.repo.GetByID(userID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, dbError("get user", err)
	}

	if req == nil || req.TelegramID == nil {
		return toUserResponse(user), nil
	}

	telegramID, err := ParseTelegramID(req.TelegramID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateTelegramID(userID, telegramID); err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, dbError("update user", err)
	}

	user.TelegramID = telegramID
	return toUserResponse(user), nil
}

// ParseTelegramID interprets a telegram_id JSON value. null and "" clear the
// id; an integer or a string holding one sets it when 0 < id < 9e18.
func ParseTelegramID(raw json.RawMessage) (*int64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	var text string
	switch raw[0] {
	case '"':
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil, apperrors.NewValidationError("telegram_id", "expected a numeric value")
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return nil, nil
		}
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		text = string(raw)
	default:
		return nil, apperrors.NewValidationError("telegram_id", "expected a numeric value")
	}

	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, apperrors.NewValidationError("telegram_id", "expected a numeric value")
	}
	if id <= 0 || id >= maxTelegramID {
		return nil, apperrors.NewValidationError("telegram_id", "must be a positive number")
	}
	return &id, nil
}

func toUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:         user.ID,
		Username:   user.Username,
		RoleID:     user.RoleID,
		TelegramID: user.TelegramID,
	}
}
