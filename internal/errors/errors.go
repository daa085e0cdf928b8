package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents a uniqueness conflict
type AlreadyExistsError struct {
	Entity  string
	Context string // e.g. "with this IMO number"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents ownership or role mismatches
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// TransientError wraps an infrastructure failure (database or network
// unavailable). Callers may retry by re-invoking the operation.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("%s: temporarily unavailable: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound          = &NotFoundError{Entity: "user"}
	ErrShipNotFound          = &NotFoundError{Entity: "ship"}
	ErrComponentNotFound     = &NotFoundError{Entity: "component"}
	ErrComponentTypeNotFound = &NotFoundError{Entity: "component type"}
	ErrSubscriptionNotFound  = &NotFoundError{Entity: "subscription"}
)

// Already Exists Errors
var (
	ErrUserExists          = &AlreadyExistsError{Entity: "user", Context: "with this username"}
	ErrShipExists          = &AlreadyExistsError{Entity: "ship", Context: "with this IMO number"}
	ErrComponentTypeExists = &AlreadyExistsError{Entity: "component type", Context: "with this name"}
	ErrSubscriptionExists  = &AlreadyExistsError{Entity: "subscription", Context: "for this component type"}
)

// Authentication and authorization errors
var (
	ErrInvalidCredentials  = &AuthenticationError{Message: "invalid username or password"}
	ErrMissingToken        = &AuthenticationError{Message: "access token is missing or invalid"}
	ErrTokenExpired        = &AuthenticationError{Message: "token has expired"}
	ErrCSRFMismatch        = &AuthenticationError{Message: "CSRF token is missing or does not match"}
	ErrForbidden           = &AuthorizationError{Message: "access denied"}
	ErrComponentNotRetired = &AuthorizationError{Message: "component can only be deleted when its status is retired"}
	ErrAdminRoleRequired   = &AuthorizationError{Message: "administrator role required"}
)

// Configuration Errors
var (
	ErrTelegramTokenMissing = &ConfigurationError{Message: "TELEGRAM_BOT_TOKEN is required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsTransient checks if an error is a TransientError
func IsTransient(err error) bool {
	var transientErr *TransientError
	return errors.As(err, &transientErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewTransientError wraps err as retryable infrastructure failure
func NewTransientError(op string, err error) error {
	return &TransientError{Op: op, Err: err}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
