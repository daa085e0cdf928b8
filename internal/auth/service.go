package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "type" claim
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

const issuer = "maritime-maintenance"

var (
	// ErrInvalidToken means the token could not be parsed or verified
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken means the token was valid but is past its expiry
	ErrExpiredToken = errors.New("token has expired")
	// ErrWrongTokenType means a refresh token was used as an access token or the reverse
	ErrWrongTokenType = errors.New("wrong token type")
)

// AuthService issues and validates JWTs
type AuthService struct {
	config *AuthConfig
	now    func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID uint   `json:"user_id" example:"12"`
	RoleID uint   `json:"role_id" example:"2"`
	Type   string `json:"type" example:"access"`
	CSRF   string `json:"csrf"`
	jwt.RegisteredClaims
}

// IssuedToken is a signed token together with its CSRF value and lifetime
type IssuedToken struct {
	Token     string
	CSRF      string
	ExpiresAt time.Time
	TTL       time.Duration
}

// TokenPair is issued on login and registration
type TokenPair struct {
	Access  *IssuedToken
	Refresh *IssuedToken
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &AuthService{config: config, now: time.Now}, nil
}

// Config returns the service configuration
func (s *AuthService) Config() *AuthConfig {
	return s.config
}

// IssueTokens creates a fresh access/refresh pair for a user
func (s *AuthService) IssueTokens(userID, roleID uint) (*TokenPair, error) {
	access, err := s.issue(userID, roleID, TokenTypeAccess, s.config.AccessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.issue(userID, roleID, TokenTypeRefresh, s.config.RefreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

// IssueAccessToken creates a new access token, used by the refresh endpoint
func (s *AuthService) IssueAccessToken(userID, roleID uint) (*IssuedToken, error) {
	return s.issue(userID, roleID, TokenTypeAccess, s.config.AccessTTL)
}

func (s *AuthService) issue(userID, roleID uint, tokenType string, ttl time.Duration) (*IssuedToken, error) {
	now := s.now()
	expiresAt := now.Add(ttl)
	csrf := uuid.NewString()

	claims := &AuthClaims{
		UserID: userID,
		RoleID: roleID,
		Type:   tokenType,
		CSRF:   csrf,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}

	return &IssuedToken{Token: signed, CSRF: csrf, ExpiresAt: expiresAt, TTL: ttl}, nil
}

// ValidateJWT validates a token and checks that it is of the expected type
func (s *AuthService) ValidateJWT(tokenString, expectedType string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Type != expectedType {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}
