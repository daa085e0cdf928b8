package auth

import (
	"fmt"
	"time"
)

// AuthConfig holds token and cookie settings
type AuthConfig struct {
	JWTSecret    string
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
	CookieSecure bool
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.AccessTTL <= 0 {
		return fmt.Errorf("access token TTL must be positive")
	}
	if c.RefreshTTL <= 0 {
		return fmt.Errorf("refresh token TTL must be positive")
	}
	if c.RefreshTTL < c.AccessTTL {
		return fmt.Errorf("refresh token TTL must not be shorter than access token TTL")
	}
	return nil
}
