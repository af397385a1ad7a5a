package identity

import (
	"time"

	"github.com/google/uuid"
)

// RegisterInput contains data for account registration
type RegisterInput struct {
	Email    string
	Password string
	IP       string
}

// LoginInput contains login credentials
type LoginInput struct {
	Email    string
	Password string
	IP       string
}

// RefreshTokenInput contains the refresh token
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput contains the access token being revoked
type LogoutInput struct {
	AccessToken string
}

// UserInfo contains user information returned to clients
type UserInfo struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// AuthResult contains tokens and user info after registration or login
type AuthResult struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
	User                  UserInfo  `json:"user"`
}

// RefreshTokenResult contains the new token pair
type RefreshTokenResult struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}
