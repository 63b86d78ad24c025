package dto

import "time"

// LoginRequest defines the credentials for a local login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// GoogleExchangeCodeRequest defines the payload for the Google SSO
// code-exchange flow.
type GoogleExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
