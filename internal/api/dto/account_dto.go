package dto

import "time"

// LoginRequest payload for admin login.
type LoginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
