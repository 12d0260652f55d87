package dto

import "lumera-client/internal/entity"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// AuthResponse is what /auth/login and /auth/signup return on 2xx.
type AuthResponse struct {
	Message     string      `json:"message"`
	AccessToken string      `json:"access_token"`
	User        entity.User `json:"user"`
}
