package auth

import "time"

// LoginRequest is the input for user login.
type LoginRequest struct {
	Email    string `json:"Email" binding:"required,email"`
	Password string `json:"Password" binding:"required,min=8"`
}

// RegisterRequest is the input for user registration.
type RegisterRequest struct {
	FirstName string     `json:"FirstName" binding:"required,max=100"`
	LastName  string     `json:"LastName" binding:"omitempty,max=100"`
	Prefix    string     `json:"Prefix" binding:"omitempty,max=20"`
	Phone     string     `json:"Phone" binding:"omitempty,max=30"`
	Email     string     `json:"Email" binding:"required,email"`
	Gender    string     `json:"Gender" binding:"omitempty,max=20"`
	BirthDate *time.Time `json:"BirthDate"`
	Role      string     `json:"Role" binding:"required,oneof=patient doctor admin"`
	Password  string     `json:"Password" binding:"required,min=8,max=72"`
}

// TokenResponse is the authentication token returned after login.
type TokenResponse struct {
	Token     string `json:"Token"`
	ExpiresAt int64  `json:"ExpiresAt"`
}
