package dto

import "github.com/adelahmadi/fintrack/internal/domain/entity"

// SignupRequest is the body of POST /signup
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the body of POST /login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// MessageResponse carries a human-readable confirmation
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse carries the session token on successful login
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// TransactionResponse wraps the materialized record under "item"
type TransactionResponse struct {
	Item *entity.TransactionRecord `json:"item"`
}

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
