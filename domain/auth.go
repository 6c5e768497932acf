package domain

import (
	"context"

	"github.com/golang-jwt/jwt/v4"
)

type RegisterRequest struct {
	Email    string `json:"email" valid:"required~Email is required,email~Invalid email format"`
	Password string `json:"password" valid:"required~Password is required,stringlength(6|255)~Password must be at least 6 characters"`
	FullName string `json:"full_name" valid:"required~Full name is required"`
	Role     string `json:"role" valid:"in(admin|teacher)~Invalid role,optional~true"`
}

type LoginRequest struct {
	Email    string `json:"email" valid:"required~Email is required,email~Invalid email format"`
	Password string `json:"password" valid:"required~Password is required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password" valid:"required~Current password is required"`
	NewPassword     string `json:"new_password" valid:"required~New password is required,stringlength(6|255)~New password must be at least 6 characters"`
}

type Claims struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type AuthRepo interface {
	Register(ctx context.Context, req *RegisterRequest) (*User, error)
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	ChangePassword(ctx context.Context, userID int, req *PasswordChangeRequest) error
	Me(ctx context.Context, userID int) (*User, error)
}

type AuthUseCase interface {
	Register(ctx context.Context, req *RegisterRequest) (*User, error)
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	ChangePassword(ctx context.Context, userID int, req *PasswordChangeRequest) error
	Me(ctx context.Context, userID int) (*User, error)
}
