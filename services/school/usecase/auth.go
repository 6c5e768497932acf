package usecase

import (
	"context"
	"time"

	"schoolms/domain"
)

type authUC struct {
	authRepo domain.AuthRepo
	TimeOut  time.Duration
}

func NewAuthUseCase(repo domain.AuthRepo, timeOut time.Duration) domain.AuthUseCase {
	return &authUC{
		authRepo: repo,
		TimeOut:  timeOut,
	}
}

func (au *authUC) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, au.TimeOut)
	defer cancel()

	return au.authRepo.Register(ctx, req)
}

func (au *authUC) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, au.TimeOut)
	defer cancel()

	return au.authRepo.Login(ctx, req)
}

func (au *authUC) ChangePassword(ctx context.Context, userID int, req *domain.PasswordChangeRequest) error {
	return au.authRepo.ChangePassword(ctx, userID, req)
}

func (au *authUC) Me(ctx context.Context, userID int) (*domain.User, error) {
	return au.authRepo.Me(ctx, userID)
}
