package usecase

import (
	"context"
	"time"

	"schoolms/domain"
)

type userUC struct {
	userRepo domain.UserRepo
	TimeOut  time.Duration
}

func NewUserUseCase(repo domain.UserRepo, timeOut time.Duration) domain.UserUseCase {
	return &userUC{
		userRepo: repo,
		TimeOut:  timeOut,
	}
}

func (uu *userUC) GetAllUsers(ctx context.Context) (*[]domain.User, error) {
	return uu.userRepo.GetAllUsers(ctx)
}

func (uu *userUC) GetUserByID(ctx context.Context, id int) (*domain.User, error) {
	return uu.userRepo.GetUserByID(ctx, id)
}

func (uu *userUC) UpdateUser(ctx context.Context, id int, patch *domain.UserPatch) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, uu.TimeOut)
	defer cancel()

	return uu.userRepo.UpdateUser(ctx, id, patch)
}
