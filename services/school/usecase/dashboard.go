package usecase

import (
	"context"
	"time"

	"schoolms/domain"
)

type dashboardUC struct {
	dashboardRepo domain.DashboardRepo
	TimeOut       time.Duration
}

func NewDashboardUseCase(repo domain.DashboardRepo, timeOut time.Duration) domain.DashboardUseCase {
	return &dashboardUC{
		dashboardRepo: repo,
		TimeOut:       timeOut,
	}
}

func (du *dashboardUC) GetStats(ctx context.Context, actor *domain.Claims) (*domain.DashboardStats, error) {
	ctx, cancel := context.WithTimeout(ctx, du.TimeOut)
	defer cancel()

	return du.dashboardRepo.GetStats(ctx, actor)
}
