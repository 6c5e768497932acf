package usecase

import (
	"context"
	"time"

	"schoolms/domain"
)

type notificationUC struct {
	notificationRepo domain.NotificationRepo
	TimeOut          time.Duration
}

func NewNotificationUseCase(repo domain.NotificationRepo, timeOut time.Duration) domain.NotificationUseCase {
	return &notificationUC{
		notificationRepo: repo,
		TimeOut:          timeOut,
	}
}

func (nu *notificationUC) GetNotificationsByUser(ctx context.Context, userID int) (*[]domain.Notification, error) {
	return nu.notificationRepo.GetNotificationsByUser(ctx, userID)
}

func (nu *notificationUC) MarkNotificationRead(ctx context.Context, userID, notificationID int) error {
	return nu.notificationRepo.MarkNotificationRead(ctx, userID, notificationID)
}
