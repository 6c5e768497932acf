package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"schoolms/domain"
)

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) domain.NotificationRepo {
	return &notificationRepository{
		db: db,
	}
}

func (nr *notificationRepository) CreateNotification(ctx context.Context, notification *domain.Notification) error {
	return nr.db.WithContext(ctx).Create(notification).Error
}

func (nr *notificationRepository) GetNotificationsByUser(ctx context.Context, userID int) (*[]domain.Notification, error) {
	var notifications []domain.Notification
	err := nr.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(domain.InboxLimit).
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return &notifications, nil
}

// MarkNotificationRead flips the read flag for a notification the user owns.
// Another user's notification is indistinguishable from a missing one.
func (nr *notificationRepository) MarkNotificationRead(ctx context.Context, userID, notificationID int) error {
	var notification domain.Notification
	err := nr.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", notificationID, userID).
		First(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}

	return nr.db.WithContext(ctx).Model(&notification).Update("is_read", true).Error
}
