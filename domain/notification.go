package domain

import (
	"context"
	"time"
)

type Notification struct {
	ID               int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID           int       `gorm:"not null;index" json:"user_id"`
	Title            string    `gorm:"type:varchar(255);not null" json:"title"`
	Message          string    `gorm:"type:text;not null" json:"message"`
	IsRead           bool      `gorm:"default:false" json:"is_read"`
	NotificationType *string   `gorm:"type:varchar(50)" json:"notification_type,omitempty"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// InboxLimit caps how many notifications a single listing returns.
const InboxLimit = 50

type NotificationRepo interface {
	CreateNotification(ctx context.Context, notification *Notification) error
	GetNotificationsByUser(ctx context.Context, userID int) (*[]Notification, error)
	MarkNotificationRead(ctx context.Context, userID, notificationID int) error
}

type NotificationUseCase interface {
	GetNotificationsByUser(ctx context.Context, userID int) (*[]Notification, error)
	MarkNotificationRead(ctx context.Context, userID, notificationID int) error
}
