package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"schoolms/domain"
)

func TestMarkNotificationReadOtherUserIsNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewNotificationRepository(db)

	owner := seedUser(t, db, "owner@school.test", domain.RoleTeacher)
	intruder := seedUser(t, db, "intruder@school.test", domain.RoleTeacher)

	notification := domain.Notification{UserID: owner.ID, Title: "Hi", Message: "msg"}
	if err := repo.CreateNotification(context.Background(), &notification); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	err := repo.MarkNotificationRead(context.Background(), intruder.ID, notification.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign notification, got %v", err)
	}

	var reloaded domain.Notification
	if err := db.First(&reloaded, notification.ID).Error; err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.IsRead {
		t.Fatalf("foreign read attempt must not mutate state")
	}

	if err := repo.MarkNotificationRead(context.Background(), owner.ID, notification.ID); err != nil {
		t.Fatalf("owner read failed: %v", err)
	}
	if err := db.First(&reloaded, notification.ID).Error; err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if !reloaded.IsRead {
		t.Fatalf("expected notification to be read")
	}
}

func TestGetNotificationsCappedAndNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewNotificationRepository(db)
	owner := seedUser(t, db, "owner@school.test", domain.RoleTeacher)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	total := domain.InboxLimit + 5
	for i := 0; i < total; i++ {
		notification := domain.Notification{
			UserID:    owner.ID,
			Title:     fmt.Sprintf("n-%d", i),
			Message:   "msg",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := db.Create(&notification).Error; err != nil {
			t.Fatalf("failed to seed notification: %v", err)
		}
	}

	notifications, err := repo.GetNotificationsByUser(context.Background(), owner.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(*notifications) != domain.InboxLimit {
		t.Fatalf("expected cap of %d, got %d", domain.InboxLimit, len(*notifications))
	}
	if (*notifications)[0].Title != fmt.Sprintf("n-%d", total-1) {
		t.Fatalf("expected newest first, got %s", (*notifications)[0].Title)
	}
}
