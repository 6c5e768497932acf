package repository

import (
	"context"
	"testing"
	"time"

	"schoolms/domain"
)

func TestGetStatsCounts(t *testing.T) {
	db := newTestDB(t)
	repo := NewDashboardRepository(db)

	admin := seedUser(t, db, "admin@school.test", domain.RoleAdmin)
	teacherA := seedUser(t, db, "a@school.test", domain.RoleTeacher)
	teacherB := seedUser(t, db, "b@school.test", domain.RoleTeacher)

	classA := seedClass(t, db, "A", &teacherA.ID)
	seedClass(t, db, "B", &teacherB.ID)

	active := seedStudent(t, db, "STU-1", &classA.ID)
	inactive := seedStudent(t, db, "STU-2", &classA.ID)
	if err := db.Model(inactive).Update("is_active", false).Error; err != nil {
		t.Fatalf("failed to deactivate student: %v", err)
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	rows := []domain.Attendance{
		{StudentID: active.ID, ClassID: classA.ID, Date: today, Status: domain.StatusPresent},
		{StudentID: active.ID, ClassID: classA.ID, Date: today, Status: domain.StatusLate},
		{StudentID: active.ID, ClassID: classA.ID, Date: yesterday, Status: domain.StatusAbsent},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("failed to seed attendance: %v", err)
		}
	}

	stats, err := repo.GetStats(context.Background(), claimsFor(admin))
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}

	if stats.TotalStudents != 1 {
		t.Fatalf("expected 1 active student, got %d", stats.TotalStudents)
	}
	if stats.TotalClasses != 2 {
		t.Fatalf("admin should count all classes, got %d", stats.TotalClasses)
	}
	if stats.TotalTeachers != 2 {
		t.Fatalf("expected 2 active teachers, got %d", stats.TotalTeachers)
	}
	if stats.AttendanceToday[domain.StatusPresent] != 1 ||
		stats.AttendanceToday[domain.StatusLate] != 1 ||
		stats.AttendanceToday[domain.StatusAbsent] != 0 {
		t.Fatalf("unexpected today breakdown: %+v", stats.AttendanceToday)
	}

	scoped, err := repo.GetStats(context.Background(), claimsFor(teacherA))
	if err != nil {
		t.Fatalf("scoped stats failed: %v", err)
	}
	if scoped.TotalClasses != 1 {
		t.Fatalf("teacher should only count own classes, got %d", scoped.TotalClasses)
	}
}
