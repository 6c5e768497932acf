package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"schoolms/domain"
)

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) domain.DashboardRepo {
	return &dashboardRepository{
		db: db,
	}
}

func (dr *dashboardRepository) GetStats(ctx context.Context, actor *domain.Claims) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{
		AttendanceToday:  make(map[domain.AttendanceStatus]int64, 4),
		RecentAttendance: []domain.AttendanceWithStudent{},
	}

	err := dr.db.WithContext(ctx).Model(&domain.Student{}).
		Where("is_active = ?", true).
		Count(&stats.TotalStudents).Error
	if err != nil {
		return nil, err
	}

	classQuery := dr.db.WithContext(ctx).Model(&domain.Class{})
	if !domain.IsAdmin(actor) {
		classQuery = classQuery.Where("teacher_id = ?", actor.UserID)
	}
	if err := classQuery.Count(&stats.TotalClasses).Error; err != nil {
		return nil, err
	}

	err = dr.db.WithContext(ctx).Model(&domain.User{}).
		Where("role = ? AND is_active = ?", domain.RoleTeacher, true).
		Count(&stats.TotalTeachers).Error
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	for _, status := range []domain.AttendanceStatus{
		domain.StatusPresent, domain.StatusAbsent, domain.StatusLate, domain.StatusExcused,
	} {
		var count int64
		err := dr.db.WithContext(ctx).Model(&domain.Attendance{}).
			Where("date = ? AND status = ?", today, status).
			Count(&count).Error
		if err != nil {
			return nil, err
		}
		stats.AttendanceToday[status] = count
	}

	return stats, nil
}
