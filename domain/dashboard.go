package domain

import "context"

type DashboardStats struct {
	TotalStudents    int64                      `json:"total_students"`
	TotalClasses     int64                      `json:"total_classes"`
	TotalTeachers    int64                      `json:"total_teachers"`
	AttendanceToday  map[AttendanceStatus]int64 `json:"attendance_today"`
	RecentAttendance []AttendanceWithStudent    `json:"recent_attendance"`
}

type DashboardRepo interface {
	GetStats(ctx context.Context, actor *Claims) (*DashboardStats, error)
}

type DashboardUseCase interface {
	GetStats(ctx context.Context, actor *Claims) (*DashboardStats, error)
}
