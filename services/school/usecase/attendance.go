package usecase

import (
	"context"
	"fmt"
	"time"

	"schoolms/domain"
)

type attendanceUC struct {
	attendanceRepo domain.AttendanceRepo
	TimeOut        time.Duration
}

func NewAttendanceUseCase(repo domain.AttendanceRepo, timeOut time.Duration) domain.AttendanceUseCase {
	return &attendanceUC{
		attendanceRepo: repo,
		TimeOut:        timeOut,
	}
}

func (au *attendanceUC) CreateAttendance(ctx context.Context, req *domain.AttendanceCreateRequest, actor *domain.Claims) (*domain.Attendance, error) {
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", req.Date)
	}

	status := req.Status
	if status == "" {
		status = domain.StatusPresent
	}
	if !status.Valid() {
		return nil, fmt.Errorf("invalid status %q", status)
	}

	marker := actor.UserID
	record := &domain.Attendance{
		StudentID: req.StudentID,
		ClassID:   req.ClassID,
		Date:      date,
		Status:    status,
		Notes:     req.Notes,
		MarkedBy:  &marker,
	}

	if err := au.attendanceRepo.CreateAttendance(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (au *attendanceUC) BulkUpsertAttendance(ctx context.Context, req *domain.BulkAttendanceRequest, actor *domain.Claims) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, au.TimeOut)
	defer cancel()

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", req.Date)
	}

	return au.attendanceRepo.BulkUpsertAttendance(ctx, req.ClassID, date, req.AttendanceRecords, actor.UserID)
}

func (au *attendanceUC) GetAttendanceByClassAndDate(ctx context.Context, classID int, date string) (*[]domain.AttendanceWithStudent, error) {
	parsed, err := domain.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}

	return au.attendanceRepo.GetAttendanceByClassAndDate(ctx, classID, parsed)
}

func (au *attendanceUC) GetAttendanceByStudent(ctx context.Context, studentID int) (*[]domain.Attendance, error) {
	return au.attendanceRepo.GetAttendanceByStudent(ctx, studentID)
}
