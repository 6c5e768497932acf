package domain

import (
	"context"
	"time"
)

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusLate    AttendanceStatus = "late"
	StatusExcused AttendanceStatus = "excused"
)

// Valid reports whether the status is one of the supported values.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusExcused:
		return true
	default:
		return false
	}
}

type Attendance struct {
	ID        int              `gorm:"primaryKey;autoIncrement" json:"id"`
	StudentID int              `gorm:"not null;index" json:"student_id"`
	ClassID   int              `gorm:"not null;index" json:"class_id"`
	Date      time.Time        `gorm:"type:date;not null;index" json:"date"`
	Status    AttendanceStatus `gorm:"type:varchar(20);default:present" json:"status"`
	Notes     *string          `gorm:"type:text" json:"notes,omitempty"`
	MarkedBy  *int             `json:"marked_by,omitempty"`
	CreatedAt time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Attendance) TableName() string {
	return "attendance"
}

type AttendanceCreateRequest struct {
	StudentID int              `json:"student_id" valid:"required~Student ID is required"`
	ClassID   int              `json:"class_id" valid:"required~Class ID is required"`
	Date      string           `json:"date" valid:"required~Date is required"`
	Status    AttendanceStatus `json:"status"`
	Notes     *string          `json:"notes"`
}

type BulkAttendanceRecord struct {
	StudentID int              `json:"student_id"`
	Status    AttendanceStatus `json:"status"`
	Notes     *string          `json:"notes"`
}

type BulkAttendanceRequest struct {
	ClassID           int                    `json:"class_id" valid:"required~Class ID is required"`
	Date              string                 `json:"date" valid:"required~Date is required"`
	AttendanceRecords []BulkAttendanceRecord `json:"attendance_records"`
}

type AttendanceWithStudent struct {
	Attendance
	StudentName   string `json:"student_name"`
	StudentNumber string `json:"student_number"`
}

type AttendanceRepo interface {
	CreateAttendance(ctx context.Context, record *Attendance) error
	BulkUpsertAttendance(ctx context.Context, classID int, date time.Time, records []BulkAttendanceRecord, markedBy int) (int, error)
	GetAttendanceByClassAndDate(ctx context.Context, classID int, date time.Time) (*[]AttendanceWithStudent, error)
	GetAttendanceByStudent(ctx context.Context, studentID int) (*[]Attendance, error)
}

type AttendanceUseCase interface {
	CreateAttendance(ctx context.Context, req *AttendanceCreateRequest, actor *Claims) (*Attendance, error)
	BulkUpsertAttendance(ctx context.Context, req *BulkAttendanceRequest, actor *Claims) (int, error)
	GetAttendanceByClassAndDate(ctx context.Context, classID int, date string) (*[]AttendanceWithStudent, error)
	GetAttendanceByStudent(ctx context.Context, studentID int) (*[]Attendance, error)
}

// ParseDate parses the wire format used for attendance dates and normalizes
// the value to midnight UTC so (student, class, date) comparisons are exact.
func ParseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
