package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"schoolms/domain"
)

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) domain.AttendanceRepo {
	return &attendanceRepository{
		db: db,
	}
}

// CreateAttendance inserts a single record as-is. This path deliberately
// performs no (student, class, date) uniqueness check; only the bulk path
// upserts.
func (atr *attendanceRepository) CreateAttendance(ctx context.Context, record *domain.Attendance) error {
	return atr.db.WithContext(ctx).Create(record).Error
}

// BulkUpsertAttendance converges each (student, class, date) pair onto the
// submitted status: an existing row is overwritten in place, a missing one
// is inserted. The whole request runs in one transaction so concurrent bulk
// submissions for the same pairs cannot interleave the check with the write.
// Records whose student does not resolve are skipped but still counted as
// processed; a failed record never aborts the rest.
func (atr *attendanceRepository) BulkUpsertAttendance(ctx context.Context, classID int, date time.Time, records []domain.BulkAttendanceRecord, markedBy int) (int, error) {
	processed := 0

	err := atr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, record := range records {
			processed++

			status := record.Status
			if status == "" {
				status = domain.StatusPresent
			}

			var existing domain.Attendance
			err := tx.Where("student_id = ? AND class_id = ? AND date = ?",
				record.StudentID, classID, date).First(&existing).Error

			switch {
			case err == nil:
				// Overwrite only the mutable fields; the original row keeps
				// its identity and timestamps.
				if err := tx.Model(&domain.Attendance{}).Where("id = ?", existing.ID).
					UpdateColumns(map[string]interface{}{
						"status":    status,
						"notes":     record.Notes,
						"marked_by": markedBy,
					}).Error; err != nil {
					continue
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				var student domain.Student
				if err := tx.Where("id = ?", record.StudentID).First(&student).Error; err != nil {
					// Unresolvable student: no row, but still processed.
					continue
				}
				marker := markedBy
				row := domain.Attendance{
					StudentID: record.StudentID,
					ClassID:   classID,
					Date:      date,
					Status:    status,
					Notes:     record.Notes,
					MarkedBy:  &marker,
				}
				if err := tx.Create(&row).Error; err != nil {
					continue
				}
			default:
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	atr.notifyClassTeacher(ctx, classID, date, processed)

	return processed, nil
}

// notifyClassTeacher drops an inbox entry for the owning teacher. Best
// effort: a missing owner or a failed insert does not fail the bulk request.
func (atr *attendanceRepository) notifyClassTeacher(ctx context.Context, classID int, date time.Time, processed int) {
	var class domain.Class
	if err := atr.db.WithContext(ctx).Where("id = ?", classID).First(&class).Error; err != nil {
		return
	}
	if class.TeacherID == nil {
		return
	}

	notificationType := "attendance_marked"
	notification := domain.Notification{
		UserID:           *class.TeacherID,
		Title:            "Attendance marked",
		Message:          fmt.Sprintf("Attendance recorded for %s on %s (%d students).", class.Name, date.Format("2006-01-02"), processed),
		NotificationType: &notificationType,
	}
	_ = atr.db.WithContext(ctx).Create(&notification).Error
}

func (atr *attendanceRepository) GetAttendanceByClassAndDate(ctx context.Context, classID int, date time.Time) (*[]domain.AttendanceWithStudent, error) {
	var records []domain.Attendance
	err := atr.db.WithContext(ctx).
		Where("class_id = ? AND date = ?", classID, date).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	enriched := make([]domain.AttendanceWithStudent, 0, len(records))
	for _, record := range records {
		var student domain.Student
		if err := atr.db.WithContext(ctx).Where("id = ?", record.StudentID).First(&student).Error; err != nil {
			// Rows pointing at nothing are omitted from the listing.
			continue
		}
		enriched = append(enriched, domain.AttendanceWithStudent{
			Attendance:    record,
			StudentName:   student.FirstName + " " + student.LastName,
			StudentNumber: student.StudentID,
		})
	}

	return &enriched, nil
}

func (atr *attendanceRepository) GetAttendanceByStudent(ctx context.Context, studentID int) (*[]domain.Attendance, error) {
	var records []domain.Attendance
	err := atr.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return &records, nil
}
