package repository

import (
	"context"
	"testing"

	"schoolms/domain"
)

func TestBulkUpsertAttendanceIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewAttendanceRepository(db)
	teacher := seedUser(t, db, "teacher@school.test", domain.RoleTeacher)
	class := seedClass(t, db, "Math 101", &teacher.ID)
	s5 := seedStudent(t, db, "S-5", &class.ID)
	s6 := seedStudent(t, db, "S-6", &class.ID)

	date, err := domain.ParseDate("2024-01-10")
	if err != nil {
		t.Fatalf("failed to parse date: %v", err)
	}

	records := []domain.BulkAttendanceRecord{
		{StudentID: s5.ID, Status: domain.StatusAbsent},
		{StudentID: s6.ID}, // no status: defaults to present
	}

	for i := 0; i < 3; i++ {
		processed, err := repo.BulkUpsertAttendance(context.Background(), class.ID, date, records, teacher.ID)
		if err != nil {
			t.Fatalf("bulk upsert %d failed: %v", i, err)
		}
		if processed != 2 {
			t.Fatalf("expected 2 processed, got %d", processed)
		}
	}

	var count int64
	if err := db.Model(&domain.Attendance{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count attendance: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected exactly 2 rows after replays, got %d", count)
	}

	var row5 domain.Attendance
	if err := db.Where("student_id = ?", s5.ID).First(&row5).Error; err != nil {
		t.Fatalf("failed to load row for student 5: %v", err)
	}
	if row5.Status != domain.StatusAbsent {
		t.Fatalf("expected absent, got %s", row5.Status)
	}

	var row6 domain.Attendance
	if err := db.Where("student_id = ?", s6.ID).First(&row6).Error; err != nil {
		t.Fatalf("failed to load row for student 6: %v", err)
	}
	if row6.Status != domain.StatusPresent {
		t.Fatalf("expected default present, got %s", row6.Status)
	}
}

func TestBulkUpsertAttendanceOverwritesInPlace(t *testing.T) {
	db := newTestDB(t)
	repo := NewAttendanceRepository(db)
	teacher := seedUser(t, db, "teacher@school.test", domain.RoleTeacher)
	other := seedUser(t, db, "other@school.test", domain.RoleTeacher)
	class := seedClass(t, db, "Math 101", &teacher.ID)
	student := seedStudent(t, db, "S-1", &class.ID)

	date, _ := domain.ParseDate("2024-01-10")

	if _, err := repo.BulkUpsertAttendance(context.Background(), class.ID, date,
		[]domain.BulkAttendanceRecord{{StudentID: student.ID, Status: domain.StatusLate}}, teacher.ID); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}

	var original domain.Attendance
	if err := db.Where("student_id = ?", student.ID).First(&original).Error; err != nil {
		t.Fatalf("failed to load original row: %v", err)
	}

	notes := "arrived eventually"
	if _, err := repo.BulkUpsertAttendance(context.Background(), class.ID, date,
		[]domain.BulkAttendanceRecord{{StudentID: student.ID, Status: domain.StatusPresent, Notes: &notes}}, other.ID); err != nil {
		t.Fatalf("second submit failed: %v", err)
	}

	var updated domain.Attendance
	if err := db.Where("student_id = ?", student.ID).First(&updated).Error; err != nil {
		t.Fatalf("failed to load updated row: %v", err)
	}

	if updated.ID != original.ID {
		t.Fatalf("expected the same row to be updated, got new id %d", updated.ID)
	}
	if updated.Status != domain.StatusPresent {
		t.Fatalf("expected present, got %s", updated.Status)
	}
	if updated.Notes == nil || *updated.Notes != notes {
		t.Fatalf("expected notes to be overwritten")
	}
	if updated.MarkedBy == nil || *updated.MarkedBy != other.ID {
		t.Fatalf("expected marked_by to move to the second marker")
	}
	if !updated.CreatedAt.Equal(original.CreatedAt) {
		t.Fatalf("expected created_at to be preserved on update")
	}
}

func TestBulkUpsertAttendanceCountsUnresolvedStudents(t *testing.T) {
	db := newTestDB(t)
	repo := NewAttendanceRepository(db)
	teacher := seedUser(t, db, "teacher@school.test", domain.RoleTeacher)
	class := seedClass(t, db, "Math 101", &teacher.ID)
	student := seedStudent(t, db, "S-1", &class.ID)

	date, _ := domain.ParseDate("2024-01-10")

	records := []domain.BulkAttendanceRecord{
		{StudentID: student.ID, Status: domain.StatusPresent},
		{StudentID: 99999, Status: domain.StatusAbsent}, // resolves to nothing
	}

	processed, err := repo.BulkUpsertAttendance(context.Background(), class.ID, date, records, teacher.ID)
	if err != nil {
		t.Fatalf("bulk upsert failed: %v", err)
	}
	if processed != 2 {
		t.Fatalf("expected unresolved record to still count, got %d", processed)
	}

	var count int64
	db.Model(&domain.Attendance{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected only 1 row stored, got %d", count)
	}
}

func TestCreateAttendancePermitsDuplicates(t *testing.T) {
	db := newTestDB(t)
	repo := NewAttendanceRepository(db)
	teacher := seedUser(t, db, "teacher@school.test", domain.RoleTeacher)
	class := seedClass(t, db, "Math 101", &teacher.ID)
	student := seedStudent(t, db, "S-1", &class.ID)

	date, _ := domain.ParseDate("2024-01-10")
	marker := teacher.ID

	for i := 0; i < 2; i++ {
		record := domain.Attendance{
			StudentID: student.ID,
			ClassID:   class.ID,
			Date:      date,
			Status:    domain.StatusPresent,
			MarkedBy:  &marker,
		}
		if err := repo.CreateAttendance(context.Background(), &record); err != nil {
			t.Fatalf("insert %d failed: %v", i, err)
		}
	}

	var count int64
	db.Model(&domain.Attendance{}).Count(&count)
	if count != 2 {
		t.Fatalf("single-record path must not dedupe, got %d rows", count)
	}
}

func TestGetAttendanceByClassAndDateEnrichment(t *testing.T) {
	db := newTestDB(t)
	repo := NewAttendanceRepository(db)
	teacher := seedUser(t, db, "teacher@school.test", domain.RoleTeacher)
	class := seedClass(t, db, "Math 101", &teacher.ID)
	student := seedStudent(t, db, "S-1", &class.ID)

	date, _ := domain.ParseDate("2024-01-10")
	marker := teacher.ID

	rows := []domain.Attendance{
		{StudentID: student.ID, ClassID: class.ID, Date: date, Status: domain.StatusLate, MarkedBy: &marker},
		{StudentID: 99999, ClassID: class.ID, Date: date, Status: domain.StatusAbsent, MarkedBy: &marker},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("failed to seed attendance: %v", err)
		}
	}

	records, err := repo.GetAttendanceByClassAndDate(context.Background(), class.ID, date)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(*records) != 1 {
		t.Fatalf("expected dangling rows to be omitted, got %d records", len(*records))
	}

	got := (*records)[0]
	if got.StudentName != student.FirstName+" "+student.LastName {
		t.Fatalf("unexpected student name %q", got.StudentName)
	}
	if got.StudentNumber != student.StudentID {
		t.Fatalf("unexpected student number %q", got.StudentNumber)
	}
}

func TestGetAttendanceByStudentOrdersByDateDesc(t *testing.T) {
	db := newTestDB(t)
	repo := NewAttendanceRepository(db)
	teacher := seedUser(t, db, "teacher@school.test", domain.RoleTeacher)
	class := seedClass(t, db, "Math 101", &teacher.ID)
	student := seedStudent(t, db, "S-1", &class.ID)

	for _, day := range []string{"2024-01-10", "2024-01-12", "2024-01-11"} {
		date, _ := domain.ParseDate(day)
		row := domain.Attendance{StudentID: student.ID, ClassID: class.ID, Date: date, Status: domain.StatusPresent}
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("failed to seed attendance: %v", err)
		}
	}

	records, err := repo.GetAttendanceByStudent(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(*records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(*records))
	}
	for i := 1; i < len(*records); i++ {
		if (*records)[i].Date.After((*records)[i-1].Date) {
			t.Fatalf("records not ordered by date desc")
		}
	}
}

func TestBulkUpsertAttendanceNotifiesClassTeacher(t *testing.T) {
	db := newTestDB(t)
	repo := NewAttendanceRepository(db)
	teacher := seedUser(t, db, "teacher@school.test", domain.RoleTeacher)
	marker := seedUser(t, db, "admin@school.test", domain.RoleAdmin)
	class := seedClass(t, db, "Math 101", &teacher.ID)
	student := seedStudent(t, db, "S-1", &class.ID)

	date, _ := domain.ParseDate("2024-01-10")
	if _, err := repo.BulkUpsertAttendance(context.Background(), class.ID, date,
		[]domain.BulkAttendanceRecord{{StudentID: student.ID}}, marker.ID); err != nil {
		t.Fatalf("bulk upsert failed: %v", err)
	}

	var count int64
	db.Model(&domain.Notification{}).Where("user_id = ?", teacher.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected the owning teacher to receive 1 notification, got %d", count)
	}
}
