package repository

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"schoolms/domain"
)

// newTestDB opens a private in-memory database per test. The shared cache
// keeps every pooled connection on the same store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&domain.User{},
		&domain.Class{},
		&domain.Student{},
		&domain.Attendance{},
		&domain.Notification{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) *domain.User {
	t.Helper()

	user := domain.User{
		Email:          email,
		HashedPassword: "x",
		FullName:       "Test User",
		Role:           role,
		IsActive:       true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return &user
}

func seedClass(t *testing.T, db *gorm.DB, name string, teacherID *int) *domain.Class {
	t.Helper()

	class := domain.Class{
		Name:      name,
		TeacherID: teacherID,
	}
	if err := db.Create(&class).Error; err != nil {
		t.Fatalf("failed to seed class: %v", err)
	}
	return &class
}

func seedStudent(t *testing.T, db *gorm.DB, externalID string, classID *int) *domain.Student {
	t.Helper()

	student := domain.Student{
		StudentID: externalID,
		FirstName: "First" + externalID,
		LastName:  "Last" + externalID,
		ClassID:   classID,
		IsActive:  true,
	}
	if err := db.Create(&student).Error; err != nil {
		t.Fatalf("failed to seed student: %v", err)
	}
	return &student
}

func claimsFor(user *domain.User) *domain.Claims {
	return &domain.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}
}
