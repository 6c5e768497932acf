package domain

import (
	"context"
	"time"
)

type Class struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Description  *string   `gorm:"type:text" json:"description,omitempty"`
	GradeLevel   *string   `gorm:"type:varchar(50)" json:"grade_level,omitempty"`
	AcademicYear *string   `gorm:"type:varchar(20)" json:"academic_year,omitempty"`
	TeacherID    *int      `gorm:"index" json:"teacher_id,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type ClassCreateRequest struct {
	Name         string  `json:"name" valid:"required~Name is required,stringlength(1|100)~Name must be 1 to 100 characters"`
	Description  *string `json:"description"`
	GradeLevel   *string `json:"grade_level"`
	AcademicYear *string `json:"academic_year"`
	TeacherID    *int    `json:"teacher_id"`
}

type ClassPatch struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	GradeLevel   *string `json:"grade_level"`
	AcademicYear *string `json:"academic_year"`
	TeacherID    *int    `json:"teacher_id"`
}

// ClassWithStudentCount enriches a class with a live roster count.
type ClassWithStudentCount struct {
	Class
	StudentCount int64 `json:"student_count"`
}

type ClassRepo interface {
	CreateClass(ctx context.Context, class *Class) error
	GetAllClasses(ctx context.Context, actor *Claims) (*[]ClassWithStudentCount, error)
	GetClassByID(ctx context.Context, id int) (*Class, error)
	UpdateClass(ctx context.Context, id int, patch *ClassPatch) (*Class, error)
	DeleteClass(ctx context.Context, id int) error
}

type ClassUseCase interface {
	CreateClass(ctx context.Context, req *ClassCreateRequest, actor *Claims) (*Class, error)
	GetAllClasses(ctx context.Context, actor *Claims) (*[]ClassWithStudentCount, error)
	GetClassByID(ctx context.Context, id int) (*Class, error)
	UpdateClass(ctx context.Context, id int, patch *ClassPatch) (*Class, error)
	DeleteClass(ctx context.Context, id int) error
}
