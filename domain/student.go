package domain

import (
	"context"
	"time"
)

type Student struct {
	ID             int       `gorm:"primaryKey;autoIncrement" json:"id"`
	StudentID      string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"student_id"`
	FirstName      string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName       string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Email          *string   `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone          *string   `gorm:"type:varchar(20)" json:"phone,omitempty"`
	DateOfBirth    *string   `gorm:"type:varchar(10)" json:"date_of_birth,omitempty"`
	Gender         *string   `gorm:"type:varchar(20)" json:"gender,omitempty"`
	Address        *string   `gorm:"type:text" json:"address,omitempty"`
	ProfilePicture *string   `gorm:"type:varchar(500)" json:"profile_picture,omitempty"`
	ClassID        *int      `gorm:"index" json:"class_id,omitempty"`
	ParentName     *string   `gorm:"type:varchar(255)" json:"parent_name,omitempty"`
	ParentPhone    *string   `gorm:"type:varchar(20)" json:"parent_phone,omitempty"`
	ParentEmail    *string   `gorm:"type:varchar(255)" json:"parent_email,omitempty"`
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type StudentCreateRequest struct {
	StudentID      string  `json:"student_id" valid:"required~Student ID is required,stringlength(1|50)~Student ID must be 1 to 50 characters"`
	FirstName      string  `json:"first_name" valid:"required~First name is required"`
	LastName       string  `json:"last_name" valid:"required~Last name is required"`
	Email          *string `json:"email" valid:"email~Invalid email format,optional~true"`
	Phone          *string `json:"phone"`
	DateOfBirth    *string `json:"date_of_birth"`
	Gender         *string `json:"gender"`
	Address        *string `json:"address"`
	ProfilePicture *string `json:"profile_picture"`
	ClassID        *int    `json:"class_id"`
	ParentName     *string `json:"parent_name"`
	ParentPhone    *string `json:"parent_phone"`
	ParentEmail    *string `json:"parent_email" valid:"email~Invalid email format,optional~true"`
}

// StudentPatch never carries student_id: the external identifier is immutable.
type StudentPatch struct {
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	DateOfBirth    *string `json:"date_of_birth"`
	Gender         *string `json:"gender"`
	Address        *string `json:"address"`
	ProfilePicture *string `json:"profile_picture"`
	ClassID        *int    `json:"class_id"`
	ParentName     *string `json:"parent_name"`
	ParentPhone    *string `json:"parent_phone"`
	ParentEmail    *string `json:"parent_email"`
	IsActive       *bool   `json:"is_active"`
}

type StudentFilter struct {
	ClassID *int
	Search  string
}

type StudentWithClass struct {
	Student
	ClassName *string `json:"class_name,omitempty"`
}

type StudentRepo interface {
	CreateStudent(ctx context.Context, student *Student) error
	GetAllStudents(ctx context.Context, filter *StudentFilter) (*[]Student, error)
	GetStudentByID(ctx context.Context, id int) (*StudentWithClass, error)
	UpdateStudent(ctx context.Context, id int, patch *StudentPatch) (*Student, error)
	DeleteStudent(ctx context.Context, id int) error
}

type StudentUseCase interface {
	CreateStudent(ctx context.Context, req *StudentCreateRequest) (*Student, error)
	GetAllStudents(ctx context.Context, filter *StudentFilter) (*[]Student, error)
	GetStudentByID(ctx context.Context, id int) (*StudentWithClass, error)
	UpdateStudent(ctx context.Context, id int, patch *StudentPatch) (*Student, error)
	DeleteStudent(ctx context.Context, id int) error
}
