package domain

import (
	"context"
	"time"
)

const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
)

type User struct {
	ID             int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	HashedPassword string    `gorm:"type:varchar(255);not null" json:"-"`
	FullName       string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Role           string    `gorm:"type:varchar(50);default:teacher" json:"role"`
	ProfilePicture *string   `gorm:"type:varchar(500)" json:"profile_picture,omitempty"`
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// UserPatch carries only the fields the caller provided; nil means unchanged.
type UserPatch struct {
	FullName       *string `json:"full_name"`
	ProfilePicture *string `json:"profile_picture"`
	IsActive       *bool   `json:"is_active"`
}

type UserRepo interface {
	GetAllUsers(ctx context.Context) (*[]User, error)
	GetUserByID(ctx context.Context, id int) (*User, error)
	UpdateUser(ctx context.Context, id int, patch *UserPatch) (*User, error)
}

type UserUseCase interface {
	GetAllUsers(ctx context.Context) (*[]User, error)
	GetUserByID(ctx context.Context, id int) (*User, error)
	UpdateUser(ctx context.Context, id int, patch *UserPatch) (*User, error)
}
