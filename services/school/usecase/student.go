package usecase

import (
	"context"
	"strings"
	"time"

	"schoolms/domain"
)

type studentUC struct {
	studentRepo domain.StudentRepo
	TimeOut     time.Duration
}

func NewStudentUseCase(repo domain.StudentRepo, timeOut time.Duration) domain.StudentUseCase {
	return &studentUC{
		studentRepo: repo,
		TimeOut:     timeOut,
	}
}

func (su *studentUC) CreateStudent(ctx context.Context, req *domain.StudentCreateRequest) (*domain.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, su.TimeOut)
	defer cancel()

	student := &domain.Student{
		StudentID:      strings.TrimSpace(req.StudentID),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		DateOfBirth:    req.DateOfBirth,
		Gender:         req.Gender,
		Address:        req.Address,
		ProfilePicture: req.ProfilePicture,
		ClassID:        req.ClassID,
		ParentName:     req.ParentName,
		ParentPhone:    req.ParentPhone,
		ParentEmail:    req.ParentEmail,
		IsActive:       true,
	}

	if err := su.studentRepo.CreateStudent(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (su *studentUC) GetAllStudents(ctx context.Context, filter *domain.StudentFilter) (*[]domain.Student, error) {
	return su.studentRepo.GetAllStudents(ctx, filter)
}

func (su *studentUC) GetStudentByID(ctx context.Context, id int) (*domain.StudentWithClass, error) {
	return su.studentRepo.GetStudentByID(ctx, id)
}

func (su *studentUC) UpdateStudent(ctx context.Context, id int, patch *domain.StudentPatch) (*domain.Student, error) {
	return su.studentRepo.UpdateStudent(ctx, id, patch)
}

func (su *studentUC) DeleteStudent(ctx context.Context, id int) error {
	return su.studentRepo.DeleteStudent(ctx, id)
}
