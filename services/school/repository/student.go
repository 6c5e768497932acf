package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"schoolms/domain"
)

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) domain.StudentRepo {
	return &studentRepository{
		db: db,
	}
}

func (sr *studentRepository) CreateStudent(ctx context.Context, student *domain.Student) error {
	// The external student id must stay unique across every row ever
	// created, soft-deleted ones included.
	var existing domain.Student
	err := sr.db.WithContext(ctx).Where("student_id = ?", student.StudentID).First(&existing).Error
	if err == nil {
		return domain.ErrDuplicate
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("error checking student id: %w", err)
	}

	return sr.db.WithContext(ctx).Create(student).Error
}

func (sr *studentRepository) GetAllStudents(ctx context.Context, filter *domain.StudentFilter) (*[]domain.Student, error) {
	query := sr.db.WithContext(ctx).Where("is_active = ?", true)

	if filter != nil {
		if filter.ClassID != nil {
			query = query.Where("class_id = ?", *filter.ClassID)
		}
		if filter.Search != "" {
			term := "%" + strings.ToLower(filter.Search) + "%"
			query = query.Where(
				"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(student_id) LIKE ?",
				term, term, term,
			)
		}
	}

	var students []domain.Student
	if err := query.Find(&students).Error; err != nil {
		return nil, err
	}
	return &students, nil
}

func (sr *studentRepository) GetStudentByID(ctx context.Context, id int) (*domain.StudentWithClass, error) {
	// Point lookups return soft-deleted students too.
	var student domain.Student
	if err := sr.db.WithContext(ctx).Where("id = ?", id).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	result := domain.StudentWithClass{Student: student}
	if student.ClassID != nil {
		var class domain.Class
		if err := sr.db.WithContext(ctx).Where("id = ?", *student.ClassID).First(&class).Error; err == nil {
			result.ClassName = &class.Name
		}
	}

	return &result, nil
}

func (sr *studentRepository) UpdateStudent(ctx context.Context, id int, patch *domain.StudentPatch) (*domain.Student, error) {
	var student domain.Student
	if err := sr.db.WithContext(ctx).Where("id = ?", id).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if patch.FirstName != nil {
		student.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		student.LastName = *patch.LastName
	}
	if patch.Email != nil {
		student.Email = patch.Email
	}
	if patch.Phone != nil {
		student.Phone = patch.Phone
	}
	if patch.DateOfBirth != nil {
		student.DateOfBirth = patch.DateOfBirth
	}
	if patch.Gender != nil {
		student.Gender = patch.Gender
	}
	if patch.Address != nil {
		student.Address = patch.Address
	}
	if patch.ProfilePicture != nil {
		student.ProfilePicture = patch.ProfilePicture
	}
	if patch.ClassID != nil {
		student.ClassID = patch.ClassID
	}
	if patch.ParentName != nil {
		student.ParentName = patch.ParentName
	}
	if patch.ParentPhone != nil {
		student.ParentPhone = patch.ParentPhone
	}
	if patch.ParentEmail != nil {
		student.ParentEmail = patch.ParentEmail
	}
	if patch.IsActive != nil {
		student.IsActive = *patch.IsActive
	}

	if err := sr.db.WithContext(ctx).Save(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (sr *studentRepository) DeleteStudent(ctx context.Context, id int) error {
	var student domain.Student
	if err := sr.db.WithContext(ctx).Where("id = ?", id).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	// Soft delete: the row stays so the student_id can never be reused.
	return sr.db.WithContext(ctx).Model(&student).Update("is_active", false).Error
}
