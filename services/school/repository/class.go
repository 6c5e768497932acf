package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"schoolms/domain"
)

type classRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) domain.ClassRepo {
	return &classRepository{
		db: db,
	}
}

func (cr *classRepository) CreateClass(ctx context.Context, class *domain.Class) error {
	return cr.db.WithContext(ctx).Create(class).Error
}

func (cr *classRepository) GetAllClasses(ctx context.Context, actor *domain.Claims) (*[]domain.ClassWithStudentCount, error) {
	query := cr.db.WithContext(ctx).Model(&domain.Class{})
	if !domain.IsAdmin(actor) {
		query = query.Where("teacher_id = ?", actor.UserID)
	}

	var classes []domain.Class
	if err := query.Find(&classes).Error; err != nil {
		return nil, err
	}

	// Roster counts are computed live, never stored.
	enriched := make([]domain.ClassWithStudentCount, 0, len(classes))
	for _, class := range classes {
		var count int64
		if err := cr.db.WithContext(ctx).Model(&domain.Student{}).
			Where("class_id = ?", class.ID).Count(&count).Error; err != nil {
			return nil, err
		}
		enriched = append(enriched, domain.ClassWithStudentCount{
			Class:        class,
			StudentCount: count,
		})
	}

	return &enriched, nil
}

func (cr *classRepository) GetClassByID(ctx context.Context, id int) (*domain.Class, error) {
	var class domain.Class
	if err := cr.db.WithContext(ctx).Where("id = ?", id).First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &class, nil
}

func (cr *classRepository) UpdateClass(ctx context.Context, id int, patch *domain.ClassPatch) (*domain.Class, error) {
	var class domain.Class
	if err := cr.db.WithContext(ctx).Where("id = ?", id).First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if patch.Name != nil {
		class.Name = *patch.Name
	}
	if patch.Description != nil {
		class.Description = patch.Description
	}
	if patch.GradeLevel != nil {
		class.GradeLevel = patch.GradeLevel
	}
	if patch.AcademicYear != nil {
		class.AcademicYear = patch.AcademicYear
	}
	if patch.TeacherID != nil {
		class.TeacherID = patch.TeacherID
	}

	if err := cr.db.WithContext(ctx).Save(&class).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

func (cr *classRepository) DeleteClass(ctx context.Context, id int) error {
	var class domain.Class
	if err := cr.db.WithContext(ctx).Where("id = ?", id).First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return cr.db.WithContext(ctx).Delete(&class).Error
}
