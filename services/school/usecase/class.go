package usecase

import (
	"context"
	"time"

	"schoolms/domain"
)

type classUC struct {
	classRepo domain.ClassRepo
	TimeOut   time.Duration
}

func NewClassUseCase(repo domain.ClassRepo, timeOut time.Duration) domain.ClassUseCase {
	return &classUC{
		classRepo: repo,
		TimeOut:   timeOut,
	}
}

func (cu *classUC) CreateClass(ctx context.Context, req *domain.ClassCreateRequest, actor *domain.Claims) (*domain.Class, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	class := &domain.Class{
		Name:         req.Name,
		Description:  req.Description,
		GradeLevel:   req.GradeLevel,
		AcademicYear: req.AcademicYear,
		TeacherID:    req.TeacherID,
	}
	// A class created without an owner belongs to its creator.
	if class.TeacherID == nil {
		owner := actor.UserID
		class.TeacherID = &owner
	}

	if err := cu.classRepo.CreateClass(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

func (cu *classUC) GetAllClasses(ctx context.Context, actor *domain.Claims) (*[]domain.ClassWithStudentCount, error) {
	return cu.classRepo.GetAllClasses(ctx, actor)
}

func (cu *classUC) GetClassByID(ctx context.Context, id int) (*domain.Class, error) {
	return cu.classRepo.GetClassByID(ctx, id)
}

func (cu *classUC) UpdateClass(ctx context.Context, id int, patch *domain.ClassPatch) (*domain.Class, error) {
	return cu.classRepo.UpdateClass(ctx, id, patch)
}

func (cu *classUC) DeleteClass(ctx context.Context, id int) error {
	return cu.classRepo.DeleteClass(ctx, id)
}
