package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"schoolms/domain"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) domain.UserRepo {
	return &userRepository{
		db: db,
	}
}

func (ur *userRepository) GetAllUsers(ctx context.Context) (*[]domain.User, error) {
	var users []domain.User
	if err := ur.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return &users, nil
}

func (ur *userRepository) GetUserByID(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	if err := ur.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (ur *userRepository) UpdateUser(ctx context.Context, id int, patch *domain.UserPatch) (*domain.User, error) {
	var user domain.User
	if err := ur.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if patch.FullName != nil {
		user.FullName = *patch.FullName
	}
	if patch.ProfilePicture != nil {
		user.ProfilePicture = patch.ProfilePicture
	}
	if patch.IsActive != nil {
		user.IsActive = *patch.IsActive
	}

	if err := ur.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
