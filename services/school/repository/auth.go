package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolms/domain"
	"schoolms/middleware"
)

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) domain.AuthRepo {
	return &authRepository{
		db: db,
	}
}

func (ar *authRepository) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.User, error) {
	email := strings.ToLower(req.Email)

	var existing domain.User
	err := ar.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, domain.ErrDuplicate
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("error checking email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = domain.RoleTeacher
	}

	user := domain.User{
		Email:          email,
		HashedPassword: string(hashed),
		FullName:       req.FullName,
		Role:           role,
		IsActive:       true,
	}
	if err := ar.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("could not insert user: %w", err)
	}

	// Best effort: the account already exists even if the inbox seed fails.
	welcomeType := "welcome"
	welcome := domain.Notification{
		UserID:           user.ID,
		Title:            "Welcome",
		Message:          fmt.Sprintf("Welcome %s, your account is ready.", user.FullName),
		NotificationType: &welcomeType,
	}
	if err := ar.db.WithContext(ctx).Create(&welcome).Error; err != nil {
		return &user, nil
	}

	return &user, nil
}

func (ar *authRepository) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	var user domain.User
	err := ar.db.WithContext(ctx).Where("email = ?", strings.ToLower(req.Email)).First(&user).Error
	if err != nil {
		return nil, domain.ErrBadCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return nil, domain.ErrBadCredentials
	}

	token, err := middleware.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &domain.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

func (ar *authRepository) ChangePassword(ctx context.Context, userID int, req *domain.PasswordChangeRequest) error {
	var user domain.User
	if err := ar.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.CurrentPassword)); err != nil {
		return domain.ErrBadCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return ar.db.WithContext(ctx).Model(&user).Update("hashed_password", string(hashed)).Error
}

func (ar *authRepository) Me(ctx context.Context, userID int) (*domain.User, error) {
	var user domain.User
	if err := ar.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
