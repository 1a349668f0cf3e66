// services/user_service.go
package services

import (
	"context"
	"errors"
	"time"

	"github.com/diogofgomespinheiro/daily-diet-api/models"
	"github.com/diogofgomespinheiro/daily-diet-api/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

func (s *UserService) FindBySessionToken(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("session_token = ?", token).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a fresh user with a new id and session token.
// The unique index on email backs up the Register pre-check.
func (s *UserService) Create(ctx context.Context, name, email string) (*models.User, error) {
	user := &models.User{
		ID:           utils.NewID(),
		SessionToken: utils.NewSessionToken(),
		Name:         name,
		Email:        email,
		CreatedAt:    time.Now().UTC(),
	}
	err := s.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Register returns the existing user for a known email instead of creating
// a duplicate. The boolean reports whether a new user was created.
func (s *UserService) Register(ctx context.Context, name, email string) (*models.User, bool, error) {
	existing, err := s.FindByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, false, err
	}

	user, err := s.Create(ctx, name, email)
	if err != nil {
		return nil, false, err
	}
	return user, true, nil
}
