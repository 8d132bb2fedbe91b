package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"studentmgmt/internal/errors"
	"studentmgmt/internal/model"
	"studentmgmt/internal/repository"
)

const bcryptCost = 10

// UserService handles admin-user CRUD.
type UserService interface {
	Create(ctx context.Context, user *model.User, password string) error
	Update(ctx context.Context, user *model.User, password string) error
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Create persists a new user with a bcrypt-hashed password.
func (s *userService) Create(ctx context.Context, user *model.User, password string) error {
	existing, err := s.userRepo.FindByUsername(ctx, user.Username)
	if err == nil && existing != nil {
		return errors.ErrUsernameTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return fmt.Errorf("check username: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hashed)

	return s.userRepo.Create(ctx, user)
}

// Update saves an edited user. An empty password keeps the current hash.
func (s *userService) Update(ctx context.Context, user *model.User, password string) error {
	existing, err := s.userRepo.FindByID(ctx, user.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrUserNotFound
		}
		return err
	}

	if user.Username != existing.Username {
		taken, err := s.userRepo.FindByUsername(ctx, user.Username)
		if err == nil && taken != nil && taken.ID != user.ID {
			return errors.ErrUsernameTaken
		}
		if err != nil && err != gorm.ErrRecordNotFound {
			return fmt.Errorf("check username: %w", err)
		}
	}

	if password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hashed)
	} else {
		user.PasswordHash = existing.PasswordHash
	}
	user.CreatedAt = existing.CreatedAt

	return s.userRepo.Update(ctx, user)
}

// Delete removes a user.
func (s *userService) Delete(ctx context.Context, id uint) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrUserNotFound
		}
		return err
	}
	return s.userRepo.Delete(ctx, id)
}

// Get retrieves a user by ID.
func (s *userService) Get(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// List returns all users.
func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}
