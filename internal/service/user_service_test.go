package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"studentmgmt/internal/errors"
	"studentmgmt/internal/model"
)

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name          string
		user          model.User
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful create hashes the password",
			user:     model.User{Username: "admin"},
			password: "secret123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "admin").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:     "username taken",
			user:     model.User{Username: "admin"},
			password: "secret123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "admin").Return(&model.User{ID: 2, Username: "admin"}, nil)
			},
			expectedError: errors.ErrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewUserService(mockRepo)
			err := service.Create(context.Background(), &tt.user, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, tt.user.PasswordHash)
				assert.NotEqual(t, tt.password, tt.user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(tt.user.PasswordHash), []byte(tt.password)))
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_Update_EmptyPasswordKeepsHash(t *testing.T) {
	mockRepo := new(MockUserRepository)
	existing := &model.User{ID: 1, Username: "admin", PasswordHash: "$2a$10$existinghash"}
	mockRepo.On("FindByID", mock.Anything, uint(1)).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	service := NewUserService(mockRepo)

	edited := model.User{ID: 1, Username: "admin", FirstName: "New"}
	err := service.Update(context.Background(), &edited, "")

	assert.NoError(t, err)
	assert.Equal(t, existing.PasswordHash, edited.PasswordHash)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Update_UsernameChangeChecksUniqueness(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(1)).
		Return(&model.User{ID: 1, Username: "admin"}, nil)
	mockRepo.On("FindByUsername", mock.Anything, "taken").
		Return(&model.User{ID: 2, Username: "taken"}, nil)

	service := NewUserService(mockRepo)
	err := service.Update(context.Background(), &model.User{ID: 1, Username: "taken"}, "")

	assert.ErrorIs(t, err, errors.ErrUsernameTaken)
}
