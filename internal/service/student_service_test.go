package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"studentmgmt/internal/errors"
	"studentmgmt/internal/model"
)

func TestStudentService_Create(t *testing.T) {
	tests := []struct {
		name          string
		student       model.Student
		setupMock     func(*MockStudentRepository)
		expectedError error
	}{
		{
			name:    "successful create",
			student: model.Student{FirstName: "Maria", LastName: "Papadopoulou", CurrentFee: dec("20")},
			setupMock: func(m *MockStudentRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Student")).Return(nil)
			},
		},
		{
			name:          "negative fee rejected",
			student:       model.Student{FirstName: "Maria", LastName: "Papadopoulou", CurrentFee: dec("-1")},
			setupMock:     func(m *MockStudentRepository) {},
			expectedError: errors.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockStudentRepository)
			tt.setupMock(mockRepo)

			service := NewStudentService(mockRepo, new(MockLessonRepository), new(MockPaymentRepository), nil)
			err := service.Create(context.Background(), &tt.student)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestStudentService_Delete(t *testing.T) {
	tests := []struct {
		name          string
		lessonCount   int64
		paymentCount  int64
		expectedError error
	}{
		{
			name: "delete with no history",
		},
		{
			name:          "refused while lessons exist",
			lessonCount:   3,
			expectedError: errors.ErrStudentInUse,
		},
		{
			name:          "refused while payments exist",
			paymentCount:  1,
			expectedError: errors.ErrStudentInUse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStudents := new(MockStudentRepository)
			mockLessons := new(MockLessonRepository)
			mockPayments := new(MockPaymentRepository)

			mockStudents.On("FindByID", mock.Anything, uint(1)).Return(&model.Student{ID: 1}, nil)
			mockLessons.On("CountByStudent", mock.Anything, uint(1)).Return(tt.lessonCount, nil)
			mockPayments.On("CountByStudent", mock.Anything, uint(1)).Return(tt.paymentCount, nil).Maybe()
			if tt.expectedError == nil {
				mockStudents.On("Delete", mock.Anything, uint(1)).Return(nil)
			}

			service := NewStudentService(mockStudents, mockLessons, mockPayments, nil)
			err := service.Delete(context.Background(), 1)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				mockStudents.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}
			mockStudents.AssertExpectations(t)
		})
	}
}

func TestStudentService_Delete_NotFound(t *testing.T) {
	mockStudents := new(MockStudentRepository)
	mockStudents.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

	service := NewStudentService(mockStudents, new(MockLessonRepository), new(MockPaymentRepository), nil)
	err := service.Delete(context.Background(), 404)

	assert.ErrorIs(t, err, errors.ErrStudentNotFound)
}

func TestStudentService_Update_PreservesCreatedAt(t *testing.T) {
	mockStudents := new(MockStudentRepository)
	existing := &model.Student{ID: 1, CurrentFee: dec("20")}
	mockStudents.On("FindByID", mock.Anything, uint(1)).Return(existing, nil)
	mockStudents.On("Update", mock.Anything, mock.AnythingOfType("*model.Student")).Return(nil)

	service := NewStudentService(mockStudents, new(MockLessonRepository), new(MockPaymentRepository), nil)

	edited := model.Student{ID: 1, FirstName: "Maria", CurrentFee: dec("25")}
	err := service.Update(context.Background(), &edited)

	assert.NoError(t, err)
	assert.Equal(t, existing.CreatedAt, edited.CreatedAt)
	mockStudents.AssertExpectations(t)
}

func TestStudentService_Get(t *testing.T) {
	mockStudents := new(MockStudentRepository)
	mockStudents.On("FindByID", mock.Anything, uint(1)).
		Return(&model.Student{ID: 1, FirstName: "Maria"}, nil)

	service := NewStudentService(mockStudents, new(MockLessonRepository), new(MockPaymentRepository), nil)
	student, err := service.Get(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, "Maria", student.FirstName)
}
