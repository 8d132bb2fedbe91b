package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"studentmgmt/internal/cache"
	"studentmgmt/internal/errors"
	"studentmgmt/internal/model"
	"studentmgmt/internal/repository"
)

const studentCacheTTL = 5 * time.Minute

// StudentService handles student CRUD.
type StudentService interface {
	Create(ctx context.Context, student *model.Student) error
	Update(ctx context.Context, student *model.Student) error
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*model.Student, error)
	List(ctx context.Context, filter repository.StudentFilter) ([]model.Student, error)
}

type studentService struct {
	studentRepo repository.StudentRepository
	lessonRepo  repository.LessonRepository
	paymentRepo repository.PaymentRepository
	cache       *cache.Client
}

// NewStudentService creates a new student service.
func NewStudentService(
	studentRepo repository.StudentRepository,
	lessonRepo repository.LessonRepository,
	paymentRepo repository.PaymentRepository,
	cache *cache.Client,
) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		lessonRepo:  lessonRepo,
		paymentRepo: paymentRepo,
		cache:       cache,
	}
}

func (s *studentService) cacheKey(id uint) string {
	return fmt.Sprintf("student:%d", id)
}

// Create persists a new student. CurrentFee must be non-negative.
func (s *studentService) Create(ctx context.Context, student *model.Student) error {
	if student.CurrentFee.Sign() < 0 {
		return errors.ErrInvalidAmount
	}
	return s.studentRepo.Create(ctx, student)
}

// Update saves an edited student and drops the cached copy. Changing
// CurrentFee affects future lessons only; fees already snapshotted onto
// lessons stay as they are.
func (s *studentService) Update(ctx context.Context, student *model.Student) error {
	if student.CurrentFee.Sign() < 0 {
		return errors.ErrInvalidAmount
	}
	existing, err := s.studentRepo.FindByID(ctx, student.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrStudentNotFound
		}
		return err
	}
	student.CreatedAt = existing.CreatedAt

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(student.ID))
	return nil
}

// Delete removes a student, refusing while lessons or payments still
// reference it so historical reporting stays intact.
func (s *studentService) Delete(ctx context.Context, id uint) error {
	if _, err := s.studentRepo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrStudentNotFound
		}
		return err
	}

	lessons, err := s.lessonRepo.CountByStudent(ctx, id)
	if err != nil {
		return fmt.Errorf("count lessons: %w", err)
	}
	payments, err := s.paymentRepo.CountByStudent(ctx, id)
	if err != nil {
		return fmt.Errorf("count payments: %w", err)
	}
	if lessons > 0 || payments > 0 {
		return errors.ErrStudentInUse
	}

	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// Get retrieves a student by ID with caching.
func (s *studentService) Get(ctx context.Context, id uint) (*model.Student, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Student
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	student, err := s.studentRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrStudentNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(student); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, studentCacheTTL)
	}
	return student, nil
}

// List returns students matching the filter.
func (s *studentService) List(ctx context.Context, filter repository.StudentFilter) ([]model.Student, error) {
	return s.studentRepo.List(ctx, filter)
}
