package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"studentmgmt/internal/billing"
	"studentmgmt/internal/errors"
	"studentmgmt/internal/model"
	"studentmgmt/internal/repository"
)

// LessonService handles lesson CRUD. Creation is the one operation with
// domain logic attached: the fee snapshot taken from the student's current
// rate, inside the same transaction as the insert.
type LessonService interface {
	Create(ctx context.Context, lesson *model.Lesson) error
	Update(ctx context.Context, lesson *model.Lesson) error
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*model.Lesson, error)
	List(ctx context.Context, filter repository.LessonFilter) ([]model.Lesson, error)
}

type lessonService struct {
	lessonRepo repository.LessonRepository
}

// NewLessonService creates a new lesson service.
func NewLessonService(lessonRepo repository.LessonRepository) LessonService {
	return &lessonService{lessonRepo: lessonRepo}
}

// Create persists a lesson. When the lesson carries no explicit fee it is
// resolved from the owning student's CurrentFee; the student row is locked
// and the resolved fee written in the same transaction as the insert, so a
// failed insert leaves no resolver side effect and a concurrent fee edit is
// serialized against this create.
func (s *lessonService) Create(ctx context.Context, lesson *model.Lesson) error {
	if lesson.Hours.Sign() <= 0 {
		return errors.ErrInvalidAmount
	}
	if lesson.Fee.Valid && lesson.Fee.Decimal.Sign() < 0 {
		return errors.ErrInvalidAmount
	}
	if lesson.StudentID == 0 {
		return errors.ErrMissingStudent
	}

	return s.lessonRepo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.LessonRepository) error {
		student, err := txRepo.FindStudentForUpdate(ctx, lesson.StudentID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrMissingStudent
			}
			return fmt.Errorf("load student: %w", err)
		}

		fee, err := billing.ResolveFee(lesson, student)
		if err != nil {
			return err
		}
		lesson.Fee.Decimal = fee
		lesson.Fee.Valid = true

		if err := txRepo.Create(ctx, lesson); err != nil {
			return fmt.Errorf("create lesson: %w", err)
		}
		return nil
	})
}

// Update saves an edited lesson. The fee resolver never runs here: whatever
// fee the caller sends is stored, including none. The source application
// allowed retroactive fee edits and that behavior is kept.
func (s *lessonService) Update(ctx context.Context, lesson *model.Lesson) error {
	if lesson.Hours.Sign() <= 0 {
		return errors.ErrInvalidAmount
	}
	if lesson.Fee.Valid && lesson.Fee.Decimal.Sign() < 0 {
		return errors.ErrInvalidAmount
	}

	existing, err := s.lessonRepo.FindByID(ctx, lesson.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrLessonNotFound
		}
		return err
	}
	if lesson.StudentID == 0 {
		lesson.StudentID = existing.StudentID
	}
	lesson.CreatedAt = existing.CreatedAt

	return s.lessonRepo.Update(ctx, lesson)
}

// Delete removes a lesson.
func (s *lessonService) Delete(ctx context.Context, id uint) error {
	if _, err := s.lessonRepo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrLessonNotFound
		}
		return err
	}
	return s.lessonRepo.Delete(ctx, id)
}

// Get retrieves a lesson by ID.
func (s *lessonService) Get(ctx context.Context, id uint) (*model.Lesson, error) {
	lesson, err := s.lessonRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrLessonNotFound
		}
		return nil, err
	}
	return lesson, nil
}

// List returns lessons matching the filter.
func (s *lessonService) List(ctx context.Context, filter repository.LessonFilter) ([]model.Lesson, error) {
	return s.lessonRepo.List(ctx, filter)
}
