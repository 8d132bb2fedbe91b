package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"studentmgmt/internal/model"
)

// LessonFilter narrows lesson list queries. Zero values mean "no filter".
type LessonFilter struct {
	StudentID uint
	From      time.Time
	To        time.Time
}

// LessonRepository defines lesson persistence operations. Create is expected
// to run inside WithTransaction together with FindStudentForUpdate so the
// fee snapshot and the insert commit atomically.
type LessonRepository interface {
	Create(ctx context.Context, lesson *model.Lesson) error
	Update(ctx context.Context, lesson *model.Lesson) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Lesson, error)
	List(ctx context.Context, filter LessonFilter) ([]model.Lesson, error)
	ListAll(ctx context.Context) ([]model.Lesson, error)
	CountByStudent(ctx context.Context, studentID uint) (int64, error)
	// FindStudentForUpdate row-locks the owning student so a concurrent
	// current_fee edit cannot be observed half-applied during fee resolution.
	FindStudentForUpdate(ctx context.Context, studentID uint) (*model.Student, error)
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo LessonRepository) error) error
}

type lessonRepository struct {
	db *gorm.DB
}

// NewLessonRepository creates a new lesson repository.
func NewLessonRepository(db *gorm.DB) LessonRepository {
	return &lessonRepository{db: db}
}

// Create creates a new lesson.
func (r *lessonRepository) Create(ctx context.Context, lesson *model.Lesson) error {
	return r.db.WithContext(ctx).Create(lesson).Error
}

// Update updates an existing lesson.
func (r *lessonRepository) Update(ctx context.Context, lesson *model.Lesson) error {
	return r.db.WithContext(ctx).Save(lesson).Error
}

// Delete removes a lesson by ID.
func (r *lessonRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Lesson{}, id).Error
}

// FindByID finds a lesson by ID.
func (r *lessonRepository) FindByID(ctx context.Context, id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	if err := r.db.WithContext(ctx).Preload("Student").First(&lesson, id).Error; err != nil {
		return nil, err
	}
	return &lesson, nil
}

// List returns lessons matching the filter, ordered by date then ID.
func (r *lessonRepository) List(ctx context.Context, filter LessonFilter) ([]model.Lesson, error) {
	q := r.db.WithContext(ctx).Model(&model.Lesson{}).
		Preload("Student").
		Order("date, id")

	if filter.StudentID != 0 {
		q = q.Where("student_id = ?", filter.StudentID)
	}
	if !filter.From.IsZero() {
		q = q.Where("date >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		q = q.Where("date <= ?", filter.To)
	}

	var lessons []model.Lesson
	if err := q.Find(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

// ListAll returns every lesson in primary-key order.
func (r *lessonRepository) ListAll(ctx context.Context) ([]model.Lesson, error) {
	var lessons []model.Lesson
	if err := r.db.WithContext(ctx).Order("id").Find(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

// CountByStudent counts lessons referencing a student.
func (r *lessonRepository) CountByStudent(ctx context.Context, studentID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Lesson{}).
		Where("student_id = ?", studentID).Count(&count).Error
	return count, err
}

// FindStudentForUpdate finds the owning student with a row-level lock.
func (r *lessonRepository) FindStudentForUpdate(ctx context.Context, studentID uint) (*model.Student, error) {
	var student model.Student
	if err := r.db.WithContext(ctx).Set("gorm:query_option", "FOR UPDATE").
		First(&student, studentID).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

// WithTransaction executes a function within a database transaction.
func (r *lessonRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo LessonRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &lessonRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
