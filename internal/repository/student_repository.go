package repository

import (
	"context"

	"gorm.io/gorm"

	"studentmgmt/internal/model"
)

// StudentFilter narrows student list queries. Zero values mean "no filter".
type StudentFilter struct {
	Query      string // matches first or last name, substring
	LocationID uint
	SubjectID  uint
	GradeID    uint
	YearStart  int
}

// StudentRepository defines student persistence operations.
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	Update(ctx context.Context, student *model.Student) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Student, error)
	List(ctx context.Context, filter StudentFilter) ([]model.Student, error)
	ListAll(ctx context.Context) ([]model.Student, error)
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository creates a new student repository.
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

// Create creates a new student.
func (r *studentRepository) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

// Update updates an existing student.
func (r *studentRepository) Update(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Save(student).Error
}

// Delete removes a student by ID.
func (r *studentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Student{}, id).Error
}

// FindByID finds a student by ID with lookup relations preloaded.
func (r *studentRepository) FindByID(ctx context.Context, id uint) (*model.Student, error) {
	var student model.Student
	if err := r.db.WithContext(ctx).
		Preload("Location").Preload("Subject").Preload("Grade").
		First(&student, id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

// List returns students matching the filter, ordered by primary key.
func (r *studentRepository) List(ctx context.Context, filter StudentFilter) ([]model.Student, error) {
	q := r.db.WithContext(ctx).Model(&model.Student{}).
		Preload("Location").Preload("Subject").Preload("Grade").
		Order("id")

	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		q = q.Where("first_name LIKE ? OR last_name LIKE ?", like, like)
	}
	if filter.LocationID != 0 {
		q = q.Where("location_id = ?", filter.LocationID)
	}
	if filter.SubjectID != 0 {
		q = q.Where("subject_id = ?", filter.SubjectID)
	}
	if filter.GradeID != 0 {
		q = q.Where("grade_id = ?", filter.GradeID)
	}
	if filter.YearStart != 0 {
		q = q.Where("year_start = ?", filter.YearStart)
	}

	var students []model.Student
	if err := q.Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

// ListAll returns every student in primary-key order.
func (r *studentRepository) ListAll(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	if err := r.db.WithContext(ctx).Order("id").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}
