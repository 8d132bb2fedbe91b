package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"studentmgmt/internal/model"
)

// PaymentFilter narrows payment list queries. Zero values mean "no filter".
type PaymentFilter struct {
	StudentID uint
	From      time.Time
	To        time.Time
}

// PaymentRepository defines payment persistence operations.
type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
	Update(ctx context.Context, payment *model.Payment) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Payment, error)
	List(ctx context.Context, filter PaymentFilter) ([]model.Payment, error)
	ListAll(ctx context.Context) ([]model.Payment, error)
	CountByStudent(ctx context.Context, studentID uint) (int64, error)
}

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository.
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// Create creates a new payment record.
func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// Update updates an existing payment record.
func (r *paymentRepository) Update(ctx context.Context, payment *model.Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

// Delete removes a payment by ID.
func (r *paymentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Payment{}, id).Error
}

// FindByID finds a payment by ID.
func (r *paymentRepository) FindByID(ctx context.Context, id uint) (*model.Payment, error) {
	var payment model.Payment
	if err := r.db.WithContext(ctx).Preload("Student").First(&payment, id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// List returns payments matching the filter, ordered by date then ID.
func (r *paymentRepository) List(ctx context.Context, filter PaymentFilter) ([]model.Payment, error) {
	q := r.db.WithContext(ctx).Model(&model.Payment{}).
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

	var payments []model.Payment
	if err := q.Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// ListAll returns every payment in primary-key order.
func (r *paymentRepository) ListAll(ctx context.Context) ([]model.Payment, error) {
	var payments []model.Payment
	if err := r.db.WithContext(ctx).Order("id").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// CountByStudent counts payments referencing a student.
func (r *paymentRepository) CountByStudent(ctx context.Context, studentID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("student_id = ?", studentID).Count(&count).Error
	return count, err
}
