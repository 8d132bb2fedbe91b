package service

import (
	"context"

	"gorm.io/gorm"

	"studentmgmt/internal/errors"
	"studentmgmt/internal/model"
	"studentmgmt/internal/repository"
)

// PaymentService handles payment CRUD. Payments carry no derived fields;
// the only rules are a valid owning student and a non-negative amount.
type PaymentService interface {
	Create(ctx context.Context, payment *model.Payment) error
	Update(ctx context.Context, payment *model.Payment) error
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*model.Payment, error)
	List(ctx context.Context, filter repository.PaymentFilter) ([]model.Payment, error)
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	studentRepo repository.StudentRepository
}

// NewPaymentService creates a new payment service.
func NewPaymentService(paymentRepo repository.PaymentRepository, studentRepo repository.StudentRepository) PaymentService {
	return &paymentService{paymentRepo: paymentRepo, studentRepo: studentRepo}
}

// Create persists a payment after checking the owning student exists.
func (s *paymentService) Create(ctx context.Context, payment *model.Payment) error {
	if payment.Amount.Sign() < 0 {
		return errors.ErrInvalidAmount
	}
	if payment.StudentID == 0 {
		return errors.ErrMissingStudent
	}
	if _, err := s.studentRepo.FindByID(ctx, payment.StudentID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrMissingStudent
		}
		return err
	}
	return s.paymentRepo.Create(ctx, payment)
}

// Update saves an edited payment.
func (s *paymentService) Update(ctx context.Context, payment *model.Payment) error {
	if payment.Amount.Sign() < 0 {
		return errors.ErrInvalidAmount
	}
	existing, err := s.paymentRepo.FindByID(ctx, payment.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrPaymentNotFound
		}
		return err
	}
	if payment.StudentID == 0 {
		payment.StudentID = existing.StudentID
	}
	payment.CreatedAt = existing.CreatedAt

	return s.paymentRepo.Update(ctx, payment)
}

// Delete removes a payment.
func (s *paymentService) Delete(ctx context.Context, id uint) error {
	if _, err := s.paymentRepo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrPaymentNotFound
		}
		return err
	}
	return s.paymentRepo.Delete(ctx, id)
}

// Get retrieves a payment by ID.
func (s *paymentService) Get(ctx context.Context, id uint) (*model.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPaymentNotFound
		}
		return nil, err
	}
	return payment, nil
}

// List returns payments matching the filter.
func (s *paymentService) List(ctx context.Context, filter repository.PaymentFilter) ([]model.Payment, error) {
	return s.paymentRepo.List(ctx, filter)
}
