package service

import (
	"context"
	"fmt"

	"studentmgmt/internal/billing"
	"studentmgmt/internal/repository"
)

// ReportService builds the per-student balance report. It is a read-only
// composition over the balance engine: load everything, fold, return. No
// caching and no state between calls, so two reads without intervening
// writes return identical rows.
type ReportService interface {
	Balances(ctx context.Context) ([]billing.StudentBalance, error)
}

type reportService struct {
	studentRepo repository.StudentRepository
	lessonRepo  repository.LessonRepository
	paymentRepo repository.PaymentRepository
}

// NewReportService creates a new report service.
func NewReportService(
	studentRepo repository.StudentRepository,
	lessonRepo repository.LessonRepository,
	paymentRepo repository.PaymentRepository,
) ReportService {
	return &reportService{
		studentRepo: studentRepo,
		lessonRepo:  lessonRepo,
		paymentRepo: paymentRepo,
	}
}

// Balances returns one balance row per student, all-time, in primary-key order.
func (s *reportService) Balances(ctx context.Context) ([]billing.StudentBalance, error) {
	students, err := s.studentRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load students: %w", err)
	}
	lessons, err := s.lessonRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load lessons: %w", err)
	}
	payments, err := s.paymentRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load payments: %w", err)
	}

	return billing.ComputeBalances(students, lessons, payments), nil
}
