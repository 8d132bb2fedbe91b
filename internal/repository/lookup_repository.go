package repository

import (
	"context"

	"gorm.io/gorm"

	"studentmgmt/internal/model"
)

// LookupRepository covers the small id+name system tables (locations,
// subjects, grades) that classify students.
type LookupRepository interface {
	ListLocations(ctx context.Context) ([]model.Location, error)
	CreateLocation(ctx context.Context, loc *model.Location) error
	DeleteLocation(ctx context.Context, id uint) error

	ListSubjects(ctx context.Context) ([]model.Subject, error)
	CreateSubject(ctx context.Context, sub *model.Subject) error
	DeleteSubject(ctx context.Context, id uint) error

	ListGrades(ctx context.Context) ([]model.Grade, error)
	CreateGrade(ctx context.Context, grd *model.Grade) error
	DeleteGrade(ctx context.Context, id uint) error
}

type lookupRepository struct {
	db *gorm.DB
}

// NewLookupRepository creates a new lookup repository.
func NewLookupRepository(db *gorm.DB) LookupRepository {
	return &lookupRepository{db: db}
}

func (r *lookupRepository) ListLocations(ctx context.Context) ([]model.Location, error) {
	var out []model.Location
	err := r.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

func (r *lookupRepository) CreateLocation(ctx context.Context, loc *model.Location) error {
	return r.db.WithContext(ctx).Create(loc).Error
}

func (r *lookupRepository) DeleteLocation(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Location{}, id).Error
}

func (r *lookupRepository) ListSubjects(ctx context.Context) ([]model.Subject, error) {
	var out []model.Subject
	err := r.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

func (r *lookupRepository) CreateSubject(ctx context.Context, sub *model.Subject) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *lookupRepository) DeleteSubject(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Subject{}, id).Error
}

func (r *lookupRepository) ListGrades(ctx context.Context) ([]model.Grade, error) {
	var out []model.Grade
	err := r.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

func (r *lookupRepository) CreateGrade(ctx context.Context, grd *model.Grade) error {
	return r.db.WithContext(ctx).Create(grd).Error
}

func (r *lookupRepository) DeleteGrade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Grade{}, id).Error
}
