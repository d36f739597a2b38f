package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/L4U04/salvaluno/internal/model"
)

// UniversityRepository is the universities/campuses lookup interface.
type UniversityRepository interface {
	List(ctx context.Context) ([]model.University, error)
	GetCampus(ctx context.Context, campusID string) (*model.Campus, error)
}

type universityRepo struct {
	db *gorm.DB
}

// NewUniversityRepo creates a UniversityRepository.
func NewUniversityRepo(db *gorm.DB) UniversityRepository {
	return &universityRepo{db: db}
}

func (r *universityRepo) List(ctx context.Context) ([]model.University, error) {
	var universities []model.University
	err := r.db.WithContext(ctx).
		Preload("Campuses").
		Order("name ASC").
		Find(&universities).Error
	return universities, err
}

func (r *universityRepo) GetCampus(ctx context.Context, campusID string) (*model.Campus, error) {
	var campus model.Campus
	err := r.db.WithContext(ctx).
		Preload("University").
		First(&campus, "campus_id = ?", campusID).Error
	if err != nil {
		return nil, err
	}
	return &campus, nil
}
