package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/L4U04/salvaluno/internal/model"
)

// BusRepository is the circular-bus data-access interface.
type BusRepository interface {
	// ListActiveRoutes returns the active routes of one university with
	// all their schedule entries preloaded.
	ListActiveRoutes(ctx context.Context, universityID string) ([]model.BusRoute, error)
	// ListSchedulesForDay returns only the schedule entries valid for the
	// given day-type bucket, with their routes preloaded.
	ListSchedulesForDay(ctx context.Context, universityID, dayType string) ([]model.BusSchedule, error)
}

type busRepo struct {
	db *gorm.DB
}

// NewBusRepo creates a BusRepository.
func NewBusRepo(db *gorm.DB) BusRepository {
	return &busRepo{db: db}
}

func (r *busRepo) ListActiveRoutes(ctx context.Context, universityID string) ([]model.BusRoute, error) {
	var routes []model.BusRoute
	err := r.db.WithContext(ctx).
		Preload("Schedules").
		Where("university_id = ? AND is_active = TRUE", universityID).
		Order("name ASC").
		Find(&routes).Error
	return routes, err
}

func (r *busRepo) ListSchedulesForDay(ctx context.Context, universityID, dayType string) ([]model.BusSchedule, error) {
	var schedules []model.BusSchedule
	err := r.db.WithContext(ctx).
		Preload("Route").
		Joins("JOIN bus_routes ON bus_routes.bus_route_id = bus_schedules.route_id").
		Where("bus_routes.university_id = ? AND bus_routes.is_active = TRUE AND bus_schedules.valid_on = ?", universityID, dayType).
		Find(&schedules).Error
	return schedules, err
}
