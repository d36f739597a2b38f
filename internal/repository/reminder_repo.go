package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/L4U04/salvaluno/internal/model"
)

// ReminderRepository is the reminders data-access interface.
type ReminderRepository interface {
	ListByUser(ctx context.Context, userID string) ([]model.Reminder, error)
	GetByID(ctx context.Context, id string) (*model.Reminder, error)
	Create(ctx context.Context, reminder *model.Reminder) error
	Update(ctx context.Context, reminder *model.Reminder) error
	Delete(ctx context.Context, id string) error
}

type reminderRepo struct {
	db *gorm.DB
}

// NewReminderRepo creates a ReminderRepository.
func NewReminderRepo(db *gorm.DB) ReminderRepository {
	return &reminderRepo{db: db}
}

func (r *reminderRepo) ListByUser(ctx context.Context, userID string) ([]model.Reminder, error) {
	var reminders []model.Reminder
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&reminders).Error
	return reminders, err
}

func (r *reminderRepo) GetByID(ctx context.Context, id string) (*model.Reminder, error) {
	var reminder model.Reminder
	err := r.db.WithContext(ctx).First(&reminder, "reminder_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &reminder, nil
}

func (r *reminderRepo) Create(ctx context.Context, reminder *model.Reminder) error {
	return r.db.WithContext(ctx).Create(reminder).Error
}

func (r *reminderRepo) Update(ctx context.Context, reminder *model.Reminder) error {
	return r.db.WithContext(ctx).Save(reminder).Error
}

func (r *reminderRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&model.Reminder{}, "reminder_id = ?", id).Error
}
