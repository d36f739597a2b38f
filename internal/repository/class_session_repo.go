package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/L4U04/salvaluno/internal/model"
)

// ClassSessionRepository is the class-schedule data-access interface.
type ClassSessionRepository interface {
	ListByUser(ctx context.Context, userID string) ([]model.ClassSession, error)
	GetByID(ctx context.Context, id string) (*model.ClassSession, error)
	Create(ctx context.Context, session *model.ClassSession) error
	BatchCreate(ctx context.Context, sessions []model.ClassSession) error
	Update(ctx context.Context, session *model.ClassSession) error
	Delete(ctx context.Context, id string) error
	// UpdateColorBySubject recolors every session of one subject
	// (case-insensitive) so the whole subject renders identically.
	UpdateColorBySubject(ctx context.Context, userID, subjectName, color string) error
}

type classSessionRepo struct {
	db *gorm.DB
}

// NewClassSessionRepo creates a ClassSessionRepository.
func NewClassSessionRepo(db *gorm.DB) ClassSessionRepository {
	return &classSessionRepo{db: db}
}

func (r *classSessionRepo) ListByUser(ctx context.Context, userID string) ([]model.ClassSession, error) {
	var sessions []model.ClassSession
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("day ASC, start_time ASC").
		Find(&sessions).Error
	return sessions, err
}

func (r *classSessionRepo) GetByID(ctx context.Context, id string) (*model.ClassSession, error) {
	var session model.ClassSession
	err := r.db.WithContext(ctx).First(&session, "class_session_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *classSessionRepo) Create(ctx context.Context, session *model.ClassSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *classSessionRepo) BatchCreate(ctx context.Context, sessions []model.ClassSession) error {
	if len(sessions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&sessions).Error
}

func (r *classSessionRepo) Update(ctx context.Context, session *model.ClassSession) error {
	return r.db.WithContext(ctx).Save(session).Error
}

func (r *classSessionRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&model.ClassSession{}, "class_session_id = ?", id).Error
}

func (r *classSessionRepo) UpdateColorBySubject(ctx context.Context, userID, subjectName, color string) error {
	return r.db.WithContext(ctx).
		Model(&model.ClassSession{}).
		Where("user_id = ? AND LOWER(TRIM(subject_name)) = LOWER(TRIM(?))", userID, subjectName).
		Update("color", color).Error
}
