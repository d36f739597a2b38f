package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/L4U04/salvaluno/internal/dto"
	"github.com/L4U04/salvaluno/internal/model"
	"github.com/L4U04/salvaluno/internal/repository"
)

// ── reminder module errors ──

var (
	ErrReminderNotFound    = errors.New("lembrete não encontrado")
	ErrReminderNotOwner    = errors.New("sem permissão para alterar este lembrete")
	ErrReminderInvalidDate = errors.New("data do lembrete inválida")
)

// priorityOrder drives the list sort: alta first, baixa last.
var priorityOrder = map[string]int{
	model.PriorityAlta:  0,
	model.PriorityMedia: 1,
	model.PriorityBaixa: 2,
}

// ReminderService handles the user's task reminders.
type ReminderService interface {
	// List returns reminders ordered by priority, then by date.
	List(ctx context.Context, userID string) ([]dto.ReminderResponse, error)
	Create(ctx context.Context, req *dto.CreateReminderRequest, userID string) (*dto.ReminderResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateReminderRequest, userID string) (*dto.ReminderResponse, error)
	Delete(ctx context.Context, id string, userID string) error
}

type reminderService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewReminderService creates a ReminderService.
func NewReminderService(repo *repository.Repository, logger *zap.Logger) ReminderService {
	return &reminderService{repo: repo, logger: logger}
}

func (s *reminderService) List(ctx context.Context, userID string) ([]dto.ReminderResponse, error) {
	reminders, err := s.repo.Reminder.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list reminders", zap.Error(err))
		return nil, err
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		pi, pj := priorityOrder[reminders[i].Priority], priorityOrder[reminders[j].Priority]
		if pi != pj {
			return pi < pj
		}
		// undated reminders sink below dated ones within a priority
		switch {
		case reminders[i].Date == nil:
			return false
		case reminders[j].Date == nil:
			return true
		default:
			return reminders[i].Date.Before(*reminders[j].Date)
		}
	})

	result := make([]dto.ReminderResponse, 0, len(reminders))
	for _, r := range reminders {
		result = append(result, toReminderResponse(r))
	}
	return result, nil
}

func (s *reminderService) Create(ctx context.Context, req *dto.CreateReminderRequest, userID string) (*dto.ReminderResponse, error) {
	reminder := model.Reminder{
		UserID:   userID,
		Text:     strings.TrimSpace(req.Text),
		Priority: model.PriorityMedia,
	}
	if req.Priority != "" {
		reminder.Priority = req.Priority
	}
	if req.Subject != "" {
		subject := req.Subject
		reminder.Subject = &subject
	}
	if req.Date != nil && *req.Date != "" {
		date, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			return nil, ErrReminderInvalidDate
		}
		reminder.Date = &date
	}

	if err := s.repo.Reminder.Create(ctx, &reminder); err != nil {
		s.logger.Error("failed to create reminder", zap.Error(err))
		return nil, err
	}
	resp := toReminderResponse(reminder)
	return &resp, nil
}

func (s *reminderService) Update(ctx context.Context, id string, req *dto.UpdateReminderRequest, userID string) (*dto.ReminderResponse, error) {
	reminder, err := s.repo.Reminder.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReminderNotFound
		}
		return nil, err
	}
	if reminder.UserID != userID {
		return nil, ErrReminderNotOwner
	}

	if req.Text != nil && strings.TrimSpace(*req.Text) != "" {
		reminder.Text = strings.TrimSpace(*req.Text)
	}
	if req.Subject != nil {
		if *req.Subject == "" {
			reminder.Subject = nil
		} else {
			reminder.Subject = req.Subject
		}
	}
	if req.Date != nil {
		if *req.Date == "" {
			reminder.Date = nil
		} else {
			date, err := time.Parse(time.RFC3339, *req.Date)
			if err != nil {
				return nil, ErrReminderInvalidDate
			}
			reminder.Date = &date
		}
	}
	if req.Priority != nil && *req.Priority != "" {
		reminder.Priority = *req.Priority
	}

	if err := s.repo.Reminder.Update(ctx, reminder); err != nil {
		s.logger.Error("failed to update reminder", zap.Error(err))
		return nil, err
	}
	resp := toReminderResponse(*reminder)
	return &resp, nil
}

func (s *reminderService) Delete(ctx context.Context, id string, userID string) error {
	reminder, err := s.repo.Reminder.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReminderNotFound
		}
		return err
	}
	if reminder.UserID != userID {
		return ErrReminderNotOwner
	}
	return s.repo.Reminder.Delete(ctx, id)
}

func toReminderResponse(r model.Reminder) dto.ReminderResponse {
	resp := dto.ReminderResponse{
		ID:       r.ReminderID,
		Text:     r.Text,
		Date:     r.Date,
		Priority: r.Priority,
	}
	if r.Subject != nil {
		resp.Subject = *r.Subject
	}
	return resp
}
