package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/L4U04/salvaluno/internal/dto"
	"github.com/L4U04/salvaluno/internal/model"
	"github.com/L4U04/salvaluno/internal/repository"
)

// ── class-schedule module errors ──

var (
	ErrClassNotFound     = errors.New("aula não encontrada")
	ErrClassNotOwner     = errors.New("sem permissão para alterar esta aula")
	ErrClassMissingField = errors.New("matéria, dia e horários são obrigatórios")
	ErrClassInvalidDay   = errors.New("dia da semana inválido")
	ErrClassInvalidTime  = errors.New("horário fora da grade")
	ErrClassTimeOrder    = errors.New("horário de início deve ser anterior ao de fim")
	ErrClassConflict     = errors.New("já existe uma aula neste horário")
)

// ClassService is the class-schedule business interface.
type ClassService interface {
	// List returns every session of the user's weekly grid.
	List(ctx context.Context, userID string) ([]dto.ClassSessionResponse, error)
	// Create validates and saves a new session. A save with an explicit
	// color also recolors every other session of the same subject.
	Create(ctx context.Context, req *dto.CreateClassSessionRequest, userID string) (*dto.ClassSessionResponse, error)
	// Update applies a partial edit under the same validation rules.
	Update(ctx context.Context, id string, req *dto.UpdateClassSessionRequest, userID string) (*dto.ClassSessionResponse, error)
	// Delete removes one session.
	Delete(ctx context.Context, id string, userID string) error
	// GetGrid returns the weekly layout view-model.
	GetGrid(ctx context.Context, userID string) (*dto.ScheduleGridResponse, error)
	// GetNextClass returns today's soonest not-yet-started session.
	GetNextClass(ctx context.Context, userID string) (*dto.NextClassResponse, error)
	// ImportICS adds sessions parsed from calendar content. Events that
	// collide with the current grid are reported as skipped, never saved.
	ImportICS(ctx context.Context, userID string, reader io.Reader) (*dto.ImportICSResponse, error)
}

type classService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewClassService creates a ClassService.
func NewClassService(repo *repository.Repository, logger *zap.Logger) ClassService {
	return &classService{repo: repo, logger: logger, now: time.Now}
}

func (s *classService) List(ctx context.Context, userID string) ([]dto.ClassSessionResponse, error) {
	sessions, err := s.repo.ClassSession.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list class sessions", zap.Error(err))
		return nil, err
	}
	result := make([]dto.ClassSessionResponse, 0, len(sessions))
	for _, session := range sessions {
		result = append(result, toClassSessionResponse(session))
	}
	return result, nil
}

// validateSessionFields enforces the grid invariants before any write.
func validateSessionFields(subjectName, day, startTime, endTime string) error {
	if subjectName == "" || day == "" || startTime == "" || endTime == "" {
		return ErrClassMissingField
	}
	if !IsValidDay(day) {
		return ErrClassInvalidDay
	}
	if !IsValidStartTime(startTime) || !IsValidEndTime(endTime) {
		return ErrClassInvalidTime
	}
	// zero-padded HH:MM compares lexicographically
	if startTime >= endTime {
		return ErrClassTimeOrder
	}
	return nil
}

func (s *classService) Create(ctx context.Context, req *dto.CreateClassSessionRequest, userID string) (*dto.ClassSessionResponse, error) {
	subjectName := trimSubject(req.SubjectName)
	if err := validateSessionFields(subjectName, req.Day, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	existing, err := s.repo.ClassSession.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to load sessions for conflict check", zap.Error(err))
		return nil, err
	}

	candidate := model.ClassSession{
		UserID:      userID,
		SubjectName: subjectName,
		Professor:   req.Professor,
		Room:        req.Room,
		Day:         req.Day,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}
	if conflict, reason := HasSessionConflict(candidate, existing, ""); conflict {
		s.logger.Debug("class conflict rejected", zap.String("reason", reason))
		return nil, ErrClassConflict
	}

	candidate.Color = ResolveSubjectColor(subjectName, req.Color, existing)

	if err := s.repo.ClassSession.Create(ctx, &candidate); err != nil {
		s.logger.Error("failed to create class session", zap.Error(err))
		return nil, err
	}

	// an explicit color choice recolors the whole subject
	if req.Color != "" {
		s.propagateColor(ctx, userID, subjectName, req.Color, existing)
	}

	resp := toClassSessionResponse(candidate)
	return &resp, nil
}

func (s *classService) Update(ctx context.Context, id string, req *dto.UpdateClassSessionRequest, userID string) (*dto.ClassSessionResponse, error) {
	session, err := s.repo.ClassSession.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrClassNotOwner
	}

	// the pre-edit subject decides which sessions a color change reaches
	originalSubject := session.SubjectName

	if req.SubjectName != nil {
		session.SubjectName = trimSubject(*req.SubjectName)
	}
	if req.Professor != nil {
		session.Professor = *req.Professor
	}
	if req.Room != nil {
		session.Room = *req.Room
	}
	if req.Day != nil {
		session.Day = *req.Day
	}
	if req.StartTime != nil {
		session.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		session.EndTime = *req.EndTime
	}

	if err := validateSessionFields(session.SubjectName, session.Day, session.StartTime, session.EndTime); err != nil {
		return nil, err
	}

	existing, err := s.repo.ClassSession.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to load sessions for conflict check", zap.Error(err))
		return nil, err
	}
	if conflict, reason := HasSessionConflict(*session, existing, session.ClassSessionID); conflict {
		s.logger.Debug("class conflict rejected", zap.String("reason", reason))
		return nil, ErrClassConflict
	}

	if req.Color != nil && *req.Color != "" && *req.Color != session.Color {
		session.Color = *req.Color
		s.propagateColor(ctx, userID, originalSubject, *req.Color, existing)
	}

	if err := s.repo.ClassSession.Update(ctx, session); err != nil {
		s.logger.Error("failed to update class session", zap.Error(err))
		return nil, err
	}

	resp := toClassSessionResponse(*session)
	return &resp, nil
}

func (s *classService) Delete(ctx context.Context, id string, userID string) error {
	session, err := s.repo.ClassSession.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClassNotFound
		}
		return err
	}
	if session.UserID != userID {
		return ErrClassNotOwner
	}
	if err := s.repo.ClassSession.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete class session", zap.Error(err))
		return err
	}
	return nil
}

func (s *classService) GetGrid(ctx context.Context, userID string) (*dto.ScheduleGridResponse, error) {
	sessions, err := s.repo.ClassSession.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list class sessions", zap.Error(err))
		return nil, err
	}
	return &dto.ScheduleGridResponse{
		Days:       ScheduleDays,
		TimePoints: TimePoints,
		Cells:      BuildScheduleGrid(sessions),
	}, nil
}

func (s *classService) GetNextClass(ctx context.Context, userID string) (*dto.NextClassResponse, error) {
	sessions, err := s.repo.ClassSession.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list class sessions", zap.Error(err))
		return nil, err
	}

	now := s.now()
	departures, diagnostics := NextClassDepartures(sessions, now)
	for _, d := range diagnostics {
		s.logger.Warn("skipped malformed class time", zap.String("detail", d))
	}

	next := ResolveNextDeparture(departures, now)
	if next == nil {
		return &dto.NextClassResponse{}, nil
	}

	// recover the full session behind the resolved departure
	for i := range sessions {
		sess := &sessions[i]
		if classDayNumbers[sess.Day] == now.Weekday() && sess.StartTime == next.Time {
			hours, minutes := Countdown(next.OccursAt, now)
			resp := toClassSessionResponse(*sess)
			return &dto.NextClassResponse{
				Class:     &resp,
				Countdown: &dto.CountdownResponse{Hours: hours, Minutes: minutes},
			}, nil
		}
	}
	return &dto.NextClassResponse{}, nil
}

func (s *classService) ImportICS(ctx context.Context, userID string, reader io.Reader) (*dto.ImportICSResponse, error) {
	candidates, skipped, err := ParseClassSessionsICS(reader)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.ClassSession.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to load sessions for import", zap.Error(err))
		return nil, err
	}

	// accepted candidates join the conflict set so imported events also
	// get checked against each other
	current := existing
	var accepted []model.ClassSession

	for _, candidate := range candidates {
		candidate.UserID = userID
		if conflict, reason := HasSessionConflict(candidate, current, ""); conflict {
			skipped = append(skipped, dto.SkippedImportEvent{
				SubjectName: candidate.SubjectName,
				Reason:      reason,
			})
			continue
		}
		candidate.Color = ResolveSubjectColor(candidate.SubjectName, "", current)
		current = append(current, candidate)
		accepted = append(accepted, candidate)
	}

	if len(accepted) > 0 {
		if err := s.repo.ClassSession.BatchCreate(ctx, accepted); err != nil {
			s.logger.Error("failed to save imported sessions", zap.Error(err))
			return nil, err
		}
	}
	s.logger.Info("calendar imported",
		zap.String("user_id", userID),
		zap.Int("imported", len(accepted)),
		zap.Int("skipped", len(skipped)))

	resp := &dto.ImportICSResponse{
		ImportedCount: len(accepted),
		Imported:      make([]dto.ClassSessionResponse, 0, len(accepted)),
		Skipped:       skipped,
	}
	for _, session := range accepted {
		resp.Imported = append(resp.Imported, toClassSessionResponse(session))
	}
	return resp, nil
}

// propagateColor persists a subject-wide recolor; the in-memory form of
// the same operation is PropagateSubjectColor.
func (s *classService) propagateColor(ctx context.Context, userID, subjectName, color string, existing []model.ClassSession) {
	needed := false
	for i := range existing {
		if subjectKey(existing[i].SubjectName) == subjectKey(subjectName) && existing[i].Color != color {
			needed = true
			break
		}
	}
	if !needed {
		return
	}
	if err := s.repo.ClassSession.UpdateColorBySubject(ctx, userID, subjectName, color); err != nil {
		// the edited session already holds the new color; remaining rows
		// catch up on the next explicit save
		s.logger.Warn("failed to propagate subject color", zap.Error(err),
			zap.String("subject", subjectName))
	}
}

func trimSubject(name string) string {
	return strings.TrimSpace(name)
}
