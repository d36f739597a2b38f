package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/L4U04/salvaluno/internal/model"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User // keyed by user_id and "email:<email>"
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = fmt.Sprintf("user-%d", len(m.users)+1)
	}
	m.users[user.UserID] = user
	if user.Email != "" {
		m.users["email:"+user.Email] = user
	}
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByIDWithCampus(_ context.Context, id string) (*model.User, error) {
	return m.GetByID(nil, id)
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if u, ok := m.users["email:"+email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	if user.Email != "" {
		m.users["email:"+user.Email] = user
	}
	return nil
}

// ── Mock UniversityRepository ──

type mockUniversityRepo struct {
	universities map[string]*model.University
	campuses     map[string]*model.Campus
}

func newMockUniversityRepo() *mockUniversityRepo {
	return &mockUniversityRepo{
		universities: make(map[string]*model.University),
		campuses: map[string]*model.Campus{
			"valid-campus-id": {
				CampusID:       "valid-campus-id",
				UniversityID:   "valid-university-id",
				Name:           "Campus Cruz das Almas",
				HasCircularBus: true,
				University:     &model.University{UniversityID: "valid-university-id", Name: "Universidade Federal do Recôncavo da Bahia", ShortName: "UFRB"},
			},
			"no-bus-campus-id": {
				CampusID:       "no-bus-campus-id",
				UniversityID:   "valid-university-id",
				Name:           "Campus Feira de Santana",
				HasCircularBus: false,
			},
		},
	}
}

func (m *mockUniversityRepo) List(_ context.Context) ([]model.University, error) {
	var result []model.University
	for _, u := range m.universities {
		result = append(result, *u)
	}
	return result, nil
}

func (m *mockUniversityRepo) GetCampus(_ context.Context, campusID string) (*model.Campus, error) {
	if c, ok := m.campuses[campusID]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock ClassSessionRepository ──

type mockClassSessionRepo struct {
	sessions map[string]*model.ClassSession
	nextID   int
}

func newMockClassSessionRepo() *mockClassSessionRepo {
	return &mockClassSessionRepo{sessions: make(map[string]*model.ClassSession)}
}

func (m *mockClassSessionRepo) ListByUser(_ context.Context, userID string) ([]model.ClassSession, error) {
	var result []model.ClassSession
	for _, s := range m.sessions {
		if s.UserID == userID {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockClassSessionRepo) GetByID(_ context.Context, id string) (*model.ClassSession, error) {
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassSessionRepo) Create(_ context.Context, session *model.ClassSession) error {
	if session.ClassSessionID == "" {
		m.nextID++
		session.ClassSessionID = fmt.Sprintf("class-%d", m.nextID)
	}
	cp := *session
	m.sessions[session.ClassSessionID] = &cp
	return nil
}

func (m *mockClassSessionRepo) BatchCreate(_ context.Context, sessions []model.ClassSession) error {
	for i := range sessions {
		if err := m.Create(nil, &sessions[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockClassSessionRepo) Update(_ context.Context, session *model.ClassSession) error {
	cp := *session
	m.sessions[session.ClassSessionID] = &cp
	return nil
}

func (m *mockClassSessionRepo) Delete(_ context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

func (m *mockClassSessionRepo) UpdateColorBySubject(_ context.Context, userID, subjectName, color string) error {
	key := strings.ToLower(strings.TrimSpace(subjectName))
	for _, s := range m.sessions {
		if s.UserID == userID && strings.ToLower(strings.TrimSpace(s.SubjectName)) == key {
			s.Color = color
		}
	}
	return nil
}

// ── Mock BusRepository ──

type mockBusRepo struct {
	routes    []model.BusRoute
	schedules []model.BusSchedule
}

func newMockBusRepo() *mockBusRepo {
	return &mockBusRepo{}
}

func (m *mockBusRepo) ListActiveRoutes(_ context.Context, universityID string) ([]model.BusRoute, error) {
	var result []model.BusRoute
	for _, r := range m.routes {
		if r.UniversityID == universityID && r.IsActive {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockBusRepo) ListSchedulesForDay(_ context.Context, universityID, dayType string) ([]model.BusSchedule, error) {
	routeUniversity := make(map[string]string)
	for _, r := range m.routes {
		if r.IsActive {
			routeUniversity[r.BusRouteID] = r.UniversityID
		}
	}
	var result []model.BusSchedule
	for _, s := range m.schedules {
		if routeUniversity[s.RouteID] == universityID && s.ValidOn == dayType {
			result = append(result, s)
		}
	}
	return result, nil
}

// ── Mock ReminderRepository ──

type mockReminderRepo struct {
	reminders map[string]*model.Reminder
	nextID    int
}

func newMockReminderRepo() *mockReminderRepo {
	return &mockReminderRepo{reminders: make(map[string]*model.Reminder)}
}

func (m *mockReminderRepo) ListByUser(_ context.Context, userID string) ([]model.Reminder, error) {
	var result []model.Reminder
	for _, r := range m.reminders {
		if r.UserID == userID {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (m *mockReminderRepo) GetByID(_ context.Context, id string) (*model.Reminder, error) {
	if r, ok := m.reminders[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockReminderRepo) Create(_ context.Context, reminder *model.Reminder) error {
	if reminder.ReminderID == "" {
		m.nextID++
		reminder.ReminderID = fmt.Sprintf("reminder-%d", m.nextID)
	}
	cp := *reminder
	m.reminders[reminder.ReminderID] = &cp
	return nil
}

func (m *mockReminderRepo) Update(_ context.Context, reminder *model.Reminder) error {
	cp := *reminder
	m.reminders[reminder.ReminderID] = &cp
	return nil
}

func (m *mockReminderRepo) Delete(_ context.Context, id string) error {
	delete(m.reminders, id)
	return nil
}

// ── Mock FeedbackRepository ──

type mockFeedbackRepo struct {
	entries []model.Feedback
}

func newMockFeedbackRepo() *mockFeedbackRepo {
	return &mockFeedbackRepo{}
}

func (m *mockFeedbackRepo) Create(_ context.Context, feedback *model.Feedback) error {
	if feedback.FeedbackID == "" {
		feedback.FeedbackID = fmt.Sprintf("feedback-%d", len(m.entries)+1)
	}
	m.entries = append(m.entries, *feedback)
	return nil
}

func (m *mockFeedbackRepo) ListByUser(_ context.Context, userID string) ([]model.Feedback, error) {
	var result []model.Feedback
	for _, f := range m.entries {
		if f.UserID != nil && *f.UserID == userID {
			result = append(result, f)
		}
	}
	return result, nil
}
