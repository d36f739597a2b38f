package handler

import "github.com/L4U04/salvaluno/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth       *AuthHandler
	User       *UserHandler
	University *UniversityHandler
	Class      *ClassHandler
	Bus        *BusHandler
	Reminder   *ReminderHandler
	Feedback   *FeedbackHandler
}

// NewHandler wires the handler layer.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		User:       NewUserHandler(svc.User),
		University: NewUniversityHandler(svc.University),
		Class:      NewClassHandler(svc.Class, svc.Export),
		Bus:        NewBusHandler(svc.Bus),
		Reminder:   NewReminderHandler(svc.Reminder),
		Feedback:   NewFeedbackHandler(svc.Feedback),
	}
}
