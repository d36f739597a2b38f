package repository

import "gorm.io/gorm"

// Repository aggregates all repositories for dependency injection.
type Repository struct {
	User         UserRepository
	University   UniversityRepository
	ClassSession ClassSessionRepository
	Bus          BusRepository
	Reminder     ReminderRepository
	Feedback     FeedbackRepository
}

// NewRepository builds the repository aggregate.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:         NewUserRepo(db),
		University:   NewUniversityRepo(db),
		ClassSession: NewClassSessionRepo(db),
		Bus:          NewBusRepo(db),
		Reminder:     NewReminderRepo(db),
		Feedback:     NewFeedbackRepo(db),
	}
}
