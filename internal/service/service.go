package service

import (
	"go.uber.org/zap"

	"github.com/L4U04/salvaluno/config"
	"github.com/L4U04/salvaluno/internal/repository"
	"github.com/L4U04/salvaluno/pkg/jwt"
	"github.com/L4U04/salvaluno/pkg/redis"
)

// Service aggregates every business service.
type Service struct {
	Auth       AuthService
	User       UserService
	University UniversityService
	Class      ClassService
	Bus        BusService
	Reminder   ReminderService
	Feedback   FeedbackService
	Export     ExportService
}

// NewService wires the service layer. rdb may be nil when redis is
// down; the services that use it degrade gracefully.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:       NewAuthService(repo, jwtMgr, rdb, logger),
		User:       NewUserService(repo, logger),
		University: NewUniversityService(repo, logger),
		Class:      NewClassService(repo, logger),
		Bus:        NewBusService(repo, rdb, cfg.Bus.CacheTTL, logger),
		Reminder:   NewReminderService(repo, logger),
		Feedback:   NewFeedbackService(repo, logger),
		Export:     NewExportService(repo, logger),
	}
}
