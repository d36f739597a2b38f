package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/L4U04/salvaluno/internal/dto"
	"github.com/L4U04/salvaluno/internal/repository"
	"github.com/L4U04/salvaluno/pkg/redis"
)

// ── circular-bus module errors ──

var (
	ErrBusNoCampus  = errors.New("defina seu campus no perfil para ver os horários de ônibus")
	ErrBusNoService = errors.New("seu campus não possui ônibus circular")
)

// BusService resolves circular-bus timetables for the user's campus.
type BusService interface {
	// GetNextBus returns the soonest departure still ahead today, or a
	// null departure when service is over for the day.
	GetNextBus(ctx context.Context, userID string) (*dto.NextBusResponse, error)
	// GetRoutes returns every active route with today's departures.
	GetRoutes(ctx context.Context, userID string) (*dto.BusRoutesResponse, error)
}

type busService struct {
	repo     *repository.Repository
	rdb      *redis.Client // nil when redis is unavailable
	cacheTTL time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

// NewBusService creates a BusService. rdb may be nil; lookups then skip
// the cache and hit the database every time.
func NewBusService(repo *repository.Repository, rdb *redis.Client, cacheTTL time.Duration, logger *zap.Logger) BusService {
	return &busService{repo: repo, rdb: rdb, cacheTTL: cacheTTL, logger: logger, now: time.Now}
}

// universityFor resolves the user's campus into a university ID and a
// short display name, enforcing the circular-bus gate.
func (s *busService) universityFor(ctx context.Context, userID string) (universityID, displayName string, err error) {
	user, err := s.repo.User.GetByIDWithCampus(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", ErrUserNotFound
		}
		return "", "", err
	}
	if user.Campus == nil {
		return "", "", ErrBusNoCampus
	}
	if !user.Campus.HasCircularBus {
		return "", "", ErrBusNoService
	}
	displayName = user.Campus.Name
	if user.Campus.University != nil && user.Campus.University.ShortName != "" {
		displayName = user.Campus.University.ShortName
	}
	return user.Campus.UniversityID, displayName, nil
}

// todaysDepartures returns every normalized departure for the university
// in the current day-type bucket, consulting the short-lived cache first.
func (s *busService) todaysDepartures(ctx context.Context, universityID, displayName string, now time.Time) ([]Departure, string, error) {
	dayType := ClassifyDayType(now)
	cacheKey := fmt.Sprintf("bus:departures:%s:%s:%s", universityID, dayType, now.Format("2006-01-02"))

	if s.rdb != nil {
		var cached []Departure
		err := s.rdb.GetJSON(ctx, cacheKey, &cached)
		if err == nil {
			return cached, dayType, nil
		}
		if !errors.Is(err, redis.ErrCacheMiss) {
			s.logger.Warn("bus cache read failed", zap.Error(err))
		}
	}

	schedules, err := s.repo.Bus.ListSchedulesForDay(ctx, universityID, dayType)
	if err != nil {
		s.logger.Error("failed to list bus schedules", zap.Error(err))
		return nil, dayType, err
	}

	var departures []Departure
	for _, sched := range schedules {
		normalized, diagnostics := NormalizeDepartures(sched.Schedule, displayName, now)
		for _, d := range diagnostics {
			s.logger.Warn("skipped malformed bus schedule entry",
				zap.Int64("schedule_id", sched.BusScheduleID),
				zap.String("detail", d))
		}
		departures = append(departures, normalized...)
	}

	if s.rdb != nil {
		if err := s.rdb.SetJSON(ctx, cacheKey, departures, s.cacheTTL); err != nil {
			s.logger.Warn("bus cache write failed", zap.Error(err))
		}
	}
	return departures, dayType, nil
}

func (s *busService) GetNextBus(ctx context.Context, userID string) (*dto.NextBusResponse, error) {
	universityID, displayName, err := s.universityFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	departures, dayType, err := s.todaysDepartures(ctx, universityID, displayName, now)
	if err != nil {
		return nil, err
	}

	next := ResolveNextDeparture(departures, now)
	if next == nil {
		// service is over for today; never roll into tomorrow
		return &dto.NextBusResponse{DayType: dayType}, nil
	}

	hours, minutes := Countdown(next.OccursAt, now)
	return &dto.NextBusResponse{
		Departure: toDepartureResponse(*next),
		Countdown: &dto.CountdownResponse{Hours: hours, Minutes: minutes},
		DayType:   dayType,
	}, nil
}

func (s *busService) GetRoutes(ctx context.Context, userID string) (*dto.BusRoutesResponse, error) {
	universityID, displayName, err := s.universityFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	routes, err := s.repo.Bus.ListActiveRoutes(ctx, universityID)
	if err != nil {
		s.logger.Error("failed to list bus routes", zap.Error(err))
		return nil, err
	}

	now := s.now()
	dayType := ClassifyDayType(now)

	resp := &dto.BusRoutesResponse{
		DayType: dayType,
		Routes:  make([]dto.RouteScheduleResponse, 0, len(routes)),
	}
	for _, route := range routes {
		entry := dto.RouteScheduleResponse{
			RouteID:    route.BusRouteID,
			RouteName:  route.Name,
			Departures: []dto.DepartureResponse{},
		}
		for _, sched := range route.Schedules {
			if sched.ValidOn != dayType {
				continue
			}
			if sched.Observation != nil {
				entry.Observation = *sched.Observation
			}
			normalized, diagnostics := NormalizeDepartures(sched.Schedule, displayName, now)
			for _, d := range diagnostics {
				s.logger.Warn("skipped malformed bus schedule entry",
					zap.Int64("schedule_id", sched.BusScheduleID),
					zap.String("detail", d))
			}
			for _, dep := range normalized {
				entry.Departures = append(entry.Departures, *toDepartureResponse(dep))
			}
		}
		sortDepartureResponses(entry.Departures)
		resp.Routes = append(resp.Routes, entry)
	}
	return resp, nil
}

func toDepartureResponse(d Departure) *dto.DepartureResponse {
	return &dto.DepartureResponse{
		Time:       d.Time,
		EndTime:    d.EndTime,
		Details:    d.Details,
		University: d.University,
		OccursAt:   d.OccursAt.Format(time.RFC3339),
	}
}

func sortDepartureResponses(departures []dto.DepartureResponse) {
	sort.SliceStable(departures, func(i, j int) bool {
		return departures[i].Time < departures[j].Time
	})
}
