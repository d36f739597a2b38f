package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/L4U04/salvaluno/internal/model"
	"github.com/L4U04/salvaluno/internal/repository"
)

func setupTestBusService() (*busService, *mockBusRepo) {
	userRepo := newMockUserRepo()
	busRepo := newMockBusRepo()

	withBus := &model.Campus{
		CampusID:       "valid-campus-id",
		UniversityID:   "valid-university-id",
		Name:           "Campus Cruz das Almas",
		HasCircularBus: true,
		University:     &model.University{UniversityID: "valid-university-id", Name: "Universidade Federal do Recôncavo da Bahia", ShortName: "UFRB"},
	}
	withoutBus := &model.Campus{
		CampusID:       "no-bus-campus-id",
		UniversityID:   "valid-university-id",
		Name:           "Campus Feira de Santana",
		HasCircularBus: false,
	}

	campusID := withBus.CampusID
	noBusID := withoutBus.CampusID
	userRepo.users["u-campus"] = &model.User{UserID: "u-campus", CampusID: &campusID, Campus: withBus}
	userRepo.users["u-nocampus"] = &model.User{UserID: "u-nocampus"}
	userRepo.users["u-nobus"] = &model.User{UserID: "u-nobus", CampusID: &noBusID, Campus: withoutBus}

	repo := &repository.Repository{
		User:         userRepo,
		University:   newMockUniversityRepo(),
		ClassSession: newMockClassSessionRepo(),
		Bus:          busRepo,
		Reminder:     newMockReminderRepo(),
		Feedback:     newMockFeedbackRepo(),
	}
	svc := NewBusService(repo, nil, 30*time.Second, zap.NewNop()).(*busService)
	return svc, busRepo
}

func roundTripPayload(trips ...model.RoundTrip) model.SchedulePayload {
	return model.SchedulePayload{Kind: model.KindRoundTrips, Voltas: trips}
}

func TestBusGetNextBus_ProfileGates(t *testing.T) {
	svc, _ := setupTestBusService()
	ctx := context.Background()

	if _, err := svc.GetNextBus(ctx, "u-nocampus"); !errors.Is(err, ErrBusNoCampus) {
		t.Errorf("user without campus: expected ErrBusNoCampus, got %v", err)
	}
	if _, err := svc.GetNextBus(ctx, "u-nobus"); !errors.Is(err, ErrBusNoService) {
		t.Errorf("campus without bus: expected ErrBusNoService, got %v", err)
	}
	if _, err := svc.GetNextBus(ctx, "ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown user: expected ErrUserNotFound, got %v", err)
	}
}

func TestBusGetNextBus_PicksSoonestDeparture(t *testing.T) {
	svc, busRepo := setupTestBusService()
	svc.now = func() time.Time { return mondayAt(9, 30) }

	busRepo.routes = []model.BusRoute{
		{BusRouteID: "route-1", UniversityID: "valid-university-id", Name: "Circular Campus", IsActive: true},
	}
	busRepo.schedules = []model.BusSchedule{
		{
			BusScheduleID: 1,
			RouteID:       "route-1",
			ValidOn:       model.DayTypeWeekday,
			Schedule: roundTripPayload(
				model.RoundTrip{HorarioInicio: "08:00", HorarioFim: "08:40", LocalSaida: "Campus"},
				model.RoundTrip{HorarioInicio: "10:00", HorarioFim: "10:40", LocalSaida: "Campus"},
				model.RoundTrip{HorarioInicio: "12:00", HorarioFim: "12:40", LocalSaida: "Campus"},
			),
		},
	}

	resp, err := svc.GetNextBus(context.Background(), "u-campus")
	if err != nil {
		t.Fatalf("GetNextBus failed: %v", err)
	}
	if resp.DayType != model.DayTypeWeekday {
		t.Errorf("expected day type %s, got %s", model.DayTypeWeekday, resp.DayType)
	}
	if resp.Departure == nil {
		t.Fatal("expected a departure")
	}
	if resp.Departure.Time != "10:00" {
		t.Errorf("expected 10:00 (08:00 already gone), got %s", resp.Departure.Time)
	}
	if resp.Departure.University != "UFRB" {
		t.Errorf("expected university short name UFRB, got %q", resp.Departure.University)
	}
	if resp.Countdown == nil || resp.Countdown.Hours != 0 || resp.Countdown.Minutes != 30 {
		t.Errorf("expected 0h30m countdown, got %+v", resp.Countdown)
	}
}

func TestBusGetNextBus_NothingLeftToday(t *testing.T) {
	svc, busRepo := setupTestBusService()
	svc.now = func() time.Time { return mondayAt(23, 0) }

	busRepo.routes = []model.BusRoute{
		{BusRouteID: "route-1", UniversityID: "valid-university-id", Name: "Circular Campus", IsActive: true},
	}
	busRepo.schedules = []model.BusSchedule{
		{
			BusScheduleID: 1,
			RouteID:       "route-1",
			ValidOn:       model.DayTypeWeekday,
			Schedule: roundTripPayload(
				model.RoundTrip{HorarioInicio: "08:00", HorarioFim: "08:40", LocalSaida: "Campus"},
			),
		},
	}

	resp, err := svc.GetNextBus(context.Background(), "u-campus")
	if err != nil {
		t.Fatalf("GetNextBus failed: %v", err)
	}
	if resp.Departure != nil {
		t.Errorf("service over for today; expected null departure, got %+v", resp.Departure)
	}
	if resp.DayType != model.DayTypeWeekday {
		t.Errorf("day type must still be reported, got %q", resp.DayType)
	}
}

func TestBusGetNextBus_FiltersByDayType(t *testing.T) {
	svc, busRepo := setupTestBusService()
	// 2026-08-24 is a Monday; the Saturday schedule must not apply
	svc.now = func() time.Time { return mondayAt(7, 0) }

	busRepo.routes = []model.BusRoute{
		{BusRouteID: "route-1", UniversityID: "valid-university-id", Name: "Circular Campus", IsActive: true},
	}
	busRepo.schedules = []model.BusSchedule{
		{
			BusScheduleID: 1,
			RouteID:       "route-1",
			ValidOn:       model.DayTypeSaturday,
			Schedule: roundTripPayload(
				model.RoundTrip{HorarioInicio: "09:00", HorarioFim: "09:40", LocalSaida: "Campus"},
			),
		},
	}

	resp, err := svc.GetNextBus(context.Background(), "u-campus")
	if err != nil {
		t.Fatalf("GetNextBus failed: %v", err)
	}
	if resp.Departure != nil {
		t.Errorf("saturday schedule leaked into a weekday, got %+v", resp.Departure)
	}
}

func TestBusGetNextBus_FixedAndPerLocationShapes(t *testing.T) {
	svc, busRepo := setupTestBusService()
	svc.now = func() time.Time { return mondayAt(11, 45) }

	busRepo.routes = []model.BusRoute{
		{BusRouteID: "route-1", UniversityID: "valid-university-id", Name: "Circular Campus", IsActive: true},
	}
	busRepo.schedules = []model.BusSchedule{
		{
			BusScheduleID: 1,
			RouteID:       "route-1",
			ValidOn:       model.DayTypeWeekday,
			Schedule: model.SchedulePayload{
				Kind:         model.KindFixedDepartures,
				Tipo:         string(model.KindFixedDepartures),
				Horarios:     []string{"07:00", "12:00"},
				PontoPartida: "Portaria Principal",
			},
		},
		{
			BusScheduleID: 2,
			RouteID:       "route-1",
			ValidOn:       model.DayTypeWeekday,
			Schedule: model.SchedulePayload{
				Kind: model.KindPerLocation,
				Tipo: string(model.KindPerLocation),
				Locais: []model.LocationDepartures{
					{Nome: "Biblioteca", Horarios: []string{"11:50"}},
				},
			},
		},
	}

	resp, err := svc.GetNextBus(context.Background(), "u-campus")
	if err != nil {
		t.Fatalf("GetNextBus failed: %v", err)
	}
	if resp.Departure == nil {
		t.Fatal("expected a departure")
	}
	// the 11:50 per-location departure beats the 12:00 fixed one
	if resp.Departure.Time != "11:50" {
		t.Errorf("expected 11:50, got %s", resp.Departure.Time)
	}
	if resp.Departure.Details != "Partida de: Biblioteca" {
		t.Errorf("unexpected details: %q", resp.Departure.Details)
	}
}

func TestBusGetRoutes(t *testing.T) {
	svc, busRepo := setupTestBusService()
	svc.now = func() time.Time { return mondayAt(7, 0) }

	obs := "Não circula em feriados"
	busRepo.routes = []model.BusRoute{
		{
			BusRouteID:   "route-1",
			UniversityID: "valid-university-id",
			Name:         "Circular Campus",
			IsActive:     true,
			Schedules: []model.BusSchedule{
				{
					BusScheduleID: 1,
					RouteID:       "route-1",
					ValidOn:       model.DayTypeWeekday,
					Observation:   &obs,
					Schedule: roundTripPayload(
						model.RoundTrip{HorarioInicio: "12:00", HorarioFim: "12:40", LocalSaida: "Campus"},
						model.RoundTrip{HorarioInicio: "08:00", HorarioFim: "08:40", LocalSaida: "Campus"},
					),
				},
				{
					BusScheduleID: 2,
					RouteID:       "route-1",
					ValidOn:       model.DayTypeSaturday,
					Schedule: roundTripPayload(
						model.RoundTrip{HorarioInicio: "09:00", HorarioFim: "09:40", LocalSaida: "Campus"},
					),
				},
			},
		},
		{BusRouteID: "route-2", UniversityID: "other-university", Name: "Outro Circular", IsActive: true},
	}

	resp, err := svc.GetRoutes(context.Background(), "u-campus")
	if err != nil {
		t.Fatalf("GetRoutes failed: %v", err)
	}
	if len(resp.Routes) != 1 {
		t.Fatalf("expected 1 route for the user's university, got %d", len(resp.Routes))
	}
	route := resp.Routes[0]
	if route.RouteName != "Circular Campus" {
		t.Errorf("unexpected route name %q", route.RouteName)
	}
	if route.Observation != obs {
		t.Errorf("expected observation carried over, got %q", route.Observation)
	}
	if len(route.Departures) != 2 {
		t.Fatalf("expected 2 weekday departures, got %d", len(route.Departures))
	}
	if route.Departures[0].Time != "08:00" || route.Departures[1].Time != "12:00" {
		t.Errorf("departures must be sorted by time, got %s then %s",
			route.Departures[0].Time, route.Departures[1].Time)
	}
}
