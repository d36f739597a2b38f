package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/L4U04/salvaluno/internal/model"
)

// ── next-event resolution ─────────────────────────────────────
//
// Classes and bus departures share one resolution path: heterogeneous
// schedule records are normalized into Departures anchored on today's
// date, and the next occurrence is the first one strictly after "now".
// Resolution never rolls over to tomorrow — a user checking at 23:30
// sees "nothing left today", matching the dashboard's behavior.
//
// All functions here are pure; "now" is always an argument so callers
// and tests control the clock.
// ─────────────────────────────────────────────────────────────

// Departure is one normalized occurrence for today.
type Departure struct {
	Time       string    // "HH:MM"
	EndTime    string    // round-trip shape only
	Details    string    // origin label shown to the user
	University string    // university short name, when known
	OccursAt   time.Time // today's date + Time
}

// ClassifyDayType buckets now's weekday: Sunday (and holidays handled
// upstream) → domingo_feriado, Saturday → sabado, else dias_uteis.
func ClassifyDayType(now time.Time) string {
	switch now.Weekday() {
	case time.Sunday:
		return model.DayTypeSundayHoliday
	case time.Saturday:
		return model.DayTypeSaturday
	default:
		return model.DayTypeWeekday
	}
}

// classDayNumbers maps grid days to time.Weekday values.
var classDayNumbers = map[string]time.Weekday{
	"Seg": time.Monday,
	"Ter": time.Tuesday,
	"Qua": time.Wednesday,
	"Qui": time.Thursday,
	"Sex": time.Friday,
	"Sab": time.Saturday,
}

// parseClock parses a zero-padded "HH:MM" (or "HH:MM:SS") wall-clock
// string onto now's date.
func parseClock(hhmm string, now time.Time) (time.Time, error) {
	parts := strings.Split(hhmm, ":")
	if len(parts) < 2 {
		return time.Time{}, fmt.Errorf("horário inválido %q", hhmm)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, fmt.Errorf("horário inválido %q", hhmm)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("horário inválido %q", hhmm)
	}
	return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location()), nil
}

// NormalizeDepartures flattens one schedule payload into Departures
// anchored on now's date. The payload's Kind decides the shape
// exhaustively; an unknown Kind yields zero departures. Malformed time
// strings are skipped and reported as diagnostics — never an error.
func NormalizeDepartures(payload model.SchedulePayload, university string, now time.Time) ([]Departure, []string) {
	var (
		departures  []Departure
		diagnostics []string
	)

	add := func(timeStr, endTime, details string) {
		occursAt, err := parseClock(timeStr, now)
		if err != nil {
			diagnostics = append(diagnostics, err.Error())
			return
		}
		departures = append(departures, Departure{
			Time:       timeStr,
			EndTime:    endTime,
			Details:    details,
			University: university,
			OccursAt:   occursAt,
		})
	}

	switch payload.Kind {
	case model.KindRoundTrips:
		for _, volta := range payload.Voltas {
			add(volta.HorarioInicio, volta.HorarioFim, "Saída de: "+volta.LocalSaida)
		}
	case model.KindFixedDepartures:
		for _, horario := range payload.Horarios {
			add(horario, "", "Partida de: "+payload.PontoPartida)
		}
	case model.KindPerLocation:
		for _, local := range payload.Locais {
			for _, horario := range local.Horarios {
				add(horario, "", "Partida de: "+local.Nome)
			}
		}
	default:
		diagnostics = append(diagnostics, "formato de horário não reconhecido")
	}

	return departures, diagnostics
}

// ResolveNextDeparture returns the earliest departure strictly after
// now, or nil when nothing remains today. Ties resolve to the first in
// sorted order; an occurrence at exactly now is already gone.
func ResolveNextDeparture(departures []Departure, now time.Time) *Departure {
	sorted := make([]Departure, len(departures))
	copy(sorted, departures)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OccursAt.Before(sorted[j].OccursAt)
	})

	for i := range sorted {
		if sorted[i].OccursAt.After(now) {
			next := sorted[i]
			return &next
		}
	}
	return nil
}

// Countdown splits the time until target into whole hours and minutes,
// floored. A target at or before now clamps to zero — callers normally
// excluded it already via ResolveNextDeparture.
func Countdown(target, now time.Time) (hours, minutes int) {
	total := int(target.Sub(now).Minutes())
	if total < 0 {
		return 0, 0
	}
	return total / 60, total % 60
}

// NextClassDepartures projects today's sessions into Departures keyed
// on their start times. Sessions on other days — including every
// session when today is Sunday — are excluded.
func NextClassDepartures(sessions []model.ClassSession, now time.Time) ([]Departure, []string) {
	var (
		departures  []Departure
		diagnostics []string
	)
	for i := range sessions {
		s := &sessions[i]
		if classDayNumbers[s.Day] != now.Weekday() {
			continue
		}
		occursAt, err := parseClock(s.StartTime, now)
		if err != nil {
			diagnostics = append(diagnostics, err.Error())
			continue
		}
		departures = append(departures, Departure{
			Time:     s.StartTime,
			EndTime:  s.EndTime,
			Details:  s.SubjectName,
			OccursAt: occursAt,
		})
	}
	return departures, diagnostics
}
