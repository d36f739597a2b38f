package service

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/L4U04/salvaluno/internal/dto"
	"github.com/L4U04/salvaluno/internal/model"
)

// ── ICS parsing ─────────────────────────────────────────────
//
// Turns iCalendar (RFC 5545) content into grid-shaped sessions:
//   - DTSTART decides the day column and the start row
//   - DTEND decides the end row; a missing DTEND defaults to one hour
//   - times snap outward to whole hours so the event fits the grid
//   - Sunday events are skipped (the grid has no Sunday column)
//   - duplicate SUMMARY+day+time events collapse into one session
// ─────────────────────────────────────────────────────────────

const (
	icsMaxFileSize  = 5 * 1024 * 1024 // 5MB
	icsFetchTimeout = 30 * time.Second
	bahiaTimezone   = "America/Bahia"
)

var ErrICSParse = errors.New("não foi possível ler o calendário")

// weekday column labels for imported events; Sunday has no column.
var weekdayToGridDay = map[time.Weekday]string{
	time.Monday:    "Seg",
	time.Tuesday:   "Ter",
	time.Wednesday: "Qua",
	time.Thursday:  "Qui",
	time.Friday:    "Sex",
	time.Saturday:  "Sab",
}

// FetchICSContent downloads calendar content from a URL.
func FetchICSContent(rawURL string) (io.ReadCloser, error) {
	u := rawURL
	if strings.HasPrefix(u, "webcal://") {
		u = "https://" + strings.TrimPrefix(u, "webcal://")
	}

	client := &http.Client{Timeout: icsFetchTimeout}
	resp, err := client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("falha ao baixar o calendário: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("falha ao baixar o calendário: HTTP %d", resp.StatusCode)
	}
	// cap the body so a hostile URL cannot exhaust memory
	return struct {
		io.Reader
		io.Closer
	}{
		Reader: io.LimitReader(resp.Body, icsMaxFileSize),
		Closer: resp.Body,
	}, nil
}

// ParseClassSessionsICS parses calendar content into session candidates.
// Events that cannot map onto the grid come back as skip records instead
// of failing the whole import.
func ParseClassSessionsICS(reader io.Reader) ([]model.ClassSession, []dto.SkippedImportEvent, error) {
	cal, err := ics.ParseCalendar(reader)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrICSParse, err)
	}

	loc, _ := time.LoadLocation(bahiaTimezone)

	var sessions []model.ClassSession
	var skipped []dto.SkippedImportEvent
	seen := make(map[string]bool)

	for _, evt := range cal.Events() {
		summary := evt.GetProperty(ics.ComponentPropertySummary)
		if summary == nil || strings.TrimSpace(summary.Value) == "" {
			skipped = append(skipped, dto.SkippedImportEvent{
				SubjectName: "(sem título)",
				Reason:      "evento sem nome",
			})
			continue
		}
		name := strings.TrimSpace(summary.Value)

		dtStart, err := parseICSDateTime(evt, ics.ComponentPropertyDtStart, loc)
		if err != nil {
			skipped = append(skipped, dto.SkippedImportEvent{SubjectName: name, Reason: "data de início ilegível"})
			continue
		}
		dtEnd, err := parseICSDateTime(evt, ics.ComponentPropertyDtEnd, loc)
		if err != nil {
			dtEnd = dtStart.Add(time.Hour)
		}

		day, ok := weekdayToGridDay[dtStart.Weekday()]
		if !ok {
			skipped = append(skipped, dto.SkippedImportEvent{SubjectName: name, Reason: "a grade não possui domingo"})
			continue
		}

		startTime, endTime, ok := snapToGrid(dtStart, dtEnd)
		if !ok {
			skipped = append(skipped, dto.SkippedImportEvent{SubjectName: name, Reason: "horário fora da grade (07:00-23:00)"})
			continue
		}

		// an ICS feed repeats the same class once per occurrence
		dedupeKey := fmt.Sprintf("%s|%s|%s|%s", subjectKey(name), day, startTime, endTime)
		if seen[dedupeKey] {
			continue
		}
		seen[dedupeKey] = true

		session := model.ClassSession{
			SubjectName: name,
			Day:         day,
			StartTime:   startTime,
			EndTime:     endTime,
		}
		if locProp := evt.GetProperty(ics.ComponentPropertyLocation); locProp != nil {
			session.Room = strings.TrimSpace(locProp.Value)
		}
		sessions = append(sessions, session)
	}

	return sessions, skipped, nil
}

// snapToGrid widens an event to whole hours and clips it to the grid.
// Returns ok=false when the event lies entirely outside 07:00-23:00.
func snapToGrid(start, end time.Time) (string, string, bool) {
	startHour := start.Hour()
	endHour := end.Hour()
	if end.Minute() > 0 || end.Second() > 0 {
		endHour++
	}
	if !end.After(start) {
		endHour = startHour + 1
	}

	if startHour < 7 {
		startHour = 7
	}
	if endHour > 23 {
		endHour = 23
	}
	if startHour >= 23 || endHour <= startHour {
		return "", "", false
	}
	return fmt.Sprintf("%02d:00", startHour), fmt.Sprintf("%02d:00", endHour), true
}

// parseICSDateTime reads a date-time property, honoring TZID when set
// and falling back to local campus time.
func parseICSDateTime(evt *ics.VEvent, propName ics.ComponentProperty, loc *time.Location) (time.Time, error) {
	prop := evt.GetProperty(propName)
	if prop == nil {
		return time.Time{}, fmt.Errorf("propriedade ausente: %s", propName)
	}
	val := prop.Value

	formats := []string{
		"20060102T150405Z",
		"20060102T150405",
		"20060102",
	}

	tzid := ""
	for k, v := range prop.ICalParameters {
		if strings.ToUpper(k) == "TZID" && len(v) > 0 {
			tzid = v[0]
		}
	}

	for _, layout := range formats {
		if t, err := time.Parse(layout, val); err == nil {
			if strings.HasSuffix(layout, "Z") {
				return t.In(loc), nil
			}
			if tzid != "" {
				if tzLoc, err := time.LoadLocation(tzid); err == nil {
					return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, tzLoc).In(loc), nil
				}
			}
			return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc), nil
		}
	}

	return time.Time{}, fmt.Errorf("data ilegível: %s", val)
}
