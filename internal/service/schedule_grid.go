package service

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/L4U04/salvaluno/internal/dto"
	"github.com/L4U04/salvaluno/internal/model"
)

// ── weekly grid ───────────────────────────────────────────────
//
// The timetable is a fixed Day × Time grid: six day columns (Seg..Sab,
// no Sunday slots) and hourly rows from 07:00 to 22:00, the last row
// ending at the implicit day end 23:00. Sessions are stored with
// zero-padded "HH:MM" bounds, so string comparison orders them
// chronologically.
//
// Layout assumes pre-validated input: overlaps are rejected at write
// time by HasSessionConflict, never patched up here.
// ─────────────────────────────────────────────────────────────

// ScheduleDays is the fixed ordered day list of the grid.
var ScheduleDays = []string{"Seg", "Ter", "Qua", "Qui", "Sex", "Sab"}

// TimePoints is the fixed ordered list of row starts.
var TimePoints = []string{
	"07:00", "08:00", "09:00", "10:00", "11:00", "12:00", "13:00", "14:00",
	"15:00", "16:00", "17:00", "18:00", "19:00", "20:00", "21:00", "22:00",
}

// GridDayEnd closes the last row.
const GridDayEnd = "23:00"

// SubjectColors is the fixed palette sessions draw from. All sessions
// of one subject converge to a single palette token.
var SubjectColors = []string{
	"sky", "red", "green", "yellow", "purple", "pink", "orange", "indigo", "teal",
}

var (
	dayIndex  = buildIndex(ScheduleDays)
	timeIndex = buildIndex(TimePoints)
)

func buildIndex(values []string) map[string]int {
	idx := make(map[string]int, len(values))
	for i, v := range values {
		idx[v] = i
	}
	return idx
}

// IsValidDay reports whether day is one of the six grid columns.
func IsValidDay(day string) bool {
	_, ok := dayIndex[day]
	return ok
}

// IsValidStartTime reports whether t is a grid row start.
func IsValidStartTime(t string) bool {
	_, ok := timeIndex[t]
	return ok
}

// IsValidEndTime reports whether t can close a session: any row start
// after 07:00, or the day end.
func IsValidEndTime(t string) bool {
	if t == GridDayEnd {
		return true
	}
	_, ok := timeIndex[t]
	return ok
}

// endIndex maps an end time to its exclusive row index. The day end
// sits one past the last row start.
func endIndex(t string) int {
	if t == GridDayEnd {
		return len(TimePoints)
	}
	return timeIndex[t]
}

// timeRangeLabel renders the row label, e.g. "07:00-08:00".
func timeRangeLabel(i int) string {
	if i == len(TimePoints)-1 {
		return TimePoints[i] + "-" + GridDayEnd
	}
	return TimePoints[i] + "-" + TimePoints[i+1]
}

// BuildScheduleGrid lays sessions onto the fixed grid, emitted in
// row-major order (time rows outer, days inner).
//
// For each (time, day) cell:
//   - a session whose interval strictly covers the row start becomes a
//     "covered" cell — it is part of an earlier cell's row span and
//     carries no session;
//   - a session starting exactly at the row start becomes a "session"
//     cell spanning endIndex(end)-index(start) rows (minimum 1);
//   - otherwise the cell is "empty" and addable.
//
// Exactly one session cell is emitted per session.
func BuildScheduleGrid(sessions []model.ClassSession) []dto.GridCell {
	cells := make([]dto.GridCell, 0, len(TimePoints)*len(ScheduleDays))

	for ti, t := range TimePoints {
		label := timeRangeLabel(ti)
		for _, day := range ScheduleDays {
			cell := dto.GridCell{Day: day, Time: t, TimeRange: label}

			covered := false
			for i := range sessions {
				s := &sessions[i]
				if s.Day == day && s.StartTime < t && s.EndTime > t {
					covered = true
					break
				}
			}
			if covered {
				cell.Kind = dto.GridCellCovered
				cells = append(cells, cell)
				continue
			}

			var starting *model.ClassSession
			for i := range sessions {
				s := &sessions[i]
				if s.Day == day && s.StartTime == t {
					starting = s
					break
				}
			}
			if starting != nil {
				rowSpan := endIndex(starting.EndTime) - ti
				if rowSpan < 1 {
					rowSpan = 1
				}
				resp := toClassSessionResponse(*starting)
				cell.Kind = dto.GridCellSession
				cell.RowSpan = rowSpan
				cell.Session = &resp
				cells = append(cells, cell)
				continue
			}

			cell.Kind = dto.GridCellEmpty
			cells = append(cells, cell)
		}
	}

	return cells
}

// ── conflict detection ──

// HasSessionConflict reports whether candidate overlaps any existing
// session on the same day, skipping excludeID (the session being
// edited). Intervals are half-open [start, end): a session ending at T
// never conflicts with one starting at T.
//
// On conflict the second return value names the clashing session for
// inline display.
func HasSessionConflict(candidate model.ClassSession, existing []model.ClassSession, excludeID string) (bool, string) {
	for i := range existing {
		s := &existing[i]
		if excludeID != "" && s.ClassSessionID == excludeID {
			continue
		}
		if s.Day != candidate.Day {
			continue
		}
		if candidate.StartTime < s.EndTime && s.StartTime < candidate.EndTime {
			return true, fmt.Sprintf("conflito com %s (%s, %s-%s)",
				s.SubjectName, s.Day, s.StartTime, s.EndTime)
		}
	}
	return false, ""
}

// ── subject colors ──

func subjectKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ResolveSubjectColor picks the color for a session of subjectName.
// An explicit choice wins; otherwise the color is inherited from any
// existing session of the same subject (case-insensitive, trimmed);
// otherwise a pseudo-random palette token is assigned.
func ResolveSubjectColor(subjectName, explicitColor string, existing []model.ClassSession) string {
	if explicitColor != "" {
		return explicitColor
	}
	key := subjectKey(subjectName)
	for i := range existing {
		if subjectKey(existing[i].SubjectName) == key {
			return existing[i].Color
		}
	}
	return SubjectColors[rand.Intn(len(SubjectColors))]
}

// PropagateSubjectColor returns a copy of sessions with every session
// of subjectName recolored. The input slice is left untouched; the
// operation is idempotent.
func PropagateSubjectColor(subjectName, color string, sessions []model.ClassSession) []model.ClassSession {
	key := subjectKey(subjectName)
	out := make([]model.ClassSession, len(sessions))
	copy(out, sessions)
	for i := range out {
		if subjectKey(out[i].SubjectName) == key && out[i].Color != color {
			out[i].Color = color
		}
	}
	return out
}

// toClassSessionResponse converts a model session to its response form.
func toClassSessionResponse(s model.ClassSession) dto.ClassSessionResponse {
	return dto.ClassSessionResponse{
		ID:          s.ClassSessionID,
		SubjectName: s.SubjectName,
		Professor:   s.Professor,
		Room:        s.Room,
		Day:         s.Day,
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		Color:       s.Color,
	}
}
