package dto

// ── class-schedule module DTOs ──

// CreateClassSessionRequest — add one session to the weekly grid
type CreateClassSessionRequest struct {
	SubjectName string `json:"subject_name" binding:"required,max=100"`
	Professor   string `json:"professor"    binding:"omitempty,max=100"`
	Room        string `json:"room"         binding:"omitempty,max=100"`
	Day         string `json:"day"          binding:"required"`
	StartTime   string `json:"start_time"   binding:"required"`
	EndTime     string `json:"end_time"     binding:"required"`
	Color       string `json:"color"        binding:"omitempty"`
}

// UpdateClassSessionRequest — partial session edit
type UpdateClassSessionRequest struct {
	SubjectName *string `json:"subject_name" binding:"omitempty,max=100"`
	Professor   *string `json:"professor"    binding:"omitempty,max=100"`
	Room        *string `json:"room"         binding:"omitempty,max=100"`
	Day         *string `json:"day"          binding:"omitempty"`
	StartTime   *string `json:"start_time"   binding:"omitempty"`
	EndTime     *string `json:"end_time"     binding:"omitempty"`
	Color       *string `json:"color"        binding:"omitempty"`
}

// ClassSessionResponse — one stored session
type ClassSessionResponse struct {
	ID          string `json:"id"`
	SubjectName string `json:"subject_name"`
	Professor   string `json:"professor,omitempty"`
	Room        string `json:"room,omitempty"`
	Day         string `json:"day"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Color       string `json:"color"`
}

// ── weekly grid view-model ──

// Grid cell kinds.
const (
	GridCellEmpty   = "empty"   // addable slot
	GridCellSession = "session" // a session starts here; spans RowSpan rows
	GridCellCovered = "covered" // suppressed, inside an earlier cell's span
)

// GridCell is one (day, time) cell of the weekly grid, emitted in
// row-major order (time rows outer, Seg..Sab inner).
type GridCell struct {
	Day       string                `json:"day"`
	Time      string                `json:"time"`
	TimeRange string                `json:"time_range"` // e.g. "07:00-08:00"
	Kind      string                `json:"kind"`
	RowSpan   int                   `json:"row_span,omitempty"`
	Session   *ClassSessionResponse `json:"session,omitempty"`
}

// ScheduleGridResponse — the full layout for the timetable editor
type ScheduleGridResponse struct {
	Days       []string   `json:"days"`
	TimePoints []string   `json:"time_points"`
	Cells      []GridCell `json:"cells"`
}

// ── next class ──

// CountdownResponse — time remaining until an occurrence
type CountdownResponse struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// NextClassResponse — the soonest not-yet-started class today, if any
type NextClassResponse struct {
	Class     *ClassSessionResponse `json:"class"`
	Countdown *CountdownResponse    `json:"countdown,omitempty"`
}

// ── ICS import ──

// ImportICSRequest — import sessions from a calendar URL
type ImportICSRequest struct {
	URL string `json:"url" binding:"omitempty,url"`
}

// ImportICSResponse — import outcome
type ImportICSResponse struct {
	ImportedCount int                    `json:"imported_count"`
	Imported      []ClassSessionResponse `json:"imported"`
	Skipped       []SkippedImportEvent   `json:"skipped,omitempty"`
}

// SkippedImportEvent — one calendar event that was not imported
type SkippedImportEvent struct {
	SubjectName string `json:"subject_name"`
	Reason      string `json:"reason"`
}
