package dto

import "time"

// ── reminder module DTOs ──

// CreateReminderRequest — add a reminder
type CreateReminderRequest struct {
	Text     string  `json:"text"     binding:"required,max=500"`
	Subject  string  `json:"subject"  binding:"omitempty,max=100"`
	Date     *string `json:"date"     binding:"omitempty"` // RFC 3339
	Priority string  `json:"priority" binding:"omitempty,oneof=alta media baixa"`
}

// UpdateReminderRequest — partial reminder edit
type UpdateReminderRequest struct {
	Text     *string `json:"text"     binding:"omitempty,max=500"`
	Subject  *string `json:"subject"  binding:"omitempty,max=100"`
	Date     *string `json:"date"     binding:"omitempty"`
	Priority *string `json:"priority" binding:"omitempty,oneof=alta media baixa"`
}

// ReminderResponse — one reminder
type ReminderResponse struct {
	ID       string     `json:"id"`
	Text     string     `json:"text"`
	Subject  string     `json:"subject,omitempty"`
	Date     *time.Time `json:"date,omitempty"`
	Priority string     `json:"priority"`
}
