package dto

import "time"

// ── feedback module DTOs ──

// CreateFeedbackRequest — submit feedback
type CreateFeedbackRequest struct {
	Category string `json:"category" binding:"omitempty,oneof=sugestao bug outro"`
	Content  string `json:"content"  binding:"required,max=2000"`
}

// FeedbackResponse — one feedback entry
type FeedbackResponse struct {
	ID        string    `json:"id"`
	Category  string    `json:"category,omitempty"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
