package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/L4U04/salvaluno/internal/dto"
	"github.com/L4U04/salvaluno/internal/service"
	"github.com/L4U04/salvaluno/pkg/response"
)

// FeedbackHandler collects user feedback.
type FeedbackHandler struct {
	feedbackSvc service.FeedbackService
}

// NewFeedbackHandler creates a FeedbackHandler.
func NewFeedbackHandler(feedbackSvc service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackSvc: feedbackSvc}
}

// Create submits feedback
// POST /api/v1/feedback
func (h *FeedbackHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 15001, "dados inválidos")
		return
	}

	feedback, err := h.feedbackSvc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, feedback)
}

// ListMine returns the user's own submissions
// GET /api/v1/feedback
func (h *FeedbackHandler) ListMine(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	entries, err := h.feedbackSvc.ListMine(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": entries})
}
