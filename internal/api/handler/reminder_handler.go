package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/L4U04/salvaluno/internal/dto"
	"github.com/L4U04/salvaluno/internal/service"
	"github.com/L4U04/salvaluno/pkg/response"
)

// ReminderHandler handles task reminders.
type ReminderHandler struct {
	reminderSvc service.ReminderService
}

// NewReminderHandler creates a ReminderHandler.
func NewReminderHandler(reminderSvc service.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminderSvc: reminderSvc}
}

// List returns the user's reminders in display order
// GET /api/v1/reminders
func (h *ReminderHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	reminders, err := h.reminderSvc.List(c.Request.Context(), userID)
	if err != nil {
		h.handleReminderError(c, err)
		return
	}

	response.OK(c, gin.H{"list": reminders})
}

// Create adds a reminder
// POST /api/v1/reminders
func (h *ReminderHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 14001, "dados inválidos")
		return
	}

	reminder, err := h.reminderSvc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		h.handleReminderError(c, err)
		return
	}

	response.Created(c, reminder)
}

// Update edits a reminder
// PUT /api/v1/reminders/:id
func (h *ReminderHandler) Update(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 14001, "id do lembrete é obrigatório")
		return
	}

	var req dto.UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 14001, "dados inválidos")
		return
	}

	reminder, err := h.reminderSvc.Update(c.Request.Context(), id, &req, userID)
	if err != nil {
		h.handleReminderError(c, err)
		return
	}

	response.OK(c, reminder)
}

// Delete removes a reminder
// DELETE /api/v1/reminders/:id
func (h *ReminderHandler) Delete(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 14001, "id do lembrete é obrigatório")
		return
	}

	if err := h.reminderSvc.Delete(c.Request.Context(), id, userID); err != nil {
		h.handleReminderError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleReminderError maps reminder business errors onto the envelope.
func (h *ReminderHandler) handleReminderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrReminderNotFound):
		response.NotFound(c, 14101, service.ErrReminderNotFound.Error())
	case errors.Is(err, service.ErrReminderNotOwner):
		response.Forbidden(c, 14102, service.ErrReminderNotOwner.Error())
	case errors.Is(err, service.ErrReminderInvalidDate):
		response.BadRequest(c, 14103, service.ErrReminderInvalidDate.Error())
	default:
		response.InternalError(c)
	}
}
