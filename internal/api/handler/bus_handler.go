package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/L4U04/salvaluno/internal/service"
	"github.com/L4U04/salvaluno/pkg/response"
)

// BusHandler handles the circular-bus timetable.
type BusHandler struct {
	busSvc service.BusService
}

// NewBusHandler creates a BusHandler.
func NewBusHandler(busSvc service.BusService) *BusHandler {
	return &BusHandler{busSvc: busSvc}
}

// GetNextBus returns the soonest departure still ahead today
// GET /api/v1/bus/next
func (h *BusHandler) GetNextBus(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	next, err := h.busSvc.GetNextBus(c.Request.Context(), userID)
	if err != nil {
		h.handleBusError(c, err)
		return
	}

	response.OK(c, next)
}

// GetRoutes returns every active route with today's departures
// GET /api/v1/bus/routes
func (h *BusHandler) GetRoutes(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	routes, err := h.busSvc.GetRoutes(c.Request.Context(), userID)
	if err != nil {
		h.handleBusError(c, err)
		return
	}

	response.OK(c, routes)
}

// handleBusError maps circular-bus business errors onto the envelope.
func (h *BusHandler) handleBusError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBusNoCampus):
		response.BadRequest(c, 13101, service.ErrBusNoCampus.Error())
	case errors.Is(err, service.ErrBusNoService):
		response.NotFound(c, 13102, service.ErrBusNoService.Error())
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 13103, service.ErrUserNotFound.Error())
	default:
		response.InternalError(c)
	}
}
