package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/L4U04/salvaluno/internal/service"
	"github.com/L4U04/salvaluno/pkg/response"
)

// UniversityHandler serves the public university/campus lookup.
type UniversityHandler struct {
	universitySvc service.UniversityService
}

// NewUniversityHandler creates a UniversityHandler.
func NewUniversityHandler(universitySvc service.UniversityService) *UniversityHandler {
	return &UniversityHandler{universitySvc: universitySvc}
}

// List returns every university with its campuses
// GET /api/v1/universities
func (h *UniversityHandler) List(c *gin.Context) {
	universities, err := h.universitySvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": universities})
}
