package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/L4U04/salvaluno/internal/dto"
	"github.com/L4U04/salvaluno/internal/service"
	"github.com/L4U04/salvaluno/pkg/response"
)

// ClassHandler handles the weekly class schedule.
type ClassHandler struct {
	classSvc  service.ClassService
	exportSvc service.ExportService
}

// NewClassHandler creates a ClassHandler.
func NewClassHandler(classSvc service.ClassService, exportSvc service.ExportService) *ClassHandler {
	return &ClassHandler{classSvc: classSvc, exportSvc: exportSvc}
}

// List returns the user's sessions
// GET /api/v1/classes
func (h *ClassHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	sessions, err := h.classSvc.List(c.Request.Context(), userID)
	if err != nil {
		h.handleClassError(c, err)
		return
	}

	response.OK(c, gin.H{"list": sessions})
}

// Create adds a session
// POST /api/v1/classes
func (h *ClassHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateClassSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 12001, "dados inválidos")
		return
	}

	session, err := h.classSvc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		h.handleClassError(c, err)
		return
	}

	response.Created(c, session)
}

// Update edits a session
// PUT /api/v1/classes/:id
func (h *ClassHandler) Update(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 12001, "id da aula é obrigatório")
		return
	}

	var req dto.UpdateClassSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 12001, "dados inválidos")
		return
	}

	session, err := h.classSvc.Update(c.Request.Context(), id, &req, userID)
	if err != nil {
		h.handleClassError(c, err)
		return
	}

	response.OK(c, session)
}

// Delete removes a session
// DELETE /api/v1/classes/:id
func (h *ClassHandler) Delete(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 12001, "id da aula é obrigatório")
		return
	}

	if err := h.classSvc.Delete(c.Request.Context(), id, userID); err != nil {
		h.handleClassError(c, err)
		return
	}

	response.OK(c, nil)
}

// GetGrid returns the weekly layout
// GET /api/v1/classes/grid
func (h *ClassHandler) GetGrid(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	grid, err := h.classSvc.GetGrid(c.Request.Context(), userID)
	if err != nil {
		h.handleClassError(c, err)
		return
	}

	response.OK(c, grid)
}

// GetNextClass returns today's soonest upcoming session
// GET /api/v1/classes/next
func (h *ClassHandler) GetNextClass(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	next, err := h.classSvc.GetNextClass(c.Request.Context(), userID)
	if err != nil {
		h.handleClassError(c, err)
		return
	}

	if next.Class == nil {
		// no class left today; null is the answer, not an error
		response.OKNull(c)
		return
	}
	response.OK(c, next)
}

// Import loads sessions from an iCalendar source, either an uploaded
// file (multipart field "file") or a JSON body with a calendar URL
// POST /api/v1/classes/import
func (h *ClassHandler) Import(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	ct := c.GetHeader("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			response.BadRequest(c, 12001, "arquivo .ics ausente")
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			response.BadRequest(c, 12001, "não foi possível ler o arquivo")
			return
		}
		defer file.Close()

		result, err := h.classSvc.ImportICS(c.Request.Context(), userID, file)
		if err != nil {
			h.handleClassError(c, err)
			return
		}
		response.OK(c, result)
		return
	}

	var req dto.ImportICSRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		response.BadRequest(c, 12001, "informe um arquivo ou uma URL de calendário")
		return
	}

	reader, err := service.FetchICSContent(req.URL)
	if err != nil {
		response.BadRequest(c, 12002, "não foi possível baixar o calendário")
		return
	}
	defer reader.Close()

	result, err := h.classSvc.ImportICS(c.Request.Context(), userID, reader)
	if err != nil {
		h.handleClassError(c, err)
		return
	}
	response.OK(c, result)
}

// Export downloads the grid as .xlsx
// GET /api/v1/classes/export
func (h *ClassHandler) Export(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportGrid(c.Request.Context(), userID)
	if err != nil {
		h.handleClassError(c, err)
		return
	}

	encodedFilename := url.PathEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// handleClassError maps class-schedule business errors onto the envelope.
func (h *ClassHandler) handleClassError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrClassNotFound):
		response.NotFound(c, 12101, service.ErrClassNotFound.Error())
	case errors.Is(err, service.ErrClassNotOwner):
		response.Forbidden(c, 12102, service.ErrClassNotOwner.Error())
	case errors.Is(err, service.ErrClassMissingField):
		response.BadRequest(c, 12103, service.ErrClassMissingField.Error())
	case errors.Is(err, service.ErrClassInvalidDay):
		response.BadRequest(c, 12104, service.ErrClassInvalidDay.Error())
	case errors.Is(err, service.ErrClassInvalidTime):
		response.BadRequest(c, 12105, service.ErrClassInvalidTime.Error())
	case errors.Is(err, service.ErrClassTimeOrder):
		response.BadRequest(c, 12106, service.ErrClassTimeOrder.Error())
	case errors.Is(err, service.ErrClassConflict):
		response.Conflict(c, 12107, service.ErrClassConflict.Error())
	case errors.Is(err, service.ErrICSParse):
		response.BadRequest(c, 12108, service.ErrICSParse.Error())
	case errors.Is(err, service.ErrExportNoSessions):
		response.BadRequest(c, 12109, service.ErrExportNoSessions.Error())
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
