package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/L4U04/salvaluno/internal/dto"
	"github.com/L4U04/salvaluno/internal/repository"
)

// ── export module errors ──

var (
	ErrExportNoSessions   = errors.New("sua grade de horários está vazia")
	ErrExportGenerateFail = errors.New("falha ao gerar o arquivo Excel")
)

// Fill colors keyed by the palette tokens stored on sessions.
var exportFillColors = map[string]string{
	"sky":    "#BAE6FD",
	"red":    "#FECACA",
	"green":  "#BBF7D0",
	"yellow": "#FEF08A",
	"purple": "#E9D5FF",
	"pink":   "#FBCFE8",
	"orange": "#FED7AA",
	"indigo": "#C7D2FE",
	"teal":   "#99F6E4",
}

// ExportService renders the weekly grid as a downloadable .xlsx.
// The buffer is returned to the handler, which sets the HTTP headers.
type ExportService interface {
	ExportGrid(ctx context.Context, userID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ExportGrid builds one sheet laid out like the timetable editor: time
// rows by day columns, with multi-hour sessions rendered as merged
// vertical ranges.
func (s *exportService) ExportGrid(ctx context.Context, userID string) (*bytes.Buffer, string, error) {
	sessions, err := s.repo.ClassSession.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list class sessions", zap.Error(err))
		return nil, "", err
	}
	if len(sessions) == 0 {
		return nil, "", ErrExportNoSessions
	}

	cells := BuildScheduleGrid(sessions)

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Grade de Horários"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 14)
	lastCol, _ := excelize.ColumnNumberToName(1 + len(ScheduleDays))
	f.SetColWidth(sheetName, "B", lastCol, 24)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#0EA5E9"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// header row: corner + day columns
	f.SetCellValue(sheetName, "A1", "Horário")
	for i, day := range ScheduleDays {
		col, _ := excelize.ColumnNumberToName(2 + i)
		f.SetCellValue(sheetName, gridCell(col, 1), day)
	}
	f.SetCellStyle(sheetName, "A1", gridCell(lastCol, 1), headerStyle)

	// one spreadsheet row per time point, offset by the header
	for ti := range TimePoints {
		f.SetCellValue(sheetName, gridCell("A", 2+ti), timeRangeLabel(ti))
	}

	sessionStyles := make(map[string]int)

	for _, cell := range cells {
		if cell.Kind != dto.GridCellSession || cell.Session == nil {
			continue
		}
		dayCol, _ := excelize.ColumnNumberToName(2 + dayIndex[cell.Day])
		rowStart := 2 + timeIndex[cell.Time]
		rowEnd := rowStart + cell.RowSpan - 1

		text := cell.Session.SubjectName
		if cell.Session.Room != "" {
			text += "\n" + cell.Session.Room
		}
		if cell.Session.Professor != "" {
			text += "\n" + cell.Session.Professor
		}
		f.SetCellValue(sheetName, gridCell(dayCol, rowStart), text)

		if cell.RowSpan > 1 {
			f.MergeCell(sheetName, gridCell(dayCol, rowStart), gridCell(dayCol, rowEnd))
		}

		styleID, ok := sessionStyles[cell.Session.Color]
		if !ok {
			fill := exportFillColors[cell.Session.Color]
			if fill == "" {
				fill = "#E5E7EB"
			}
			styleID, _ = f.NewStyle(&excelize.Style{
				Fill:      excelize.Fill{Type: "pattern", Color: []string{fill}, Pattern: 1},
				Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
			})
			sessionStyles[cell.Session.Color] = styleID
		}
		f.SetCellStyle(sheetName, gridCell(dayCol, rowStart), gridCell(dayCol, rowEnd), styleID)
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("failed to write xlsx", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	return buf, "grade_de_horarios.xlsx", nil
}

func gridCell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
