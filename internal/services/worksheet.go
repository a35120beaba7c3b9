package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"

	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/constants"
	"gearguard/pkg/utils"
)

type WorksheetServiceInterface interface {
	Render(ctx context.Context, requestID uint64) ([]byte, error)
}

type WorksheetService struct {
	requestRepository repositories.MaintenanceRequestRepositoryInterface
	logger            *zap.Logger
}

func NewWorksheetService(requestRepository repositories.MaintenanceRequestRepositoryInterface, logger *zap.Logger) WorksheetServiceInterface {
	return &WorksheetService{requestRepository: requestRepository, logger: logger}
}

// Render produces the single-page worksheet PDF for a request.
func (s *WorksheetService) Render(ctx context.Context, requestID uint64) ([]byte, error) {
	req, err := s.requestRepository.FindRequest(ctx, nil, requestID)
	if err != nil {
		return nil, err
	}
	out, err := renderWorksheet(req)
	if err != nil {
		s.logger.Error("worksheet render failed", zap.Uint64("requestID", requestID), zap.Error(err))
		return nil, err
	}
	return out, nil
}

// worksheetTarget names what the request is about: an equipment id or a work-center id.
func worksheetTarget(req *entities.MaintenanceRequest) string {
	if req.MaintenanceFor == constants.ForWorkCenter {
		if req.WorkCenterID.Valid {
			return fmt.Sprintf("Work Center ID: %d", req.WorkCenterID.Uint64)
		}
		return "Work Center ID: -"
	}
	if req.EquipmentID.Valid {
		return fmt.Sprintf("Equipment ID: %d", req.EquipmentID.Uint64)
	}
	return "Equipment ID: -"
}

func worksheetCategory(req *entities.MaintenanceRequest) string {
	if req.CategoryName.Valid && req.CategoryName.String != "" {
		return req.CategoryName.String
	}
	return constants.UncategorizedPlaceholder
}

func renderWorksheet(req *entities.MaintenanceRequest) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Worksheet %d", req.ID), false)
	pdf.SetAutoPageBreak(false, 10)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Maintenance Worksheet #%d", req.ID)), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		"Subject: " + req.Subject,
		"Date: " + utils.FormatDate(req.RequestDate),
		"Priority: " + string(req.Priority),
		"Stage: " + string(req.Stage),
		worksheetTarget(req),
		"Category: " + worksheetCategory(req),
	}
	for _, l := range lines {
		pdf.CellFormat(0, 7, tr(l), "", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Description", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, l := range WrapWords(req.Description.String, constants.WorksheetWrapWidth) {
		if pdf.GetY() > 280 {
			break
		}
		pdf.CellFormat(0, 5, tr(l), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render worksheet %d: %w", req.ID, err)
	}
	return buf.Bytes(), nil
}

// WrapWords splits text into lines of at most width characters, breaking only between words.
// A single word longer than width gets a line of its own.
func WrapWords(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	lines := make([]string, 0, len(text)/width+1)
	var cur strings.Builder
	for _, w := range words {
		if cur.Len() > 0 && cur.Len()+1+len(w) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(w)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
