package services

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/types"
	"gearguard/pkg/utils"
)

const (
	sheetRequests   = "Requests"
	sheetByTeam     = "By Team"
	sheetByCategory = "By Category"
)

var requestSheetHeaders = []interface{}{
	"ID", "Subject", "Request Date", "Scheduled Date", "Stage", "Priority", "Type", "For",
	"Equipment", "Work Center", "Team", "Category", "Technician", "Duration (h)",
}

type ReportServiceInterface interface {
	ExportWorkbook(ctx context.Context, filter types.Filter) (*excelize.File, error)
}

type ReportService struct {
	requestRepository   repositories.MaintenanceRequestRepositoryInterface
	dashboardRepository repositories.DashboardRepositoryInterface
	logger              *zap.Logger
}

func NewReportService(
	requestRepository repositories.MaintenanceRequestRepositoryInterface,
	dashboardRepository repositories.DashboardRepositoryInterface,
	logger *zap.Logger,
) ReportServiceInterface {
	return &ReportService{requestRepository: requestRepository, dashboardRepository: dashboardRepository, logger: logger}
}

// ExportWorkbook builds a workbook with every request matching filter plus the team and
// category breakdowns. Pagination in filter is ignored.
func (s *ReportService) ExportWorkbook(ctx context.Context, filter types.Filter) (*excelize.File, error) {
	filter.WithPagination = false
	requests, _, err := s.requestRepository.GetRequests(ctx, filter)
	if err != nil {
		return nil, err
	}
	byTeam, err := s.dashboardRepository.CountByTeam(ctx)
	if err != nil {
		return nil, err
	}
	byCategory, err := s.dashboardRepository.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetRequests); err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	if err := writeRows(f, sheetRequests, bold, requestSheetHeaders, requestRows(requests)); err != nil {
		return nil, err
	}
	for _, g := range []struct {
		sheet string
		rows  []entities.GroupCount
	}{{sheetByTeam, byTeam}, {sheetByCategory, byCategory}} {
		if _, err := f.NewSheet(g.sheet); err != nil {
			return nil, err
		}
		if err := writeRows(f, g.sheet, bold, []interface{}{"Name", "Requests"}, groupRows(g.rows)); err != nil {
			return nil, err
		}
	}

	_ = f.SetColWidth(sheetRequests, "B", "B", 40)
	_ = f.SetColWidth(sheetRequests, "C", "M", 16)

	s.logger.Info("report workbook built", zap.Int("requests", len(requests)))
	return f, nil
}

func writeRows(f *excelize.File, sheet string, headerStyle int, header []interface{}, rows [][]interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return err
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}

func requestRows(list []entities.MaintenanceRequest) [][]interface{} {
	rows := make([][]interface{}, 0, len(list))
	for _, r := range list {
		rows = append(rows, []interface{}{
			r.ID, r.Subject, utils.FormatDate(r.RequestDate), utils.FormatNullDate(r.ScheduledDate).String,
			string(r.Stage), string(r.Priority), string(r.MaintenanceType), string(r.MaintenanceFor),
			r.EquipmentName.String, r.WorkCenterName.String, r.TeamName.String, r.CategoryName.String,
			r.TechnicianID.String, r.Duration,
		})
	}
	return rows
}

func groupRows(groups []entities.GroupCount) [][]interface{} {
	rows := make([][]interface{}, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []interface{}{g.Name, g.Count})
	}
	return rows
}
