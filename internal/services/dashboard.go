package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
)

const defaultRecentLimit = 5

type DashboardServiceInterface interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error)
	ReportByTeam(ctx context.Context) ([]dto.GroupCountDTO, error)
	ReportByCategory(ctx context.Context) ([]dto.GroupCountDTO, error)
	RecentRequests(ctx context.Context, limit uint64) ([]dto.MaintenanceRequestDTO, error)
}

type DashboardService struct {
	dashboardRepository repositories.DashboardRepositoryInterface
	now                 func() time.Time
	logger              *zap.Logger
}

// NewDashboardService takes the clock used to decide what "today" is for overdue requests.
func NewDashboardService(dashboardRepository repositories.DashboardRepositoryInterface, now func() time.Time, logger *zap.Logger) DashboardServiceInterface {
	if now == nil {
		now = time.Now
	}
	return &DashboardService{dashboardRepository: dashboardRepository, now: now, logger: logger}
}

func (s *DashboardService) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	critical, err := s.dashboardRepository.CountCriticalEquipment(ctx)
	if err != nil {
		return nil, err
	}
	open, err := s.dashboardRepository.CountOpenRequests(ctx)
	if err != nil {
		return nil, err
	}
	today := s.now().UTC().Truncate(24 * time.Hour)
	overdue, err := s.dashboardRepository.CountOverdueRequests(ctx, today)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStatsDTO{
		CriticalEquipmentCount: critical,
		TechnicianLoad:         open,
		OpenRequestsCount:      open,
		OverdueRequestsCount:   overdue,
	}, nil
}

func (s *DashboardService) ReportByTeam(ctx context.Context) ([]dto.GroupCountDTO, error) {
	groups, err := s.dashboardRepository.CountByTeam(ctx)
	if err != nil {
		return nil, err
	}
	return groupsToDTO(groups), nil
}

func (s *DashboardService) ReportByCategory(ctx context.Context) ([]dto.GroupCountDTO, error) {
	groups, err := s.dashboardRepository.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}
	return groupsToDTO(groups), nil
}

func (s *DashboardService) RecentRequests(ctx context.Context, limit uint64) ([]dto.MaintenanceRequestDTO, error) {
	if limit == 0 {
		limit = defaultRecentLimit
	}
	list, err := s.dashboardRepository.GetRecentRequests(ctx, limit)
	if err != nil {
		return nil, err
	}
	return requestsToDTO(list), nil
}

func groupsToDTO(groups []entities.GroupCount) []dto.GroupCountDTO {
	out := make([]dto.GroupCountDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.GroupCountDTO{Name: g.Name, Count: g.Count})
	}
	return out
}
