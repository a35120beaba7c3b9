package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/types"
)

const (
	defaultCapacity       = 1.0
	defaultTimeEfficiency = 100.0
	defaultOEETarget      = 85.0
)

type WorkCenterServiceInterface interface {
	GetWorkCenters(ctx context.Context, filter types.Filter) ([]dto.WorkCenterDTO, uint64, error)
	FindWorkCenter(ctx context.Context, id uint64) (*dto.WorkCenterDTO, error)
	CreateWorkCenter(ctx context.Context, payload dto.CreateWorkCenterDTO) (*dto.WorkCenterDTO, error)
	UpdateWorkCenter(ctx context.Context, id uint64, payload dto.UpdateWorkCenterDTO) (*dto.WorkCenterDTO, error)
	DeleteWorkCenter(ctx context.Context, id uint64) error
}

type WorkCenterService struct {
	workCenterRepository repositories.WorkCenterRepositoryInterface
	logger               *zap.Logger
}

func NewWorkCenterService(workCenterRepository repositories.WorkCenterRepositoryInterface, logger *zap.Logger) WorkCenterServiceInterface {
	return &WorkCenterService{workCenterRepository: workCenterRepository, logger: logger}
}

func floatOr(p *float64, fallback float64) float64 {
	if p == nil {
		return fallback
	}
	return *p
}

func (s *WorkCenterService) GetWorkCenters(ctx context.Context, filter types.Filter) ([]dto.WorkCenterDTO, uint64, error) {
	list, total, err := s.workCenterRepository.GetWorkCenters(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.WorkCenterDTO, 0, len(list))
	for i := range list {
		out = append(out, workCenterToDTO(&list[i]))
	}
	return out, total, nil
}

func (s *WorkCenterService) FindWorkCenter(ctx context.Context, id uint64) (*dto.WorkCenterDTO, error) {
	w, err := s.workCenterRepository.FindWorkCenter(ctx, id)
	if err != nil {
		return nil, err
	}
	res := workCenterToDTO(w)
	return &res, nil
}

func (s *WorkCenterService) CreateWorkCenter(ctx context.Context, payload dto.CreateWorkCenterDTO) (*dto.WorkCenterDTO, error) {
	created, err := s.workCenterRepository.CreateWorkCenter(ctx, entities.WorkCenter{
		Name:               payload.Name,
		Code:               payload.Code,
		ResourceCalendarID: null.Int64FromPtr(payload.ResourceCalendarID),
		Capacity:           floatOr(payload.Capacity, defaultCapacity),
		TimeEfficiency:     floatOr(payload.TimeEfficiency, defaultTimeEfficiency),
		OEETarget:          floatOr(payload.OEETarget, defaultOEETarget),
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("work center created", zap.Uint64("id", created.ID), zap.String("code", created.Code))
	res := workCenterToDTO(created)
	return &res, nil
}

func (s *WorkCenterService) UpdateWorkCenter(ctx context.Context, id uint64, payload dto.UpdateWorkCenterDTO) (*dto.WorkCenterDTO, error) {
	current, err := s.workCenterRepository.FindWorkCenter(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload.Name != nil {
		current.Name = *payload.Name
	}
	if payload.Code != nil {
		current.Code = *payload.Code
	}
	if payload.ResourceCalendarID != nil {
		current.ResourceCalendarID = null.Int64From(*payload.ResourceCalendarID)
	}
	current.Capacity = floatOr(payload.Capacity, current.Capacity)
	current.TimeEfficiency = floatOr(payload.TimeEfficiency, current.TimeEfficiency)
	current.OEETarget = floatOr(payload.OEETarget, current.OEETarget)

	updated, err := s.workCenterRepository.UpdateWorkCenter(ctx, *current)
	if err != nil {
		return nil, err
	}
	res := workCenterToDTO(updated)
	return &res, nil
}

func (s *WorkCenterService) DeleteWorkCenter(ctx context.Context, id uint64) error {
	return s.workCenterRepository.DeleteWorkCenter(ctx, id)
}
