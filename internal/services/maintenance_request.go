package services

import (
	"context"
	"errors"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/events"
	"gearguard/internal/maintenance"
	"gearguard/internal/repositories"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/eventbus"
	"gearguard/pkg/types"
	"gearguard/pkg/utils"
)

type MaintenanceRequestServiceInterface interface {
	GetRequests(ctx context.Context, filter types.Filter) ([]dto.MaintenanceRequestDTO, uint64, error)
	FindRequest(ctx context.Context, id uint64) (*dto.MaintenanceRequestDTO, error)
	CreateRequest(ctx context.Context, payload dto.CreateMaintenanceRequestDTO) (*dto.MaintenanceRequestDTO, error)
	UpdateRequest(ctx context.Context, id uint64, payload dto.UpdateMaintenanceRequestDTO) (*dto.MaintenanceRequestDTO, error)
	DeleteRequest(ctx context.Context, id uint64) error
}

type MaintenanceRequestService struct {
	txManager           repositories.TxManagerInterface
	requestRepository   repositories.MaintenanceRequestRepositoryInterface
	equipmentRepository repositories.EquipmentRepositoryInterface
	publisher           eventbus.Publisher
	logger              *zap.Logger
}

func NewMaintenanceRequestService(
	txManager repositories.TxManagerInterface,
	requestRepository repositories.MaintenanceRequestRepositoryInterface,
	equipmentRepository repositories.EquipmentRepositoryInterface,
	publisher eventbus.Publisher,
	logger *zap.Logger,
) MaintenanceRequestServiceInterface {
	if publisher == nil {
		publisher = eventbus.Nop{}
	}
	return &MaintenanceRequestService{
		txManager:           txManager,
		requestRepository:   requestRepository,
		equipmentRepository: equipmentRepository,
		publisher:           publisher,
		logger:              logger,
	}
}

func (s *MaintenanceRequestService) GetRequests(ctx context.Context, filter types.Filter) ([]dto.MaintenanceRequestDTO, uint64, error) {
	list, total, err := s.requestRepository.GetRequests(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return requestsToDTO(list), total, nil
}

func (s *MaintenanceRequestService) FindRequest(ctx context.Context, id uint64) (*dto.MaintenanceRequestDTO, error) {
	req, err := s.requestRepository.FindRequest(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	res := requestToDTO(req)
	return &res, nil
}

// CreateRequest persists a new request. Equipment requests inherit category, team, technician
// and work center from their equipment wherever the payload leaves them empty.
func (s *MaintenanceRequestService) CreateRequest(ctx context.Context, payload dto.CreateMaintenanceRequestDTO) (*dto.MaintenanceRequestDTO, error) {
	requestDate, err := utils.ParseDate(payload.RequestDate)
	if err != nil {
		return nil, apperrors.NewValidationError("request_date must be a YYYY-MM-DD date")
	}
	scheduled, err := utils.ParseNullDate(payload.ScheduledDate)
	if err != nil {
		return nil, apperrors.NewValidationError("scheduled_date must be a YYYY-MM-DD date")
	}

	req := entities.MaintenanceRequest{
		Subject:         payload.Subject,
		RequestDate:     requestDate,
		ScheduledDate:   scheduled,
		TechnicianID:    null.StringFromPtr(payload.TechnicianID),
		MaintenanceType: constants.MaintenanceCorrective,
		Priority:        constants.PriorityLow,
		Stage:           constants.StageNewRequest,
		Description:     null.StringFromPtr(payload.Description),
		MaintenanceFor:  constants.ForEquipment,
		EquipmentID:     null.Uint64FromPtr(payload.EquipmentID),
		WorkCenterID:    null.Uint64FromPtr(payload.WorkCenterID),
		TeamID:          null.Uint64FromPtr(payload.TeamID),
		CategoryID:      null.Uint64FromPtr(payload.CategoryID),
		CompanyID:       null.StringFromPtr(payload.CompanyID),
	}
	if payload.Duration != nil {
		req.Duration = *payload.Duration
	}
	if payload.MaintenanceType != nil {
		req.MaintenanceType = constants.MaintenanceType(*payload.MaintenanceType)
	}
	if payload.Priority != nil {
		req.Priority = constants.Priority(*payload.Priority)
	}
	if payload.Stage != nil {
		req.Stage = constants.RequestStage(*payload.Stage)
	}
	if payload.MaintenanceFor != nil {
		req.MaintenanceFor = constants.MaintenanceFor(*payload.MaintenanceFor)
	}
	if userID, err := utils.GetUserIDFromCtx(ctx); err == nil {
		req.CreatedByID = null.Uint64From(userID)
	}

	if err := maintenance.CheckTarget(&req); err != nil {
		return nil, err
	}
	if maintenance.NeedsEquipment(&req) {
		eq, err := s.equipmentRepository.FindEquipment(ctx, nil, req.EquipmentID.Uint64)
		if err != nil {
			return nil, err
		}
		maintenance.ApplyEquipmentDefaults(&req, eq)
		s.logger.Debug("request defaults taken from equipment", zap.Uint64("equipmentID", eq.ID))
	}

	id, err := s.requestRepository.CreateRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("maintenance request created", zap.Uint64("id", id), zap.String("for", string(req.MaintenanceFor)))
	res, err := s.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(ctx, events.RequestCreatedEvent{Request: *res})
	return res, nil
}

// UpdateRequest applies a partial update. A stage change on an equipment request moves the
// equipment status in the same transaction; the request is reloaded after commit.
func (s *MaintenanceRequestService) UpdateRequest(ctx context.Context, id uint64, payload dto.UpdateMaintenanceRequestDTO) (*dto.MaintenanceRequestDTO, error) {
	var pending []eventbus.Event
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		pending = pending[:0]
		stored, err := s.requestRepository.FindRequest(ctx, tx, id)
		if err != nil {
			return err
		}
		fromStage := stored.Stage

		var newStage *constants.RequestStage
		if payload.Stage != nil {
			stage := constants.RequestStage(*payload.Stage)
			newStage = &stage
		}
		if maintenance.ShouldSync(stored, newStage) {
			synced, err := s.syncEquipment(ctx, tx, stored, *newStage)
			if err != nil {
				return err
			}
			if synced != nil {
				pending = append(pending, *synced)
			}
		}

		if err := applyRequestPatch(stored, payload); err != nil {
			return err
		}
		if err := maintenance.CheckTarget(stored); err != nil {
			return err
		}
		if stored.Stage != fromStage {
			actorID, _ := utils.GetUserIDFromCtx(ctx)
			pending = append(pending, events.RequestStageChangedEvent{
				RequestID:   id,
				Subject:     stored.Subject,
				From:        string(fromStage),
				To:          string(stored.Stage),
				ActorID:     actorID,
				CreatedByID: stored.CreatedByID.Uint64,
			})
		}
		return s.requestRepository.UpdateRequest(ctx, tx, *stored)
	})
	if err != nil {
		return nil, err
	}
	for _, ev := range pending {
		s.publisher.Publish(ctx, ev)
	}
	return s.FindRequest(ctx, id)
}

// syncEquipment returns the status change it wrote, or nil when the equipment was left alone.
func (s *MaintenanceRequestService) syncEquipment(ctx context.Context, tx pgx.Tx, stored *entities.MaintenanceRequest, newStage constants.RequestStage) (*events.EquipmentStatusChangedEvent, error) {
	eq, err := s.equipmentRepository.FindEquipment(ctx, tx, stored.EquipmentID.Uint64)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Debug("equipment gone, stage sync skipped", zap.Uint64("requestID", stored.ID))
			return nil, nil
		}
		return nil, err
	}
	if !maintenance.SyncEquipment(eq, stored, newStage) {
		return nil, nil
	}
	if _, err := s.equipmentRepository.UpdateEquipment(ctx, tx, *eq); err != nil {
		return nil, err
	}
	s.logger.Info("equipment status synced",
		zap.Uint64("equipmentID", eq.ID),
		zap.Uint64("requestID", stored.ID),
		zap.String("status", string(eq.Status)),
	)
	return &events.EquipmentStatusChangedEvent{
		EquipmentID: eq.ID,
		RequestID:   stored.ID,
		Status:      string(eq.Status),
	}, nil
}

func applyRequestPatch(req *entities.MaintenanceRequest, p dto.UpdateMaintenanceRequestDTO) error {
	if p.Subject != nil {
		req.Subject = *p.Subject
	}
	if p.RequestDate != nil {
		d, err := utils.ParseDate(*p.RequestDate)
		if err != nil {
			return apperrors.NewValidationError("request_date must be a YYYY-MM-DD date")
		}
		req.RequestDate = d
	}
	if p.ScheduledDate != nil {
		d, err := utils.ParseNullDate(p.ScheduledDate)
		if err != nil {
			return apperrors.NewValidationError("scheduled_date must be a YYYY-MM-DD date")
		}
		req.ScheduledDate = d
	}
	if p.Duration != nil {
		req.Duration = *p.Duration
	}
	if p.TechnicianID != nil {
		req.TechnicianID = null.StringFrom(*p.TechnicianID)
	}
	if p.MaintenanceType != nil {
		req.MaintenanceType = constants.MaintenanceType(*p.MaintenanceType)
	}
	if p.Priority != nil {
		req.Priority = constants.Priority(*p.Priority)
	}
	if p.Stage != nil {
		req.Stage = constants.RequestStage(*p.Stage)
	}
	if p.Description != nil {
		req.Description = null.StringFrom(*p.Description)
	}
	if p.MaintenanceFor != nil {
		req.MaintenanceFor = constants.MaintenanceFor(*p.MaintenanceFor)
	}
	if p.EquipmentID != nil {
		req.EquipmentID = null.Uint64From(*p.EquipmentID)
	}
	if p.WorkCenterID != nil {
		req.WorkCenterID = null.Uint64From(*p.WorkCenterID)
	}
	if p.CompanyID != nil {
		req.CompanyID = null.StringFrom(*p.CompanyID)
	}
	if p.TeamID != nil {
		req.TeamID = null.Uint64From(*p.TeamID)
	}
	if p.CategoryID != nil {
		req.CategoryID = null.Uint64From(*p.CategoryID)
	}
	return nil
}

func (s *MaintenanceRequestService) DeleteRequest(ctx context.Context, id uint64) error {
	if err := s.requestRepository.DeleteRequest(ctx, id); err != nil {
		return err
	}
	s.logger.Info("maintenance request deleted", zap.Uint64("id", id))
	return nil
}
