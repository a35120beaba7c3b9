package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"
	"gearguard/pkg/utils"
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error)
	DeleteEquipment(ctx context.Context, id uint64) error
	MaintenanceCount(ctx context.Context, id uint64) (*dto.MaintenanceCountDTO, error)
}

type EquipmentService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	logger              *zap.Logger
}

func NewEquipmentService(equipmentRepository repositories.EquipmentRepositoryInterface, logger *zap.Logger) EquipmentServiceInterface {
	return &EquipmentService{equipmentRepository: equipmentRepository, logger: logger}
}

func (s *EquipmentService) GetEquipments(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, uint64, error) {
	list, total, err := s.equipmentRepository.GetEquipments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.EquipmentDTO, 0, len(list))
	for i := range list {
		out = append(out, equipmentToDTO(&list[i]))
	}
	return out, total, nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	eq, err := s.equipmentRepository.FindEquipment(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	res := equipmentToDTO(eq)
	return &res, nil
}

// equipmentDates carries the four optional lifecycle dates shared by create and update payloads.
type equipmentDates struct {
	assign, scrap, purchase, warranty *string
}

func (d equipmentDates) apply(eq *entities.Equipment) error {
	targets := []struct {
		raw   *string
		field *null.Time
		name  string
	}{
		{d.assign, &eq.AssignDate, "assign_date"},
		{d.scrap, &eq.ScrapDate, "scrap_date"},
		{d.purchase, &eq.PurchaseDate, "purchase_date"},
		{d.warranty, &eq.WarrantyDate, "warranty_date"},
	}
	for _, t := range targets {
		if t.raw == nil {
			continue
		}
		parsed, err := utils.ParseNullDate(t.raw)
		if err != nil {
			return apperrors.NewValidationError("%s must be a YYYY-MM-DD date", t.name)
		}
		*t.field = parsed
	}
	return nil
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	eq := entities.Equipment{
		Name:                payload.Name,
		SerialNumber:        payload.SerialNumber,
		Department:          null.StringFromPtr(payload.Department),
		Location:            null.StringFromPtr(payload.Location),
		EmployeeID:          null.StringFromPtr(payload.EmployeeID),
		CompanyName:         null.StringFromPtr(payload.CompanyName),
		DefaultTechnicianID: null.StringFromPtr(payload.DefaultTechnicianID),
		Status:              constants.EquipmentActive,
		CategoryID:          null.Uint64FromPtr(payload.CategoryID),
		TeamID:              null.Uint64FromPtr(payload.TeamID),
		WorkCenterID:        null.Uint64FromPtr(payload.WorkCenterID),
	}
	if payload.Status != nil {
		eq.Status = constants.EquipmentStatus(*payload.Status)
	}
	dates := equipmentDates{payload.AssignDate, payload.ScrapDate, payload.PurchaseDate, payload.WarrantyDate}
	if err := dates.apply(&eq); err != nil {
		return nil, err
	}

	created, err := s.equipmentRepository.CreateEquipment(ctx, eq)
	if err != nil {
		return nil, err
	}
	s.logger.Info("equipment created", zap.Uint64("id", created.ID), zap.String("serial", created.SerialNumber))
	res := equipmentToDTO(created)
	return &res, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	eq, err := s.equipmentRepository.FindEquipment(ctx, nil, id)
	if err != nil {
		return nil, err
	}

	if payload.Name != nil {
		eq.Name = *payload.Name
	}
	if payload.SerialNumber != nil {
		eq.SerialNumber = *payload.SerialNumber
	}
	if payload.Department != nil {
		eq.Department = null.StringFrom(*payload.Department)
	}
	if payload.Location != nil {
		eq.Location = null.StringFrom(*payload.Location)
	}
	if payload.EmployeeID != nil {
		eq.EmployeeID = null.StringFrom(*payload.EmployeeID)
	}
	if payload.CompanyName != nil {
		eq.CompanyName = null.StringFrom(*payload.CompanyName)
	}
	if payload.DefaultTechnicianID != nil {
		eq.DefaultTechnicianID = null.StringFrom(*payload.DefaultTechnicianID)
	}
	if payload.Status != nil {
		eq.Status = constants.EquipmentStatus(*payload.Status)
	}
	if payload.CategoryID != nil {
		eq.CategoryID = null.Uint64From(*payload.CategoryID)
	}
	if payload.TeamID != nil {
		eq.TeamID = null.Uint64From(*payload.TeamID)
	}
	if payload.WorkCenterID != nil {
		eq.WorkCenterID = null.Uint64From(*payload.WorkCenterID)
	}
	dates := equipmentDates{payload.AssignDate, payload.ScrapDate, payload.PurchaseDate, payload.WarrantyDate}
	if err := dates.apply(eq); err != nil {
		return nil, err
	}

	updated, err := s.equipmentRepository.UpdateEquipment(ctx, nil, *eq)
	if err != nil {
		return nil, err
	}
	res := equipmentToDTO(updated)
	return &res, nil
}

// DeleteEquipment removes the equipment together with its maintenance requests.
func (s *EquipmentService) DeleteEquipment(ctx context.Context, id uint64) error {
	if err := s.equipmentRepository.DeleteEquipment(ctx, id); err != nil {
		return err
	}
	s.logger.Info("equipment deleted", zap.Uint64("id", id))
	return nil
}

func (s *EquipmentService) MaintenanceCount(ctx context.Context, id uint64) (*dto.MaintenanceCountDTO, error) {
	if _, err := s.equipmentRepository.FindEquipment(ctx, nil, id); err != nil {
		return nil, err
	}
	counts, err := s.equipmentRepository.CountMaintenance(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.MaintenanceCountDTO{Total: counts.Total, MaintenanceActive: counts.MaintenanceActive}, nil
}
