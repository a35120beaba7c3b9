package events

import "gearguard/internal/dto"

const (
	RequestCreated         = "request.created"
	RequestStageChanged    = "request.stage_changed"
	EquipmentStatusChanged = "equipment.status_changed"
)

type RequestCreatedEvent struct {
	Request dto.MaintenanceRequestDTO
}

func (e RequestCreatedEvent) Name() string { return RequestCreated }

// RequestStageChangedEvent is published after the update carrying the new stage has committed.
type RequestStageChangedEvent struct {
	RequestID   uint64
	Subject     string
	From        string
	To          string
	ActorID     uint64
	CreatedByID uint64
}

func (e RequestStageChangedEvent) Name() string { return RequestStageChanged }

type EquipmentStatusChangedEvent struct {
	EquipmentID uint64
	RequestID   uint64
	Status      string
}

func (e EquipmentStatusChangedEvent) Name() string { return EquipmentStatusChanged }
