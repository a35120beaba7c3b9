package dto

import "github.com/aarondl/null/v8"

type CreateMaintenanceRequestDTO struct {
	Subject         string   `json:"subject" validate:"required,max=255"`
	RequestDate     string   `json:"request_date" validate:"required,datetime=2006-01-02"`
	ScheduledDate   *string  `json:"scheduled_date" validate:"omitempty,datetime=2006-01-02"`
	Duration        *float64 `json:"duration" validate:"omitempty,gte=0"`
	TechnicianID    *string  `json:"technician_id" validate:"omitempty,max=100"`
	MaintenanceType *string  `json:"maintenance_type" validate:"omitempty,maintenance_type"`
	Priority        *string  `json:"priority" validate:"omitempty,priority"`
	Stage           *string  `json:"stage" validate:"omitempty,request_stage"`
	Description     *string  `json:"description"`
	MaintenanceFor  *string  `json:"maintenance_for" validate:"omitempty,maintenance_for"`
	EquipmentID     *uint64  `json:"equipment_id" validate:"omitempty,gt=0"`
	WorkCenterID    *uint64  `json:"work_center_id" validate:"omitempty,gt=0"`
	CompanyID       *string  `json:"company_id" validate:"omitempty,max=150"`
	TeamID          *uint64  `json:"team_id" validate:"omitempty,gt=0"`
	CategoryID      *uint64  `json:"category_id" validate:"omitempty,gt=0"`
}

// UpdateMaintenanceRequestDTO is a partial update: nil fields keep the stored value.
type UpdateMaintenanceRequestDTO struct {
	Subject         *string  `json:"subject" validate:"omitempty,min=1,max=255"`
	RequestDate     *string  `json:"request_date" validate:"omitempty,datetime=2006-01-02"`
	ScheduledDate   *string  `json:"scheduled_date" validate:"omitempty,datetime=2006-01-02"`
	Duration        *float64 `json:"duration" validate:"omitempty,gte=0"`
	TechnicianID    *string  `json:"technician_id" validate:"omitempty,max=100"`
	MaintenanceType *string  `json:"maintenance_type" validate:"omitempty,maintenance_type"`
	Priority        *string  `json:"priority" validate:"omitempty,priority"`
	Stage           *string  `json:"stage" validate:"omitempty,request_stage"`
	Description     *string  `json:"description"`
	MaintenanceFor  *string  `json:"maintenance_for" validate:"omitempty,maintenance_for"`
	EquipmentID     *uint64  `json:"equipment_id" validate:"omitempty,gt=0"`
	WorkCenterID    *uint64  `json:"work_center_id" validate:"omitempty,gt=0"`
	CompanyID       *string  `json:"company_id" validate:"omitempty,max=150"`
	TeamID          *uint64  `json:"team_id" validate:"omitempty,gt=0"`
	CategoryID      *uint64  `json:"category_id" validate:"omitempty,gt=0"`
}

type MaintenanceRequestDTO struct {
	ID              uint64      `json:"id"`
	Subject         string      `json:"subject"`
	RequestDate     string      `json:"request_date"`
	ScheduledDate   null.String `json:"scheduled_date"`
	Duration        float64     `json:"duration"`
	TechnicianID    null.String `json:"technician_id"`
	MaintenanceType string      `json:"maintenance_type"`
	Priority        string      `json:"priority"`
	Stage           string      `json:"stage"`
	Description     null.String `json:"description"`
	MaintenanceFor  string      `json:"maintenance_for"`
	EquipmentID     null.Uint64 `json:"equipment_id"`
	WorkCenterID    null.Uint64 `json:"work_center_id"`
	CompanyID       null.String `json:"company_id"`
	TeamID          null.Uint64 `json:"team_id"`
	CategoryID      null.Uint64 `json:"category_id"`
	CreatedByID     null.Uint64 `json:"created_by_id"`

	Category   *ShortRefDTO `json:"category,omitempty"`
	Team       *ShortRefDTO `json:"team,omitempty"`
	Equipment  *ShortRefDTO `json:"equipment,omitempty"`
	WorkCenter *ShortRefDTO `json:"work_center,omitempty"`
	CreatedBy  *ShortRefDTO `json:"created_by,omitempty"`
}

type ShortRefDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
