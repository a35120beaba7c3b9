package entities

import (
	"time"

	"github.com/aarondl/null/v8"

	"gearguard/pkg/constants"
	"gearguard/pkg/types"
)

type MaintenanceRequest struct {
	ID              uint64                    `db:"id"`
	Subject         string                    `db:"subject"`
	RequestDate     time.Time                 `db:"request_date"`
	ScheduledDate   null.Time                 `db:"scheduled_date"`
	Duration        float64                   `db:"duration"`
	TechnicianID    null.String               `db:"technician_id"`
	MaintenanceType constants.MaintenanceType `db:"maintenance_type"`
	Priority        constants.Priority        `db:"priority"`
	Stage           constants.RequestStage    `db:"stage"`
	Description     null.String               `db:"description"`
	MaintenanceFor  constants.MaintenanceFor  `db:"maintenance_for"`

	EquipmentID  null.Uint64 `db:"equipment_id"`
	WorkCenterID null.Uint64 `db:"work_center_id"`
	TeamID       null.Uint64 `db:"team_id"`
	CategoryID   null.Uint64 `db:"category_id"`
	CompanyID    null.String `db:"company_id"`
	CreatedByID  null.Uint64 `db:"created_by_id"`

	// Resolved through joins, read-only.
	CategoryName   null.String `db:"-"`
	TeamName       null.String `db:"-"`
	EquipmentName  null.String `db:"-"`
	WorkCenterName null.String `db:"-"`
	CreatedByName  null.String `db:"-"`

	types.BaseEntity
}
