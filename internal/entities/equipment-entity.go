package entities

import (
	"github.com/aarondl/null/v8"

	"gearguard/pkg/constants"
	"gearguard/pkg/types"
)

type Equipment struct {
	ID                  uint64                    `json:"id" db:"id"`
	Name                string                    `json:"name" db:"name"`
	SerialNumber        string                    `json:"serial_number" db:"serial_number"`
	Department          null.String               `json:"department" db:"department"`
	Location            null.String               `json:"location" db:"location"`
	EmployeeID          null.String               `json:"employee_id" db:"employee_id"`
	CompanyName         null.String               `json:"company_name" db:"company_name"`
	DefaultTechnicianID null.String               `json:"default_technician_id" db:"default_technician_id"`
	Status              constants.EquipmentStatus `json:"status" db:"status"`

	AssignDate   null.Time `json:"assign_date" db:"assign_date"`
	ScrapDate    null.Time `json:"scrap_date" db:"scrap_date"`
	PurchaseDate null.Time `json:"purchase_date" db:"purchase_date"`
	WarrantyDate null.Time `json:"warranty_date" db:"warranty_date"`

	CategoryID   null.Uint64 `json:"category_id" db:"category_id"`
	TeamID       null.Uint64 `json:"team_id" db:"team_id"`
	WorkCenterID null.Uint64 `json:"work_center_id" db:"work_center_id"`

	types.BaseEntity
}

// EquipmentMaintenanceCount backs the smart-button badge on the equipment form.
type EquipmentMaintenanceCount struct {
	Total             uint64 `json:"total"`
	MaintenanceActive uint64 `json:"maintenance_active"`
}
