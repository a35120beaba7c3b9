package dto

import "github.com/aarondl/null/v8"

// Dates travel as YYYY-MM-DD strings.
type CreateEquipmentDTO struct {
	Name                string  `json:"name" validate:"required,max=150"`
	SerialNumber        string  `json:"serial_number" validate:"required,max=100"`
	Department          *string `json:"department" validate:"omitempty,max=100"`
	Location            *string `json:"location" validate:"omitempty,max=150"`
	EmployeeID          *string `json:"employee_id" validate:"omitempty,max=100"`
	CompanyName         *string `json:"company_name" validate:"omitempty,max=150"`
	DefaultTechnicianID *string `json:"default_technician_id" validate:"omitempty,max=100"`
	Status              *string `json:"status" validate:"omitempty,equipment_status"`
	AssignDate          *string `json:"assign_date" validate:"omitempty,datetime=2006-01-02"`
	ScrapDate           *string `json:"scrap_date" validate:"omitempty,datetime=2006-01-02"`
	PurchaseDate        *string `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	WarrantyDate        *string `json:"warranty_date" validate:"omitempty,datetime=2006-01-02"`
	CategoryID          *uint64 `json:"category_id" validate:"omitempty,gt=0"`
	TeamID              *uint64 `json:"team_id" validate:"omitempty,gt=0"`
	WorkCenterID        *uint64 `json:"work_center_id" validate:"omitempty,gt=0"`
}

type UpdateEquipmentDTO struct {
	Name                *string `json:"name" validate:"omitempty,min=1,max=150"`
	SerialNumber        *string `json:"serial_number" validate:"omitempty,min=1,max=100"`
	Department          *string `json:"department" validate:"omitempty,max=100"`
	Location            *string `json:"location" validate:"omitempty,max=150"`
	EmployeeID          *string `json:"employee_id" validate:"omitempty,max=100"`
	CompanyName         *string `json:"company_name" validate:"omitempty,max=150"`
	DefaultTechnicianID *string `json:"default_technician_id" validate:"omitempty,max=100"`
	Status              *string `json:"status" validate:"omitempty,equipment_status"`
	AssignDate          *string `json:"assign_date" validate:"omitempty,datetime=2006-01-02"`
	ScrapDate           *string `json:"scrap_date" validate:"omitempty,datetime=2006-01-02"`
	PurchaseDate        *string `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	WarrantyDate        *string `json:"warranty_date" validate:"omitempty,datetime=2006-01-02"`
	CategoryID          *uint64 `json:"category_id" validate:"omitempty,gt=0"`
	TeamID              *uint64 `json:"team_id" validate:"omitempty,gt=0"`
	WorkCenterID        *uint64 `json:"work_center_id" validate:"omitempty,gt=0"`
}

type EquipmentDTO struct {
	ID                  uint64      `json:"id"`
	Name                string      `json:"name"`
	SerialNumber        string      `json:"serial_number"`
	Department          null.String `json:"department"`
	Location            null.String `json:"location"`
	EmployeeID          null.String `json:"employee_id"`
	CompanyName         null.String `json:"company_name"`
	DefaultTechnicianID null.String `json:"default_technician_id"`
	Status              string      `json:"status"`
	AssignDate          null.String `json:"assign_date"`
	ScrapDate           null.String `json:"scrap_date"`
	PurchaseDate        null.String `json:"purchase_date"`
	WarrantyDate        null.String `json:"warranty_date"`
	CategoryID          null.Uint64 `json:"category_id"`
	TeamID              null.Uint64 `json:"team_id"`
	WorkCenterID        null.Uint64 `json:"work_center_id"`
}
