package constants

// Closed enums of the maintenance domain. Values are the wire and storage representation.

type RequestStage string

const (
	StageNewRequest RequestStage = "New Request"
	StageInProgress RequestStage = "In Progress"
	StageRepaired   RequestStage = "Repaired"
	StageScrap      RequestStage = "Scrap"
)

func (s RequestStage) IsValid() bool {
	switch s {
	case StageNewRequest, StageInProgress, StageRepaired, StageScrap:
		return true
	}
	return false
}

// OpenStages are the stages a request is still being worked in.
var OpenStages = []RequestStage{StageNewRequest, StageInProgress}

// ClosedStages are the stages that stop a request from being overdue.
var ClosedStages = []RequestStage{StageRepaired, StageScrap}

type EquipmentStatus string

const (
	EquipmentActive         EquipmentStatus = "ACTIVE"
	EquipmentMaintenance    EquipmentStatus = "MAINTENANCE"
	EquipmentDecommissioned EquipmentStatus = "DECOMMISSIONED"
)

func (s EquipmentStatus) IsValid() bool {
	switch s {
	case EquipmentActive, EquipmentMaintenance, EquipmentDecommissioned:
		return true
	}
	return false
}

type MaintenanceType string

const (
	MaintenanceCorrective MaintenanceType = "Corrective"
	MaintenancePreventive MaintenanceType = "Preventive"
)

func (t MaintenanceType) IsValid() bool {
	return t == MaintenanceCorrective || t == MaintenancePreventive
}

type MaintenanceFor string

const (
	ForEquipment  MaintenanceFor = "Equipment"
	ForWorkCenter MaintenanceFor = "Work Center"
)

func (f MaintenanceFor) IsValid() bool {
	return f == ForEquipment || f == ForWorkCenter
}

type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

type UserRole string

const (
	RoleAdmin      UserRole = "Admin"
	RoleTechnician UserRole = "Technician"
	RoleUser       UserRole = "User"
)

func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleTechnician, RoleUser:
		return true
	}
	return false
}
