package dto

type DashboardStatsDTO struct {
	CriticalEquipmentCount uint64 `json:"critical_equipment_count"`
	TechnicianLoad         uint64 `json:"technician_load"`
	OpenRequestsCount      uint64 `json:"open_requests_count"`
	OverdueRequestsCount   uint64 `json:"overdue_requests_count"`
}

type GroupCountDTO struct {
	Name  string `json:"name"`
	Count uint64 `json:"count"`
}

type MaintenanceCountDTO struct {
	Total             uint64 `json:"total"`
	MaintenanceActive uint64 `json:"maintenance_active"`
}
