package entities

// GroupCount is one row of a group-by report (requests per team or per category).
type GroupCount struct {
	Name  string `json:"name"`
	Count uint64 `json:"count"`
}

type DashboardStats struct {
	CriticalEquipmentCount uint64 `json:"critical_equipment_count"`
	TechnicianLoad         uint64 `json:"technician_load"`
	OpenRequestsCount      uint64 `json:"open_requests_count"`
	OverdueRequestsCount   uint64 `json:"overdue_requests_count"`
}
