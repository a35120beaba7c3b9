package services

import (
	"github.com/aarondl/null/v8"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/pkg/utils"
)

func categoryToDTO(c *entities.Category) dto.CategoryDTO {
	return dto.CategoryDTO{
		ID:            c.ID,
		Name:          c.Name,
		ResponsibleID: c.ResponsibleID,
		CompanyName:   c.CompanyName,
		CreatedAt:     utils.FormatTimestamp(c.CreatedAt),
	}
}

func teamToDTO(t *entities.Team) dto.TeamDTO {
	members := make([]dto.TeamMemberDTO, 0, len(t.Members))
	for _, m := range t.Members {
		members = append(members, dto.TeamMemberDTO{ID: m.ID, Name: m.Name, Email: m.Email, Role: string(m.Role)})
	}
	return dto.TeamDTO{ID: t.ID, Name: t.Name, Members: members, CreatedAt: utils.FormatTimestamp(t.CreatedAt)}
}

func workCenterToDTO(w *entities.WorkCenter) dto.WorkCenterDTO {
	return dto.WorkCenterDTO{
		ID:                 w.ID,
		Name:               w.Name,
		Code:               w.Code,
		ResourceCalendarID: w.ResourceCalendarID,
		Capacity:           w.Capacity,
		TimeEfficiency:     w.TimeEfficiency,
		OEETarget:          w.OEETarget,
	}
}

func equipmentToDTO(e *entities.Equipment) dto.EquipmentDTO {
	return dto.EquipmentDTO{
		ID:                  e.ID,
		Name:                e.Name,
		SerialNumber:        e.SerialNumber,
		Department:          e.Department,
		Location:            e.Location,
		EmployeeID:          e.EmployeeID,
		CompanyName:         e.CompanyName,
		DefaultTechnicianID: e.DefaultTechnicianID,
		Status:              string(e.Status),
		AssignDate:          utils.FormatNullDate(e.AssignDate),
		ScrapDate:           utils.FormatNullDate(e.ScrapDate),
		PurchaseDate:        utils.FormatNullDate(e.PurchaseDate),
		WarrantyDate:        utils.FormatNullDate(e.WarrantyDate),
		CategoryID:          e.CategoryID,
		TeamID:              e.TeamID,
		WorkCenterID:        e.WorkCenterID,
	}
}

func shortRef(id null.Uint64, name null.String) *dto.ShortRefDTO {
	if !id.Valid || !name.Valid {
		return nil
	}
	return &dto.ShortRefDTO{ID: id.Uint64, Name: name.String}
}

func requestToDTO(m *entities.MaintenanceRequest) dto.MaintenanceRequestDTO {
	return dto.MaintenanceRequestDTO{
		ID:              m.ID,
		Subject:         m.Subject,
		RequestDate:     utils.FormatDate(m.RequestDate),
		ScheduledDate:   utils.FormatNullDate(m.ScheduledDate),
		Duration:        m.Duration,
		TechnicianID:    m.TechnicianID,
		MaintenanceType: string(m.MaintenanceType),
		Priority:        string(m.Priority),
		Stage:           string(m.Stage),
		Description:     m.Description,
		MaintenanceFor:  string(m.MaintenanceFor),
		EquipmentID:     m.EquipmentID,
		WorkCenterID:    m.WorkCenterID,
		CompanyID:       m.CompanyID,
		TeamID:          m.TeamID,
		CategoryID:      m.CategoryID,
		CreatedByID:     m.CreatedByID,
		Category:        shortRef(m.CategoryID, m.CategoryName),
		Team:            shortRef(m.TeamID, m.TeamName),
		Equipment:       shortRef(m.EquipmentID, m.EquipmentName),
		WorkCenter:      shortRef(m.WorkCenterID, m.WorkCenterName),
		CreatedBy:       shortRef(m.CreatedByID, m.CreatedByName),
	}
}

func requestsToDTO(list []entities.MaintenanceRequest) []dto.MaintenanceRequestDTO {
	out := make([]dto.MaintenanceRequestDTO, 0, len(list))
	for i := range list {
		out = append(out, requestToDTO(&list[i]))
	}
	return out
}

func userToDTO(u *entities.User) dto.UserDTO {
	return dto.UserDTO{ID: u.ID, Email: u.Email, Name: u.Name, Role: string(u.Role), TeamID: u.TeamID}
}
