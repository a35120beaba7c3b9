package maintenance

import (
	"gearguard/internal/entities"
	"gearguard/pkg/constants"
)

// StatusForStage maps a target stage to the equipment status it implies. The second result is
// false for stages that leave the equipment untouched, which includes moving back to New Request.
func StatusForStage(stage constants.RequestStage) (constants.EquipmentStatus, bool) {
	switch stage {
	case constants.StageInProgress:
		return constants.EquipmentMaintenance, true
	case constants.StageRepaired:
		return constants.EquipmentActive, true
	case constants.StageScrap:
		return constants.EquipmentDecommissioned, true
	case constants.StageNewRequest:
		return "", false
	}
	return "", false
}

// ShouldSync reports whether moving stored to newStage has to touch the linked equipment.
func ShouldSync(stored *entities.MaintenanceRequest, newStage *constants.RequestStage) bool {
	if newStage == nil || *newStage == stored.Stage {
		return false
	}
	return NeedsEquipment(stored)
}

// SyncEquipment applies the status implied by newStage to eq. Scrapping stamps the scrap date
// with the stored request date. It returns true when eq was changed.
func SyncEquipment(eq *entities.Equipment, stored *entities.MaintenanceRequest, newStage constants.RequestStage) bool {
	status, ok := StatusForStage(newStage)
	if !ok {
		return false
	}
	eq.Status = status
	if newStage == constants.StageScrap {
		eq.ScrapDate.SetValid(stored.RequestDate)
	}
	return true
}
