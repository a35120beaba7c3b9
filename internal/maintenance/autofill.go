// Package maintenance holds the two cross-entity rules of the maintenance workflow: defaulting a
// new request from its equipment, and syncing equipment status when a request changes stage.
// Both are pure; callers own the lookups and the transaction.
package maintenance

import (
	"gearguard/internal/entities"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
)

// NeedsEquipment reports whether the request should be defaulted from an equipment record.
func NeedsEquipment(req *entities.MaintenanceRequest) bool {
	return req.MaintenanceFor == constants.ForEquipment && req.EquipmentID.Valid && req.EquipmentID.Uint64 != 0
}

// CheckTarget rejects work-center requests that do not name a work center.
func CheckTarget(req *entities.MaintenanceRequest) error {
	if req.MaintenanceFor == constants.ForWorkCenter && (!req.WorkCenterID.Valid || req.WorkCenterID.Uint64 == 0) {
		return apperrors.NewValidationError("work_center_id is required for Work Center maintenance")
	}
	return nil
}

// ApplyEquipmentDefaults copies category, team, technician and work center from eq into every
// field the caller left unset. Fields already set are never overwritten.
func ApplyEquipmentDefaults(req *entities.MaintenanceRequest, eq *entities.Equipment) {
	if !req.CategoryID.Valid || req.CategoryID.Uint64 == 0 {
		req.CategoryID = eq.CategoryID
	}
	if !req.TeamID.Valid || req.TeamID.Uint64 == 0 {
		req.TeamID = eq.TeamID
	}
	if !req.TechnicianID.Valid || req.TechnicianID.String == "" {
		req.TechnicianID = eq.DefaultTechnicianID
	}
	if eq.WorkCenterID.Valid && (!req.WorkCenterID.Valid || req.WorkCenterID.Uint64 == 0) {
		req.WorkCenterID = eq.WorkCenterID
	}
}
