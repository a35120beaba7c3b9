package entities

import (
	"github.com/aarondl/null/v8"

	"gearguard/pkg/types"
)

type WorkCenter struct {
	ID                 uint64     `json:"id" db:"id"`
	Name               string     `json:"name" db:"name"`
	Code               string     `json:"code" db:"code"`
	ResourceCalendarID null.Int64 `json:"resource_calendar_id" db:"resource_calendar_id"`
	Capacity           float64    `json:"capacity" db:"capacity"`
	TimeEfficiency     float64    `json:"time_efficiency" db:"time_efficiency"`
	OEETarget          float64    `json:"oee_target" db:"oee_target"`

	types.BaseEntity
}
