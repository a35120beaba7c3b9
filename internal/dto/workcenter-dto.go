package dto

import "github.com/aarondl/null/v8"

type CreateWorkCenterDTO struct {
	Name               string   `json:"name" validate:"required,max=100"`
	Code               string   `json:"code" validate:"required,max=50"`
	ResourceCalendarID *int64   `json:"resource_calendar_id"`
	Capacity           *float64 `json:"capacity" validate:"omitempty,gt=0"`
	TimeEfficiency     *float64 `json:"time_efficiency" validate:"omitempty,gt=0"`
	OEETarget          *float64 `json:"oee_target" validate:"omitempty,gt=0"`
}

type UpdateWorkCenterDTO struct {
	Name               *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Code               *string  `json:"code" validate:"omitempty,min=1,max=50"`
	ResourceCalendarID *int64   `json:"resource_calendar_id"`
	Capacity           *float64 `json:"capacity" validate:"omitempty,gt=0"`
	TimeEfficiency     *float64 `json:"time_efficiency" validate:"omitempty,gt=0"`
	OEETarget          *float64 `json:"oee_target" validate:"omitempty,gt=0"`
}

type WorkCenterDTO struct {
	ID                 uint64     `json:"id"`
	Name               string     `json:"name"`
	Code               string     `json:"code"`
	ResourceCalendarID null.Int64 `json:"resource_calendar_id"`
	Capacity           float64    `json:"capacity"`
	TimeEfficiency     float64    `json:"time_efficiency"`
	OEETarget          float64    `json:"oee_target"`
}
