package dto

import "github.com/aarondl/null/v8"

type CreateCategoryDTO struct {
	Name          string  `json:"name" validate:"required,max=100"`
	ResponsibleID *uint64 `json:"responsible_id" validate:"omitempty,gt=0"`
	CompanyName   *string `json:"company_name" validate:"omitempty,max=150"`
}

type UpdateCategoryDTO struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=100"`
	ResponsibleID *uint64 `json:"responsible_id" validate:"omitempty,gt=0"`
	CompanyName   *string `json:"company_name" validate:"omitempty,max=150"`
}

type CategoryDTO struct {
	ID            uint64      `json:"id"`
	Name          string      `json:"name"`
	ResponsibleID null.Uint64 `json:"responsible_id"`
	CompanyName   null.String `json:"company_name"`
	CreatedAt     string      `json:"created_at,omitempty"`
}
