package entities

import (
	"github.com/aarondl/null/v8"

	"gearguard/pkg/types"
)

type Category struct {
	ID            uint64      `json:"id" db:"id"`
	Name          string      `json:"name" db:"name"`
	ResponsibleID null.Uint64 `json:"responsible_id" db:"responsible_id"`
	CompanyName   null.String `json:"company_name" db:"company_name"`

	types.BaseEntity
}
