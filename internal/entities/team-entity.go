package entities

import "gearguard/pkg/types"

type Team struct {
	ID      uint64 `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Members []User `json:"members,omitempty" db:"-"`

	types.BaseEntity
}
