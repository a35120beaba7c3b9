// File: internal/entities/user_entity.go
package entities

import (
	"github.com/aarondl/null/v8"

	"gearguard/pkg/constants"
	"gearguard/pkg/types"
)

type User struct {
	ID       uint64             `json:"id" db:"id"`
	Email    string             `json:"email" db:"email"`
	Name     string             `json:"name" db:"name"`
	Password string             `json:"-" db:"hashed_password"`
	Role     constants.UserRole `json:"role" db:"role"`
	TeamID   null.Uint64        `json:"team_id" db:"team_id"`

	types.BaseEntity
}
