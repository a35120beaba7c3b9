package dto

import "github.com/aarondl/null/v8"

type UpdateUserDTO struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Role     *string `json:"role" validate:"omitempty,user_role"`
	TeamID   *uint64 `json:"team_id" validate:"omitempty,gt=0"`
}

type UserDTO struct {
	ID     uint64      `json:"id"`
	Email  string      `json:"email"`
	Name   string      `json:"name"`
	Role   string      `json:"role"`
	TeamID null.Uint64 `json:"team_id"`
}
