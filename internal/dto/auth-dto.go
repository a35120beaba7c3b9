package dto

type RegisterDTO struct {
	Email    string  `json:"email" validate:"required,email"`
	Name     string  `json:"name" validate:"required,max=100"`
	Password string  `json:"password" validate:"required,min=6"`
	Role     *string `json:"role" validate:"omitempty,user_role"`
	TeamID   *uint64 `json:"team_id" validate:"omitempty,gt=0"`
}

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponseDTO struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	User        UserDTO `json:"user"`
}

// UserClaims is what the auth middleware puts into the request context.
type UserClaims struct {
	UserID uint64
	Email  string
	Name   string
	Role   string
	TeamID *uint64
}
