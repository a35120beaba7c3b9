package dto

type CreateTeamDTO struct {
	Name string `json:"name" validate:"required,max=100"`
}

type UpdateTeamDTO struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
}

type TeamDTO struct {
	ID        uint64          `json:"id"`
	Name      string          `json:"name"`
	Members   []TeamMemberDTO `json:"members"`
	CreatedAt string          `json:"created_at,omitempty"`
}

type TeamMemberDTO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
