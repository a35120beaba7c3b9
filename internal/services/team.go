package services

import (
	"context"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/types"
)

type TeamServiceInterface interface {
	GetTeams(ctx context.Context, filter types.Filter) ([]dto.TeamDTO, uint64, error)
	FindTeam(ctx context.Context, id uint64) (*dto.TeamDTO, error)
	CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*dto.TeamDTO, error)
	UpdateTeam(ctx context.Context, id uint64, payload dto.UpdateTeamDTO) (*dto.TeamDTO, error)
	DeleteTeam(ctx context.Context, id uint64) error
	AssignMember(ctx context.Context, teamID, userID uint64) (*dto.TeamDTO, error)
}

type TeamService struct {
	teamRepository repositories.TeamRepositoryInterface
	logger         *zap.Logger
}

func NewTeamService(teamRepository repositories.TeamRepositoryInterface, logger *zap.Logger) TeamServiceInterface {
	return &TeamService{teamRepository: teamRepository, logger: logger}
}

func (s *TeamService) GetTeams(ctx context.Context, filter types.Filter) ([]dto.TeamDTO, uint64, error) {
	teams, total, err := s.teamRepository.GetTeams(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]uint64, 0, len(teams))
	for _, t := range teams {
		ids = append(ids, t.ID)
	}
	members, err := s.teamRepository.GetMembers(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.TeamDTO, 0, len(teams))
	for i := range teams {
		teams[i].Members = members[teams[i].ID]
		out = append(out, teamToDTO(&teams[i]))
	}
	return out, total, nil
}

func (s *TeamService) FindTeam(ctx context.Context, id uint64) (*dto.TeamDTO, error) {
	team, err := s.teamRepository.FindTeam(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withMembers(ctx, team)
}

func (s *TeamService) withMembers(ctx context.Context, team *entities.Team) (*dto.TeamDTO, error) {
	members, err := s.teamRepository.GetMembers(ctx, []uint64{team.ID})
	if err != nil {
		return nil, err
	}
	team.Members = members[team.ID]
	res := teamToDTO(team)
	return &res, nil
}

func (s *TeamService) CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*dto.TeamDTO, error) {
	created, err := s.teamRepository.CreateTeam(ctx, entities.Team{Name: payload.Name})
	if err != nil {
		return nil, err
	}
	s.logger.Info("team created", zap.Uint64("id", created.ID), zap.String("name", created.Name))
	res := teamToDTO(created)
	return &res, nil
}

func (s *TeamService) UpdateTeam(ctx context.Context, id uint64, payload dto.UpdateTeamDTO) (*dto.TeamDTO, error) {
	current, err := s.teamRepository.FindTeam(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload.Name != nil {
		current.Name = *payload.Name
	}
	updated, err := s.teamRepository.UpdateTeam(ctx, *current)
	if err != nil {
		return nil, err
	}
	return s.withMembers(ctx, updated)
}

func (s *TeamService) DeleteTeam(ctx context.Context, id uint64) error {
	return s.teamRepository.DeleteTeam(ctx, id)
}

// AssignMember moves the user into the team; a user belongs to at most one team.
func (s *TeamService) AssignMember(ctx context.Context, teamID, userID uint64) (*dto.TeamDTO, error) {
	team, err := s.teamRepository.FindTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if err := s.teamRepository.AssignMember(ctx, teamID, userID); err != nil {
		return nil, err
	}
	s.logger.Info("user assigned to team", zap.Uint64("teamID", teamID), zap.Uint64("userID", userID))
	return s.withMembers(ctx, team)
}
