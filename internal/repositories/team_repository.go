package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"gearguard/internal/entities"
	"gearguard/internal/infrastructure/bd"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"
)

var teamMap = map[string]string{
	"id":         "t.id",
	"name":       "t.name",
	"created_at": "t.created_at",
}

type TeamRepositoryInterface interface {
	GetTeams(ctx context.Context, filter types.Filter) ([]entities.Team, uint64, error)
	FindTeam(ctx context.Context, id uint64) (*entities.Team, error)
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	UpdateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	DeleteTeam(ctx context.Context, id uint64) error
	GetMembers(ctx context.Context, teamIDs []uint64) (map[uint64][]entities.User, error)
	AssignMember(ctx context.Context, teamID, userID uint64) error
}

type TeamRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewTeamRepository(storage *pgxpool.Pool, logger *zap.Logger) TeamRepositoryInterface {
	return &TeamRepository{storage: storage, logger: logger}
}

func scanTeam(row pgx.Row) (*entities.Team, error) {
	var t entities.Team
	if err := row.Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, mapPgError(err, "team")
	}
	return &t, nil
}

func (r *TeamRepository) GetTeams(ctx context.Context, filter types.Filter) ([]entities.Team, uint64, error) {
	countBuilder := psql.Select("COUNT(t.id)").From("teams AS t")
	countBuilder = bd.ApplySearch(countBuilder, filter.Search, "t.name")
	countBuilder = bd.ApplyListParams(countBuilder, bd.ForCount(filter), teamMap)

	var total uint64
	sqlCount, argsCount, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, mapPgError(err, "team")
	}
	if total == 0 {
		return []entities.Team{}, 0, nil
	}

	builder := psql.Select("t.id", "t.name", "t.created_at", "t.updated_at").From("teams AS t")
	builder = bd.ApplySearch(builder, filter.Search, "t.name")
	if len(filter.Sort) == 0 {
		builder = builder.OrderBy("t.name ASC")
	}
	builder = bd.ApplyListParams(builder, filter, teamMap)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, mapPgError(err, "team")
	}
	defer rows.Close()

	teams := make([]entities.Team, 0)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, 0, err
		}
		teams = append(teams, *t)
	}
	return teams, total, rows.Err()
}

func (r *TeamRepository) FindTeam(ctx context.Context, id uint64) (*entities.Team, error) {
	query, args, err := psql.Select("t.id", "t.name", "t.created_at", "t.updated_at").
		From("teams AS t").Where(sq.Eq{"t.id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanTeam(r.storage.QueryRow(ctx, query, args...))
}

func (r *TeamRepository) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	query := `
		INSERT INTO teams (name, created_at, updated_at) VALUES ($1, NOW(), NOW())
		RETURNING id, name, created_at, updated_at
	`
	return scanTeam(r.storage.QueryRow(ctx, query, team.Name))
}

func (r *TeamRepository) UpdateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	query := `
		UPDATE teams SET name = $1, updated_at = NOW() WHERE id = $2
		RETURNING id, name, created_at, updated_at
	`
	return scanTeam(r.storage.QueryRow(ctx, query, team.Name, team.ID))
}

func (r *TeamRepository) DeleteTeam(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("team")
	}
	return nil
}

// GetMembers loads the users of every team in teamIDs with one query.
func (r *TeamRepository) GetMembers(ctx context.Context, teamIDs []uint64) (map[uint64][]entities.User, error) {
	members := make(map[uint64][]entities.User, len(teamIDs))
	if len(teamIDs) == 0 {
		return members, nil
	}

	query, args, err := psql.Select(userColumns...).From("users AS u").
		Where(sq.Eq{"u.team_id": teamIDs}).OrderBy("u.name ASC").ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		members[u.TeamID.Uint64] = append(members[u.TeamID.Uint64], *u)
	}
	return members, rows.Err()
}

func (r *TeamRepository) AssignMember(ctx context.Context, teamID, userID uint64) error {
	result, err := r.storage.Exec(ctx, `UPDATE users SET team_id = $1, updated_at = NOW() WHERE id = $2`, teamID, userID)
	if err != nil {
		return mapPgError(err, "team")
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user")
	}
	return nil
}
