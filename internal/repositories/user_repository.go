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

var userMap = map[string]string{
	"id":         "u.id",
	"email":      "u.email",
	"name":       "u.name",
	"role":       "u.role",
	"team_id":    "u.team_id",
	"created_at": "u.created_at",
}

var userColumns = []string{
	"u.id", "u.email", "u.name", "u.hashed_password", "u.role", "u.team_id", "u.created_at", "u.updated_at",
}

type UserRepositoryInterface interface {
	GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error)
	FindUserByID(ctx context.Context, id uint64) (*entities.User, error)
	FindUserByEmail(ctx context.Context, email string) (*entities.User, error)
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	UpdateUser(ctx context.Context, user entities.User) (*entities.User, error)
	DeleteUser(ctx context.Context, id uint64) error
}

type UserRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Password, &u.Role, &u.TeamID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, mapPgError(err, "user")
	}
	return &u, nil
}

func (r *UserRepository) GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error) {
	countBuilder := psql.Select("COUNT(u.id)").From("users AS u")
	countBuilder = bd.ApplySearch(countBuilder, filter.Search, "u.name", "u.email")
	countBuilder = bd.ApplyListParams(countBuilder, bd.ForCount(filter), userMap)

	var total uint64
	sqlCount, argsCount, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, mapPgError(err, "user")
	}
	if total == 0 {
		return []entities.User{}, 0, nil
	}

	builder := psql.Select(userColumns...).From("users AS u")
	builder = bd.ApplySearch(builder, filter.Search, "u.name", "u.email")
	if len(filter.Sort) == 0 {
		builder = builder.OrderBy("u.id ASC")
	}
	builder = bd.ApplyListParams(builder, filter, userMap)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, mapPgError(err, "user")
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *u)
	}
	return users, total, rows.Err()
}

func (r *UserRepository) findOne(ctx context.Context, where sq.Eq) (*entities.User, error) {
	query, args, err := psql.Select(userColumns...).From("users AS u").Where(where).ToSql()
	if err != nil {
		return nil, err
	}
	return scanUser(r.storage.QueryRow(ctx, query, args...))
}

func (r *UserRepository) FindUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	return r.findOne(ctx, sq.Eq{"u.id": id})
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, sq.Eq{"u.email": email})
}

func (r *UserRepository) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	query := `
		INSERT INTO users AS u (email, name, hashed_password, role, team_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING u.id, u.email, u.name, u.hashed_password, u.role, u.team_id, u.created_at, u.updated_at
	`
	return scanUser(r.storage.QueryRow(ctx, query, user.Email, user.Name, user.Password, user.Role, user.TeamID))
}

func (r *UserRepository) UpdateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	query := `
		UPDATE users AS u
		SET email = $1, name = $2, hashed_password = $3, role = $4, team_id = $5, updated_at = NOW()
		WHERE u.id = $6
		RETURNING u.id, u.email, u.name, u.hashed_password, u.role, u.team_id, u.created_at, u.updated_at
	`
	return scanUser(r.storage.QueryRow(ctx, query,
		user.Email, user.Name, user.Password, user.Role, user.TeamID, user.ID))
}

func (r *UserRepository) DeleteUser(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user")
	}
	return nil
}
