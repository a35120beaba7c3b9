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

var workCenterMap = map[string]string{
	"id":         "w.id",
	"name":       "w.name",
	"code":       "w.code",
	"capacity":   "w.capacity",
	"created_at": "w.created_at",
}

var workCenterColumns = []string{
	"w.id", "w.name", "w.code", "w.resource_calendar_id", "w.capacity", "w.time_efficiency", "w.oee_target",
	"w.created_at", "w.updated_at",
}

const workCenterReturning = `RETURNING w.id, w.name, w.code, w.resource_calendar_id, w.capacity, w.time_efficiency,
		w.oee_target, w.created_at, w.updated_at`

type WorkCenterRepositoryInterface interface {
	GetWorkCenters(ctx context.Context, filter types.Filter) ([]entities.WorkCenter, uint64, error)
	FindWorkCenter(ctx context.Context, id uint64) (*entities.WorkCenter, error)
	CreateWorkCenter(ctx context.Context, wc entities.WorkCenter) (*entities.WorkCenter, error)
	UpdateWorkCenter(ctx context.Context, wc entities.WorkCenter) (*entities.WorkCenter, error)
	DeleteWorkCenter(ctx context.Context, id uint64) error
}

type WorkCenterRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewWorkCenterRepository(storage *pgxpool.Pool, logger *zap.Logger) WorkCenterRepositoryInterface {
	return &WorkCenterRepository{storage: storage, logger: logger}
}

func scanWorkCenter(row pgx.Row) (*entities.WorkCenter, error) {
	var w entities.WorkCenter
	err := row.Scan(&w.ID, &w.Name, &w.Code, &w.ResourceCalendarID, &w.Capacity, &w.TimeEfficiency,
		&w.OEETarget, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, mapPgError(err, "work center")
	}
	return &w, nil
}

func (r *WorkCenterRepository) GetWorkCenters(ctx context.Context, filter types.Filter) ([]entities.WorkCenter, uint64, error) {
	countBuilder := psql.Select("COUNT(w.id)").From("workcenters AS w")
	countBuilder = bd.ApplySearch(countBuilder, filter.Search, "w.name", "w.code")
	countBuilder = bd.ApplyListParams(countBuilder, bd.ForCount(filter), workCenterMap)

	var total uint64
	sqlCount, argsCount, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, mapPgError(err, "work center")
	}
	if total == 0 {
		return []entities.WorkCenter{}, 0, nil
	}

	builder := psql.Select(workCenterColumns...).From("workcenters AS w")
	builder = bd.ApplySearch(builder, filter.Search, "w.name", "w.code")
	if len(filter.Sort) == 0 {
		builder = builder.OrderBy("w.code ASC")
	}
	builder = bd.ApplyListParams(builder, filter, workCenterMap)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, mapPgError(err, "work center")
	}
	defer rows.Close()

	list := make([]entities.WorkCenter, 0)
	for rows.Next() {
		w, err := scanWorkCenter(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, *w)
	}
	return list, total, rows.Err()
}

func (r *WorkCenterRepository) FindWorkCenter(ctx context.Context, id uint64) (*entities.WorkCenter, error) {
	query, args, err := psql.Select(workCenterColumns...).From("workcenters AS w").Where(sq.Eq{"w.id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanWorkCenter(r.storage.QueryRow(ctx, query, args...))
}

func (r *WorkCenterRepository) CreateWorkCenter(ctx context.Context, wc entities.WorkCenter) (*entities.WorkCenter, error) {
	query := `
		INSERT INTO workcenters AS w (name, code, resource_calendar_id, capacity, time_efficiency, oee_target, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	` + workCenterReturning
	return scanWorkCenter(r.storage.QueryRow(ctx, query,
		wc.Name, wc.Code, wc.ResourceCalendarID, wc.Capacity, wc.TimeEfficiency, wc.OEETarget))
}

func (r *WorkCenterRepository) UpdateWorkCenter(ctx context.Context, wc entities.WorkCenter) (*entities.WorkCenter, error) {
	query := `
		UPDATE workcenters AS w
		SET name = $1, code = $2, resource_calendar_id = $3, capacity = $4, time_efficiency = $5,
		    oee_target = $6, updated_at = NOW()
		WHERE w.id = $7
	` + workCenterReturning
	return scanWorkCenter(r.storage.QueryRow(ctx, query,
		wc.Name, wc.Code, wc.ResourceCalendarID, wc.Capacity, wc.TimeEfficiency, wc.OEETarget, wc.ID))
}

func (r *WorkCenterRepository) DeleteWorkCenter(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM workcenters WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("work center")
	}
	return nil
}
