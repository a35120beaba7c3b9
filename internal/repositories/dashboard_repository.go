package repositories

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"gearguard/internal/entities"
	"gearguard/pkg/constants"
)

// DashboardRepositoryInterface holds the read-only aggregates over maintenance requests.
// Nothing here is cached: every call recounts.
type DashboardRepositoryInterface interface {
	CountCriticalEquipment(ctx context.Context) (uint64, error)
	CountOpenRequests(ctx context.Context) (uint64, error)
	CountOverdueRequests(ctx context.Context, today time.Time) (uint64, error)
	CountByTeam(ctx context.Context) ([]entities.GroupCount, error)
	CountByCategory(ctx context.Context) ([]entities.GroupCount, error)
	GetRecentRequests(ctx context.Context, limit uint64) ([]entities.MaintenanceRequest, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDashboardRepository(storage *pgxpool.Pool, logger *zap.Logger) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage, logger: logger}
}

func openStages() []string {
	out := make([]string, 0, len(constants.OpenStages))
	for _, s := range constants.OpenStages {
		out = append(out, string(s))
	}
	return out
}

func closedStages() []string {
	out := make([]string, 0, len(constants.ClosedStages))
	for _, s := range constants.ClosedStages {
		out = append(out, string(s))
	}
	return out
}

func (r *DashboardRepository) count(ctx context.Context, b sq.SelectBuilder) (uint64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}
	var n uint64
	err = r.storage.QueryRow(ctx, query, args...).Scan(&n)
	return n, err
}

// CountCriticalEquipment counts distinct equipment with an open corrective request.
func (r *DashboardRepository) CountCriticalEquipment(ctx context.Context) (uint64, error) {
	return r.count(ctx, psql.Select("COUNT(DISTINCT mr.equipment_id)").
		From("maintenance_requests AS mr").
		Where(sq.Eq{
			"mr.maintenance_type": string(constants.MaintenanceCorrective),
			"mr.stage":            openStages(),
		}))
}

func (r *DashboardRepository) CountOpenRequests(ctx context.Context) (uint64, error) {
	return r.count(ctx, psql.Select("COUNT(mr.id)").
		From("maintenance_requests AS mr").
		Where(sq.Eq{"mr.stage": openStages()}))
}

// CountOverdueRequests counts requests scheduled strictly before today's date that are
// neither repaired nor scrapped. Requests without a scheduled date never count.
func (r *DashboardRepository) CountOverdueRequests(ctx context.Context, today time.Time) (uint64, error) {
	return r.count(ctx, psql.Select("COUNT(mr.id)").
		From("maintenance_requests AS mr").
		Where(sq.Expr("mr.scheduled_date < ?::date", today.Format(constants.DateLayout))).
		Where(sq.NotEq{"mr.stage": closedStages()}))
}

func (r *DashboardRepository) groupBy(ctx context.Context, table, fk string) ([]entities.GroupCount, error) {
	query, args, err := psql.Select("g.name", "COUNT(mr.id)").
		From("maintenance_requests AS mr").
		Join(table + " g ON g.id = mr." + fk).
		GroupBy("g.name").
		OrderBy("g.name ASC").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entities.GroupCount, 0)
	for rows.Next() {
		var gc entities.GroupCount
		if err := rows.Scan(&gc.Name, &gc.Count); err != nil {
			return nil, err
		}
		out = append(out, gc)
	}
	return out, rows.Err()
}

// CountByTeam uses an inner join, so teams without requests are absent.
func (r *DashboardRepository) CountByTeam(ctx context.Context) ([]entities.GroupCount, error) {
	return r.groupBy(ctx, "teams", "team_id")
}

func (r *DashboardRepository) CountByCategory(ctx context.Context) ([]entities.GroupCount, error) {
	return r.groupBy(ctx, "categories", "category_id")
}

func (r *DashboardRepository) GetRecentRequests(ctx context.Context, limit uint64) ([]entities.MaintenanceRequest, error) {
	query, args, err := requestSelect().OrderBy("mr.created_at DESC", "mr.id DESC").Limit(limit).ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entities.MaintenanceRequest, 0, limit)
	for rows.Next() {
		m, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *m)
	}
	return list, rows.Err()
}
