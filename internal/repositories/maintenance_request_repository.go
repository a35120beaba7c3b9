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

var requestMap = map[string]string{
	"id":               "mr.id",
	"subject":          "mr.subject",
	"stage":            "mr.stage",
	"priority":         "mr.priority",
	"maintenance_type": "mr.maintenance_type",
	"maintenance_for":  "mr.maintenance_for",
	"equipment_id":     "mr.equipment_id",
	"work_center_id":   "mr.work_center_id",
	"team_id":          "mr.team_id",
	"category_id":      "mr.category_id",
	"technician_id":    "mr.technician_id",
	"created_by_id":    "mr.created_by_id",
	"request_date":     "mr.request_date",
	"scheduled_date":   "mr.scheduled_date",
	"created_at":       "mr.created_at",
}

// requestSelect reads a request together with the names of everything it references.
func requestSelect() sq.SelectBuilder {
	return psql.Select(
		"mr.id", "mr.subject", "mr.request_date", "mr.scheduled_date", "mr.duration", "mr.technician_id",
		"mr.maintenance_type", "mr.priority", "mr.stage", "mr.description", "mr.maintenance_for",
		"mr.equipment_id", "mr.work_center_id", "mr.team_id", "mr.category_id", "mr.company_id",
		"mr.created_by_id", "mr.created_at", "mr.updated_at",
		"c.name", "t.name", "e.name", "w.name", "u.name",
	).From("maintenance_requests AS mr").
		LeftJoin("categories c ON c.id = mr.category_id").
		LeftJoin("teams t ON t.id = mr.team_id").
		LeftJoin("equipments e ON e.id = mr.equipment_id").
		LeftJoin("workcenters w ON w.id = mr.work_center_id").
		LeftJoin("users u ON u.id = mr.created_by_id")
}

func scanRequest(row pgx.Row) (*entities.MaintenanceRequest, error) {
	var m entities.MaintenanceRequest
	err := row.Scan(
		&m.ID, &m.Subject, &m.RequestDate, &m.ScheduledDate, &m.Duration, &m.TechnicianID,
		&m.MaintenanceType, &m.Priority, &m.Stage, &m.Description, &m.MaintenanceFor,
		&m.EquipmentID, &m.WorkCenterID, &m.TeamID, &m.CategoryID, &m.CompanyID,
		&m.CreatedByID, &m.CreatedAt, &m.UpdatedAt,
		&m.CategoryName, &m.TeamName, &m.EquipmentName, &m.WorkCenterName, &m.CreatedByName,
	)
	if err != nil {
		return nil, mapPgError(err, "maintenance request")
	}
	return &m, nil
}

type MaintenanceRequestRepositoryInterface interface {
	GetRequests(ctx context.Context, filter types.Filter) ([]entities.MaintenanceRequest, uint64, error)
	FindRequest(ctx context.Context, tx pgx.Tx, id uint64) (*entities.MaintenanceRequest, error)
	CreateRequest(ctx context.Context, req entities.MaintenanceRequest) (uint64, error)
	UpdateRequest(ctx context.Context, tx pgx.Tx, req entities.MaintenanceRequest) error
	DeleteRequest(ctx context.Context, id uint64) error
}

type MaintenanceRequestRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewMaintenanceRequestRepository(storage *pgxpool.Pool, logger *zap.Logger) MaintenanceRequestRepositoryInterface {
	return &MaintenanceRequestRepository{storage: storage, logger: logger}
}

func (r *MaintenanceRequestRepository) GetRequests(ctx context.Context, filter types.Filter) ([]entities.MaintenanceRequest, uint64, error) {
	countBuilder := psql.Select("COUNT(mr.id)").From("maintenance_requests AS mr")
	countBuilder = bd.ApplySearch(countBuilder, filter.Search, "mr.subject")
	countBuilder = bd.ApplyListParams(countBuilder, bd.ForCount(filter), requestMap)

	var total uint64
	sqlCount, argsCount, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, mapPgError(err, "maintenance request")
	}
	if total == 0 {
		return []entities.MaintenanceRequest{}, 0, nil
	}

	builder := bd.ApplySearch(requestSelect(), filter.Search, "mr.subject")
	if len(filter.Sort) == 0 {
		builder = builder.OrderBy("mr.id DESC")
	}
	builder = bd.ApplyListParams(builder, filter, requestMap)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, mapPgError(err, "maintenance request")
	}
	defer rows.Close()

	list := make([]entities.MaintenanceRequest, 0)
	for rows.Next() {
		m, err := scanRequest(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, *m)
	}
	return list, total, rows.Err()
}

// FindRequest locks the request row when called inside a transaction.
func (r *MaintenanceRequestRepository) FindRequest(ctx context.Context, tx pgx.Tx, id uint64) (*entities.MaintenanceRequest, error) {
	builder := requestSelect().Where(sq.Eq{"mr.id": id})
	if tx != nil {
		builder = builder.Suffix("FOR UPDATE OF mr")
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	return scanRequest(querierOf(r.storage, tx).QueryRow(ctx, query, args...))
}

func (r *MaintenanceRequestRepository) CreateRequest(ctx context.Context, req entities.MaintenanceRequest) (uint64, error) {
	query := `
		INSERT INTO maintenance_requests (
			subject, request_date, scheduled_date, duration, technician_id, maintenance_type, priority, stage,
			description, maintenance_for, equipment_id, work_center_id, team_id, category_id, company_id,
			created_by_id, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW(), NOW())
		RETURNING id
	`
	var id uint64
	err := r.storage.QueryRow(ctx, query,
		req.Subject, req.RequestDate, req.ScheduledDate, req.Duration, req.TechnicianID, req.MaintenanceType,
		req.Priority, req.Stage, req.Description, req.MaintenanceFor, req.EquipmentID, req.WorkCenterID,
		req.TeamID, req.CategoryID, req.CompanyID, req.CreatedByID,
	).Scan(&id)
	if err != nil {
		return 0, mapPgError(err, "maintenance request")
	}
	return id, nil
}

func (r *MaintenanceRequestRepository) UpdateRequest(ctx context.Context, tx pgx.Tx, req entities.MaintenanceRequest) error {
	query := `
		UPDATE maintenance_requests
		SET subject = $1, request_date = $2, scheduled_date = $3, duration = $4, technician_id = $5,
		    maintenance_type = $6, priority = $7, stage = $8, description = $9, maintenance_for = $10,
		    equipment_id = $11, work_center_id = $12, team_id = $13, category_id = $14, company_id = $15,
		    updated_at = NOW()
		WHERE id = $16
	`
	result, err := querierOf(r.storage, tx).Exec(ctx, query,
		req.Subject, req.RequestDate, req.ScheduledDate, req.Duration, req.TechnicianID, req.MaintenanceType,
		req.Priority, req.Stage, req.Description, req.MaintenanceFor, req.EquipmentID, req.WorkCenterID,
		req.TeamID, req.CategoryID, req.CompanyID, req.ID,
	)
	if err != nil {
		return mapPgError(err, "maintenance request")
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("maintenance request")
	}
	return nil
}

func (r *MaintenanceRequestRepository) DeleteRequest(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM maintenance_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("maintenance request")
	}
	return nil
}
