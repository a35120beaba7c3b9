package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"gearguard/internal/entities"
	"gearguard/internal/infrastructure/bd"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"
)

var equipmentMap = map[string]string{
	"id":             "e.id",
	"name":           "e.name",
	"serial_number":  "e.serial_number",
	"status":         "e.status",
	"department":     "e.department",
	"location":       "e.location",
	"category_id":    "e.category_id",
	"team_id":        "e.team_id",
	"work_center_id": "e.work_center_id",
	"assign_date":    "e.assign_date",
	"created_at":     "e.created_at",
}

var equipmentColumns = []string{
	"e.id", "e.name", "e.serial_number", "e.department", "e.location", "e.employee_id", "e.company_name",
	"e.default_technician_id", "e.status", "e.assign_date", "e.scrap_date", "e.purchase_date", "e.warranty_date",
	"e.category_id", "e.team_id", "e.work_center_id", "e.created_at", "e.updated_at",
}

const equipmentReturning = `RETURNING e.id, e.name, e.serial_number, e.department, e.location, e.employee_id,
		e.company_name, e.default_technician_id, e.status, e.assign_date, e.scrap_date, e.purchase_date,
		e.warranty_date, e.category_id, e.team_id, e.work_center_id, e.created_at, e.updated_at`

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, eq entities.Equipment) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, tx pgx.Tx, eq entities.Equipment) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id uint64) error
	CountMaintenance(ctx context.Context, id uint64) (*entities.EquipmentMaintenanceCount, error)
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage, logger: logger}
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(
		&e.ID, &e.Name, &e.SerialNumber, &e.Department, &e.Location, &e.EmployeeID, &e.CompanyName,
		&e.DefaultTechnicianID, &e.Status, &e.AssignDate, &e.ScrapDate, &e.PurchaseDate, &e.WarrantyDate,
		&e.CategoryID, &e.TeamID, &e.WorkCenterID, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, mapPgError(err, "equipment")
	}
	return &e, nil
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	applySearch := func(b sq.SelectBuilder) sq.SelectBuilder {
		return bd.ApplySearch(b, filter.Search, "e.name", "e.serial_number", "e.location")
	}

	countBuilder := applySearch(psql.Select("COUNT(e.id)").From("equipments AS e"))
	countBuilder = bd.ApplyListParams(countBuilder, bd.ForCount(filter), equipmentMap)

	var total uint64
	sqlCount, argsCount, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, mapPgError(err, "equipment")
	}
	if total == 0 {
		return []entities.Equipment{}, 0, nil
	}

	builder := applySearch(psql.Select(equipmentColumns...).From("equipments AS e"))
	if len(filter.Sort) == 0 {
		builder = builder.OrderBy("e.id ASC")
	}
	builder = bd.ApplyListParams(builder, filter, equipmentMap)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, mapPgError(err, "equipment")
	}
	defer rows.Close()

	list := make([]entities.Equipment, 0)
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, *e)
	}
	return list, total, rows.Err()
}

// FindEquipment reads through tx when it is not nil; inside a transaction the row is locked.
func (r *EquipmentRepository) FindEquipment(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Equipment, error) {
	builder := psql.Select(equipmentColumns...).From("equipments AS e").Where(sq.Eq{"e.id": id})
	if tx != nil {
		builder = builder.Suffix("FOR UPDATE")
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	return scanEquipment(querierOf(r.storage, tx).QueryRow(ctx, query, args...))
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, eq entities.Equipment) (*entities.Equipment, error) {
	query := `
		INSERT INTO equipments AS e (
			name, serial_number, department, location, employee_id, company_name, default_technician_id,
			status, assign_date, scrap_date, purchase_date, warranty_date, category_id, team_id, work_center_id,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
	` + equipmentReturning
	return scanEquipment(r.storage.QueryRow(ctx, query,
		eq.Name, eq.SerialNumber, eq.Department, eq.Location, eq.EmployeeID, eq.CompanyName,
		eq.DefaultTechnicianID, eq.Status, eq.AssignDate, eq.ScrapDate, eq.PurchaseDate, eq.WarrantyDate,
		eq.CategoryID, eq.TeamID, eq.WorkCenterID,
	))
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, tx pgx.Tx, eq entities.Equipment) (*entities.Equipment, error) {
	query := `
		UPDATE equipments AS e
		SET name = $1, serial_number = $2, department = $3, location = $4, employee_id = $5,
		    company_name = $6, default_technician_id = $7, status = $8, assign_date = $9, scrap_date = $10,
		    purchase_date = $11, warranty_date = $12, category_id = $13, team_id = $14, work_center_id = $15,
		    updated_at = NOW()
		WHERE e.id = $16
	` + equipmentReturning
	return scanEquipment(querierOf(r.storage, tx).QueryRow(ctx, query,
		eq.Name, eq.SerialNumber, eq.Department, eq.Location, eq.EmployeeID, eq.CompanyName,
		eq.DefaultTechnicianID, eq.Status, eq.AssignDate, eq.ScrapDate, eq.PurchaseDate, eq.WarrantyDate,
		eq.CategoryID, eq.TeamID, eq.WorkCenterID, eq.ID,
	))
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM equipments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("equipment")
	}
	return nil
}

// CountMaintenance backs the smart button: all requests of the equipment and the open ones.
func (r *EquipmentRepository) CountMaintenance(ctx context.Context, id uint64) (*entities.EquipmentMaintenanceCount, error) {
	query, args, err := psql.Select("COUNT(mr.id)").
		Column(sq.Expr("COUNT(mr.id) FILTER (WHERE mr.stage IN (?, ?))", constants.StageNewRequest, constants.StageInProgress)).
		From("maintenance_requests AS mr").
		Where(sq.Eq{"mr.equipment_id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var out entities.EquipmentMaintenanceCount
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&out.Total, &out.MaintenanceActive); err != nil {
		return nil, err
	}
	return &out, nil
}
