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

var categoryMap = map[string]string{
	"id":             "c.id",
	"name":           "c.name",
	"responsible_id": "c.responsible_id",
	"company_name":   "c.company_name",
	"created_at":     "c.created_at",
}

var categoryColumns = []string{
	"c.id", "c.name", "c.responsible_id", "c.company_name", "c.created_at", "c.updated_at",
}

type CategoryRepositoryInterface interface {
	GetCategories(ctx context.Context, filter types.Filter) ([]entities.Category, uint64, error)
	FindCategory(ctx context.Context, id uint64) (*entities.Category, error)
	CreateCategory(ctx context.Context, category entities.Category) (*entities.Category, error)
	UpdateCategory(ctx context.Context, category entities.Category) (*entities.Category, error)
	DeleteCategory(ctx context.Context, id uint64) error
}

type CategoryRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewCategoryRepository(storage *pgxpool.Pool, logger *zap.Logger) CategoryRepositoryInterface {
	return &CategoryRepository{storage: storage, logger: logger}
}

func scanCategory(row pgx.Row) (*entities.Category, error) {
	var c entities.Category
	err := row.Scan(&c.ID, &c.Name, &c.ResponsibleID, &c.CompanyName, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, mapPgError(err, "category")
	}
	return &c, nil
}

func (r *CategoryRepository) GetCategories(ctx context.Context, filter types.Filter) ([]entities.Category, uint64, error) {
	countBuilder := psql.Select("COUNT(c.id)").From("categories AS c")
	countBuilder = bd.ApplySearch(countBuilder, filter.Search, "c.name")
	countBuilder = bd.ApplyListParams(countBuilder, bd.ForCount(filter), categoryMap)

	var total uint64
	sqlCount, argsCount, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, mapPgError(err, "category")
	}
	if total == 0 {
		return []entities.Category{}, 0, nil
	}

	builder := psql.Select(categoryColumns...).From("categories AS c")
	builder = bd.ApplySearch(builder, filter.Search, "c.name")
	if len(filter.Sort) == 0 {
		builder = builder.OrderBy("c.name ASC")
	}
	builder = bd.ApplyListParams(builder, filter, categoryMap)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, mapPgError(err, "category")
	}
	defer rows.Close()

	categories := make([]entities.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, 0, err
		}
		categories = append(categories, *c)
	}
	return categories, total, rows.Err()
}

func (r *CategoryRepository) FindCategory(ctx context.Context, id uint64) (*entities.Category, error) {
	query, args, err := psql.Select(categoryColumns...).From("categories AS c").Where(sq.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanCategory(r.storage.QueryRow(ctx, query, args...))
}

func (r *CategoryRepository) CreateCategory(ctx context.Context, category entities.Category) (*entities.Category, error) {
	query := `
		INSERT INTO categories AS c (name, responsible_id, company_name, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING c.id, c.name, c.responsible_id, c.company_name, c.created_at, c.updated_at
	`
	return scanCategory(r.storage.QueryRow(ctx, query, category.Name, category.ResponsibleID, category.CompanyName))
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, category entities.Category) (*entities.Category, error) {
	query := `
		UPDATE categories AS c
		SET name = $1, responsible_id = $2, company_name = $3, updated_at = NOW()
		WHERE c.id = $4
		RETURNING c.id, c.name, c.responsible_id, c.company_name, c.created_at, c.updated_at
	`
	return scanCategory(r.storage.QueryRow(ctx, query,
		category.Name, category.ResponsibleID, category.CompanyName, category.ID))
}

func (r *CategoryRepository) DeleteCategory(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("category")
	}
	return nil
}
