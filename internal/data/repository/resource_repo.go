package repository

import (
	"context"
	"fmt"

	"resource-booking/internal/data/entity"
	"resource-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type resourceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewResourceRepository(db database.PgxIface, log *zap.Logger) ResourceRepository {
	return &resourceRepository{
		db:  db,
		log: log.With(zap.String("repository", "resource")),
	}
}

func (r *resourceRepository) Create(ctx context.Context, resource *entity.Resource) error {
	query := `
		INSERT INTO resources (id, name, type, capacity, location, description, availability_hours, icon_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		resource.ID,
		resource.Name,
		resource.Type,
		resource.Capacity,
		resource.Location,
		resource.Description,
		resource.AvailabilityHours,
		resource.IconName,
		resource.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create resource",
			zap.Error(err),
			zap.String("name", resource.Name),
		)
		return fmt.Errorf("create resource %s: %w", resource.Name, err)
	}

	return nil
}

func (r *resourceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Resource, error) {
	query := `
		SELECT id, name, type, capacity, location, description, availability_hours, icon_name, created_at
		FROM resources
		WHERE id = $1
	`

	var resource entity.Resource
	err := r.db.QueryRow(ctx, query, id).Scan(
		&resource.ID,
		&resource.Name,
		&resource.Type,
		&resource.Capacity,
		&resource.Location,
		&resource.Description,
		&resource.AvailabilityHours,
		&resource.IconName,
		&resource.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find resource by ID",
			zap.Error(err),
			zap.String("resource_id", id.String()),
		)
		return nil, fmt.Errorf("find resource by ID %s: %w", id.String(), err)
	}

	return &resource, nil
}

func (r *resourceRepository) FindAll(ctx context.Context) ([]*entity.Resource, error) {
	query := `
		SELECT id, name, type, capacity, location, description, availability_hours, icon_name, created_at
		FROM resources
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list resources", zap.Error(err))
		return nil, fmt.Errorf("list resources: %w", err)
	}
	defer rows.Close()

	var resources []*entity.Resource
	for rows.Next() {
		var resource entity.Resource
		err := rows.Scan(
			&resource.ID,
			&resource.Name,
			&resource.Type,
			&resource.Capacity,
			&resource.Location,
			&resource.Description,
			&resource.AvailabilityHours,
			&resource.IconName,
			&resource.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan resource row", zap.Error(err))
			return nil, fmt.Errorf("scan resource row: %w", err)
		}
		resources = append(resources, &resource)
	}

	return resources, nil
}

func (r *resourceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Bookings referencing the resource are left untouched; they keep their
	// denormalized resource_name snapshot.
	query := `DELETE FROM resources WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete resource",
			zap.Error(err),
			zap.String("resource_id", id.String()),
		)
		return fmt.Errorf("delete resource %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("resource %s not found", id.String())
	}

	r.log.Info("Resource deleted", zap.String("resource_id", id.String()))
	return nil
}
