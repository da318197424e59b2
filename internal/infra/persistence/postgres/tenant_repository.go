// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"foodtruck/internal/domain/entity"
	domainerrors "foodtruck/internal/domain/errors"
	"foodtruck/internal/domain/repository"
	"foodtruck/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// tenantRepository implements the domain.TenantRepository interface using GORM.
type tenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository is the constructor for tenantRepository.
func NewTenantRepository(db *gorm.DB) repository.TenantRepository {
	return &tenantRepository{db: db}
}

// FindByID retrieves a single tenant by its unique ID.
func (repo *tenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error) {
	return repo.first(ctx, repo.db.WithContext(ctx).Where("id = ?", id), "failed to find tenant by id")
}

// FindBySubdomain retrieves a single tenant by its storefront subdomain.
func (repo *tenantRepository) FindBySubdomain(ctx context.Context, subdomain string) (*entity.Tenant, error) {
	return repo.first(ctx, repo.db.WithContext(ctx).Where("subdomain = ?", subdomain), "failed to find tenant by subdomain")
}

// FindByIDForUpdate retrieves a tenant with SELECT ... FOR UPDATE.
func (repo *tenantRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Tenant, error) {
	query := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id)

	return repo.first(ctx, query, "failed to lock tenant")
}

func (repo *tenantRepository) first(_ context.Context, query *gorm.DB, message string) (*entity.Tenant, error) {
	var tenantM model.TenantModel
	if err := query.First(&tenantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTenantNotFound
		}

		return nil, errors.Wrap(err, message)
	}

	return toTenantDomain(&tenantM), nil
}

// hasClosedDay matches documents with at least one day flagged closed.
// Served by idx_tenants_schedule_days.
const hasClosedDay = `schedule -> 'days' @> '[{"isClosed": true}]'`

// ListClosedIDs returns one keyset page of IDs of tenants holding a closure.
func (repo *tenantRepository) ListClosedIDs(ctx context.Context, after uuid.UUID, limit int) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := closedIDsQuery(repo.db.WithContext(ctx), after, limit).Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tenants with closures")
	}

	return ids, nil
}

func closedIDsQuery(db *gorm.DB, after uuid.UUID, limit int) *gorm.DB {
	query := db.Model(&model.TenantModel{}).
		Where(hasClosedDay).
		Order("id").
		Limit(limit)
	if after != uuid.Nil {
		query = query.Where("id > ?", after)
	}

	return query
}

// UpdateSchedule replaces the schedule document of a tenant.
func (repo *tenantRepository) UpdateSchedule(ctx context.Context, id uuid.UUID, schedule entity.WeeklySchedule) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TenantModel{}).
		Where("id = ?", id).
		Update("schedule", datatypes.NewJSONType(fromScheduleDomain(schedule)))
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) || isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrScheduleInvalid.WrapMessage("schedule document rejected")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update tenant schedule")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTenantNotFound
	}

	return nil
}
