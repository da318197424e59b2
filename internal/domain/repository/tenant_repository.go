// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"foodtruck/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTenantNotFound is returned when no tenant matches the lookup.
var ErrTenantNotFound = errors.New("tenant not found")

// TenantRepository persists tenants and their schedule documents.
type TenantRepository interface {
	// FindByID retrieves a tenant by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error)

	// FindBySubdomain retrieves a tenant by its storefront subdomain.
	FindBySubdomain(ctx context.Context, subdomain string) (*entity.Tenant, error)

	// FindByIDForUpdate retrieves a tenant and locks its row until the
	// surrounding transaction ends. Only meaningful inside TransactionManager.Execute.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Tenant, error)

	// ListClosedIDs returns up to limit IDs, greater than after and ascending,
	// of tenants with at least one day flagged closed. Pass uuid.Nil to start
	// from the beginning.
	ListClosedIDs(ctx context.Context, after uuid.UUID, limit int) ([]uuid.UUID, error)

	// UpdateSchedule replaces the tenant's schedule document.
	UpdateSchedule(ctx context.Context, id uuid.UUID, schedule entity.WeeklySchedule) error
}
