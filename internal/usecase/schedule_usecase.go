package usecase

import (
	"context"
	"time"

	"foodtruck/internal/domain/entity"
	"foodtruck/internal/domain/schedule"

	"github.com/google/uuid"
)

// StoreStatus is the public open/closed view of a tenant at one instant.
type StoreStatus struct {
	TenantID     uuid.UUID           `json:"tenant_id"`
	BusinessName string              `json:"business_name"`
	IsOpen       bool                `json:"is_open"`
	ClosedToday  bool                `json:"closed_today"`
	Today        *entity.ScheduleDay `json:"today,omitempty"`
	TodayHours   string              `json:"today_hours,omitempty"`
	Week         []schedule.DayGroup `json:"week"`
	NextOpening  *time.Time          `json:"next_opening,omitempty"`
	CheckedAt    time.Time           `json:"checked_at"`
}

// PickupRequest is a customer's requested pickup for a new order.
type PickupRequest struct {
	ASAP       bool       `json:"asap"`
	PickupTime *time.Time `json:"pickup_time,omitempty"`
}

// PickupDecision is the accepted pickup for an order.
type PickupDecision struct {
	ASAP       bool      `json:"asap"`
	PickupTime time.Time `json:"pickup_time"`
}

// ScheduleUpdateResult is the stored schedule plus non-fatal findings.
type ScheduleUpdateResult struct {
	Schedule entity.WeeklySchedule `json:"schedule"`
	Warnings []string              `json:"warnings"`
}

// ScheduleUsecase defines the open/closed and pickup use cases
type ScheduleUsecase interface {
	// Storefront
	GetStatus(ctx context.Context, subdomain string) (*StoreStatus, error)
	GetPickupOptions(ctx context.Context, subdomain string) (*schedule.PickupOptions, error)
	ValidatePickup(ctx context.Context, subdomain string, req *PickupRequest) (*PickupDecision, error)

	// Merchant
	GetSchedule(ctx context.Context, tenantID uuid.UUID) (*entity.WeeklySchedule, error)
	UpdateSchedule(ctx context.Context, tenantID uuid.UUID, weekly entity.WeeklySchedule) (*ScheduleUpdateResult, error)
	SetTodayClosed(ctx context.Context, tenantID uuid.UUID, isClosed bool) (*entity.WeeklySchedule, error)
}
