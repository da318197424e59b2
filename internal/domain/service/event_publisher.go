package service

import (
	"context"
	"time"
)

// ScheduleChangeReason says why a tenant's schedule document changed.
type ScheduleChangeReason string

const (
	ScheduleChangeClosureToggled  ScheduleChangeReason = "closure_toggled"
	ScheduleChangeClosureSwept    ScheduleChangeReason = "closure_swept"
	ScheduleChangeScheduleUpdated ScheduleChangeReason = "schedule_updated"
)

// ScheduleChangedEvent tells downstream consumers (storefront caches, realtime
// badges) to re-read a tenant's schedule.
type ScheduleChangedEvent struct {
	RequestID  string               `json:"request_id,omitempty"` // For distributed tracing
	EventID    string               `json:"event_id"`
	TenantID   string               `json:"tenant_id"`
	Subdomain  string               `json:"subdomain"`
	Reason     ScheduleChangeReason `json:"reason"`
	Weekday    string               `json:"weekday,omitempty"`
	IsClosed   bool                 `json:"is_closed"`
	OccurredAt time.Time            `json:"occurred_at"`
}

// SweepRequest is the message that triggers a stale-closure sweep on the worker.
type SweepRequest struct {
	RequestID   string    `json:"request_id,omitempty"`
	RequestedAt time.Time `json:"requested_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishScheduleChanged announces a schedule change
	PublishScheduleChanged(ctx context.Context, event *ScheduleChangedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
