// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tenant is one food-truck merchant account and its schedule document.
type Tenant struct {
	ID           uuid.UUID      `json:"id"`            // The Global Unique Identifier (GUID) for the tenant.
	Subdomain    string         `json:"subdomain"`     // The ordering site subdomain, e.g. "tacos" for tacos.example.com.
	BusinessName string         `json:"business_name"` // The truck's display name.
	Schedule     WeeklySchedule `json:"schedule"`      // The weekly schedule document.
	CreatedAt    time.Time      `json:"created_at"`    // Timestamp of when the tenant was created.
	UpdatedAt    time.Time      `json:"updated_at"`    // Timestamp of the last modification.
}
