package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TenantModel mirrors the 'tenants' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type TenantModel struct {
	ID           uuid.UUID                            `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Subdomain    string                               `gorm:"type:varchar(63);uniqueIndex;not null"`
	BusinessName string                               `gorm:"type:varchar(255);not null"`
	Schedule     datatypes.JSONType[ScheduleDocument] `gorm:"type:jsonb;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (TenantModel) TableName() string {
	return "tenants"
}

// ScheduleDocument is the stored JSON shape of a weekly schedule.
// Field names are part of the stored format and must not change.
type ScheduleDocument struct {
	Title           string        `json:"title,omitempty"`
	Description     string        `json:"description,omitempty"`
	PrimaryTimezone string        `json:"primaryTimezone,omitempty"`
	Days            []DayDocument `json:"days"`
}

// DayDocument is one stored schedule entry.
type DayDocument struct {
	Day              string       `json:"day"`
	Location         string       `json:"location,omitempty"`
	Address          string       `json:"address,omitempty"`
	OpenTime         string       `json:"openTime,omitempty"`
	CloseTime        string       `json:"closeTime,omitempty"`
	Hours            string       `json:"hours,omitempty"`
	IsClosed         bool         `json:"isClosed"`
	ClosureTimestamp *time.Time   `json:"closureTimestamp,omitempty"`
	Timezone         string       `json:"timezone,omitempty"`
	Coordinates      *Coordinates `json:"coordinates,omitempty"`
}

// Coordinates is a stored map position.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
