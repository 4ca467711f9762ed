package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Offer represents the offers table - negotiations between two owners over one parcel
type Offer struct {
	// ID is the offer identifier
	ID string `gorm:"column:id;primaryKey;type:text"`
	// ParcelID references the parcel under negotiation
	ParcelID string `gorm:"column:parcel_id;not null;type:text;index:idx_offers_parcel_status,priority:1"`
	// FromID is the proposer
	FromID string `gorm:"column:from_id;not null;type:text;index:idx_offers_from"`
	// ToID is the parcel owner at proposal time
	ToID string `gorm:"column:to_id;not null;type:text;index:idx_offers_to"`
	// Amount is fixed at creation
	Amount int64 `gorm:"column:amount;not null"`
	// Status is one of PENDING, ACCEPTED, REJECTED, CANCELED, EXPIRED
	Status string `gorm:"column:status;not null;type:text;index:idx_offers_parcel_status,priority:2"`
	// Reason explains a REJECTED or EXPIRED status
	Reason string `gorm:"column:reason;not null;default:'';type:text"`
	// Note is free text attached by the proposer
	Note string `gorm:"column:note;not null;default:'';type:text"`
	// History is a JSON array of transitions
	History    datatypes.JSON `gorm:"column:history;not null;type:jsonb"`
	CreatedAt  time.Time      `gorm:"column:created_at;not null;type:timestamptz"`
	ExpiresAt  time.Time      `gorm:"column:expires_at;not null;type:timestamptz"`
	ResolvedAt *time.Time     `gorm:"column:resolved_at;type:timestamptz"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;not null;autoUpdateTime;type:timestamptz"`
}

// TableName specifies the table name for the Offer model
func (Offer) TableName() string {
	return "offers"
}
