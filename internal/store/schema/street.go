package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Street represents the streets table - groups of parcels under one shared claim
type Street struct {
	// ID is the street identifier
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Name is the display name
	Name string `gorm:"column:name;not null;type:text"`
	// Path is a JSON array of {lat,lng} coordinates
	Path datatypes.JSON `gorm:"column:path;not null;type:jsonb"`
	// Owner is the claimant (nil while unclaimed)
	Owner *string `gorm:"column:owner;type:text"`
	// Price is the claim price
	Price int64 `gorm:"column:price;not null"`
	// Slots is the number of parcels granted on claim
	Slots int `gorm:"column:slots;not null"`
	// ClaimedAt is when the street was claimed
	ClaimedAt *time.Time `gorm:"column:claimed_at;type:timestamptz"`
	CreatedAt time.Time  `gorm:"column:created_at;not null;autoCreateTime;type:timestamptz"`
	UpdatedAt time.Time  `gorm:"column:updated_at;not null;autoUpdateTime;type:timestamptz"`
}

// TableName specifies the table name for the Street model
func (Street) TableName() string {
	return "streets"
}
