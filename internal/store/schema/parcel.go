package schema

import (
	"time"
)

// Parcel represents the parcels table - one row per ownable map asset
type Parcel struct {
	// ID is the opaque parcel identifier
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Lat is the latitude of the parcel, immutable after creation
	Lat float64 `gorm:"column:lat;not null"`
	// Lng is the longitude of the parcel, immutable after creation
	Lng float64 `gorm:"column:lng;not null"`
	// Owner is the identity owning the parcel (nil while unowned)
	Owner *string `gorm:"column:owner;type:text;index:idx_parcels_owner"`
	// BuildingType is the catalog key of the building (nil until first purchase)
	BuildingType *string `gorm:"column:building_type;type:text"`
	// Level is the building level, 1 to 5
	Level int `gorm:"column:level;not null;default:1"`
	// Color is a display hint for clients
	Color string `gorm:"column:color;not null;type:text"`
	// StreetID references the street the parcel belongs to
	StreetID *string `gorm:"column:street_id;type:text;index:idx_parcels_street"`
	// LastTradeAt is when the parcel last changed hands through an offer
	LastTradeAt *time.Time `gorm:"column:last_trade_at;type:timestamptz"`
	// CreatedAt is the timestamp when this parcel was created
	CreatedAt time.Time `gorm:"column:created_at;not null;type:timestamptz"`
	// UpdatedAt is the timestamp when this parcel was last written
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime;type:timestamptz"`
}

// TableName specifies the table name for the Parcel model
func (Parcel) TableName() string {
	return "parcels"
}
