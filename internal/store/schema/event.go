package schema

import (
	"time"
)

// Event represents the economy_events table - the bounded events feed
type Event struct {
	// ID is a ULID, sortable by creation time
	ID       string    `gorm:"column:id;primaryKey;type:text"`
	Type     string    `gorm:"column:type;not null;type:text"`
	Note     string    `gorm:"column:note;not null;type:text"`
	Actor    string    `gorm:"column:actor;not null;default:'';type:text"`
	EntityID string    `gorm:"column:entity_id;not null;default:'';type:text"`
	Amount   int64     `gorm:"column:amount;not null;default:0"`
	At       time.Time `gorm:"column:at;not null;type:timestamptz;index:idx_economy_events_at"`
}

// TableName specifies the table name for the Event model
func (Event) TableName() string {
	return "economy_events"
}
