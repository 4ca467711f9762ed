package schema

import "time"

// KeyValueStore stores arbitrary key-value pairs for engine state
// Used for storing the last tick summary and the signed settings versions
type KeyValueStore struct {
	Key       string    `gorm:"primaryKey;type:text"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (KeyValueStore) TableName() string {
	return "key_value_store"
}

// Models lists every table managed by the store, in migration order
func Models() []any {
	return []any{
		&Street{},
		&Parcel{},
		&Offer{},
		&Balance{},
		&Event{},
		&KeyValueStore{},
	}
}
