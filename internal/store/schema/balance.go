package schema

import (
	"time"
)

// Balance represents the balances table - one ledger entry per owner
type Balance struct {
	// Owner is the identity holding the balance
	Owner string `gorm:"column:owner;primaryKey;type:text"`
	// Amount is the current balance
	Amount    int64     `gorm:"column:amount;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime;type:timestamptz"`
}

// TableName specifies the table name for the Balance model
func (Balance) TableName() string {
	return "balances"
}
