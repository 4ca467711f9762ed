package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/wt-exchange/internal/domain"
	"github.com/feral-file/wt-exchange/internal/logger"
	"github.com/feral-file/wt-exchange/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// AutoMigrate creates or updates every table used by the store
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(schema.Models()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// Load reads every persisted entity
func (s *pgStore) Load(ctx context.Context) (*Snapshot, error) {
	db := s.db.WithContext(ctx)
	snap := &Snapshot{Balances: make(map[string]int64)}

	var streets []schema.Street
	if err := db.Order("id ASC").Find(&streets).Error; err != nil {
		return nil, fmt.Errorf("failed to load streets: %w", err)
	}
	for _, r := range streets {
		st, err := streetFromRow(r)
		if err != nil {
			return nil, err
		}
		snap.Streets = append(snap.Streets, st)
	}

	var parcels []schema.Parcel
	if err := db.Order("created_at ASC, id ASC").Find(&parcels).Error; err != nil {
		return nil, fmt.Errorf("failed to load parcels: %w", err)
	}
	for _, r := range parcels {
		snap.Parcels = append(snap.Parcels, parcelFromRow(r))
	}

	var offers []schema.Offer
	if err := db.Order("created_at ASC, id ASC").Find(&offers).Error; err != nil {
		return nil, fmt.Errorf("failed to load offers: %w", err)
	}
	for _, r := range offers {
		o, err := offerFromRow(r)
		if err != nil {
			return nil, err
		}
		snap.Offers = append(snap.Offers, o)
	}

	var balances []schema.Balance
	if err := db.Find(&balances).Error; err != nil {
		return nil, fmt.Errorf("failed to load balances: %w", err)
	}
	for _, b := range balances {
		snap.Balances[b.Owner] = b.Amount
	}

	var kv schema.KeyValueStore
	err := db.Where("key = ?", LAST_TICK_KEY).First(&kv).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load last tick: %w", err)
	}
	if err == nil {
		snap.LastTick, err = decodeTick(kv.Value)
		if err != nil {
			return nil, err
		}
	}

	var versions []schema.KeyValueStore
	if err := db.Where("key LIKE ?", SETTINGS_KEY_PREFIX+"%").Order("key ASC").Find(&versions).Error; err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	for _, kv := range versions {
		v, err := decodeSettings(kv.Value)
		if err != nil {
			return nil, err
		}
		snap.Settings = append(snap.Settings, v)
	}

	logger.DebugCtx(ctx, "Loaded snapshot",
		zap.Int("parcels", len(snap.Parcels)),
		zap.Int("streets", len(snap.Streets)),
		zap.Int("offers", len(snap.Offers)),
		zap.Int("balances", len(snap.Balances)),
	)

	return snap, nil
}

// Commit applies a change set in a single transaction
func (s *pgStore) Commit(ctx context.Context, cs ChangeSet) error {
	if cs.Empty() {
		return nil
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(cs.Streets) > 0 {
			rows := make([]schema.Street, 0, len(cs.Streets))
			for _, st := range cs.Streets {
				row, err := streetToRow(st)
				if err != nil {
					return err
				}
				rows = append(rows, row)
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"name", "path", "owner", "price", "slots", "claimed_at", "updated_at"}),
			}).Create(&rows).Error; err != nil {
				return fmt.Errorf("failed to upsert streets: %w", err)
			}
		}

		if len(cs.Parcels) > 0 {
			rows := make([]schema.Parcel, 0, len(cs.Parcels))
			for _, p := range cs.Parcels {
				rows = append(rows, parcelToRow(p))
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"owner", "building_type", "level", "color", "last_trade_at", "updated_at"}),
			}).Create(&rows).Error; err != nil {
				return fmt.Errorf("failed to upsert parcels: %w", err)
			}
		}

		if len(cs.DeletedParcels) > 0 {
			if err := tx.Where("id IN ?", cs.DeletedParcels).Delete(&schema.Parcel{}).Error; err != nil {
				return fmt.Errorf("failed to delete parcels: %w", err)
			}
		}

		if len(cs.Offers) > 0 {
			rows := make([]schema.Offer, 0, len(cs.Offers))
			for _, o := range cs.Offers {
				row, err := offerToRow(o)
				if err != nil {
					return err
				}
				rows = append(rows, row)
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"status", "reason", "history", "resolved_at", "updated_at"}),
			}).Create(&rows).Error; err != nil {
				return fmt.Errorf("failed to upsert offers: %w", err)
			}
		}

		if len(cs.Balances) > 0 {
			rows := make([]schema.Balance, 0, len(cs.Balances))
			for owner, amount := range cs.Balances {
				rows = append(rows, schema.Balance{Owner: owner, Amount: amount})
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "owner"}},
				DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
			}).Create(&rows).Error; err != nil {
				return fmt.Errorf("failed to upsert balances: %w", err)
			}
		}

		if cs.Tick != nil {
			value, err := encodeTick(cs.Tick)
			if err != nil {
				return err
			}
			kv := schema.KeyValueStore{Key: LAST_TICK_KEY, Value: value}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&kv).Error; err != nil {
				return fmt.Errorf("failed to save last tick: %w", err)
			}
		}

		if cs.Settings != nil {
			value, err := encodeSettings(cs.Settings)
			if err != nil {
				return err
			}
			kv := schema.KeyValueStore{Key: SettingsKey(cs.Settings.Version), Value: value}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&kv).Error; err != nil {
				return fmt.Errorf("failed to save settings: %w", err)
			}
		}

		return nil
	})
}

// AppendEvent adds an event to the feed and trims the feed to the newest keep entries
func (s *pgStore) AppendEvent(ctx context.Context, event domain.Event, keep int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := eventToRow(event)
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return fmt.Errorf("failed to insert event: %w", err)
		}

		if keep <= 0 {
			return nil
		}

		newest := tx.Model(&schema.Event{}).Select("id").Order("at DESC, id DESC").Limit(keep)
		if err := tx.Where("id NOT IN (?)", newest).Delete(&schema.Event{}).Error; err != nil {
			return fmt.Errorf("failed to trim events: %w", err)
		}

		return nil
	})
}

// ListEvents returns feed events newest first together with the total number of events
func (s *pgStore) ListEvents(ctx context.Context, offset, limit int) ([]domain.Event, int, error) {
	db := s.db.WithContext(ctx)

	var total int64
	if err := db.Model(&schema.Event{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	var rows []schema.Event
	if err := db.Order("at DESC, id DESC").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}

	events := make([]domain.Event, 0, len(rows))
	for _, r := range rows {
		events = append(events, eventFromRow(r))
	}

	return events, int(total), nil
}

// Close closes the underlying connection pool
func (s *pgStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}
