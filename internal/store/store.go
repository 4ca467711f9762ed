package store

import (
	"context"
	"fmt"
	"maps"

	"github.com/feral-file/wt-exchange/internal/domain"
)

const (
	// LAST_TICK_KEY is the key_value_store key holding the last tick summary
	LAST_TICK_KEY = "economy:last_tick"
	// SETTINGS_KEY_PREFIX prefixes the key_value_store keys of settings versions
	SETTINGS_KEY_PREFIX = "settings:version:"
)

// SettingsKey returns the key_value_store key of a settings version.
// Keys sort in version order.
func SettingsKey(version int) string {
	return fmt.Sprintf("%s%010d", SETTINGS_KEY_PREFIX, version)
}

// Store defines the durable storage the engine writes through.
// The engine keeps the authoritative copy in memory; a Store only needs to
// load everything at startup and apply change sets atomically.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// Load reads every persisted entity
	Load(ctx context.Context) (*Snapshot, error)
	// Commit applies a change set in a single transaction
	Commit(ctx context.Context, cs ChangeSet) error
	// AppendEvent adds an event to the feed and trims the feed to the newest keep entries
	AppendEvent(ctx context.Context, event domain.Event, keep int) error
	// ListEvents returns feed events newest first together with the total number of events
	ListEvents(ctx context.Context, offset, limit int) ([]domain.Event, int, error)
	// Close releases the underlying resources
	Close() error
}

// Snapshot is the full persisted state
type Snapshot struct {
	Parcels  []domain.Parcel
	Streets  []domain.Street
	Offers   []domain.Offer
	Balances map[string]int64
	LastTick *domain.TickSummary
	// Settings holds every settings version, oldest first
	Settings []domain.SettingsVersion
}

// ChangeSet is the unit of work committed by one engine mutation
type ChangeSet struct {
	Parcels        []domain.Parcel
	DeletedParcels []string
	Streets        []domain.Street
	Offers         []domain.Offer
	Balances       map[string]int64
	Tick           *domain.TickSummary
	Settings       *domain.SettingsVersion
}

// Empty reports whether the change set has nothing to write
func (cs ChangeSet) Empty() bool {
	return len(cs.Parcels) == 0 &&
		len(cs.DeletedParcels) == 0 &&
		len(cs.Streets) == 0 &&
		len(cs.Offers) == 0 &&
		len(cs.Balances) == 0 &&
		cs.Tick == nil &&
		cs.Settings == nil
}

// Merge returns a change set holding the writes of both. Entries of other win.
func (cs ChangeSet) Merge(other ChangeSet) ChangeSet {
	merged := ChangeSet{
		Parcels:        append(append([]domain.Parcel{}, cs.Parcels...), other.Parcels...),
		DeletedParcels: append(append([]string{}, cs.DeletedParcels...), other.DeletedParcels...),
		Streets:        append(append([]domain.Street{}, cs.Streets...), other.Streets...),
		Offers:         append(append([]domain.Offer{}, cs.Offers...), other.Offers...),
		Tick:           cs.Tick,
		Settings:       cs.Settings,
	}
	if other.Tick != nil {
		merged.Tick = other.Tick
	}
	if other.Settings != nil {
		merged.Settings = other.Settings
	}
	if len(cs.Balances) > 0 || len(other.Balances) > 0 {
		merged.Balances = make(map[string]int64, len(cs.Balances)+len(other.Balances))
		maps.Copy(merged.Balances, cs.Balances)
		maps.Copy(merged.Balances, other.Balances)
	}
	return merged
}
