package street

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/wt-exchange/internal/adapter"
	"github.com/feral-file/wt-exchange/internal/domain"
	"github.com/feral-file/wt-exchange/internal/keylock"
	"github.com/feral-file/wt-exchange/internal/ledger"
	"github.com/feral-file/wt-exchange/internal/logger"
	"github.com/feral-file/wt-exchange/internal/store"
	"github.com/feral-file/wt-exchange/internal/types"
)

// SlotPlanner lays out the unowned parcels a street grants when it is claimed
type SlotPlanner func(street domain.Street, at time.Time) []domain.Parcel

// Config holds the defaults applied to streets created without a price or slot count
type Config struct {
	DefaultPrice int64
	DefaultSlots int
}

// Registry holds every street and its claim
//
//go:generate mockgen -source=registry.go -destination=../mocks/street_registry.go -package=mocks -mock_names=Registry=MockStreetRegistry
type Registry interface {
	// Get returns the street with id
	Get(id string) (domain.Street, error)

	// List returns every street ordered by id
	List() []domain.Street

	// IsLocked reports whether the street is claimed by someone other than actorID
	IsLocked(streetID, actorID string) bool

	// Create adds an unclaimed street
	Create(ctx context.Context, s domain.Street) (domain.Street, error)

	// Claim debits the street price from buyerID and makes buyerID its owner.
	// The parcels laid out by planner are committed together with the claim
	// and returned so the caller can adopt them.
	Claim(ctx context.Context, streetID, buyerID string, planner SlotPlanner) (domain.Street, []domain.Parcel, error)

	// Restore replaces every street with the loaded state
	Restore(streets []domain.Street)
}

type registry struct {
	cfg    Config
	store  store.Store
	ledger ledger.Ledger
	clock  adapter.Clock

	locks   *keylock.Locker
	mu      sync.RWMutex
	streets map[string]domain.Street
}

// NewRegistry creates a street registry
func NewRegistry(cfg Config, s store.Store, l ledger.Ledger, clock adapter.Clock) Registry {
	if cfg.DefaultPrice <= 0 {
		cfg.DefaultPrice = domain.DEFAULT_STREET_PRICE
	}
	if cfg.DefaultSlots <= 0 {
		cfg.DefaultSlots = domain.DEFAULT_STREET_SLOTS
	}
	return &registry{
		cfg:     cfg,
		store:   s,
		ledger:  l,
		clock:   clock,
		locks:   keylock.New(),
		streets: make(map[string]domain.Street),
	}
}

func (r *registry) Get(id string) (domain.Street, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.streets[id]
	if !ok {
		return domain.Street{}, domain.ErrStreetNotFound
	}
	return s.Clone(), nil
}

func (r *registry) List() []domain.Street {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Street, 0, len(r.streets))
	for _, s := range r.streets {
		out = append(out, s.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *registry) IsLocked(streetID, actorID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.streets[streetID]
	if !ok {
		return false
	}
	return s.LockedAgainst(actorID)
}

func (r *registry) Create(ctx context.Context, s domain.Street) (domain.Street, error) {
	s.ID = strings.TrimSpace(s.ID)
	if s.ID == "" {
		s.ID = types.GenerateUUID()
	}
	if s.Name == "" {
		s.Name = s.ID
	}
	if s.Price < 0 || s.Slots < 0 {
		return domain.Street{}, domain.ErrInvalidAmount
	}
	if s.Price == 0 {
		s.Price = r.cfg.DefaultPrice
	}
	if s.Slots == 0 {
		s.Slots = r.cfg.DefaultSlots
	}
	for _, p := range s.Path {
		if !p.Valid() {
			return domain.Street{}, domain.ErrInvalidLocation
		}
	}
	s.Owner = nil
	s.ClaimedAt = nil

	unlock, err := r.locks.Lock(ctx, keylock.StreetKey(s.ID))
	if err != nil {
		return domain.Street{}, err
	}
	defer unlock()

	if _, err := r.Get(s.ID); err == nil {
		return domain.Street{}, domain.ErrStreetExists
	}

	if err := r.store.Commit(ctx, store.ChangeSet{Streets: []domain.Street{s}}); err != nil {
		return domain.Street{}, fmt.Errorf("failed to commit street: %w", err)
	}
	r.put(s)

	return s.Clone(), nil
}

func (r *registry) Claim(ctx context.Context, streetID, buyerID string, planner SlotPlanner) (domain.Street, []domain.Parcel, error) {
	buyerID = types.NormalizeIdentity(buyerID)
	if buyerID == "" {
		return domain.Street{}, nil, domain.ErrMissingIdentity
	}

	unlock, err := r.locks.Lock(ctx, keylock.StreetKey(streetID))
	if err != nil {
		return domain.Street{}, nil, err
	}
	defer unlock()

	current, err := r.Get(streetID)
	if err != nil {
		return domain.Street{}, nil, err
	}
	if current.IsClaimed() {
		return domain.Street{}, nil, domain.ErrStreetClaimed
	}

	now := r.clock.Now().UTC()
	next := current.Clone()
	next.Owner = &buyerID
	next.ClaimedAt = &now

	var slots []domain.Parcel
	if planner != nil {
		slots = planner(next, now)
	}

	cs := store.ChangeSet{Streets: []domain.Street{next}, Parcels: slots}
	var entries []ledger.Entry
	if next.Price > 0 {
		entries = append(entries, ledger.Debit(buyerID, next.Price))
	}
	if _, err := r.ledger.Post(ctx, entries, cs); err != nil {
		return domain.Street{}, nil, err
	}
	r.put(next)

	logger.InfoCtx(ctx, "Claimed street",
		zap.String("street_id", streetID),
		zap.String("buyer", buyerID),
		zap.Int64("price", next.Price),
		zap.Int("slots", len(slots)),
	)

	return next.Clone(), slots, nil
}

func (r *registry) put(s domain.Street) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.streets[s.ID] = s.Clone()
}

func (r *registry) Restore(streets []domain.Street) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.streets = make(map[string]domain.Street, len(streets))
	for _, s := range streets {
		r.streets[s.ID] = s.Clone()
	}
}
