package parcel

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/feral-file/wt-exchange/internal/adapter"
	"github.com/feral-file/wt-exchange/internal/catalog"
	"github.com/feral-file/wt-exchange/internal/domain"
	"github.com/feral-file/wt-exchange/internal/keylock"
	"github.com/feral-file/wt-exchange/internal/ledger"
	"github.com/feral-file/wt-exchange/internal/logger"
	"github.com/feral-file/wt-exchange/internal/store"
	"github.com/feral-file/wt-exchange/internal/street"
	"github.com/feral-file/wt-exchange/internal/types"
)

// Settlement commits an ownership transfer together with the money it moves.
// It must persist next; the parcel store makes next visible only after it returns nil.
type Settlement func(ctx context.Context, next domain.Parcel) error

// Filter narrows List
type Filter struct {
	Owner    string
	StreetID string
}

// CreateInput describes an administratively created parcel
type CreateInput struct {
	ID       string
	Location domain.LatLng
	Color    string
	StreetID *string
}

// Store holds per-parcel state and enforces purchase and upgrade rules
//
//go:generate mockgen -source=store.go -destination=../mocks/parcel_store.go -package=mocks -mock_names=Store=MockParcelStore
type Store interface {
	// Get returns the parcel with id
	Get(id string) (domain.Parcel, error)

	// List returns parcels matching filter in creation order
	List(filter Filter) []domain.Parcel

	// Create adds an unowned parcel
	Create(ctx context.Context, input CreateInput) (domain.Parcel, error)

	// Buy charges buyerID the catalog price of typeKey and gives it the parcel at level 1
	Buy(ctx context.Context, parcelID, buyerID, typeKey string) (domain.Parcel, error)

	// Upgrade charges ownerID the upgrade price and raises the level by one
	Upgrade(ctx context.Context, parcelID, ownerID string) (domain.Parcel, error)

	// TransferOwnership moves a parcel from fromID to toID. It fails with
	// domain.ErrOwnershipChanged when fromID no longer owns the parcel.
	// A nil settle commits the parcel alone.
	TransferOwnership(ctx context.Context, parcelID, fromID, toID string, settle Settlement) (domain.Parcel, error)

	// Reset clears owner, building and level
	Reset(ctx context.Context, parcelID string) (domain.Parcel, error)

	// Delete removes a parcel
	Delete(ctx context.Context, parcelID string) error

	// Adopt makes already committed parcels visible
	Adopt(parcels ...domain.Parcel)

	// Restore replaces every parcel with the loaded state
	Restore(parcels []domain.Parcel)
}

type parcelStore struct {
	store   store.Store
	catalog catalog.Catalog
	streets street.Registry
	ledger  ledger.Ledger
	clock   adapter.Clock

	// locks makes check-then-commit atomic per parcel
	locks   *keylock.Locker
	mu      sync.RWMutex
	parcels map[string]domain.Parcel
}

// NewStore creates a parcel store
func NewStore(s store.Store, c catalog.Catalog, streets street.Registry, l ledger.Ledger, clock adapter.Clock) Store {
	return &parcelStore{
		store:   s,
		catalog: c,
		streets: streets,
		ledger:  l,
		clock:   clock,
		locks:   keylock.New(),
		parcels: make(map[string]domain.Parcel),
	}
}

func (s *parcelStore) Get(id string) (domain.Parcel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.parcels[id]
	if !ok {
		return domain.Parcel{}, domain.ErrParcelNotFound
	}
	return p, nil
}

func (s *parcelStore) List(filter Filter) []domain.Parcel {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Parcel, 0, len(s.parcels))
	for _, p := range s.parcels {
		if filter.Owner != "" && !p.OwnedBy(filter.Owner) {
			continue
		}
		if filter.StreetID != "" && types.SafeString(p.StreetID) != filter.StreetID {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (s *parcelStore) Create(ctx context.Context, input CreateInput) (domain.Parcel, error) {
	if !input.Location.Valid() {
		return domain.Parcel{}, domain.ErrInvalidLocation
	}
	id := strings.TrimSpace(input.ID)
	if id == "" {
		id = types.GenerateUUID()
	}
	color := input.Color
	if color == "" {
		color = domain.DEFAULT_PARCEL_COLOR
	}
	if input.StreetID != nil {
		if _, err := s.streets.Get(*input.StreetID); err != nil {
			return domain.Parcel{}, err
		}
	}

	p := domain.Parcel{
		ID:        id,
		Location:  input.Location,
		Level:     domain.MIN_PARCEL_LEVEL,
		Color:     color,
		StreetID:  input.StreetID,
		CreatedAt: s.clock.Now().UTC(),
	}

	unlock, err := s.lock(ctx, id)
	if err != nil {
		return domain.Parcel{}, err
	}
	defer unlock()

	if _, err := s.Get(id); err == nil {
		return domain.Parcel{}, domain.ErrParcelExists
	}
	if err := s.store.Commit(ctx, store.ChangeSet{Parcels: []domain.Parcel{p}}); err != nil {
		return domain.Parcel{}, fmt.Errorf("failed to commit parcel: %w", err)
	}
	s.put(p)

	logger.InfoCtx(ctx, "Created parcel", zap.String("parcel_id", id))

	return p, nil
}

func (s *parcelStore) Buy(ctx context.Context, parcelID, buyerID, typeKey string) (domain.Parcel, error) {
	buyerID = types.NormalizeIdentity(buyerID)
	if buyerID == "" {
		return domain.Parcel{}, domain.ErrMissingIdentity
	}

	unlock, err := s.lock(ctx, parcelID)
	if err != nil {
		return domain.Parcel{}, err
	}
	defer unlock()

	current, err := s.Get(parcelID)
	if err != nil {
		return domain.Parcel{}, err
	}
	if current.IsOwned() {
		return domain.Parcel{}, domain.ErrAlreadyOwned
	}
	price, err := s.catalog.Price(typeKey)
	if err != nil {
		return domain.Parcel{}, err
	}
	if current.StreetID != nil && s.streets.IsLocked(*current.StreetID, buyerID) {
		return domain.Parcel{}, domain.ErrStreetLocked
	}

	next := current
	next.Owner = &buyerID
	next.BuildingType = &typeKey
	next.Level = domain.MIN_PARCEL_LEVEL
	if err := next.Validate(); err != nil {
		return domain.Parcel{}, err
	}

	_, err = s.ledger.Post(ctx,
		[]ledger.Entry{ledger.Debit(buyerID, price)},
		store.ChangeSet{Parcels: []domain.Parcel{next}},
	)
	if err != nil {
		return domain.Parcel{}, err
	}
	s.put(next)

	logger.InfoCtx(ctx, "Bought parcel",
		zap.String("parcel_id", parcelID),
		zap.String("buyer", buyerID),
		zap.String("type", typeKey),
		zap.Int64("price", price),
	)

	return next, nil
}

func (s *parcelStore) Upgrade(ctx context.Context, parcelID, ownerID string) (domain.Parcel, error) {
	ownerID = types.NormalizeIdentity(ownerID)
	if ownerID == "" {
		return domain.Parcel{}, domain.ErrMissingIdentity
	}

	unlock, err := s.lock(ctx, parcelID)
	if err != nil {
		return domain.Parcel{}, err
	}
	defer unlock()

	current, err := s.Get(parcelID)
	if err != nil {
		return domain.Parcel{}, err
	}
	if !current.OwnedBy(ownerID) {
		return domain.Parcel{}, domain.ErrNotOwner
	}
	if !current.HasBuilding() {
		return domain.Parcel{}, domain.ErrNoBuilding
	}
	if current.Level >= domain.MAX_PARCEL_LEVEL {
		return domain.Parcel{}, domain.ErrMaxLevel
	}
	price, err := s.catalog.UpgradePrice(*current.BuildingType, current.Level)
	if err != nil {
		return domain.Parcel{}, err
	}

	next := current
	next.Level++

	_, err = s.ledger.Post(ctx,
		[]ledger.Entry{ledger.Debit(ownerID, price)},
		store.ChangeSet{Parcels: []domain.Parcel{next}},
	)
	if err != nil {
		return domain.Parcel{}, err
	}
	s.put(next)

	logger.InfoCtx(ctx, "Upgraded parcel",
		zap.String("parcel_id", parcelID),
		zap.String("owner", ownerID),
		zap.Int("level", next.Level),
		zap.Int64("price", price),
	)

	return next, nil
}

func (s *parcelStore) TransferOwnership(ctx context.Context, parcelID, fromID, toID string, settle Settlement) (domain.Parcel, error) {
	toID = types.NormalizeIdentity(toID)
	if toID == "" {
		return domain.Parcel{}, domain.ErrMissingIdentity
	}

	unlock, err := s.lock(ctx, parcelID)
	if err != nil {
		return domain.Parcel{}, err
	}
	defer unlock()

	current, err := s.Get(parcelID)
	if err != nil {
		return domain.Parcel{}, err
	}
	if !current.OwnedBy(fromID) {
		return domain.Parcel{}, domain.ErrOwnershipChanged
	}

	now := s.clock.Now().UTC()
	next := current
	next.Owner = &toID
	next.LastTradeAt = &now

	if settle != nil {
		err = settle(ctx, next)
	} else {
		err = s.store.Commit(ctx, store.ChangeSet{Parcels: []domain.Parcel{next}})
	}
	if err != nil {
		return domain.Parcel{}, err
	}
	s.put(next)

	logger.InfoCtx(ctx, "Transferred parcel",
		zap.String("parcel_id", parcelID),
		zap.String("from", fromID),
		zap.String("to", toID),
	)

	return next, nil
}

func (s *parcelStore) Reset(ctx context.Context, parcelID string) (domain.Parcel, error) {
	unlock, err := s.lock(ctx, parcelID)
	if err != nil {
		return domain.Parcel{}, err
	}
	defer unlock()

	current, err := s.Get(parcelID)
	if err != nil {
		return domain.Parcel{}, err
	}

	next := current
	next.Owner = nil
	next.BuildingType = nil
	next.Level = domain.MIN_PARCEL_LEVEL

	if err := s.store.Commit(ctx, store.ChangeSet{Parcels: []domain.Parcel{next}}); err != nil {
		return domain.Parcel{}, fmt.Errorf("failed to commit parcel reset: %w", err)
	}
	s.put(next)

	logger.InfoCtx(ctx, "Reset parcel", zap.String("parcel_id", parcelID))

	return next, nil
}

func (s *parcelStore) Delete(ctx context.Context, parcelID string) error {
	unlock, err := s.lock(ctx, parcelID)
	if err != nil {
		return err
	}
	defer unlock()

	if _, err := s.Get(parcelID); err != nil {
		return err
	}
	if err := s.store.Commit(ctx, store.ChangeSet{DeletedParcels: []string{parcelID}}); err != nil {
		return fmt.Errorf("failed to commit parcel deletion: %w", err)
	}

	s.mu.Lock()
	delete(s.parcels, parcelID)
	s.mu.Unlock()

	logger.InfoCtx(ctx, "Deleted parcel", zap.String("parcel_id", parcelID))

	return nil
}

func (s *parcelStore) Adopt(parcels ...domain.Parcel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range parcels {
		s.parcels[p.ID] = p
	}
}

func (s *parcelStore) lock(ctx context.Context, parcelID string) (func(), error) {
	return s.locks.Lock(ctx, keylock.ParcelKey(parcelID))
}

func (s *parcelStore) put(p domain.Parcel) {
	s.Adopt(p)
}

func (s *parcelStore) Restore(parcels []domain.Parcel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parcels = make(map[string]domain.Parcel, len(parcels))
	for _, p := range parcels {
		s.parcels[p.ID] = p
	}
}
