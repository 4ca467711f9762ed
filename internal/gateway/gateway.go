package gateway

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/feral-file/wt-exchange/internal/adapter"
	"github.com/feral-file/wt-exchange/internal/catalog"
	"github.com/feral-file/wt-exchange/internal/domain"
	"github.com/feral-file/wt-exchange/internal/events"
	"github.com/feral-file/wt-exchange/internal/keylock"
	"github.com/feral-file/wt-exchange/internal/ledger"
	"github.com/feral-file/wt-exchange/internal/logger"
	"github.com/feral-file/wt-exchange/internal/offer"
	"github.com/feral-file/wt-exchange/internal/parcel"
	"github.com/feral-file/wt-exchange/internal/settings"
	"github.com/feral-file/wt-exchange/internal/store"
	"github.com/feral-file/wt-exchange/internal/street"
	"github.com/feral-file/wt-exchange/internal/tick"
	"github.com/feral-file/wt-exchange/internal/types"
)

// Config holds configuration for the gateway
type Config struct {
	// GCWorkers is the number of offers expired concurrently by ExpireDue
	GCWorkers int
}

// Components are the engine parts the gateway coordinates
type Components struct {
	Catalog  catalog.Catalog
	Ledger   ledger.Ledger
	Parcels  parcel.Store
	Streets  street.Registry
	Offers   offer.Engine
	Ticks    tick.Scheduler
	Settings settings.Store
	Recorder events.Recorder
}

// Season is the season window as seen at Now
type Season struct {
	SeasonStart time.Time `json:"seasonStart"`
	SeasonEnd   time.Time `json:"seasonEnd"`
	Now         time.Time `json:"now"`
	Active      bool      `json:"active"`
}

// Gateway is the single entry point for client operations.
//
// Every mutation takes the locks of the entities it touches, in sorted key
// order, before running. Once the locks are held the mutation runs to
// completion even if the caller goes away. Reads take no entity lock.
//
//go:generate mockgen -source=gateway.go -destination=../mocks/gateway.go -package=mocks -mock_names=Gateway=MockGateway
type Gateway interface {
	// Catalog lists the building types
	Catalog() []domain.BuildingType
	// GetParcel returns a parcel by id
	GetParcel(id string) (domain.Parcel, error)
	// ListParcels returns parcels matching the filter
	ListParcels(filter parcel.Filter) []domain.Parcel
	// GetStreet returns a street by id
	GetStreet(id string) (domain.Street, error)
	// ListStreets returns every street
	ListStreets() []domain.Street
	// GetOffer returns an offer, expiring it first when it is past due
	GetOffer(ctx context.Context, id string) (domain.Offer, error)
	// ListOffers returns offers newest first, expiring past-due ones first
	ListOffers(ctx context.Context, filter offer.Filter) ([]domain.Offer, error)
	// Balance returns the balance of an owner
	Balance(owner string) int64
	// Summary returns the economy summary
	Summary() tick.Summary
	// Health returns the tick health
	Health() tick.Health
	// Events returns the events feed newest first and its total size
	Events(ctx context.Context, offset, limit int) ([]domain.Event, int, error)
	// Season returns the current season window
	Season() Season
	// Settings returns the current settings version
	Settings() domain.SettingsVersion
	// SettingsVersions returns every settings version oldest first
	SettingsVersions() []domain.SettingsVersion

	// CreateParcel creates an unowned parcel
	CreateParcel(ctx context.Context, input parcel.CreateInput) (domain.Parcel, error)
	// BuyParcel performs a first purchase of an unowned parcel
	BuyParcel(ctx context.Context, parcelID, buyerID, typeKey string) (domain.Parcel, error)
	// UpgradeParcel raises the level of an owned parcel
	UpgradeParcel(ctx context.Context, parcelID, ownerID string) (domain.Parcel, error)
	// ResetParcel clears owner, type and level
	ResetParcel(ctx context.Context, parcelID string) (domain.Parcel, error)
	// DeleteParcel removes a parcel
	DeleteParcel(ctx context.Context, parcelID string) error
	// SeedStreets creates the streets that do not exist yet and returns how many were created
	SeedStreets(ctx context.Context, streets []domain.Street) (int, error)
	// ClaimStreet claims a street and returns it with the slot parcels it granted
	ClaimStreet(ctx context.Context, streetID, buyerID string) (domain.Street, []domain.Parcel, error)
	// ProposeOffer creates a pending offer on a parcel
	ProposeOffer(ctx context.Context, parcelID, fromID string, amount int64, note string) (domain.Offer, error)
	// AcceptOffer settles an offer as its counterparty
	AcceptOffer(ctx context.Context, offerID, actingID string) (domain.Offer, error)
	// RejectOffer declines an offer as its counterparty
	RejectOffer(ctx context.Context, offerID, actingID string) (domain.Offer, error)
	// CancelOffer withdraws an offer as its proposer
	CancelOffer(ctx context.Context, offerID, actingID string) (domain.Offer, error)
	// ExpireDue expires every past-due pending offer and returns the expired offers
	ExpireDue(ctx context.Context) ([]domain.Offer, error)
	// RunTick runs an income tick
	RunTick(ctx context.Context) (domain.TickSummary, error)
	// TickIfDue runs an income tick when a full interval has elapsed since the last one
	TickIfDue(ctx context.Context) (domain.TickSummary, bool, error)
	// AdjustBalance applies an administrative balance delta
	AdjustBalance(ctx context.Context, owner string, delta int64) (int64, error)
	// TransferBalance moves amount between two owners and returns both new balances
	TransferBalance(ctx context.Context, fromID, toID string, amount int64) (int64, int64, error)
	// UpdateSettings commits a new settings version and applies its tick cadence
	UpdateSettings(ctx context.Context, next domain.Settings) (domain.SettingsVersion, error)
	// RollbackSettings commits a copy of an earlier settings version and applies it
	RollbackSettings(ctx context.Context, version int) (domain.SettingsVersion, error)

	// Close waits for background work
	Close()
}

type gateway struct {
	c     Components
	locks *keylock.Locker
	clock adapter.Clock
	pool  pond.Pool
}

// New loads the persisted state into the components and returns a gateway over them
func New(ctx context.Context, cfg Config, s store.Store, c Components, clock adapter.Clock) (Gateway, error) {
	snapshot, err := s.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	c.Ledger.Restore(snapshot.Balances)
	c.Streets.Restore(snapshot.Streets)
	c.Parcels.Restore(snapshot.Parcels)
	c.Offers.Restore(snapshot.Offers)
	c.Ticks.Restore(snapshot.LastTick)
	if err := c.Settings.Restore(snapshot.Settings); err != nil {
		return nil, fmt.Errorf("failed to restore settings: %w", err)
	}
	if current := c.Settings.Current(); current.Version > 0 {
		c.Ticks.SetInterval(current.Settings.TickInterval())
	}

	logger.InfoCtx(ctx, "Loaded state",
		zap.Int("parcels", len(snapshot.Parcels)),
		zap.Int("streets", len(snapshot.Streets)),
		zap.Int("offers", len(snapshot.Offers)),
		zap.Int("owners", len(snapshot.Balances)),
		zap.Int("settings_versions", len(snapshot.Settings)),
	)

	if cfg.GCWorkers <= 0 {
		cfg.GCWorkers = 4
	}

	return &gateway{
		c:     c,
		locks: keylock.New(),
		clock: clock,
		pool:  pond.NewPool(cfg.GCWorkers),
	}, nil
}

// withLock runs fn while holding keys. Waiting honours ctx; fn does not.
func withLock[T any](ctx context.Context, g *gateway, keys []string, fn func(ctx context.Context) (T, error)) (T, error) {
	unlock, err := g.locks.Lock(ctx, keys...)
	if err != nil {
		var zero T
		return zero, err
	}
	defer unlock()

	return fn(context.WithoutCancel(ctx))
}

func (g *gateway) Catalog() []domain.BuildingType {
	return g.c.Catalog.List()
}

func (g *gateway) GetParcel(id string) (domain.Parcel, error) {
	return g.c.Parcels.Get(id)
}

func (g *gateway) ListParcels(filter parcel.Filter) []domain.Parcel {
	return g.c.Parcels.List(filter)
}

func (g *gateway) GetStreet(id string) (domain.Street, error) {
	return g.c.Streets.Get(id)
}

func (g *gateway) ListStreets() []domain.Street {
	return g.c.Streets.List()
}

func (g *gateway) Balance(owner string) int64 {
	return g.c.Ledger.BalanceOf(owner)
}

func (g *gateway) Summary() tick.Summary {
	return g.c.Ticks.Summary()
}

func (g *gateway) Health() tick.Health {
	return g.c.Ticks.Health()
}

func (g *gateway) Events(ctx context.Context, offset, limit int) ([]domain.Event, int, error) {
	return g.c.Recorder.List(ctx, offset, limit)
}

func (g *gateway) Season() Season {
	current := g.c.Settings.Current().Settings
	now := g.clock.Now().UTC()
	return Season{
		SeasonStart: current.SeasonStart,
		SeasonEnd:   current.SeasonEnd,
		Now:         now,
		Active:      current.InSeason(now),
	}
}

func (g *gateway) Settings() domain.SettingsVersion {
	return g.c.Settings.Current()
}

func (g *gateway) SettingsVersions() []domain.SettingsVersion {
	return g.c.Settings.Versions()
}

func (g *gateway) GetOffer(ctx context.Context, id string) (domain.Offer, error) {
	before := g.offerStatuses(id)
	o, err := g.c.Offers.Get(ctx, id)
	g.recordOfferChanges(ctx, before)
	return o, err
}

func (g *gateway) ListOffers(ctx context.Context, filter offer.Filter) ([]domain.Offer, error) {
	before := g.offerStatuses()
	offers, err := g.c.Offers.List(ctx, filter)
	g.recordOfferChanges(ctx, before)
	return offers, err
}

func (g *gateway) CreateParcel(ctx context.Context, input parcel.CreateInput) (domain.Parcel, error) {
	var keys []string
	if input.ID != "" {
		keys = append(keys, keylock.ParcelKey(input.ID))
	}
	if input.StreetID != nil {
		keys = append(keys, keylock.StreetKey(*input.StreetID))
	}

	return withLock(ctx, g, keys, func(ctx context.Context) (domain.Parcel, error) {
		p, err := g.c.Parcels.Create(ctx, input)
		if err != nil {
			return p, err
		}
		g.record(ctx, domain.Event{
			Type:     domain.EventTypeParcelCreated,
			EntityID: p.ID,
			Note:     fmt.Sprintf("parcel %s created", p.ID),
		})
		return p, nil
	})
}

func (g *gateway) BuyParcel(ctx context.Context, parcelID, buyerID, typeKey string) (domain.Parcel, error) {
	keys, err := g.parcelKeys(parcelID)
	if err != nil {
		return domain.Parcel{}, err
	}

	return withLock(ctx, g, keys, func(ctx context.Context) (domain.Parcel, error) {
		p, err := g.c.Parcels.Buy(ctx, parcelID, buyerID, typeKey)
		if err != nil {
			return p, err
		}
		price, _ := g.c.Catalog.Price(typeKey)
		g.record(ctx, domain.Event{
			Type:     domain.EventTypeParcelBought,
			Actor:    p.OwnerID(),
			EntityID: p.ID,
			Amount:   price,
			Note:     fmt.Sprintf("%s bought %s as %s for %d", p.OwnerID(), p.ID, typeKey, price),
		})
		return p, nil
	})
}

func (g *gateway) UpgradeParcel(ctx context.Context, parcelID, ownerID string) (domain.Parcel, error) {
	return withLock(ctx, g, []string{keylock.ParcelKey(parcelID)}, func(ctx context.Context) (domain.Parcel, error) {
		p, err := g.c.Parcels.Upgrade(ctx, parcelID, ownerID)
		if err != nil {
			return p, err
		}
		var price int64
		if p.HasBuilding() {
			price, _ = g.c.Catalog.UpgradePrice(*p.BuildingType, p.Level-1)
		}
		g.record(ctx, domain.Event{
			Type:     domain.EventTypeParcelUpgrade,
			Actor:    p.OwnerID(),
			EntityID: p.ID,
			Amount:   price,
			Note:     fmt.Sprintf("%s upgraded %s to level %d for %d", p.OwnerID(), p.ID, p.Level, price),
		})
		return p, nil
	})
}

func (g *gateway) ResetParcel(ctx context.Context, parcelID string) (domain.Parcel, error) {
	return withLock(ctx, g, []string{keylock.ParcelKey(parcelID)}, func(ctx context.Context) (domain.Parcel, error) {
		p, err := g.c.Parcels.Reset(ctx, parcelID)
		if err != nil {
			return p, err
		}
		g.record(ctx, domain.Event{
			Type:     domain.EventTypeParcelReset,
			EntityID: p.ID,
			Note:     fmt.Sprintf("parcel %s reset", p.ID),
		})
		return p, nil
	})
}

func (g *gateway) DeleteParcel(ctx context.Context, parcelID string) error {
	_, err := withLock(ctx, g, []string{keylock.ParcelKey(parcelID)}, func(ctx context.Context) (struct{}, error) {
		if err := g.c.Parcels.Delete(ctx, parcelID); err != nil {
			return struct{}{}, err
		}
		g.record(ctx, domain.Event{
			Type:     domain.EventTypeParcelDeleted,
			EntityID: parcelID,
			Note:     fmt.Sprintf("parcel %s deleted", parcelID),
		})
		return struct{}{}, nil
	})
	return err
}

func (g *gateway) SeedStreets(ctx context.Context, streets []domain.Street) (int, error) {
	created := 0
	for _, s := range streets {
		_, err := withLock(ctx, g, []string{keylock.StreetKey(s.ID)}, func(ctx context.Context) (domain.Street, error) {
			return g.c.Streets.Create(ctx, s)
		})
		if errors.Is(err, domain.ErrStreetExists) {
			continue
		}
		if err != nil {
			return created, fmt.Errorf("failed to seed street %s: %w", s.ID, err)
		}
		created++
	}
	return created, nil
}

type claimResult struct {
	street domain.Street
	slots  []domain.Parcel
}

func (g *gateway) ClaimStreet(ctx context.Context, streetID, buyerID string) (domain.Street, []domain.Parcel, error) {
	res, err := withLock(ctx, g, []string{keylock.StreetKey(streetID)}, func(ctx context.Context) (claimResult, error) {
		s, slots, err := g.c.Streets.Claim(ctx, streetID, buyerID, parcel.PlanSlots)
		if err != nil {
			return claimResult{}, err
		}
		g.c.Parcels.Adopt(slots...)
		g.record(ctx, domain.Event{
			Type:     domain.EventTypeStreetClaimed,
			Actor:    buyerID,
			EntityID: s.ID,
			Amount:   s.Price,
			Note:     fmt.Sprintf("%s claimed %s for %d (%d slots)", buyerID, s.Name, s.Price, len(slots)),
		})
		return claimResult{street: s, slots: slots}, nil
	})
	return res.street, res.slots, err
}

func (g *gateway) ProposeOffer(ctx context.Context, parcelID, fromID string, amount int64, note string) (domain.Offer, error) {
	return withLock(ctx, g, []string{keylock.ParcelKey(parcelID)}, func(ctx context.Context) (domain.Offer, error) {
		before := g.offerStatuses()
		o, err := g.c.Offers.Propose(ctx, parcelID, fromID, amount, note)
		g.recordOfferChanges(ctx, before)
		if err != nil {
			return o, err
		}
		g.record(ctx, domain.Event{
			Type:     domain.EventTypeOfferCreated,
			Actor:    o.FromID,
			EntityID: o.ID,
			Amount:   o.Amount,
			Note:     fmt.Sprintf("%s offered %d to %s for %s", o.FromID, o.Amount, o.ToID, o.ParcelID),
		})
		return o, nil
	})
}

type offerAction func(ctx context.Context, offerID, actingID string) (domain.Offer, error)

// resolveOffer locks the offer together with its parcel and runs action
func (g *gateway) resolveOffer(ctx context.Context, offerID, actingID string, action offerAction) (domain.Offer, error) {
	current, err := g.c.Offers.Peek(offerID)
	if err != nil {
		return domain.Offer{}, err
	}
	keys := []string{keylock.OfferKey(offerID), keylock.ParcelKey(current.ParcelID)}

	return withLock(ctx, g, keys, func(ctx context.Context) (domain.Offer, error) {
		before := g.offerStatuses(offerID)
		o, err := action(ctx, offerID, actingID)
		g.recordOfferChanges(ctx, before)
		return o, err
	})
}

func (g *gateway) AcceptOffer(ctx context.Context, offerID, actingID string) (domain.Offer, error) {
	return g.resolveOffer(ctx, offerID, actingID, g.c.Offers.Accept)
}

func (g *gateway) RejectOffer(ctx context.Context, offerID, actingID string) (domain.Offer, error) {
	return g.resolveOffer(ctx, offerID, actingID, g.c.Offers.Reject)
}

func (g *gateway) CancelOffer(ctx context.Context, offerID, actingID string) (domain.Offer, error) {
	return g.resolveOffer(ctx, offerID, actingID, g.c.Offers.Cancel)
}

func (g *gateway) ExpireDue(ctx context.Context) ([]domain.Offer, error) {
	due := g.c.Offers.PastDue()
	if len(due) == 0 {
		return nil, nil
	}

	var (
		mu      sync.Mutex
		expired []domain.Offer
		errs    []error
	)

	group := g.pool.NewGroup()
	for _, o := range due {
		group.Submit(func() {
			res, err := withLock(ctx, g, []string{keylock.OfferKey(o.ID), keylock.ParcelKey(o.ParcelID)}, func(ctx context.Context) (domain.Offer, error) {
				res, ok, err := g.c.Offers.Expire(ctx, o.ID)
				if err != nil || !ok {
					return domain.Offer{}, err
				}
				g.recordOffer(ctx, res)
				return res, nil
			})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("failed to expire offer %s: %w", o.ID, err))
				return
			}
			if res.ID != "" {
				expired = append(expired, res)
			}
		})
	}
	if err := group.Wait(); err != nil {
		return expired, err
	}

	logger.InfoCtx(ctx, "Expired past-due offers", zap.Int("due", len(due)), zap.Int("expired", len(expired)))

	return expired, errors.Join(errs...)
}

func (g *gateway) RunTick(ctx context.Context) (domain.TickSummary, error) {
	return withLock(ctx, g, []string{keylock.TICK_KEY}, g.runTick)
}

func (g *gateway) TickIfDue(ctx context.Context) (domain.TickSummary, bool, error) {
	var ran bool
	summary, err := withLock(ctx, g, []string{keylock.TICK_KEY}, func(ctx context.Context) (domain.TickSummary, error) {
		if !g.c.Ticks.Due(g.clock.Now().UTC()) {
			return domain.TickSummary{}, nil
		}
		ran = true
		return g.runTick(ctx)
	})
	return summary, ran, err
}

func (g *gateway) runTick(ctx context.Context) (domain.TickSummary, error) {
	summary, err := g.c.Ticks.RunTick(ctx)
	if err != nil {
		return summary, err
	}
	g.record(ctx, domain.Event{
		Type:   domain.EventTypeTick,
		Amount: summary.TotalIncome(),
		Note:   fmt.Sprintf("%d credited to %d owners", summary.TotalIncome(), len(summary.Income)),
		At:     summary.TickedAt,
	})
	return summary, nil
}

func (g *gateway) AdjustBalance(ctx context.Context, owner string, delta int64) (int64, error) {
	balance, err := g.c.Ledger.Adjust(context.WithoutCancel(ctx), owner, delta)
	if err != nil {
		return balance, err
	}
	g.record(ctx, domain.Event{
		Type:     domain.EventTypeBalanceAdjust,
		EntityID: owner,
		Amount:   delta,
		Note:     fmt.Sprintf("%s adjusted by %d to %d", owner, delta, balance),
	})
	return balance, nil
}

type transferResult struct {
	from, to int64
}

func (g *gateway) TransferBalance(ctx context.Context, fromID, toID string, amount int64) (int64, int64, error) {
	fromID = types.NormalizeIdentity(fromID)
	toID = types.NormalizeIdentity(toID)
	if fromID == "" || toID == "" {
		return 0, 0, domain.ErrMissingIdentity
	}
	if fromID == toID {
		return 0, 0, domain.ErrSelfTransfer
	}
	if amount <= 0 {
		return 0, 0, domain.ErrInvalidAmount
	}

	res, err := withLock(ctx, g, nil, func(ctx context.Context) (transferResult, error) {
		next, err := g.c.Ledger.Post(ctx, []ledger.Entry{
			ledger.Debit(fromID, amount),
			ledger.Credit(toID, amount),
		}, store.ChangeSet{})
		if err != nil {
			return transferResult{}, err
		}
		g.record(ctx, domain.Event{
			Type:     domain.EventTypeTransfer,
			Actor:    fromID,
			EntityID: toID,
			Amount:   amount,
			Note:     fmt.Sprintf("%s transferred %d to %s", fromID, amount, toID),
		})
		return transferResult{from: next[fromID], to: next[toID]}, nil
	})
	return res.from, res.to, err
}

func (g *gateway) UpdateSettings(ctx context.Context, next domain.Settings) (domain.SettingsVersion, error) {
	return withLock(ctx, g, []string{keylock.SETTINGS_KEY, keylock.TICK_KEY}, func(ctx context.Context) (domain.SettingsVersion, error) {
		v, err := g.c.Settings.Update(ctx, next)
		if err != nil {
			return v, err
		}
		g.applySettings(ctx, v, fmt.Sprintf("settings version %d, tick every %d min", v.Version, v.Settings.AutoTickMin))
		return v, nil
	})
}

func (g *gateway) RollbackSettings(ctx context.Context, version int) (domain.SettingsVersion, error) {
	return withLock(ctx, g, []string{keylock.SETTINGS_KEY, keylock.TICK_KEY}, func(ctx context.Context) (domain.SettingsVersion, error) {
		v, err := g.c.Settings.Rollback(ctx, version)
		if err != nil {
			return v, err
		}
		g.applySettings(ctx, v, fmt.Sprintf("settings version %d restored from %d", v.Version, version))
		return v, nil
	})
}

func (g *gateway) applySettings(ctx context.Context, v domain.SettingsVersion, note string) {
	g.c.Ticks.SetInterval(v.Settings.TickInterval())
	g.record(ctx, domain.Event{
		Type:     domain.EventTypeSettings,
		EntityID: store.SettingsKey(v.Version),
		Note:     note,
		At:       v.CreatedAt,
	})
}

func (g *gateway) Close() {
	g.pool.StopAndWait()
}

// parcelKeys returns the lock keys of a parcel and of the street it belongs to
func (g *gateway) parcelKeys(parcelID string) ([]string, error) {
	p, err := g.c.Parcels.Get(parcelID)
	if err != nil {
		return nil, err
	}
	keys := []string{keylock.ParcelKey(parcelID)}
	if p.StreetID != nil {
		keys = append(keys, keylock.StreetKey(*p.StreetID))
	}
	return keys, nil
}
