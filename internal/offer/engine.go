package offer

import (
	"context"
	"errors"
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
	"github.com/feral-file/wt-exchange/internal/parcel"
	"github.com/feral-file/wt-exchange/internal/store"
	"github.com/feral-file/wt-exchange/internal/types"
)

// Config holds offer policy
type Config struct {
	// TTL is how long an offer stays pending
	TTL time.Duration
	// MinAmount is the smallest amount that can be offered
	MinAmount int64
	// FeePct is the percentage of the amount withheld from the seller on acceptance
	FeePct float64
	// LockParcelOnPending allows at most one pending offer per parcel
	LockParcelOnPending bool
}

// Filter narrows List. Empty fields match everything.
type Filter struct {
	// Owner matches offers where the identity is the proposer or the counterparty
	Owner    string
	Status   domain.OfferStatus
	ParcelID string
}

// Engine runs the offer state machine.
//
// Expiry is lazy: every read or action on a pending offer that is past its
// expiry first moves it to EXPIRED. Actions that force a transition, such as
// an expiry or an automatic rejection on acceptance, return the resolved offer
// together with the error.
//
//go:generate mockgen -source=engine.go -destination=../mocks/offer_engine.go -package=mocks -mock_names=Engine=MockOfferEngine
type Engine interface {
	// Peek returns the stored offer without evaluating expiry
	Peek(id string) (domain.Offer, error)

	// PastDue returns every pending offer past its expiry
	PastDue() []domain.Offer

	// Get returns an offer after evaluating its expiry
	Get(ctx context.Context, id string) (domain.Offer, error)

	// List returns matching offers newest first after evaluating expiry
	List(ctx context.Context, filter Filter) ([]domain.Offer, error)

	// Propose creates a pending offer from fromID to the current owner of the parcel
	Propose(ctx context.Context, parcelID, fromID string, amount int64, note string) (domain.Offer, error)

	// Accept settles the offer and transfers the parcel to the proposer
	Accept(ctx context.Context, offerID, actingID string) (domain.Offer, error)

	// Reject declines the offer as its counterparty
	Reject(ctx context.Context, offerID, actingID string) (domain.Offer, error)

	// Cancel withdraws the offer as its proposer
	Cancel(ctx context.Context, offerID, actingID string) (domain.Offer, error)

	// Expire moves a past-due pending offer to EXPIRED and reports whether it did
	Expire(ctx context.Context, offerID string) (domain.Offer, bool, error)

	// Restore replaces every offer with the loaded state
	Restore(offers []domain.Offer)
}

type engine struct {
	cfg     Config
	store   store.Store
	parcels parcel.Store
	ledger  ledger.Ledger
	clock   adapter.Clock

	// locks serializes writes per parcel and per offer
	locks  *keylock.Locker
	mu     sync.RWMutex
	offers map[string]domain.Offer
}

// NewEngine creates an offer engine
func NewEngine(cfg Config, s store.Store, parcels parcel.Store, l ledger.Ledger, clock adapter.Clock) Engine {
	if cfg.TTL <= 0 {
		cfg.TTL = domain.DEFAULT_OFFER_TTL
	}
	return &engine{
		cfg:     cfg,
		store:   s,
		parcels: parcels,
		ledger:  l,
		clock:   clock,
		locks:   keylock.New(),
		offers:  make(map[string]domain.Offer),
	}
}

func (e *engine) Peek(id string) (domain.Offer, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	o, ok := e.offers[id]
	if !ok {
		return domain.Offer{}, domain.ErrOfferNotFound
	}
	return o.Clone(), nil
}

func (e *engine) PastDue() []domain.Offer {
	now := e.clock.Now()

	e.mu.RLock()
	defer e.mu.RUnlock()

	var out []domain.Offer
	for _, o := range e.offers {
		if o.PastDue(now) {
			out = append(out, o.Clone())
		}
	}
	sortNewestFirst(out)
	return out
}

func (e *engine) Get(ctx context.Context, id string) (domain.Offer, error) {
	o, err := e.Peek(id)
	if err != nil {
		return domain.Offer{}, err
	}
	if !o.PastDue(e.clock.Now()) {
		return o, nil
	}
	o, _, err = e.Expire(ctx, id)
	return o, err
}

func (e *engine) List(ctx context.Context, filter Filter) ([]domain.Offer, error) {
	due := e.PastDue()
	for _, o := range due {
		if matches(o, Filter{Owner: filter.Owner, ParcelID: filter.ParcelID}) {
			if _, _, err := e.Expire(ctx, o.ID); err != nil {
				return nil, err
			}
		}
	}

	e.mu.RLock()
	out := make([]domain.Offer, 0)
	for _, o := range e.offers {
		if matches(o, filter) {
			out = append(out, o.Clone())
		}
	}
	e.mu.RUnlock()

	sortNewestFirst(out)
	return out, nil
}

func matches(o domain.Offer, filter Filter) bool {
	if filter.Owner != "" && !o.Involves(filter.Owner) {
		return false
	}
	if filter.Status != "" && o.Status != filter.Status {
		return false
	}
	if filter.ParcelID != "" && o.ParcelID != filter.ParcelID {
		return false
	}
	return true
}

func sortNewestFirst(offers []domain.Offer) {
	sort.Slice(offers, func(i, j int) bool {
		if offers[i].CreatedAt.Equal(offers[j].CreatedAt) {
			return offers[i].ID > offers[j].ID
		}
		return offers[i].CreatedAt.After(offers[j].CreatedAt)
	})
}

func (e *engine) Propose(ctx context.Context, parcelID, fromID string, amount int64, note string) (domain.Offer, error) {
	fromID = types.NormalizeIdentity(fromID)
	if fromID == "" {
		return domain.Offer{}, domain.ErrMissingIdentity
	}
	if amount <= 0 {
		return domain.Offer{}, domain.ErrInvalidAmount
	}
	if amount < e.cfg.MinAmount {
		return domain.Offer{}, domain.ErrAmountBelowMinimum
	}

	unlock, err := e.locks.Lock(ctx, keylock.ParcelKey(parcelID))
	if err != nil {
		return domain.Offer{}, err
	}
	defer unlock()

	p, err := e.parcels.Get(parcelID)
	if err != nil {
		return domain.Offer{}, err
	}
	if !p.IsOwned() {
		return domain.Offer{}, domain.ErrParcelUnowned
	}
	if p.OwnedBy(fromID) {
		return domain.Offer{}, domain.ErrSelfOffer
	}

	now := e.clock.Now().UTC()

	// pending offers on the parcel that are already past due expire with this write
	var expired []domain.Offer
	e.mu.RLock()
	for _, o := range e.offers {
		if o.ParcelID != parcelID || o.Status != domain.OfferStatusPending {
			continue
		}
		if o.PastDue(now) {
			expired = append(expired, o.Resolve(domain.OfferStatusExpired, domain.OfferReasonTTLElapsed, now, 0))
			continue
		}
		if e.cfg.LockParcelOnPending {
			e.mu.RUnlock()
			return domain.Offer{}, domain.ErrPendingOffer
		}
	}
	e.mu.RUnlock()

	o := domain.Offer{
		ID:        types.GenerateUUID(),
		ParcelID:  parcelID,
		FromID:    fromID,
		ToID:      p.OwnerID(),
		Amount:    amount,
		Status:    domain.OfferStatusPending,
		Note:      strings.TrimSpace(note),
		CreatedAt: now,
		ExpiresAt: now.Add(e.cfg.TTL),
		History:   []domain.OfferHistoryEntry{{At: now, Action: domain.OfferStatusPending}},
	}

	writes := append(expired, o)
	if err := e.store.Commit(ctx, store.ChangeSet{Offers: writes}); err != nil {
		return domain.Offer{}, fmt.Errorf("failed to commit offer: %w", err)
	}
	e.put(writes...)

	logger.InfoCtx(ctx, "Proposed offer",
		zap.String("offer_id", o.ID),
		zap.String("parcel_id", parcelID),
		zap.String("from", fromID),
		zap.String("to", o.ToID),
		zap.Int64("amount", amount),
	)

	return o.Clone(), nil
}

// lockOffer holds an offer together with its parcel
func (e *engine) lockOffer(ctx context.Context, offerID string) (func(), error) {
	o, err := e.Peek(offerID)
	if err != nil {
		return nil, err
	}
	return e.locks.Lock(ctx, keylock.OfferKey(offerID), keylock.ParcelKey(o.ParcelID))
}

// pending loads an offer for an action. A past-due offer is expired first;
// expired offers are returned with domain.ErrOfferExpired. Callers hold lockOffer.
func (e *engine) pending(ctx context.Context, offerID string) (domain.Offer, error) {
	o, err := e.Peek(offerID)
	if err != nil {
		return domain.Offer{}, err
	}
	switch o.Status {
	case domain.OfferStatusPending:
	case domain.OfferStatusExpired:
		return o, domain.ErrOfferExpired
	default:
		return domain.Offer{}, fmt.Errorf("%w: status is %s", domain.ErrOfferNotPending, o.Status)
	}

	now := e.clock.Now().UTC()
	if o.PastDue(now) {
		expired, err := e.resolve(ctx, o, domain.OfferStatusExpired, domain.OfferReasonTTLElapsed, now, 0)
		if err != nil {
			return domain.Offer{}, err
		}
		return expired, domain.ErrOfferExpired
	}

	return o, nil
}

// resolve commits a terminal transition that moves no money
func (e *engine) resolve(ctx context.Context, o domain.Offer, status domain.OfferStatus, reason domain.OfferReason, at time.Time, net int64) (domain.Offer, error) {
	next := o.Resolve(status, reason, at, net)
	if err := e.store.Commit(ctx, store.ChangeSet{Offers: []domain.Offer{next}}); err != nil {
		return domain.Offer{}, fmt.Errorf("failed to commit offer transition: %w", err)
	}
	e.put(next)

	logger.InfoCtx(ctx, "Resolved offer",
		zap.String("offer_id", o.ID),
		zap.String("status", string(status)),
		zap.String("reason", string(reason)),
	)

	return next.Clone(), nil
}

func (e *engine) Accept(ctx context.Context, offerID, actingID string) (domain.Offer, error) {
	actingID = types.NormalizeIdentity(actingID)

	unlock, err := e.lockOffer(ctx, offerID)
	if err != nil {
		return domain.Offer{}, err
	}
	defer unlock()

	o, err := e.pending(ctx, offerID)
	if err != nil {
		return o, err
	}
	if actingID != o.ToID {
		return domain.Offer{}, domain.ErrNotCounterparty
	}

	now := e.clock.Now().UTC()

	p, err := e.parcels.Get(o.ParcelID)
	if err != nil {
		if !errors.Is(err, domain.ErrParcelNotFound) {
			return domain.Offer{}, err
		}
		rejected, rerr := e.resolve(ctx, o, domain.OfferStatusRejected, domain.OfferReasonParcelMissing, now, 0)
		if rerr != nil {
			return domain.Offer{}, rerr
		}
		return rejected, err
	}
	if !p.OwnedBy(o.ToID) {
		rejected, err := e.resolve(ctx, o, domain.OfferStatusRejected, domain.OfferReasonOwnershipChanged, now, 0)
		if err != nil {
			return domain.Offer{}, err
		}
		return rejected, domain.ErrOwnershipChanged
	}

	net := o.Amount - e.fee(o.Amount)
	accepted := o.Resolve(domain.OfferStatusAccepted, domain.OfferReasonNone, now, net)

	_, err = e.parcels.TransferOwnership(ctx, o.ParcelID, o.ToID, o.FromID, func(ctx context.Context, next domain.Parcel) error {
		_, err := e.ledger.Post(ctx,
			[]ledger.Entry{ledger.Debit(o.FromID, o.Amount), ledger.Credit(o.ToID, net)},
			store.ChangeSet{Parcels: []domain.Parcel{next}, Offers: []domain.Offer{accepted}},
		)
		return err
	})
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		rejected, rerr := e.resolve(ctx, o, domain.OfferStatusRejected, domain.OfferReasonInsufficientFunds, now, 0)
		if rerr != nil {
			return domain.Offer{}, rerr
		}
		return rejected, err
	case errors.Is(err, domain.ErrOwnershipChanged):
		rejected, rerr := e.resolve(ctx, o, domain.OfferStatusRejected, domain.OfferReasonOwnershipChanged, now, 0)
		if rerr != nil {
			return domain.Offer{}, rerr
		}
		return rejected, err
	case err != nil:
		return domain.Offer{}, err
	}
	e.put(accepted)

	logger.InfoCtx(ctx, "Accepted offer",
		zap.String("offer_id", o.ID),
		zap.String("parcel_id", o.ParcelID),
		zap.String("buyer", o.FromID),
		zap.String("seller", o.ToID),
		zap.Int64("amount", o.Amount),
		zap.Int64("net", net),
	)

	return accepted.Clone(), nil
}

func (e *engine) fee(amount int64) int64 {
	if e.cfg.FeePct <= 0 {
		return 0
	}
	fee := int64(float64(amount) * e.cfg.FeePct / 100)
	return min(max(fee, 0), amount)
}

func (e *engine) Reject(ctx context.Context, offerID, actingID string) (domain.Offer, error) {
	actingID = types.NormalizeIdentity(actingID)

	unlock, err := e.lockOffer(ctx, offerID)
	if err != nil {
		return domain.Offer{}, err
	}
	defer unlock()

	o, err := e.pending(ctx, offerID)
	if err != nil {
		return o, err
	}
	if actingID != o.ToID {
		return domain.Offer{}, domain.ErrNotCounterparty
	}

	return e.resolve(ctx, o, domain.OfferStatusRejected, domain.OfferReasonDeclined, e.clock.Now().UTC(), 0)
}

func (e *engine) Cancel(ctx context.Context, offerID, actingID string) (domain.Offer, error) {
	actingID = types.NormalizeIdentity(actingID)

	unlock, err := e.lockOffer(ctx, offerID)
	if err != nil {
		return domain.Offer{}, err
	}
	defer unlock()

	o, err := e.pending(ctx, offerID)
	if err != nil {
		return o, err
	}
	if actingID != o.FromID {
		return domain.Offer{}, domain.ErrNotProposer
	}

	return e.resolve(ctx, o, domain.OfferStatusCanceled, domain.OfferReasonNone, e.clock.Now().UTC(), 0)
}

func (e *engine) Expire(ctx context.Context, offerID string) (domain.Offer, bool, error) {
	unlock, err := e.lockOffer(ctx, offerID)
	if err != nil {
		return domain.Offer{}, false, err
	}
	defer unlock()

	o, err := e.Peek(offerID)
	if err != nil {
		return domain.Offer{}, false, err
	}
	now := e.clock.Now().UTC()
	if !o.PastDue(now) {
		return o, false, nil
	}

	expired, err := e.resolve(ctx, o, domain.OfferStatusExpired, domain.OfferReasonTTLElapsed, now, 0)
	if err != nil {
		return domain.Offer{}, false, err
	}
	return expired, true, nil
}

func (e *engine) put(offers ...domain.Offer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, o := range offers {
		e.offers[o.ID] = o.Clone()
	}
}

func (e *engine) Restore(offers []domain.Offer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.offers = make(map[string]domain.Offer, len(offers))
	for _, o := range offers {
		e.offers[o.ID] = o.Clone()
	}
}
