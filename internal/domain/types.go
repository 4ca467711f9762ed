package domain

import (
	"slices"
	"time"
)

// LatLng is a map coordinate
type LatLng struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Valid reports whether the coordinate is on the globe
func (l LatLng) Valid() bool {
	return l.Lat >= -90 && l.Lat <= 90 && l.Lng >= -180 && l.Lng <= 180
}

// BuildingType is a catalog entry. BasePrice of zero means the price is derived from the income.
type BuildingType struct {
	Key        string `json:"key" yaml:"key"`
	Name       string `json:"name" yaml:"name"`
	BaseIncome int64  `json:"baseIncome" yaml:"base_income"`
	BasePrice  int64  `json:"basePrice,omitempty" yaml:"base_price"`
}

// Parcel is a single ownable map-anchored asset
type Parcel struct {
	ID           string     `json:"id"`
	Location     LatLng     `json:"location"`
	Owner        *string    `json:"owner"`
	BuildingType *string    `json:"type"`
	Level        int        `json:"level"`
	Color        string     `json:"color"`
	StreetID     *string    `json:"streetId"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastTradeAt  *time.Time `json:"lastTradeAt,omitempty"`
}

// IsOwned reports whether the parcel has an owner
func (p Parcel) IsOwned() bool {
	return p.Owner != nil && *p.Owner != ""
}

// OwnedBy reports whether the parcel is owned by the given identity
func (p Parcel) OwnedBy(id string) bool {
	return p.IsOwned() && *p.Owner == id
}

// HasBuilding reports whether a building type is set
func (p Parcel) HasBuilding() bool {
	return p.BuildingType != nil && *p.BuildingType != ""
}

// OwnerID returns the owner or an empty string
func (p Parcel) OwnerID() string {
	if p.Owner == nil {
		return ""
	}
	return *p.Owner
}

// Validate checks the parcel invariants
func (p Parcel) Validate() error {
	if p.Level < MIN_PARCEL_LEVEL || p.Level > MAX_PARCEL_LEVEL {
		return ErrInvalidLevel
	}
	if p.Level > MIN_PARCEL_LEVEL && !p.HasBuilding() {
		return ErrInvalidLevel
	}
	if p.HasBuilding() && !p.IsOwned() {
		return ErrNoOwner
	}
	return nil
}

// Street is a group of parcels under one shared claim
type Street struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Path      []LatLng   `json:"path"`
	Owner     *string    `json:"owner"`
	Price     int64      `json:"price"`
	Slots     int        `json:"slots"`
	ClaimedAt *time.Time `json:"claimedAt,omitempty"`
}

// IsClaimed reports whether the street has an owner
func (s Street) IsClaimed() bool {
	return s.Owner != nil && *s.Owner != ""
}

// LockedAgainst reports whether the street is claimed by someone other than actor
func (s Street) LockedAgainst(actor string) bool {
	return s.IsClaimed() && *s.Owner != actor
}

// Clone returns a copy that shares no mutable state
func (s Street) Clone() Street {
	s.Path = slices.Clone(s.Path)
	return s
}

// OfferStatus is the state of an offer
type OfferStatus string

const (
	OfferStatusPending  OfferStatus = "PENDING"
	OfferStatusAccepted OfferStatus = "ACCEPTED"
	OfferStatusRejected OfferStatus = "REJECTED"
	OfferStatusCanceled OfferStatus = "CANCELED"
	OfferStatusExpired  OfferStatus = "EXPIRED"
)

// Valid reports whether the status is known
func (s OfferStatus) Valid() bool {
	switch s {
	case OfferStatusPending, OfferStatusAccepted, OfferStatusRejected, OfferStatusCanceled, OfferStatusExpired:
		return true
	}
	return false
}

// Terminal reports whether no further transition is possible
func (s OfferStatus) Terminal() bool {
	return s != OfferStatusPending
}

// OfferReason explains a REJECTED or EXPIRED status
type OfferReason string

const (
	OfferReasonNone              OfferReason = ""
	OfferReasonDeclined          OfferReason = "DECLINED"
	OfferReasonOwnershipChanged  OfferReason = "OWNERSHIP_CHANGED"
	OfferReasonInsufficientFunds OfferReason = "INSUFFICIENT_FUNDS"
	OfferReasonParcelMissing     OfferReason = "PARCEL_MISSING"
	OfferReasonTTLElapsed        OfferReason = "TTL_ELAPSED"
)

// OfferHistoryEntry records a single transition of an offer
type OfferHistoryEntry struct {
	At     time.Time   `json:"t"`
	Action OfferStatus `json:"a"`
	Reason OfferReason `json:"reason,omitempty"`
	Net    int64       `json:"net,omitempty"`
}

// Offer is a proposed one-parcel ownership transfer for a fixed amount
type Offer struct {
	ID         string              `json:"id"`
	ParcelID   string              `json:"parcelId"`
	FromID     string              `json:"fromId"`
	ToID       string              `json:"toId"`
	Amount     int64               `json:"amount"`
	Status     OfferStatus         `json:"status"`
	Reason     OfferReason         `json:"reason,omitempty"`
	Note       string              `json:"note,omitempty"`
	CreatedAt  time.Time           `json:"createdAt"`
	ExpiresAt  time.Time           `json:"expiresAt"`
	ResolvedAt *time.Time          `json:"resolvedAt,omitempty"`
	History    []OfferHistoryEntry `json:"history"`
}

// Clone returns a copy that shares no mutable state
func (o Offer) Clone() Offer {
	o.History = slices.Clone(o.History)
	return o
}

// PastDue reports whether a pending offer has outlived its expiry at now
func (o Offer) PastDue(now time.Time) bool {
	return o.Status == OfferStatusPending && now.After(o.ExpiresAt)
}

// Involves reports whether id is the proposer or the counterparty
func (o Offer) Involves(id string) bool {
	return o.FromID == id || o.ToID == id
}

// Resolve returns a copy moved to a terminal status at the given time
func (o Offer) Resolve(status OfferStatus, reason OfferReason, at time.Time, net int64) Offer {
	next := o.Clone()
	next.Status = status
	next.Reason = reason
	next.ResolvedAt = &at
	next.History = append(next.History, OfferHistoryEntry{At: at, Action: status, Reason: reason, Net: net})
	return next
}

// TickSummary is the outcome of one income tick
type TickSummary struct {
	TickedAt    time.Time        `json:"tickedAt"`
	Income      map[string]int64 `json:"income"`
	Balances    map[string]int64 `json:"balances"`
	IntervalSec int64            `json:"intervalSec"`
}

// TotalIncome returns the sum of income credited by the tick
func (t TickSummary) TotalIncome() int64 {
	var total int64
	for _, v := range t.Income {
		total += v
	}
	return total
}

// EventType identifies an entry of the economy events feed
type EventType string

const (
	EventTypeParcelCreated EventType = "parcel.created"
	EventTypeParcelBought  EventType = "parcel.bought"
	EventTypeParcelUpgrade EventType = "parcel.upgraded"
	EventTypeParcelReset   EventType = "parcel.reset"
	EventTypeParcelDeleted EventType = "parcel.deleted"
	EventTypeStreetClaimed EventType = "street.claimed"
	EventTypeOfferCreated  EventType = "offer.created"
	EventTypeOfferAccepted EventType = "offer.accepted"
	EventTypeOfferRejected EventType = "offer.rejected"
	EventTypeOfferCanceled EventType = "offer.canceled"
	EventTypeOfferExpired  EventType = "offer.expired"
	EventTypeBalanceAdjust EventType = "balance.adjusted"
	EventTypeTransfer      EventType = "balance.transferred"
	EventTypeSettings      EventType = "settings.updated"
	EventTypeTick          EventType = "economy.tick"
)

// Title returns the human readable label shown in the events feed
func (t EventType) Title() string {
	switch t {
	case EventTypeParcelCreated:
		return "Parcel Created"
	case EventTypeParcelBought:
		return "Parcel Bought"
	case EventTypeParcelUpgrade:
		return "Parcel Upgraded"
	case EventTypeParcelReset:
		return "Parcel Reset"
	case EventTypeParcelDeleted:
		return "Parcel Deleted"
	case EventTypeStreetClaimed:
		return "Street Claimed"
	case EventTypeOfferCreated:
		return "Offer Created"
	case EventTypeOfferAccepted:
		return "Trade Accepted"
	case EventTypeOfferRejected:
		return "Offer Rejected"
	case EventTypeOfferCanceled:
		return "Offer Canceled"
	case EventTypeOfferExpired:
		return "Offer Expired"
	case EventTypeBalanceAdjust:
		return "Balance Adjusted"
	case EventTypeTransfer:
		return "Balance Transferred"
	case EventTypeSettings:
		return "Settings Updated"
	case EventTypeTick:
		return "Tick"
	}
	return string(t)
}

// Event is an entry of the economy events feed
type Event struct {
	ID       string    `json:"id"`
	Type     EventType `json:"type"`
	Title    string    `json:"title"`
	Note     string    `json:"note"`
	Actor    string    `json:"actor,omitempty"`
	EntityID string    `json:"entityId,omitempty"`
	Amount   int64     `json:"amount,omitempty"`
	At       time.Time `json:"t"`
}

// Settings are the runtime economy settings administrators can change
type Settings struct {
	SeasonStart time.Time `json:"seasonStart"`
	SeasonEnd   time.Time `json:"seasonEnd"`
	// AutoTickMin is the income tick cadence in minutes
	AutoTickMin int `json:"autoTickMin"`
}

// Validate checks the season window and the tick bounds
func (s Settings) Validate() error {
	if !s.SeasonEnd.After(s.SeasonStart) {
		return ErrInvalidSeason
	}
	if s.SeasonEnd.Sub(s.SeasonStart) > MAX_SEASON_LENGTH {
		return ErrSeasonTooLong
	}
	if s.AutoTickMin < MIN_AUTO_TICK_MIN || s.AutoTickMin > MAX_AUTO_TICK_MIN {
		return ErrInvalidAutoTick
	}
	return nil
}

// TickInterval returns AutoTickMin as a duration
func (s Settings) TickInterval() time.Duration {
	return time.Duration(s.AutoTickMin) * time.Minute
}

// InSeason reports whether t falls in [SeasonStart, SeasonEnd)
func (s Settings) InSeason(t time.Time) bool {
	return !t.Before(s.SeasonStart) && t.Before(s.SeasonEnd)
}

// SettingsVersion is one signed revision of the settings.
// Version 0 is the unsigned default used before any revision exists.
type SettingsVersion struct {
	Version   int       `json:"version"`
	Settings  Settings  `json:"settings"`
	CreatedAt time.Time `json:"createdAt"`
	// RestoredFrom is the version a rollback copied
	RestoredFrom *int   `json:"restoredFrom,omitempty"`
	Signature    string `json:"signature,omitempty"`
}
