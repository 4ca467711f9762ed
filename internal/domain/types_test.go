package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestParcelValidate(t *testing.T) {
	tests := []struct {
		name     string
		parcel   Parcel
		expected error
	}{
		{
			name:     "fresh unowned parcel",
			parcel:   Parcel{ID: "p1", Level: 1},
			expected: nil,
		},
		{
			name:     "owned with building",
			parcel:   Parcel{ID: "p1", Owner: strPtr("alice"), BuildingType: strPtr("shop"), Level: 5},
			expected: nil,
		},
		{
			name:     "level zero",
			parcel:   Parcel{ID: "p1", Level: 0},
			expected: ErrInvalidLevel,
		},
		{
			name:     "level above max",
			parcel:   Parcel{ID: "p1", Owner: strPtr("alice"), BuildingType: strPtr("shop"), Level: 6},
			expected: ErrInvalidLevel,
		},
		{
			name:     "level two without building",
			parcel:   Parcel{ID: "p1", Owner: strPtr("alice"), Level: 2},
			expected: ErrInvalidLevel,
		},
		{
			name:     "building without owner",
			parcel:   Parcel{ID: "p1", BuildingType: strPtr("shop"), Level: 1},
			expected: ErrNoOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parcel.Validate()
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestParcelOwnership(t *testing.T) {
	p := Parcel{ID: "p1", Level: 1}
	assert.False(t, p.IsOwned())
	assert.False(t, p.OwnedBy("alice"))
	assert.Equal(t, "", p.OwnerID())

	p.Owner = strPtr("alice")
	assert.True(t, p.IsOwned())
	assert.True(t, p.OwnedBy("alice"))
	assert.False(t, p.OwnedBy("bob"))
	assert.Equal(t, "alice", p.OwnerID())
}

func TestStreetLockedAgainst(t *testing.T) {
	unclaimed := Street{ID: "s1"}
	assert.False(t, unclaimed.LockedAgainst("alice"))

	claimed := Street{ID: "s1", Owner: strPtr("alice")}
	assert.False(t, claimed.LockedAgainst("alice"))
	assert.True(t, claimed.LockedAgainst("bob"))
}

func TestStreetClone(t *testing.T) {
	s := Street{ID: "s1", Path: []LatLng{{Lat: 1, Lng: 2}}}
	c := s.Clone()
	c.Path[0].Lat = 9
	assert.Equal(t, float64(1), s.Path[0].Lat)
}

func TestOfferStatus(t *testing.T) {
	assert.False(t, OfferStatusPending.Terminal())
	for _, s := range []OfferStatus{OfferStatusAccepted, OfferStatusRejected, OfferStatusCanceled, OfferStatusExpired} {
		assert.True(t, s.Terminal(), s)
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, OfferStatus("OPEN").Valid())
}

func TestOfferPastDue(t *testing.T) {
	created := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	o := Offer{ID: "o1", Status: OfferStatusPending, CreatedAt: created, ExpiresAt: created.Add(time.Hour)}

	assert.False(t, o.PastDue(created.Add(30*time.Minute)))
	assert.False(t, o.PastDue(created.Add(time.Hour)))
	assert.True(t, o.PastDue(created.Add(61*time.Minute)))

	o.Status = OfferStatusCanceled
	assert.False(t, o.PastDue(created.Add(2*time.Hour)))
}

func TestOfferResolve(t *testing.T) {
	created := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	o := Offer{
		ID:      "o1",
		Status:  OfferStatusPending,
		History: make([]OfferHistoryEntry, 1, 4),
	}
	o.History[0] = OfferHistoryEntry{At: created, Action: OfferStatusPending}

	resolved := o.Resolve(OfferStatusRejected, OfferReasonOwnershipChanged, created.Add(time.Minute), 0)

	assert.Equal(t, OfferStatusRejected, resolved.Status)
	assert.Equal(t, OfferReasonOwnershipChanged, resolved.Reason)
	assert.NotNil(t, resolved.ResolvedAt)
	assert.Len(t, resolved.History, 2)
	// The original keeps its own history even though its slice had spare capacity
	assert.Equal(t, OfferStatusPending, o.Status)
	assert.Len(t, o.History, 1)
}

func TestKind(t *testing.T) {
	tests := []struct {
		err  error
		kind error
	}{
		{ErrParcelNotFound, ErrNotFound},
		{ErrAlreadyOwned, ErrConflict},
		{ErrOwnershipChanged, ErrConflict},
		{ErrStreetLocked, ErrConflict},
		{ErrMaxLevel, ErrConflict},
		{ErrInsufficientFunds, ErrInsufficientFunds},
		{ErrUnknownType, ErrInvalidInput},
		{ErrOfferExpired, ErrExpired},
		{ErrNotOwner, ErrForbidden},
		{errors.New("boom"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.kind, Kind(tt.err))
		})
	}
}

func TestEventTypeTitle(t *testing.T) {
	assert.Equal(t, "Trade Accepted", EventTypeOfferAccepted.Title())
	assert.Equal(t, "Offer Created", EventTypeOfferCreated.Title())
	assert.Equal(t, "custom", EventType("custom").Title())
}
