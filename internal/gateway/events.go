package gateway

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/wt-exchange/internal/domain"
	"github.com/feral-file/wt-exchange/internal/logger"
)

// record adds an event to the feed. The mutation it describes is already
// committed, so a failure here is logged and not returned.
func (g *gateway) record(ctx context.Context, event domain.Event) {
	if _, err := g.c.Recorder.Record(ctx, event); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("event_type", string(event.Type)), zap.String("entity_id", event.EntityID))
	}
}

// offerStatuses snapshots the status of the given offers and of every past-due offer
func (g *gateway) offerStatuses(ids ...string) map[string]domain.OfferStatus {
	statuses := make(map[string]domain.OfferStatus)
	for _, o := range g.c.Offers.PastDue() {
		statuses[o.ID] = o.Status
	}
	for _, id := range ids {
		if o, err := g.c.Offers.Peek(id); err == nil {
			statuses[o.ID] = o.Status
		}
	}
	return statuses
}

// recordOfferChanges records an event for every offer whose status moved since before
func (g *gateway) recordOfferChanges(ctx context.Context, before map[string]domain.OfferStatus) {
	for id, status := range before {
		o, err := g.c.Offers.Peek(id)
		if err != nil || o.Status == status {
			continue
		}
		g.recordOffer(ctx, o)
	}
}

// recordOffer records the terminal transition of an offer
func (g *gateway) recordOffer(ctx context.Context, o domain.Offer) {
	at := g.clock.Now().UTC()
	if o.ResolvedAt != nil {
		at = *o.ResolvedAt
	}
	event := domain.Event{
		ID:       transitionID(o, at),
		EntityID: o.ID,
		Amount:   o.Amount,
		At:       at,
	}

	switch o.Status {
	case domain.OfferStatusAccepted:
		event.Type = domain.EventTypeOfferAccepted
		event.Actor = o.ToID
		event.Note = fmt.Sprintf("%s bought %s from %s for %d", o.FromID, o.ParcelID, o.ToID, o.Amount)
	case domain.OfferStatusRejected:
		event.Type = domain.EventTypeOfferRejected
		event.Actor = o.ToID
		event.Note = fmt.Sprintf("offer on %s rejected (%s)", o.ParcelID, o.Reason)
	case domain.OfferStatusCanceled:
		event.Type = domain.EventTypeOfferCanceled
		event.Actor = o.FromID
		event.Note = fmt.Sprintf("%s canceled the offer on %s", o.FromID, o.ParcelID)
	case domain.OfferStatusExpired:
		event.Type = domain.EventTypeOfferExpired
		event.Note = fmt.Sprintf("offer on %s expired", o.ParcelID)
	default:
		return
	}

	g.record(ctx, event)
}

// transitionID derives the event id of an offer transition from the offer and
// its new status, so every reader that observes the transition records the same event
func transitionID(o domain.Offer, at time.Time) string {
	sum := sha256.Sum256([]byte(o.ID + "." + string(o.Status)))
	return ulid.MustNew(ulid.Timestamp(at), bytes.NewReader(sum[:])).String()
}
