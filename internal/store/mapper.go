package store

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/feral-file/wt-exchange/internal/domain"
	"github.com/feral-file/wt-exchange/internal/store/schema"
)

func parcelToRow(p domain.Parcel) schema.Parcel {
	return schema.Parcel{
		ID:           p.ID,
		Lat:          p.Location.Lat,
		Lng:          p.Location.Lng,
		Owner:        p.Owner,
		BuildingType: p.BuildingType,
		Level:        p.Level,
		Color:        p.Color,
		StreetID:     p.StreetID,
		LastTradeAt:  p.LastTradeAt,
		CreatedAt:    p.CreatedAt,
	}
}

func parcelFromRow(r schema.Parcel) domain.Parcel {
	return domain.Parcel{
		ID:           r.ID,
		Location:     domain.LatLng{Lat: r.Lat, Lng: r.Lng},
		Owner:        r.Owner,
		BuildingType: r.BuildingType,
		Level:        r.Level,
		Color:        r.Color,
		StreetID:     r.StreetID,
		CreatedAt:    r.CreatedAt,
		LastTradeAt:  r.LastTradeAt,
	}
}

func streetToRow(s domain.Street) (schema.Street, error) {
	path := s.Path
	if path == nil {
		path = []domain.LatLng{}
	}
	raw, err := json.Marshal(path)
	if err != nil {
		return schema.Street{}, fmt.Errorf("failed to marshal street path: %w", err)
	}
	return schema.Street{
		ID:        s.ID,
		Name:      s.Name,
		Path:      datatypes.JSON(raw),
		Owner:     s.Owner,
		Price:     s.Price,
		Slots:     s.Slots,
		ClaimedAt: s.ClaimedAt,
	}, nil
}

func streetFromRow(r schema.Street) (domain.Street, error) {
	var path []domain.LatLng
	if len(r.Path) > 0 {
		if err := json.Unmarshal(r.Path, &path); err != nil {
			return domain.Street{}, fmt.Errorf("failed to unmarshal street path: %w", err)
		}
	}
	return domain.Street{
		ID:        r.ID,
		Name:      r.Name,
		Path:      path,
		Owner:     r.Owner,
		Price:     r.Price,
		Slots:     r.Slots,
		ClaimedAt: r.ClaimedAt,
	}, nil
}

func offerToRow(o domain.Offer) (schema.Offer, error) {
	history := o.History
	if history == nil {
		history = []domain.OfferHistoryEntry{}
	}
	raw, err := json.Marshal(history)
	if err != nil {
		return schema.Offer{}, fmt.Errorf("failed to marshal offer history: %w", err)
	}
	return schema.Offer{
		ID:         o.ID,
		ParcelID:   o.ParcelID,
		FromID:     o.FromID,
		ToID:       o.ToID,
		Amount:     o.Amount,
		Status:     string(o.Status),
		Reason:     string(o.Reason),
		Note:       o.Note,
		History:    datatypes.JSON(raw),
		CreatedAt:  o.CreatedAt,
		ExpiresAt:  o.ExpiresAt,
		ResolvedAt: o.ResolvedAt,
	}, nil
}

func offerFromRow(r schema.Offer) (domain.Offer, error) {
	var history []domain.OfferHistoryEntry
	if len(r.History) > 0 {
		if err := json.Unmarshal(r.History, &history); err != nil {
			return domain.Offer{}, fmt.Errorf("failed to unmarshal offer history: %w", err)
		}
	}
	return domain.Offer{
		ID:         r.ID,
		ParcelID:   r.ParcelID,
		FromID:     r.FromID,
		ToID:       r.ToID,
		Amount:     r.Amount,
		Status:     domain.OfferStatus(r.Status),
		Reason:     domain.OfferReason(r.Reason),
		Note:       r.Note,
		CreatedAt:  r.CreatedAt,
		ExpiresAt:  r.ExpiresAt,
		ResolvedAt: r.ResolvedAt,
		History:    history,
	}, nil
}

func eventToRow(e domain.Event) schema.Event {
	return schema.Event{
		ID:       e.ID,
		Type:     string(e.Type),
		Note:     e.Note,
		Actor:    e.Actor,
		EntityID: e.EntityID,
		Amount:   e.Amount,
		At:       e.At,
	}
}

func eventFromRow(r schema.Event) domain.Event {
	t := domain.EventType(r.Type)
	return domain.Event{
		ID:       r.ID,
		Type:     t,
		Title:    t.Title(),
		Note:     r.Note,
		Actor:    r.Actor,
		EntityID: r.EntityID,
		Amount:   r.Amount,
		At:       r.At,
	}
}

func encodeTick(t *domain.TickSummary) (string, error) {
	raw, err := json.Marshal(t)
	if err != nil {
		return "", fmt.Errorf("failed to marshal tick summary: %w", err)
	}
	return string(raw), nil
}

func decodeTick(value string) (*domain.TickSummary, error) {
	var t domain.TickSummary
	if err := json.Unmarshal([]byte(value), &t); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tick summary: %w", err)
	}
	return &t, nil
}

func encodeSettings(v *domain.SettingsVersion) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal settings version: %w", err)
	}
	return string(raw), nil
}

func decodeSettings(value string) (domain.SettingsVersion, error) {
	var v domain.SettingsVersion
	if err := json.Unmarshal([]byte(value), &v); err != nil {
		return domain.SettingsVersion{}, fmt.Errorf("failed to unmarshal settings version: %w", err)
	}
	return v, nil
}
