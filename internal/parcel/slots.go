package parcel

import (
	"math"
	"time"

	"github.com/feral-file/wt-exchange/internal/domain"
	"github.com/feral-file/wt-exchange/internal/types"
)

type segment struct {
	from   domain.LatLng
	to     domain.LatLng
	length float64
}

// PlanSlots lays out street.Slots unowned parcels evenly by distance along the
// street path, the first on the first point and the last on the last point.
// A path with one point, or with no length, gets a single parcel on its first point.
func PlanSlots(s domain.Street, at time.Time) []domain.Parcel {
	if len(s.Path) == 0 {
		return nil
	}
	n := max(1, s.Slots)

	var segments []segment
	var total float64
	for i := 0; i+1 < len(s.Path); i++ {
		a, b := s.Path[i], s.Path[i+1]
		d := math.Hypot(b.Lat-a.Lat, b.Lng-a.Lng)
		if d <= 0 {
			continue
		}
		segments = append(segments, segment{from: a, to: b, length: d})
		total += d
	}

	if n == 1 || len(segments) == 0 {
		return []domain.Parcel{newSlot(s, s.Path[0], at)}
	}

	slots := make([]domain.Parcel, 0, n)
	for i := range n {
		target := float64(i) / float64(n-1) * total
		slots = append(slots, newSlot(s, pointAt(segments, target), at))
	}
	return slots
}

func pointAt(segments []segment, target float64) domain.LatLng {
	var acc float64
	for _, seg := range segments {
		if acc+seg.length >= target {
			local := (target - acc) / seg.length
			return domain.LatLng{
				Lat: seg.from.Lat + (seg.to.Lat-seg.from.Lat)*local,
				Lng: seg.from.Lng + (seg.to.Lng-seg.from.Lng)*local,
			}
		}
		acc += seg.length
	}
	// float rounding can leave the last target just past the end
	return segments[len(segments)-1].to
}

func newSlot(s domain.Street, at domain.LatLng, createdAt time.Time) domain.Parcel {
	return domain.Parcel{
		ID:        types.GenerateUUID(),
		Location:  at,
		Level:     domain.MIN_PARCEL_LEVEL,
		Color:     domain.DEFAULT_PARCEL_COLOR,
		StreetID:  types.StringPtr(s.ID),
		CreatedAt: createdAt,
	}
}
