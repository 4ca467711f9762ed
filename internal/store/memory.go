package store

import (
	"context"
	"maps"
	"sort"
	"sync"

	"github.com/feral-file/wt-exchange/internal/domain"
)

// memoryStore keeps everything in process memory. It backs unit tests and
// the "memory" database driver, where durability is not needed.
type memoryStore struct {
	mu       sync.RWMutex
	parcels  map[string]domain.Parcel
	streets  map[string]domain.Street
	offers   map[string]domain.Offer
	balances map[string]int64
	lastTick *domain.TickSummary
	settings []domain.SettingsVersion
	events   []domain.Event
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() Store {
	return &memoryStore{
		parcels:  make(map[string]domain.Parcel),
		streets:  make(map[string]domain.Street),
		offers:   make(map[string]domain.Offer),
		balances: make(map[string]int64),
	}
}

func (s *memoryStore) Load(_ context.Context) (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := &Snapshot{Balances: maps.Clone(s.balances)}
	for _, p := range s.parcels {
		snap.Parcels = append(snap.Parcels, p)
	}
	sort.Slice(snap.Parcels, func(i, j int) bool {
		if snap.Parcels[i].CreatedAt.Equal(snap.Parcels[j].CreatedAt) {
			return snap.Parcels[i].ID < snap.Parcels[j].ID
		}
		return snap.Parcels[i].CreatedAt.Before(snap.Parcels[j].CreatedAt)
	})
	for _, st := range s.streets {
		snap.Streets = append(snap.Streets, st.Clone())
	}
	sort.Slice(snap.Streets, func(i, j int) bool { return snap.Streets[i].ID < snap.Streets[j].ID })
	for _, o := range s.offers {
		snap.Offers = append(snap.Offers, o.Clone())
	}
	sort.Slice(snap.Offers, func(i, j int) bool {
		if snap.Offers[i].CreatedAt.Equal(snap.Offers[j].CreatedAt) {
			return snap.Offers[i].ID < snap.Offers[j].ID
		}
		return snap.Offers[i].CreatedAt.Before(snap.Offers[j].CreatedAt)
	})
	if s.lastTick != nil {
		t := cloneTick(*s.lastTick)
		snap.LastTick = &t
	}
	snap.Settings = append(snap.Settings, s.settings...)

	return snap, nil
}

func (s *memoryStore) Commit(ctx context.Context, cs ChangeSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if cs.Empty() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, st := range cs.Streets {
		s.streets[st.ID] = st.Clone()
	}
	for _, p := range cs.Parcels {
		s.parcels[p.ID] = p
	}
	for _, id := range cs.DeletedParcels {
		delete(s.parcels, id)
	}
	for _, o := range cs.Offers {
		s.offers[o.ID] = o.Clone()
	}
	maps.Copy(s.balances, cs.Balances)
	if cs.Tick != nil {
		t := cloneTick(*cs.Tick)
		s.lastTick = &t
	}
	if cs.Settings != nil {
		s.putSettings(*cs.Settings)
	}

	return nil
}

func (s *memoryStore) AppendEvent(_ context.Context, event domain.Event, keep int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.events {
		if e.ID == event.ID {
			return nil
		}
	}
	s.events = append(s.events, event)
	sort.SliceStable(s.events, func(i, j int) bool {
		if s.events[i].At.Equal(s.events[j].At) {
			return s.events[i].ID > s.events[j].ID
		}
		return s.events[i].At.After(s.events[j].At)
	})
	if keep > 0 && len(s.events) > keep {
		s.events = s.events[:keep]
	}

	return nil
}

func (s *memoryStore) ListEvents(_ context.Context, offset, limit int) ([]domain.Event, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.events)
	if offset >= total {
		return []domain.Event{}, total, nil
	}
	end := min(offset+limit, total)

	page := make([]domain.Event, end-offset)
	copy(page, s.events[offset:end])
	for i := range page {
		page[i].Title = page[i].Type.Title()
	}

	return page, total, nil
}

func (s *memoryStore) Close() error {
	return nil
}

// putSettings replaces a version with the same number or inserts it in order
func (s *memoryStore) putSettings(v domain.SettingsVersion) {
	i := sort.Search(len(s.settings), func(i int) bool { return s.settings[i].Version >= v.Version })
	if i < len(s.settings) && s.settings[i].Version == v.Version {
		s.settings[i] = v
		return
	}
	s.settings = append(s.settings, domain.SettingsVersion{})
	copy(s.settings[i+1:], s.settings[i:])
	s.settings[i] = v
}

func cloneTick(t domain.TickSummary) domain.TickSummary {
	t.Income = maps.Clone(t.Income)
	t.Balances = maps.Clone(t.Balances)
	return t
}
