package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/feral-file/wt-exchange/internal/domain"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS streets (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	path TEXT NOT NULL,
	owner TEXT,
	price INTEGER NOT NULL,
	slots INTEGER NOT NULL,
	claimed_at INTEGER
);

CREATE TABLE IF NOT EXISTS parcels (
	id TEXT PRIMARY KEY,
	lat REAL NOT NULL,
	lng REAL NOT NULL,
	owner TEXT,
	building_type TEXT,
	level INTEGER NOT NULL,
	color TEXT NOT NULL,
	street_id TEXT,
	last_trade_at INTEGER,
	created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS offers (
	id TEXT PRIMARY KEY,
	parcel_id TEXT NOT NULL,
	from_id TEXT NOT NULL,
	to_id TEXT NOT NULL,
	amount INTEGER NOT NULL,
	status TEXT NOT NULL,
	reason TEXT NOT NULL,
	note TEXT NOT NULL,
	history TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	expires_at INTEGER NOT NULL,
	resolved_at INTEGER
);

CREATE TABLE IF NOT EXISTS balances (
	owner TEXT PRIMARY KEY,
	amount INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS economy_events (
	id TEXT PRIMARY KEY,
	type TEXT NOT NULL,
	note TEXT NOT NULL,
	actor TEXT NOT NULL,
	entity_id TEXT NOT NULL,
	amount INTEGER NOT NULL,
	at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS key_value_store (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_parcels_owner ON parcels(owner);
CREATE INDEX IF NOT EXISTS idx_offers_parcel_status ON offers(parcel_id, status);
CREATE INDEX IF NOT EXISTS idx_economy_events_at ON economy_events(at);
`

// Times are stored as unix nanoseconds so they round-trip exactly.
type sqliteStreet struct {
	ID        string  `db:"id"`
	Name      string  `db:"name"`
	Path      string  `db:"path"`
	Owner     *string `db:"owner"`
	Price     int64   `db:"price"`
	Slots     int     `db:"slots"`
	ClaimedAt *int64  `db:"claimed_at"`
}

type sqliteParcel struct {
	ID           string  `db:"id"`
	Lat          float64 `db:"lat"`
	Lng          float64 `db:"lng"`
	Owner        *string `db:"owner"`
	BuildingType *string `db:"building_type"`
	Level        int     `db:"level"`
	Color        string  `db:"color"`
	StreetID     *string `db:"street_id"`
	LastTradeAt  *int64  `db:"last_trade_at"`
	CreatedAt    int64   `db:"created_at"`
}

type sqliteOffer struct {
	ID         string `db:"id"`
	ParcelID   string `db:"parcel_id"`
	FromID     string `db:"from_id"`
	ToID       string `db:"to_id"`
	Amount     int64  `db:"amount"`
	Status     string `db:"status"`
	Reason     string `db:"reason"`
	Note       string `db:"note"`
	History    string `db:"history"`
	CreatedAt  int64  `db:"created_at"`
	ExpiresAt  int64  `db:"expires_at"`
	ResolvedAt *int64 `db:"resolved_at"`
}

type sqliteEvent struct {
	ID       string `db:"id"`
	Type     string `db:"type"`
	Note     string `db:"note"`
	Actor    string `db:"actor"`
	EntityID string `db:"entity_id"`
	Amount   int64  `db:"amount"`
	At       int64  `db:"at"`
}

type sqliteStore struct {
	conn *sqlx.DB
}

// OpenSQLite opens or creates a SQLite database at the given path
func OpenSQLite(path string) (Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	// A single writer keeps SQLite transactions from failing with SQLITE_BUSY
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec(sqliteSchema); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to migrate sqlite schema: %w", err)
	}

	return &sqliteStore{conn: conn}, nil
}

func (s *sqliteStore) Load(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{Balances: make(map[string]int64)}

	var streets []sqliteStreet
	if err := s.conn.SelectContext(ctx, &streets, `SELECT * FROM streets ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to load streets: %w", err)
	}
	for _, r := range streets {
		var path []domain.LatLng
		if err := json.Unmarshal([]byte(r.Path), &path); err != nil {
			return nil, fmt.Errorf("failed to unmarshal street path: %w", err)
		}
		snap.Streets = append(snap.Streets, domain.Street{
			ID:        r.ID,
			Name:      r.Name,
			Path:      path,
			Owner:     r.Owner,
			Price:     r.Price,
			Slots:     r.Slots,
			ClaimedAt: fromNanosPtr(r.ClaimedAt),
		})
	}

	var parcels []sqliteParcel
	if err := s.conn.SelectContext(ctx, &parcels, `SELECT * FROM parcels ORDER BY created_at, id`); err != nil {
		return nil, fmt.Errorf("failed to load parcels: %w", err)
	}
	for _, r := range parcels {
		snap.Parcels = append(snap.Parcels, domain.Parcel{
			ID:           r.ID,
			Location:     domain.LatLng{Lat: r.Lat, Lng: r.Lng},
			Owner:        r.Owner,
			BuildingType: r.BuildingType,
			Level:        r.Level,
			Color:        r.Color,
			StreetID:     r.StreetID,
			CreatedAt:    fromNanos(r.CreatedAt),
			LastTradeAt:  fromNanosPtr(r.LastTradeAt),
		})
	}

	var offers []sqliteOffer
	if err := s.conn.SelectContext(ctx, &offers, `SELECT * FROM offers ORDER BY created_at, id`); err != nil {
		return nil, fmt.Errorf("failed to load offers: %w", err)
	}
	for _, r := range offers {
		var history []domain.OfferHistoryEntry
		if err := json.Unmarshal([]byte(r.History), &history); err != nil {
			return nil, fmt.Errorf("failed to unmarshal offer history: %w", err)
		}
		snap.Offers = append(snap.Offers, domain.Offer{
			ID:         r.ID,
			ParcelID:   r.ParcelID,
			FromID:     r.FromID,
			ToID:       r.ToID,
			Amount:     r.Amount,
			Status:     domain.OfferStatus(r.Status),
			Reason:     domain.OfferReason(r.Reason),
			Note:       r.Note,
			CreatedAt:  fromNanos(r.CreatedAt),
			ExpiresAt:  fromNanos(r.ExpiresAt),
			ResolvedAt: fromNanosPtr(r.ResolvedAt),
			History:    history,
		})
	}

	var balances []struct {
		Owner  string `db:"owner"`
		Amount int64  `db:"amount"`
	}
	if err := s.conn.SelectContext(ctx, &balances, `SELECT owner, amount FROM balances`); err != nil {
		return nil, fmt.Errorf("failed to load balances: %w", err)
	}
	for _, b := range balances {
		snap.Balances[b.Owner] = b.Amount
	}

	var value string
	err := s.conn.GetContext(ctx, &value, `SELECT value FROM key_value_store WHERE key = ?`, LAST_TICK_KEY)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to load last tick: %w", err)
	}
	if err == nil {
		snap.LastTick, err = decodeTick(value)
		if err != nil {
			return nil, err
		}
	}

	var versions []string
	if err := s.conn.SelectContext(ctx, &versions,
		`SELECT value FROM key_value_store WHERE key LIKE ? ORDER BY key`, SETTINGS_KEY_PREFIX+"%"); err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	for _, value := range versions {
		v, err := decodeSettings(value)
		if err != nil {
			return nil, err
		}
		snap.Settings = append(snap.Settings, v)
	}

	return snap, nil
}

func (s *sqliteStore) Commit(ctx context.Context, cs ChangeSet) error {
	if cs.Empty() {
		return nil
	}

	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, st := range cs.Streets {
		path := st.Path
		if path == nil {
			path = []domain.LatLng{}
		}
		raw, err := json.Marshal(path)
		if err != nil {
			return fmt.Errorf("failed to marshal street path: %w", err)
		}
		if _, err := tx.NamedExecContext(ctx, `
			INSERT INTO streets (id, name, path, owner, price, slots, claimed_at)
			VALUES (:id, :name, :path, :owner, :price, :slots, :claimed_at)
			ON CONFLICT(id) DO UPDATE SET
				name = excluded.name, path = excluded.path, owner = excluded.owner,
				price = excluded.price, slots = excluded.slots, claimed_at = excluded.claimed_at`,
			sqliteStreet{
				ID:        st.ID,
				Name:      st.Name,
				Path:      string(raw),
				Owner:     st.Owner,
				Price:     st.Price,
				Slots:     st.Slots,
				ClaimedAt: toNanosPtr(st.ClaimedAt),
			}); err != nil {
			return fmt.Errorf("failed to upsert street: %w", err)
		}
	}

	for _, p := range cs.Parcels {
		if _, err := tx.NamedExecContext(ctx, `
			INSERT INTO parcels (id, lat, lng, owner, building_type, level, color, street_id, last_trade_at, created_at)
			VALUES (:id, :lat, :lng, :owner, :building_type, :level, :color, :street_id, :last_trade_at, :created_at)
			ON CONFLICT(id) DO UPDATE SET
				owner = excluded.owner, building_type = excluded.building_type, level = excluded.level,
				color = excluded.color, last_trade_at = excluded.last_trade_at`,
			sqliteParcel{
				ID:           p.ID,
				Lat:          p.Location.Lat,
				Lng:          p.Location.Lng,
				Owner:        p.Owner,
				BuildingType: p.BuildingType,
				Level:        p.Level,
				Color:        p.Color,
				StreetID:     p.StreetID,
				LastTradeAt:  toNanosPtr(p.LastTradeAt),
				CreatedAt:    p.CreatedAt.UnixNano(),
			}); err != nil {
			return fmt.Errorf("failed to upsert parcel: %w", err)
		}
	}

	for _, id := range cs.DeletedParcels {
		if _, err := tx.ExecContext(ctx, `DELETE FROM parcels WHERE id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete parcel: %w", err)
		}
	}

	for _, o := range cs.Offers {
		history := o.History
		if history == nil {
			history = []domain.OfferHistoryEntry{}
		}
		raw, err := json.Marshal(history)
		if err != nil {
			return fmt.Errorf("failed to marshal offer history: %w", err)
		}
		if _, err := tx.NamedExecContext(ctx, `
			INSERT INTO offers (id, parcel_id, from_id, to_id, amount, status, reason, note, history, created_at, expires_at, resolved_at)
			VALUES (:id, :parcel_id, :from_id, :to_id, :amount, :status, :reason, :note, :history, :created_at, :expires_at, :resolved_at)
			ON CONFLICT(id) DO UPDATE SET
				status = excluded.status, reason = excluded.reason,
				history = excluded.history, resolved_at = excluded.resolved_at`,
			sqliteOffer{
				ID:         o.ID,
				ParcelID:   o.ParcelID,
				FromID:     o.FromID,
				ToID:       o.ToID,
				Amount:     o.Amount,
				Status:     string(o.Status),
				Reason:     string(o.Reason),
				Note:       o.Note,
				History:    string(raw),
				CreatedAt:  o.CreatedAt.UnixNano(),
				ExpiresAt:  o.ExpiresAt.UnixNano(),
				ResolvedAt: toNanosPtr(o.ResolvedAt),
			}); err != nil {
			return fmt.Errorf("failed to upsert offer: %w", err)
		}
	}

	for owner, amount := range cs.Balances {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO balances (owner, amount) VALUES (?, ?)
			ON CONFLICT(owner) DO UPDATE SET amount = excluded.amount`, owner, amount); err != nil {
			return fmt.Errorf("failed to upsert balance: %w", err)
		}
	}

	if cs.Tick != nil {
		value, err := encodeTick(cs.Tick)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO key_value_store (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`, LAST_TICK_KEY, value); err != nil {
			return fmt.Errorf("failed to save last tick: %w", err)
		}
	}

	if cs.Settings != nil {
		value, err := encodeSettings(cs.Settings)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO key_value_store (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`, SettingsKey(cs.Settings.Version), value); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (s *sqliteStore) AppendEvent(ctx context.Context, event domain.Event, keep int) error {
	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.NamedExecContext(ctx, `
		INSERT INTO economy_events (id, type, note, actor, entity_id, amount, at)
		VALUES (:id, :type, :note, :actor, :entity_id, :amount, :at)
		ON CONFLICT(id) DO NOTHING`,
		sqliteEvent{
			ID:       event.ID,
			Type:     string(event.Type),
			Note:     event.Note,
			Actor:    event.Actor,
			EntityID: event.EntityID,
			Amount:   event.Amount,
			At:       event.At.UnixNano(),
		}); err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	if keep > 0 {
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM economy_events WHERE id NOT IN (
				SELECT id FROM economy_events ORDER BY at DESC, id DESC LIMIT ?
			)`, keep); err != nil {
			return fmt.Errorf("failed to trim events: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (s *sqliteStore) ListEvents(ctx context.Context, offset, limit int) ([]domain.Event, int, error) {
	var total int
	if err := s.conn.GetContext(ctx, &total, `SELECT COUNT(*) FROM economy_events`); err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	var rows []sqliteEvent
	if err := s.conn.SelectContext(ctx, &rows,
		`SELECT * FROM economy_events ORDER BY at DESC, id DESC LIMIT ? OFFSET ?`, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}

	events := make([]domain.Event, 0, len(rows))
	for _, r := range rows {
		t := domain.EventType(r.Type)
		events = append(events, domain.Event{
			ID:       r.ID,
			Type:     t,
			Title:    t.Title(),
			Note:     r.Note,
			Actor:    r.Actor,
			EntityID: r.EntityID,
			Amount:   r.Amount,
			At:       fromNanos(r.At),
		})
	}

	return events, total, nil
}

func (s *sqliteStore) Close() error {
	return s.conn.Close()
}

func fromNanos(n int64) time.Time {
	return time.Unix(0, n).UTC()
}

func fromNanosPtr(n *int64) *time.Time {
	if n == nil {
		return nil
	}
	t := fromNanos(*n)
	return &t
}

func toNanosPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	n := t.UnixNano()
	return &n
}
