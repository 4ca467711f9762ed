package settings

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/wt-exchange/internal/adapter"
	"github.com/feral-file/wt-exchange/internal/domain"
	"github.com/feral-file/wt-exchange/internal/logger"
	"github.com/feral-file/wt-exchange/internal/messaging"
	"github.com/feral-file/wt-exchange/internal/store"
)

// Config holds the settings policy
type Config struct {
	// SigningSecret keys the HMAC of every version. Without it writes are refused.
	SigningSecret string
	// DefaultAutoTickMin is the tick cadence reported before any version exists
	DefaultAutoTickMin int
	// DefaultSeasonLength is the length of the season reported before any version exists
	DefaultSeasonLength time.Duration
}

// Store keeps the signed, versioned economy settings.
//
// Versions are append-only: a rollback commits a copy of an earlier version as
// a new one. Every version carries an HMAC over its canonical JSON and is
// verified when it is loaded or rolled back to.
//
//go:generate mockgen -source=store.go -destination=../mocks/settings_store.go -package=mocks -mock_names=Store=MockSettingsStore
type Store interface {
	// Current returns the newest version, or the unsigned defaults as version 0
	Current() domain.SettingsVersion

	// Versions returns every version oldest first
	Versions() []domain.SettingsVersion

	// Update validates next and commits it as a new signed version
	Update(ctx context.Context, next domain.Settings) (domain.SettingsVersion, error)

	// Rollback verifies an earlier version and commits a copy of it as a new version
	Rollback(ctx context.Context, version int) (domain.SettingsVersion, error)

	// Restore verifies and loads the persisted versions
	Restore(versions []domain.SettingsVersion) error
}

type settingsStore struct {
	secret []byte
	store  store.Store
	json   adapter.JSON
	jcs    adapter.JCS
	clock  adapter.Clock

	// the settings are one entity; writeMu orders its versions
	writeMu  sync.Mutex
	mu       sync.RWMutex
	defaults domain.SettingsVersion
	versions []domain.SettingsVersion
}

// NewStore creates a settings store. The defaults open a season at the current time.
func NewStore(cfg Config, s store.Store, jsonAdapter adapter.JSON, jcsAdapter adapter.JCS, clock adapter.Clock) Store {
	if cfg.DefaultSeasonLength <= 0 || cfg.DefaultSeasonLength > domain.MAX_SEASON_LENGTH {
		cfg.DefaultSeasonLength = domain.DEFAULT_SEASON_LENGTH
	}
	if cfg.DefaultAutoTickMin == 0 {
		cfg.DefaultAutoTickMin = int(domain.DEFAULT_TICK_INTERVAL / time.Minute)
	}
	cfg.DefaultAutoTickMin = min(max(cfg.DefaultAutoTickMin, domain.MIN_AUTO_TICK_MIN), domain.MAX_AUTO_TICK_MIN)

	now := clock.Now().UTC()
	return &settingsStore{
		secret: []byte(cfg.SigningSecret),
		store:  s,
		json:   jsonAdapter,
		jcs:    jcsAdapter,
		clock:  clock,
		defaults: domain.SettingsVersion{
			Settings: domain.Settings{
				SeasonStart: now,
				SeasonEnd:   now.Add(cfg.DefaultSeasonLength),
				AutoTickMin: cfg.DefaultAutoTickMin,
			},
			CreatedAt: now,
		},
	}
}

func (s *settingsStore) Current() domain.SettingsVersion {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.versions) == 0 {
		return s.defaults
	}
	return s.versions[len(s.versions)-1]
}

func (s *settingsStore) Versions() []domain.SettingsVersion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.SettingsVersion{}, s.versions...)
}

func (s *settingsStore) Update(ctx context.Context, next domain.Settings) (domain.SettingsVersion, error) {
	next.SeasonStart = next.SeasonStart.UTC()
	next.SeasonEnd = next.SeasonEnd.UTC()
	if err := next.Validate(); err != nil {
		return domain.SettingsVersion{}, err
	}
	return s.commit(ctx, next, nil)
}

func (s *settingsStore) Rollback(ctx context.Context, version int) (domain.SettingsVersion, error) {
	if len(s.secret) == 0 {
		return domain.SettingsVersion{}, domain.ErrSettingsLocked
	}

	target, ok := s.find(version)
	if !ok {
		return domain.SettingsVersion{}, domain.ErrSettingsVersionNotFound
	}
	if err := s.verify(target); err != nil {
		return domain.SettingsVersion{}, err
	}

	return s.commit(ctx, target.Settings, &target.Version)
}

func (s *settingsStore) find(version int) (domain.SettingsVersion, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := sort.Search(len(s.versions), func(i int) bool { return s.versions[i].Version >= version })
	if i < len(s.versions) && s.versions[i].Version == version {
		return s.versions[i], true
	}
	return domain.SettingsVersion{}, false
}

func (s *settingsStore) commit(ctx context.Context, next domain.Settings, restoredFrom *int) (domain.SettingsVersion, error) {
	if len(s.secret) == 0 {
		return domain.SettingsVersion{}, domain.ErrSettingsLocked
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	v := domain.SettingsVersion{
		Version:      s.Current().Version + 1,
		Settings:     next,
		CreatedAt:    s.clock.Now().UTC(),
		RestoredFrom: restoredFrom,
	}
	signature, err := s.sign(v)
	if err != nil {
		return domain.SettingsVersion{}, err
	}
	v.Signature = signature

	if err := s.store.Commit(ctx, store.ChangeSet{Settings: &v}); err != nil {
		return domain.SettingsVersion{}, fmt.Errorf("failed to commit settings: %w", err)
	}

	s.mu.Lock()
	s.versions = append(s.versions, v)
	s.mu.Unlock()

	logger.InfoCtx(ctx, "Committed settings",
		zap.Int("version", v.Version),
		zap.Time("season_start", next.SeasonStart),
		zap.Time("season_end", next.SeasonEnd),
		zap.Int("auto_tick_min", next.AutoTickMin),
	)

	return v, nil
}

func (s *settingsStore) Restore(versions []domain.SettingsVersion) error {
	if len(versions) > 0 && len(s.secret) == 0 {
		return fmt.Errorf("cannot verify %d stored settings versions: %w", len(versions), domain.ErrSettingsLocked)
	}

	loaded := append([]domain.SettingsVersion{}, versions...)
	sort.Slice(loaded, func(i, j int) bool { return loaded[i].Version < loaded[j].Version })
	for _, v := range loaded {
		if err := s.verify(v); err != nil {
			return fmt.Errorf("settings version %d: %w", v.Version, err)
		}
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.versions = loaded
	return nil
}

// canonical returns the JCS form of v without its signature
func (s *settingsStore) canonical(v domain.SettingsVersion) ([]byte, error) {
	v.Signature = ""
	raw, err := s.json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}
	payload, err := s.jcs.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize settings: %w", err)
	}
	return payload, nil
}

func (s *settingsStore) sign(v domain.SettingsVersion) (string, error) {
	payload, err := s.canonical(v)
	if err != nil {
		return "", err
	}
	return messaging.Signature(s.secret, v.CreatedAt.Unix(), store.SettingsKey(v.Version), payload), nil
}

func (s *settingsStore) verify(v domain.SettingsVersion) error {
	payload, err := s.canonical(v)
	if err != nil {
		return err
	}
	if !messaging.Verify(s.secret, v.CreatedAt.Unix(), store.SettingsKey(v.Version), payload, v.Signature) {
		return domain.ErrSettingsSignature
	}
	return nil
}
