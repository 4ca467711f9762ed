package world

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/feral-file/wt-exchange/internal/adapter"
	"github.com/feral-file/wt-exchange/internal/domain"
)

// StreetSpec is a street entry of the world file
type StreetSpec struct {
	ID    string          `yaml:"id"`
	Name  string          `yaml:"name"`
	Price int64           `yaml:"price"`
	Slots int             `yaml:"slots"`
	Path  []domain.LatLng `yaml:"path"`
}

// World is the seed data loaded at startup
type World struct {
	Version       int                   `yaml:"version"`
	BuildingTypes []domain.BuildingType `yaml:"building_types"`
	Streets       []StreetSpec          `yaml:"streets"`
}

// StreetModels converts the street specs to unclaimed streets
func (w *World) StreetModels() []domain.Street {
	streets := make([]domain.Street, len(w.Streets))
	for i, s := range w.Streets {
		streets[i] = domain.Street{
			ID:    s.ID,
			Name:  s.Name,
			Price: s.Price,
			Slots: s.Slots,
			Path:  append([]domain.LatLng(nil), s.Path...),
		}
	}
	return streets
}

// Loader loads the world seed file
//
//go:generate mockgen -source=loader.go -destination=../mocks/world_loader.go -package=mocks -mock_names=Loader=MockWorldLoader
type Loader interface {
	// Load reads and validates a world file
	Load(filePath string) (*World, error)
}

type loader struct {
	fs adapter.FileSystem
}

// NewLoader creates a new world loader
func NewLoader(fs adapter.FileSystem) Loader {
	return &loader{fs: fs}
}

func (l *loader) Load(filePath string) (*World, error) {
	data, err := l.fs.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read world file: %w", err)
	}

	var w World
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to parse world YAML: %w", err)
	}

	if err := w.validate(); err != nil {
		return nil, fmt.Errorf("invalid world file: %w", err)
	}

	return &w, nil
}

func (w *World) validate() error {
	if len(w.BuildingTypes) == 0 {
		return fmt.Errorf("no building types")
	}

	seen := make(map[string]bool, len(w.Streets))
	for i, s := range w.Streets {
		id := strings.TrimSpace(s.ID)
		if id == "" {
			return fmt.Errorf("street %d has no id", i)
		}
		if seen[id] {
			return fmt.Errorf("duplicate street %q", id)
		}
		seen[id] = true
		if len(s.Path) == 0 {
			return fmt.Errorf("street %q has an empty path", id)
		}
		for _, p := range s.Path {
			if !p.Valid() {
				return fmt.Errorf("street %q: %w", id, domain.ErrInvalidLocation)
			}
		}
		if s.Price < 0 || s.Slots < 0 {
			return fmt.Errorf("street %q: %w", id, domain.ErrInvalidAmount)
		}
	}

	return nil
}
