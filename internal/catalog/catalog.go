package catalog

import (
	"fmt"
	"strings"

	"github.com/feral-file/wt-exchange/internal/domain"
)

const (
	// MIN_PRICE is the floor of a derived building price
	MIN_PRICE int64 = 100
	// INCOME_PRICE_MULTIPLIER converts base income into a derived price
	INCOME_PRICE_MULTIPLIER int64 = 10
)

// Catalog is the read-only table of building types and the single pricing authority
//
//go:generate mockgen -source=catalog.go -destination=../mocks/catalog.go -package=mocks -mock_names=Catalog=MockCatalog
type Catalog interface {
	// Resolve returns the building type for key
	Resolve(key string) (domain.BuildingType, error)

	// List returns every building type in load order
	List() []domain.BuildingType

	// Price returns the purchase price of the building type for key
	Price(key string) (int64, error)

	// UpgradePrice returns the price of raising a parcel of type key from level to level+1
	UpgradePrice(key string, level int) (int64, error)

	// Income returns the per-tick income of a parcel of type key at level
	Income(key string, level int) (int64, error)
}

type catalog struct {
	types []domain.BuildingType
	index map[string]int
}

// New builds a catalog. Keys are trimmed and must be unique.
func New(types []domain.BuildingType) (Catalog, error) {
	c := &catalog{
		types: make([]domain.BuildingType, 0, len(types)),
		index: make(map[string]int, len(types)),
	}

	for _, bt := range types {
		bt.Key = strings.TrimSpace(bt.Key)
		if bt.Key == "" {
			return nil, fmt.Errorf("building type key is empty")
		}
		if _, ok := c.index[bt.Key]; ok {
			return nil, fmt.Errorf("duplicate building type: %s", bt.Key)
		}
		if bt.BaseIncome < 0 || bt.BasePrice < 0 {
			return nil, fmt.Errorf("building type %s has a negative income or price", bt.Key)
		}
		if bt.Name == "" {
			bt.Name = bt.Key
		}
		c.index[bt.Key] = len(c.types)
		c.types = append(c.types, bt)
	}

	return c, nil
}

// Price derives the canonical price of a building type: the explicit price
// when present, otherwise max(MIN_PRICE, baseIncome * INCOME_PRICE_MULTIPLIER).
func Price(bt domain.BuildingType) int64 {
	if bt.BasePrice > 0 {
		return bt.BasePrice
	}
	return max(MIN_PRICE, bt.BaseIncome*INCOME_PRICE_MULTIPLIER)
}

func (c *catalog) Resolve(key string) (domain.BuildingType, error) {
	i, ok := c.index[key]
	if !ok {
		return domain.BuildingType{}, domain.ErrUnknownType
	}
	return c.types[i], nil
}

func (c *catalog) List() []domain.BuildingType {
	out := make([]domain.BuildingType, len(c.types))
	copy(out, c.types)
	return out
}

func (c *catalog) Price(key string) (int64, error) {
	bt, err := c.Resolve(key)
	if err != nil {
		return 0, err
	}
	return Price(bt), nil
}

func (c *catalog) UpgradePrice(key string, level int) (int64, error) {
	if level < domain.MIN_PARCEL_LEVEL || level > domain.MAX_PARCEL_LEVEL {
		return 0, domain.ErrInvalidLevel
	}
	price, err := c.Price(key)
	if err != nil {
		return 0, err
	}
	return price * int64(level+1), nil
}

func (c *catalog) Income(key string, level int) (int64, error) {
	bt, err := c.Resolve(key)
	if err != nil {
		return 0, err
	}
	return bt.BaseIncome * int64(level), nil
}
