package preset

import (
	"errors"

	"github.com/samdwyer/dungeonforge/internal/gen"
)

// Def is one floor generation profile as stored in presets.json.
type Def struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	Width            int     `json:"width"`
	Height           int     `json:"height"`
	MinPartitionSize int     `json:"minPartitionSize"`
	MaxPartitionSize int     `json:"maxPartitionSize"`
	MaxDepth         int     `json:"maxDepth"`
	StopChance       float64 `json:"stopChance"`
	RandomAxisChance float64 `json:"randomAxisChance"`
	MinRoomSize      int     `json:"minRoomSize"`
	MinPadding       int     `json:"minPadding"`
	MaxPadding       int     `json:"maxPadding"`
	AllPairs         bool    `json:"allPairs"`
	BossChance       float64 `json:"bossChance"`
	ShopChance       float64 `json:"shopChance"`
	TreasureChance   float64 `json:"treasureChance"`
	MaxShops         int     `json:"maxShops"`
	MaxTreasures     int     `json:"maxTreasures"`
}

// Config converts the preset into a generation config for the given floor
// level. Floor bounds grow with the floor level; that scaling is policy owned
// here, outside the generation core.
func (d *Def) Config(floorLevel int) gen.Config {
	cfg := gen.Config{
		Width:            d.Width + (floorLevel-1)*4,
		Height:           d.Height + (floorLevel-1)*2,
		MinPartitionSize: d.MinPartitionSize,
		MaxPartitionSize: d.MaxPartitionSize,
		MaxDepth:         d.MaxDepth,
		StopChance:       d.StopChance,
		RandomAxisChance: d.RandomAxisChance,
		MinRoomSize:      d.MinRoomSize,
		MinPadding:       d.MinPadding,
		MaxPadding:       d.MaxPadding,
		Adjacency:        gen.AdjacencySiblings,
		FloorLevel:       floorLevel,
		BossChance:       d.BossChance,
		ShopChance:       d.ShopChance,
		TreasureChance:   d.TreasureChance,
		MaxShops:         d.MaxShops,
		MaxTreasures:     d.MaxTreasures,
	}
	if d.AllPairs {
		cfg.Adjacency = gen.AdjacencyAllPairs
	}
	return cfg
}

// Registry holds loaded presets and provides lookup utilities.
type Registry struct {
	presets []Def
	byID    map[string]*Def
}

// NewRegistry creates a registry from loaded preset definitions.
func NewRegistry(presets []Def) *Registry {
	registry := &Registry{
		presets: presets,
		byID:    make(map[string]*Def, len(presets)),
	}
	for i := range presets {
		registry.byID[presets[i].ID] = &presets[i]
	}
	return registry
}

// LoadRegistry loads and creates a registry from the embedded presets.json.
func LoadRegistry() (*Registry, error) {
	presets, err := load[[]Def]("presets.json")
	if err != nil {
		return nil, err
	}
	if len(presets) == 0 {
		return nil, errors.New("no presets loaded from presets.json")
	}
	return NewRegistry(presets), nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the preset with the given ID, or nil if not found.
func (r *Registry) GetByID(id string) *Def {
	return r.byID[id]
}

// All returns all preset definitions.
func (r *Registry) All() []Def {
	return r.presets
}

// Count returns the number of presets in the registry.
func (r *Registry) Count() int {
	return len(r.presets)
}
