package gamedata

import (
	"errors"
	"math/rand"
)

// PropRegistry holds loaded prop definitions. A prop's Type is its index here.
type PropRegistry struct {
	props []PropDef
}

// NewPropRegistry creates a registry from loaded prop definitions.
func NewPropRegistry(props []PropDef) *PropRegistry {
	return &PropRegistry{props: props}
}

// LoadPropRegistry loads and creates a registry from the embedded props.json.
func LoadPropRegistry() (*PropRegistry, error) {
	props, err := LoadProps()
	if err != nil {
		return nil, err
	}
	if len(props) == 0 {
		return nil, errors.New("no props loaded from props.json")
	}
	return NewPropRegistry(props), nil
}

// MustLoadPropRegistry loads a registry, panicking on error.
func MustLoadPropRegistry() *PropRegistry {
	registry, err := LoadPropRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// RandomType returns a uniformly chosen prop type index.
func (r *PropRegistry) RandomType(rng *rand.Rand) int {
	if len(r.props) == 0 {
		return 0
	}
	return int(rng.Float64() * float64(len(r.props)))
}

// Get returns the definition for a prop type, or nil if out of range.
func (r *PropRegistry) Get(propType int) *PropDef {
	if propType < 0 || propType >= len(r.props) {
		return nil
	}
	return &r.props[propType]
}

// Count returns the number of prop types in the registry.
func (r *PropRegistry) Count() int {
	return len(r.props)
}

// =============================================================================
// MobRegistry
// =============================================================================

// MobRegistry holds loaded mob definitions and provides lookup utilities.
type MobRegistry struct {
	byID   map[string]*MobDef
	byName map[string]*MobDef
	all    []MobDef
}

// NewMobRegistry creates a registry from loaded mob definitions.
func NewMobRegistry(mobs []MobDef) *MobRegistry {
	registry := &MobRegistry{
		byID:   make(map[string]*MobDef),
		byName: make(map[string]*MobDef),
		all:    mobs,
	}
	for i := range mobs {
		registry.byID[mobs[i].ID] = &mobs[i]
		registry.byName[mobs[i].Name] = &mobs[i]
	}
	return registry
}

// LoadMobRegistry loads and creates a registry from the embedded mobs.json.
func LoadMobRegistry() (*MobRegistry, error) {
	mobs, err := LoadMobs()
	if err != nil {
		return nil, err
	}
	if len(mobs) == 0 {
		return nil, errors.New("no mobs loaded from mobs.json")
	}
	return NewMobRegistry(mobs), nil
}

// MustLoadMobRegistry loads a registry, panicking on error.
func MustLoadMobRegistry() *MobRegistry {
	registry, err := LoadMobRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the mob definition with the given ID, or nil if not found.
func (r *MobRegistry) GetByID(id string) *MobDef {
	return r.byID[id]
}

// GetByName returns the mob definition with the given display name, or nil.
func (r *MobRegistry) GetByName(name string) *MobDef {
	return r.byName[name]
}

// Count returns the number of mob types in the registry.
func (r *MobRegistry) Count() int {
	return len(r.all)
}
