// Package registry provides a global catalog of match modes.
// Modes register themselves in init() functions, allowing the platform
// and the CLI to discover and instantiate matches without hardcoded
// dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/emily-flambe/pong/internal/config"
	"github.com/emily-flambe/pong/internal/sim"
)

// ModeInfo contains metadata about a registered mode.
type ModeInfo struct {
	ID          string
	Title       string
	Description string
}

// Options adjust how a match is built. The zero value means default
// configuration, normal difficulty, and a zero seed.
type Options struct {
	// ConfigPath overrides the config search order with an explicit file.
	ConfigPath string

	// Preset is the difficulty adjustment applied on top of the loaded
	// config. The empty preset leaves the config untouched.
	Preset config.DifficultyPreset

	// Seed drives all in-match randomness. The same seed replays the
	// same match.
	Seed int64
}

// Factory builds a fresh match for one mode.
type Factory func(opts Options) (*sim.Match, error)

type entry struct {
	info    ModeInfo
	factory Factory
}

var (
	mu    sync.RWMutex
	modes = make(map[string]entry)
)

// Register adds a mode factory to the catalog.
// Typically called from an init() function.
// Panics if a mode with the same ID is already registered.
func Register(info ModeInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := modes[info.ID]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", info.ID))
	}

	modes[info.ID] = entry{info: info, factory: f}
}

// List returns information about all registered modes, sorted by ID.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ModeInfo, 0, len(modes))
	for _, e := range modes {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Info returns the metadata for a registered mode.
func Info(id string) (ModeInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := modes[id]
	return e.info, ok
}

// Create builds a new match for the mode with the given ID.
// Returns an error if the mode ID is not registered.
func Create(id string, opts Options) (*sim.Match, error) {
	mu.RLock()
	e, ok := modes[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}

	return e.factory(opts)
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := modes[id]
	return ok
}
