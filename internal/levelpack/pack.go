// Package levelpack provides a global registry of named level packs.
// Builtin packs register themselves in init() functions; additional packs
// can be loaded from YAML files on disk.
package levelpack

import (
	"fmt"
	"sort"
	"sync"
)

// Pack is a named, ordered collection of level layouts. Each layout is a
// grid of rows built from the brick symbols '@' (normal), '#' (durable),
// '*' (indestructible), and blanks.
type Pack struct {
	ID     string
	Title  string
	Levels [][]string
}

// Info contains metadata about a registered pack.
type Info struct {
	ID     string
	Title  string
	Levels int
}

var (
	packs = make(map[string]Pack)
	mu    sync.RWMutex
)

// Register adds a pack to the registry. Typically called from an init()
// function. Panics if a pack with the same ID is already registered.
func Register(p Pack) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := packs[p.ID]; exists {
		panic(fmt.Sprintf("levelpack: pack %q already registered", p.ID))
	}

	packs[p.ID] = p
}

// List returns information about all registered packs, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(packs))
	for _, p := range packs {
		result = append(result, Info{
			ID:     p.ID,
			Title:  p.Title,
			Levels: len(p.Levels),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a registered pack by its ID.
// Returns an error if the pack ID is not registered.
func Get(id string) (Pack, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := packs[id]
	if !ok {
		return Pack{}, fmt.Errorf("levelpack: unknown pack %q", id)
	}

	return p, nil
}

// Exists checks if a pack with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := packs[id]
	return ok
}

// Validate checks that a pack is usable: it must carry an ID, at least one
// level, and every row may contain only brick symbols and blanks.
func Validate(p Pack) error {
	if p.ID == "" {
		return fmt.Errorf("levelpack: pack has no id")
	}
	if len(p.Levels) == 0 {
		return fmt.Errorf("levelpack: pack %q has no levels", p.ID)
	}
	for li, level := range p.Levels {
		for ri, row := range level {
			for _, ch := range row {
				switch ch {
				case '@', '#', '*', ' ':
				default:
					return fmt.Errorf("levelpack: pack %q level %d row %d: unknown symbol %q",
						p.ID, li+1, ri+1, ch)
				}
			}
		}
	}
	return nil
}
