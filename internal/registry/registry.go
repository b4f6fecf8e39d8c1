// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-breakout/internal/canvas"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Game is the interface a game simulation exposes to hosts.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input sources, frame scheduling and the drawing surface.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "breakout").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// KeyDown and KeyUp receive symbolic key names ("ArrowLeft", "a", ...).
	// Unknown keys are ignored.
	KeyDown(key string)
	KeyUp(key string)

	// Frame renders the current state to dst and then advances one frame.
	Frame(dst canvas.Surface)

	// Draw renders the current state without advancing it.
	Draw(dst canvas.Surface)

	// State returns the current game state.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game. The observer receives score and lives
// updates, starting with the initial values.
type Factory func(rt core.RuntimeConfig, obs core.Observer) (Game, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the factory registered under id.
func Lookup(id string) (Factory, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f, nil
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered or the factory fails.
func Create(id string, rt core.RuntimeConfig, obs core.Observer) (Game, error) {
	f, err := Lookup(id)
	if err != nil {
		return nil, err
	}

	g, err := f(rt, obs)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return g, nil
}
