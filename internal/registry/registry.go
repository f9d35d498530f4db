// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/eduarcade/internal/core"
)

// Game is the interface every learning game implements.
// Games contain pure rule logic with no UI dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, rendering and navigation.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "mathdrill").
	// Used for CLI commands and result storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Math Master").
	Title() string

	// Reset loads configuration and prepares a session that has not started.
	// The RuntimeConfig provides screen dimensions, tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances pending delays by one fixed tick and applies the input.
	// Input is abstracted to platform-level actions (Confirm, Back, etc.).
	// The result carries the game state and an optional navigation request.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, status).
	State() core.GameState

	// Outcome reports the result of the current round. It is only
	// meaningful once State().GameOver() is true.
	Outcome() core.Outcome
}

// ScoreKeeper is implemented by games that can say whether they award
// points. Games that do not implement it are treated as scored.
type ScoreKeeper interface {
	KeepsScore() bool
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID     string
	Title  string
	Scored bool // False for games ranked by attempts alone
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Read metadata from a temporary instance
	g := f()
	info := GameInfo{ID: id, Title: g.Title(), Scored: true}
	if sk, ok := g.(ScoreKeeper); ok {
		info.Scored = sk.KeepsScore()
	}
	infos[id] = info
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Info returns the metadata of a registered game.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[id]
	return info, ok
}

// TitleOf returns the display title for id, or id itself when unknown.
func TitleOf(id string) string {
	if info, ok := Info(id); ok {
		return info.Title
	}
	return id
}
