// Package farm implements a turn-based farming game on an 8x8 grid.
//
// The Farm type owns all mutable state (grid, player, counters) and every
// operation runs to completion on the caller's goroutine. Randomness comes
// from an injected Rand so a seeded source replays a game exactly.
package farm

import "github.com/vovakirdan/tui-farm/internal/core"

// Farm is the explicit state object of one game.
type Farm struct {
	grid   Grid
	player Player
	rules  Rules
	rng    Rand

	turn   int
	sown   int
	reaped int
}

// New creates a farm with a freshly seeded grid and the player at (0, 0).
func New(rng Rand, rules Rules) *Farm {
	return &Farm{
		grid:   NewGrid(rng, rules),
		player: Player{Color: rules.PlayerColor},
		rules:  rules,
		rng:    rng,
	}
}

// Grid returns the board. Callers outside the package treat it as read-only.
func (f *Farm) Grid() *Grid {
	return &f.grid
}

// Player returns a copy of the player token.
func (f *Farm) Player() Player {
	return f.player
}

// MovePlayer moves the player one cell, clamped to the board.
func (f *Farm) MovePlayer(dir core.Direction) bool {
	return f.player.Move(dir)
}

// Rules returns the rules the farm plays by.
func (f *Farm) Rules() Rules {
	return f.rules
}

// Turn returns the number of turns advanced so far.
func (f *Farm) Turn() int {
	return f.turn
}

// Sown returns the number of plants sown so far.
func (f *Farm) Sown() int {
	return f.sown
}

// Reaped returns the number of plants reaped so far.
func (f *Farm) Reaped() int {
	return f.reaped
}
