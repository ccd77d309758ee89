package farm

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-farm/internal/core"
)

// GridSize is the board dimension.
const GridSize = 8

// ErrOutOfBounds is returned for grid access outside the board.
var ErrOutOfBounds = errors.New("farm: position out of bounds")

// Cell is one tile of the board.
type Cell struct {
	Sun   int    // 0 or 1, re-rolled every turn
	Water int    // accumulates with rain, consumed by growth
	Plant *Plant // nil when empty
}

// Grid is the 8x8 board, indexed [y][x].
type Grid [GridSize][GridSize]Cell

// NewGrid seeds a fresh board: each cell independently gets sun and one
// unit of water with the configured chances, and no plant.
func NewGrid(rng Rand, rules Rules) Grid {
	var g Grid
	for y := range GridSize {
		for x := range GridSize {
			c := &g[y][x]
			if chance(rng, rules.InitialSunChance) {
				c.Sun = 1
			}
			if chance(rng, rules.InitialWaterChance) {
				c.Water = 1
			}
		}
	}
	return g
}

var board = core.NewRect(0, 0, GridSize, GridSize)

// InBounds reports whether p lies on the board.
func InBounds(p core.Point) bool {
	return board.Contains(p.X, p.Y)
}

// At returns the cell at (x, y).
func (g *Grid) At(x, y int) (*Cell, error) {
	if !InBounds(core.Point{X: x, Y: y}) {
		return nil, fmt.Errorf("cell (%d, %d): %w", x, y, ErrOutOfBounds)
	}
	return &g[y][x], nil
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(p core.Point, c *Cell)) {
	for y := range GridSize {
		for x := range GridSize {
			fn(core.Point{X: x, Y: y}, &g[y][x])
		}
	}
}

