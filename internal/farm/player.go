package farm

import "github.com/vovakirdan/tui-farm/internal/core"

// Player is the token that walks the board.
type Player struct {
	Pos   core.Point
	Color core.Color
}

// Move steps one cell in dir. Movement stops at the edges instead of
// wrapping. Returns whether the position changed.
func (p *Player) Move(dir core.Direction) bool {
	d := dir.Delta()
	next := core.Point{
		X: core.Clamp(p.Pos.X+d.X, 0, GridSize-1),
		Y: core.Clamp(p.Pos.Y+d.Y, 0, GridSize-1),
	}
	if next == p.Pos {
		return false
	}
	p.Pos = next
	return true
}
