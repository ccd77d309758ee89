package farm

import "github.com/vovakirdan/tui-farm/internal/core"

// CellSnapshot is a value copy of one cell.
type CellSnapshot struct {
	Sun      int
	Water    int
	HasPlant bool
	Kind     PlantKind
	Level    int
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Turn   int
	Player core.Point
	Cells  [GridSize][GridSize]CellSnapshot
	Mature int
	Won    bool
	Sown   int
	Reaped int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	f := g.farm
	mature, won := f.CheckWin()

	s := Snapshot{
		Turn:   f.turn,
		Player: f.player.Pos,
		Mature: mature,
		Won:    won,
		Sown:   f.sown,
		Reaped: f.reaped,
	}
	f.grid.Each(func(p core.Point, c *Cell) {
		cs := CellSnapshot{Sun: c.Sun, Water: c.Water}
		if c.Plant != nil {
			cs.HasPlant = true
			cs.Kind = c.Plant.Kind
			cs.Level = c.Plant.Level
		}
		s.Cells[p.Y][p.X] = cs
	})
	return s
}
