package farm

import "github.com/vovakirdan/tui-farm/internal/core"

// Neighbors returns the on-board orthogonal neighbors of p in the order
// left, right, up, down.
func Neighbors(p core.Point) []core.Point {
	out := make([]core.Point, 0, len(core.Directions))
	for _, dir := range core.Directions {
		n := p.Add(dir.Delta())
		if InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// cellAction mutates one neighbor cell and optionally reports an event.
type cellAction func(p core.Point, c *Cell) (Event, bool)

// interact applies action to every neighbor of the player.
func (f *Farm) interact(action cellAction) []Event {
	var events []Event
	for _, p := range Neighbors(f.player.Pos) {
		c, err := f.grid.At(p.X, p.Y)
		if err != nil {
			continue
		}
		if ev, ok := action(p, c); ok {
			ev.Turn = f.turn
			events = append(events, ev)
		}
	}
	return events
}

// Sow plants a random kind at level 1 in every empty neighbor cell.
// Occupied cells are left untouched and reported.
func (f *Farm) Sow() []Event {
	return f.interact(func(p core.Point, c *Cell) (Event, bool) {
		if c.Plant != nil {
			return Event{Kind: EventOccupied, Pos: p, Plant: c.Plant.Kind, Level: c.Plant.Level}, true
		}

		kind := PlantKinds[f.rng.Intn(len(PlantKinds))]
		c.Plant = &Plant{Kind: kind, Level: 1}
		f.sown++
		return Event{Kind: EventPlanted, Pos: p, Plant: kind, Level: 1}, true
	})
}

// Reap removes the plant from every planted neighbor cell.
// Empty cells are skipped silently.
func (f *Farm) Reap() []Event {
	return f.interact(func(p core.Point, c *Cell) (Event, bool) {
		if c.Plant == nil {
			return Event{}, false
		}

		ev := Event{Kind: EventReaped, Pos: p, Plant: c.Plant.Kind, Level: c.Plant.Level}
		c.Plant = nil
		f.reaped++
		return ev, true
	})
}
