package farm

// AdvanceTurn runs one simulation step over the whole grid.
//
// For each cell in row-major order: sun is re-rolled (overwritten), rain may
// add one unit of water, then a planted cell with sun whose water covers the
// plant's current level grows one level and drinks the new level's worth of
// water. After the sweep the win condition is evaluated.
func (f *Farm) AdvanceTurn() []Event {
	for y := range GridSize {
		for x := range GridSize {
			c := &f.grid[y][x]

			c.Sun = 0
			if chance(f.rng, f.rules.SunChance) {
				c.Sun = 1
			}
			if chance(f.rng, f.rules.RainChance) {
				c.Water++
			}

			grow(c, f.rules.ClampWater)
		}
	}

	f.turn++
	events := []Event{{Kind: EventTurnAdvanced, Turn: f.turn}}

	if mature, won := f.CheckWin(); won {
		events = append(events, Event{Kind: EventWin, Turn: f.turn, Mature: mature})
	}
	return events
}

// grow applies the growth rule to a single cell and reports whether the
// plant grew. Water may go negative unless clamp is set.
func grow(c *Cell, clamp bool) bool {
	if c.Plant == nil || c.Sun <= 0 || c.Water < c.Plant.Level {
		return false
	}

	c.Plant.Level++
	c.Water -= c.Plant.Level
	if clamp && c.Water < 0 {
		c.Water = 0
	}
	return true
}
