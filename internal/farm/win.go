package farm

// CheckWin counts mature plants across the board and reports whether the
// count meets the target. It never mutates the farm.
func (f *Farm) CheckWin() (mature int, won bool) {
	for y := range GridSize {
		for x := range GridSize {
			if p := f.grid[y][x].Plant; p != nil && p.Mature(f.rules.WinGrowthLevel) {
				mature++
			}
		}
	}
	return mature, mature >= f.rules.WinPlantCount
}

// Won reports whether the win condition currently holds.
func (f *Farm) Won() bool {
	_, won := f.CheckWin()
	return won
}
