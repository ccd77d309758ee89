package farm

import (
	"fmt"

	"github.com/vovakirdan/tui-farm/internal/core"
)

const (
	cellWidth  = 9 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)

	boardW    = GridSize*cellWidth + 1  // +1 for right border
	boardH    = GridSize*cellHeight + 1 // +1 for bottom border
	hudHeight = 2

	minScreenW = boardW
	minScreenH = hudHeight + boardH + 2 // one log line + win line
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX)
	g.renderBoard(dst, boardX, boardY)
	g.renderPlayer(dst, boardX, boardY)
	g.renderFooter(dst, boardX, boardY+boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	_, y := core.NewRect(0, 0, g.screenW, g.screenH).Center()
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", minScreenW, minScreenH))
}

// renderHUD draws the title, counters and legend.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	f := g.farm
	mature, _ := f.CheckWin()

	dst.DrawTextColored(boardX, 0, "FARM", core.ColorBrightGreen)
	status := fmt.Sprintf("Turn %d   Mature %d/%d   Sown %d   Reaped %d",
		f.Turn(), mature, f.rules.WinPlantCount, f.Sown(), f.Reaped())
	dst.DrawText(boardX+6, 0, status)

	if g.difficulty != "" {
		dst.DrawTextColored(boardX+boardW-len(g.difficulty), 0, g.difficulty, core.ColorGray)
	}

	x := boardX
	x = drawLegend(dst, x, 1, "~", "water", core.ColorBlue)
	x = drawLegend(dst, x, 1, "*", "sun", core.ColorYellow)
	x = drawLegend(dst, x, 1, "A/B/C", "plant + level", core.ColorGreen)
	drawLegend(dst, x, 1, "╔╗", "you", f.player.Color)
}

func drawLegend(dst *core.Screen, x, y int, symbol, label string, c core.Color) int {
	dst.DrawTextColored(x, y, symbol, c)
	x += len([]rune(symbol)) + 1
	dst.DrawTextColored(x, y, label, core.ColorGray)
	return x + len(label) + 3
}

// renderBoard draws the 8x8 grid and the contents of every cell.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := range GridSize + 1 {
		for x := range GridSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == GridSize:
				corner = '┐'
			case y == GridSize && x == 0:
				corner = '└'
			case y == GridSize && x == GridSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == GridSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == GridSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorGray)

			if x < GridSize {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < GridSize {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	g.farm.grid.Each(func(p core.Point, c *Cell) {
		g.renderCell(dst, boardX+p.X*cellWidth+1, boardY+p.Y*cellHeight+1, c)
	})
}

// renderCell draws "~W S PL" into the cell interior: water, sun and plant.
func (g *Game) renderCell(dst *core.Screen, x, y int, c *Cell) {
	water := []rune(fmt.Sprintf("~%d", c.Water))
	if len(water) > 3 {
		water = append(water[:2], '+')
	}
	dst.DrawTextColored(x, y, string(water), core.ColorBlue)

	if c.Sun > 0 {
		dst.SetColored(x+3, y, '*', core.ColorYellow)
	} else {
		dst.SetColored(x+3, y, '.', core.ColorGray)
	}

	if c.Plant == nil {
		return
	}

	color := core.ColorGreen
	if c.Plant.Mature(g.farm.rules.WinGrowthLevel) {
		color = core.ColorBrightGreen
	}
	level := fmt.Sprintf("%d", c.Plant.Level)
	if len(level) > 2 {
		level = "++"
	}
	dst.DrawTextColored(x+5, y, string(c.Plant.Kind.Glyph())+level, color)
}

// renderPlayer outlines the player's cell with a double border.
func (g *Game) renderPlayer(dst *core.Screen, boardX, boardY int) {
	p := g.farm.player
	r := core.NewRect(boardX+p.Pos.X*cellWidth, boardY+p.Pos.Y*cellHeight, cellWidth+1, cellHeight+1)
	dst.DrawBoxStyled(r, core.BoxDouble, p.Color)
}

// renderFooter draws as much of the message log as fits, newest last,
// followed by the win banner. Entries from the latest step stay bright.
func (g *Game) renderFooter(dst *core.Screen, boardX, y int) {
	rows := max(g.screenH-y-1, 1)
	shown := g.log[max(len(g.log)-rows, 0):]
	for i, text := range shown {
		c := core.ColorGray
		if i >= len(shown)-g.fresh {
			c = core.ColorDefault
		}
		dst.DrawTextColored(boardX, y, truncate(text, boardW), c)
		y++
	}

	if g.wonAt == 0 {
		return
	}

	banner := fmt.Sprintf("You win! %d mature plants reached on turn %d.", g.farm.rules.WinPlantCount, g.wonAt)
	if !g.farm.Won() {
		banner = fmt.Sprintf("You won on turn %d. Keep farming or press N for a new farm.", g.wonAt)
	}
	dst.DrawTextColored(boardX, y, banner, core.ColorBrightYellow)
}

func truncate(s string, w int) string {
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	return string(append(r[:w-1], '…'))
}
