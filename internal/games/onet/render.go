package onet

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-onet/internal/core"
	"github.com/vovakirdan/tui-onet/internal/games/onet/board"
)

const (
	cellWidth = 3 // Each grid cell is drawn as "[x]"
	hudHeight = 3
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check screen size
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	// Calculate board position (centered, framed)
	boardW := g.grid.Columns() * cellWidth
	boardH := g.grid.Rows()
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	dst.DrawBox(core.NewRect(boardX-1, boardY-1, boardW+2, boardH+2), core.ColorGray)
	g.renderBoard(dst, boardX, boardY)
	g.renderMessage(dst, boardY+boardH+1)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorGray)
}

// renderHUD draws the score, level and allowances.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "ONET"
	if g.levelName != "" {
		title += " - " + g.levelName
	}
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightWhite)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.score))

	var infoStr string
	if g.mode == ModeCampaign && g.custom == nil {
		infoStr = fmt.Sprintf("Level %d/%d", g.levelIndex+1, LevelCount())
	} else if g.mode == ModeEndless {
		infoStr = fmt.Sprintf("Board %d", g.levelIndex+1)
	}
	infoX := boardX + boardW - len(infoStr)
	if infoX < boardX {
		infoX = boardX
	}
	dst.DrawText(infoX, 1, infoStr)

	status := fmt.Sprintf("Pairs: %d  Hints: %s  Shuffles: %s",
		g.pairs, allowance(g.hintsLeft), allowance(g.shufflesLeft))
	if g.timed {
		secs := g.secondsLeft()
		status += fmt.Sprintf("  Time: %d:%02d", secs/60, secs%60)
	}
	color := core.ColorGray
	if g.timed && g.secondsLeft() <= 10 {
		color = core.ColorBrightRed
	}
	dst.DrawTextColored(boardX+(boardW-len(status))/2, 2, status, color)
}

func allowance(n int) string {
	if n < 0 {
		return "∞"
	}
	return strconv.Itoa(n)
}

// renderBoard draws tiles, flashes and markers.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for r := 0; r < g.grid.Rows(); r++ {
		for c := 0; c < g.grid.Columns(); c++ {
			cell := board.C(c, r)
			x, y := cellPos(boardX, boardY, cell)
			if g.grid.IsBorder(cell) {
				continue
			}
			t := g.grid.Get(cell)
			if t == board.NoTile {
				dst.SetColored(x+1, y, '·', core.ColorGray)
				continue
			}
			dst.SetColored(x+1, y, board.TileRune(t), core.PaletteColor(int(t)-1))
		}
	}

	if g.probeTicks > 0 {
		for _, p := range g.probes {
			for _, cell := range p.Steps() {
				x, y := cellPos(boardX, boardY, cell)
				dst.SetColored(x+1, y, '·', core.ColorRed)
			}
		}
	}

	if g.pathTicks > 0 {
		g.renderPath(dst, boardX, boardY)
	}

	if g.hintTicks > 0 {
		for _, cell := range g.hint {
			drawMarker(dst, boardX, boardY, cell, '{', '}', core.ColorBrightGreen)
		}
	}
	for _, cell := range g.selector.Selected() {
		drawMarker(dst, boardX, boardY, cell, '<', '>', core.ColorBrightYellow)
	}
	if !g.gameOver && !g.won {
		drawMarker(dst, boardX, boardY, g.cursor, '[', ']', core.ColorBrightWhite)
	}
}

// renderPath draws the last connection as a polyline through its waypoints.
func (g *Game) renderPath(dst *core.Screen, boardX, boardY int) {
	const color = core.ColorBrightYellow
	for i := 0; i+1 < len(g.path); i++ {
		from, to := g.path[i], g.path[i+1]
		d, ok := from.DirectionTo(to)
		if !ok {
			continue
		}
		for cur := from; ; cur = cur.Neighbor(d) {
			x, y := cellPos(boardX, boardY, cur)
			if d.Axis() == board.Horizontal {
				for k := 0; k < cellWidth; k++ {
					dst.SetColored(x+k, y, '─', color)
				}
			} else {
				dst.SetColored(x+1, y, '│', color)
			}
			if cur == to {
				break
			}
		}
	}
	for i, cell := range g.path {
		x, y := cellPos(boardX, boardY, cell)
		mark := '+'
		if i == 0 || i == len(g.path)-1 {
			mark = '*'
		}
		dst.SetColored(x+1, y, mark, color)
	}
}

func cellPos(boardX, boardY int, c board.Cell) (x, y int) {
	return boardX + c.Column*cellWidth, boardY + c.Row
}

func drawMarker(dst *core.Screen, boardX, boardY int, c board.Cell, left, right rune, color core.Color) {
	x, y := cellPos(boardX, boardY, c)
	dst.SetColored(x, y, left, color)
	dst.SetColored(x+cellWidth-1, y, right, color)
}

// renderMessage shows the latest flash message below the board.
func (g *Game) renderMessage(dst *core.Screen, y int) {
	if g.messageTicks > 0 || g.gameOver {
		dst.DrawTextCentered(y, g.message, core.ColorYellow)
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.levelCleared {
		bonusStr := fmt.Sprintf("Time bonus: %d", g.clearBonus)
		switch {
		case g.mode == ModeEndless:
			g.drawOverlay(dst, centerX, centerY, "BOARD CLEARED!", bonusStr, "Dealing a new board")
		case g.custom != nil || g.levelIndex >= LevelCount()-1:
			g.drawOverlay(dst, centerX, centerY, "BOARD CLEARED!", bonusStr, "Final level complete!")
		default:
			next := fmt.Sprintf("Next: Level %d", g.levelIndex+2)
			g.drawOverlay(dst, centerX, centerY, "BOARD CLEARED!", bonusStr, next)
		}
		return
	}

	if g.won {
		g.drawOverlay(dst, centerX, centerY, "CAMPAIGN COMPLETE!",
			fmt.Sprintf("Final score: %d", g.score), "Press R to restart")
		return
	}

	if g.gameOver {
		pairsStr := fmt.Sprintf("Pairs removed: %d", g.pairs)
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", pairsStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorBrightWhite)

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Space: Select | H: Hint | X: Shuffle | P: Pause | R: Restart | Q: Quit"
}
