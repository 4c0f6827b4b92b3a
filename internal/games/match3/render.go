package match3

import (
	"fmt"

	"github.com/dkotenko/gemfall/internal/core"
)

// Each cell renders as a glyph plus a spacer column.
const cellWidth = 2

// gemGlyphs maps tile types to display runes. Types beyond the table wrap
// around, which only happens with custom configs.
var gemGlyphs = []rune{'●', '◆', '▲', '■', '★', '♥', '◉', '✦'}

// gemColors maps tile types to screen colors.
var gemColors = []core.Color{
	core.ColorBrightRed,
	core.ColorBrightGreen,
	core.ColorBrightBlue,
	core.ColorBrightYellow,
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
	core.ColorOrange,
	core.ColorWhite,
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := g.b.Cols()*cellWidth + 1
	boardH := g.b.Rows() + 2
	hudHeight := 3

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	dst.DrawTextCentered(g.screenH/2, "Window too small")
	dst.DrawTextCentered(g.screenH/2+1, "Please resize terminal")
}

// renderHUD draws the score and level info above the board.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.Title()
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.score))

	var info string
	if g.mode == ModeCampaign {
		info = fmt.Sprintf("Level %d/%d  Target: %d  Moves: %d",
			g.levelIndex+1, LevelCount(), g.target, g.movesLeft)
	} else {
		info = fmt.Sprintf("Moves played: %d", len(g.moves))
	}
	infoX := boardX + boardW - len(info)
	if infoX < boardX {
		infoX = boardX
	}
	dst.DrawText(infoX, 2, info)

	if g.chain > 1 {
		chainStr := fmt.Sprintf("Chain x%d", g.chain)
		dst.DrawTextColored(boardX, 2, chainStr, core.ColorBrightYellow)
	}
}

// renderBoard draws the grid with gems, cursor, and anchor. Row 0 is drawn
// at the bottom so gravity (toward row 0) reads as falling down.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	rows, cols := g.b.Rows(), g.b.Cols()

	dst.DrawBox(core.NewRect(boardX-1, boardY-1, cols*cellWidth+3, rows+2))

	for row := 0; row < rows; row++ {
		// Screen y grows downward; board row 0 sits on the bottom edge.
		y := boardY + (rows - 1 - row)
		for col := 0; col < cols; col++ {
			x := boardX + 1 + col*cellWidth

			value := g.b.Cell(row, col)
			glyph := ' '
			color := core.ColorDefault
			if value >= 0 {
				glyph = gemGlyphs[value%len(gemGlyphs)]
				color = gemColors[value%len(gemColors)]
			}

			// Matched cells flash white while the clear phase plays out.
			if g.phase == phaseClearing && g.b.Matched(row, col) && (g.phaseTicks/3)%2 == 0 {
				color = core.ColorBrightWhite
				glyph = '◌'
			}

			dst.SetColored(x, y, glyph, color)

			switch {
			case g.anchored && row == g.anchorRow && col == g.anchorCol:
				dst.SetColored(x-1, y, '[', core.ColorBrightYellow)
				dst.SetColored(x+1, y, ']', core.ColorBrightYellow)
			case row == g.cursorRow && col == g.cursorCol && g.phase == phaseIdle:
				dst.SetColored(x-1, y, '(', core.ColorGray)
				dst.SetColored(x+1, y, ')', core.ColorGray)
			}
		}
	}
}

// renderOverlays draws modal messages over the board.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerY := boardY + boardH/2

	switch {
	case g.levelCleared:
		name := ""
		if level := GetLevel(g.levelIndex); level != nil {
			name = level.Name
		}
		g.renderOverlay(dst, centerY, fmt.Sprintf("Level %d cleared!", g.levelIndex+1), name)
	case g.won:
		g.renderOverlay(dst, centerY, "You Win!", fmt.Sprintf("Final Score: %d", g.score))
	case g.gameOver && g.noMoves:
		g.renderOverlay(dst, centerY, "No more moves", "Press R to restart")
	case g.gameOver:
		g.renderOverlay(dst, centerY, "Out of moves", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, centerY, "Paused", "Press P to continue")
	case g.anchored:
		dst.DrawTextCentered(boardY+boardH+1, "Arrow keys to swap, Esc to cancel")
	default:
		dst.DrawTextCentered(boardY+boardH+1, "Arrows move, Enter selects")
	}
}

// renderOverlay draws a two-line centered message.
func (g *Game) renderOverlay(dst *core.Screen, y int, line1, line2 string) {
	dst.DrawTextCentered(y, line1)
	if line2 != "" {
		dst.DrawTextCentered(y+1, line2)
	}
}
