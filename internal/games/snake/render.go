package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		need := fmt.Sprintf("Need %dx%d", g.board.W, g.board.Bottom()+1)
		g.renderOverlay(dst, "Window too small", need)
		return
	}

	dst.DrawBox(g.board, core.ColorGray)
	g.renderCell(dst, g.state.Food, g.foodColor)
	// Tail first so the head stays visible when the body overlaps itself
	for i := len(g.state.Snake) - 1; i >= 0; i-- {
		g.renderCell(dst, g.state.Snake[i], g.snakeColor)
	}
	g.renderButtons(dst)

	switch {
	case g.notice != "":
		g.renderOverlay(dst, g.notice, "Press Enter to continue")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case g.state.Direction.IsNone() && g.state.Pending.IsNone():
		dst.DrawTextCentered(g.board.Y+g.board.H/2+2, " Arrows / WASD / click / drag to move ")
	}
}

// renderHUD draws the top status line.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake — %s  %s  Speed: %dms  Color: %s",
		g.ScoreText(), g.HighScoreText(), g.pacer.Interval().Milliseconds(), g.cfg.Appearance.SnakeColor)
	dst.DrawText(0, 0, hud)
}

// renderCell fills one grid cell, cellWidth columns wide.
func (g *Game) renderCell(dst *core.Screen, c Cell, color core.Color) {
	if !c.InBounds(g.state.Dim) {
		return
	}
	x := g.board.X + 1 + c.X*cellWidth
	y := g.board.Y + 1 + c.Y
	for i := 0; i < cellWidth; i++ {
		dst.SetColored(x+i, y, '█', color)
	}
}

func (g *Game) renderButtons(dst *core.Screen) {
	for _, b := range g.buttons {
		dst.DrawTextColored(b.rect.X, b.rect.Y, b.label, core.ColorCyan)
	}

	help := "P pause  R restart  C color  +/- speed  Q quit"
	if y := g.board.Bottom() + 1; y < dst.Height() {
		dst.DrawTextCentered(y, help)
	}
}

// renderOverlay draws a centered two-line message box over the board.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	box := core.NewRect((dst.Width()-maxLen-4)/2, (dst.Height()-5)/2, maxLen+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
