package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/brickstorm/internal/game"
	"github.com/vovakirdan/brickstorm/internal/geom"
)

// Visual characters for rendering
const (
	paddleChar = '='
	ballChar   = '●'
)

// Minimum terminal size for the playfield to stay readable.
const (
	minScreenW = 40
	minScreenH = 16
)

// hudRows is the number of text rows above the playfield box.
const hudRows = 2

// brickRowColors cycle down the brick grid.
var brickRowColors = []Color{
	ColorBrightRed,
	ColorOrange,
	ColorBrightYellow,
	ColorBrightGreen,
	ColorBrightCyan,
	ColorBrightBlue,
	ColorBrightMagenta,
}

// drawFrame renders the whole game state into the canvas.
func (m *Model) drawFrame() {
	c := m.canvas
	c.Clear()

	if c.Width() < minScreenW || c.Height() < minScreenH {
		c.DrawTextCentered(c.Height()/2-1, "Window too small", ColorDefault)
		c.DrawTextCentered(c.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), ColorGray)
		return
	}

	m.drawHUD()

	// Playfield box; the last row stays free for hints and status.
	c.DrawBox(0, hudRows, c.Width(), c.Height()-hudRows-1, ColorGray)

	m.drawBricks()
	m.drawPickups()
	m.drawPaddle()
	m.drawBall()
	m.drawOverlay()
}

// playArea returns the interior cell region of the playfield box.
func (m *Model) playArea() (x, y, w, h int) {
	return 1, hudRows + 1, m.canvas.Width() - 2, m.canvas.Height() - hudRows - 3
}

// projectPoint maps a world point to a canvas cell inside the playfield.
func (m *Model) projectPoint(p geom.Vec) (int, int) {
	ax, ay, aw, ah := m.playArea()
	b := m.engine.Playfield()

	x := ax + int((p.X()-b.X)/b.W*float64(aw))
	y := ay + int((p.Y()-b.Y)/b.H*float64(ah))
	return min(x, ax+aw-1), min(y, ay+ah-1)
}

// projectRect maps a world rectangle onto a half-open cell span inside the
// playfield, at least one cell in each direction.
func (m *Model) projectRect(r geom.Rect) (x0, y0, x1, y1 int) {
	ax, ay, aw, ah := m.playArea()
	b := m.engine.Playfield()

	x0 = ax + int((r.X-b.X)/b.W*float64(aw))
	y0 = ay + int((r.Y-b.Y)/b.H*float64(ah))
	x1 = ax + int((r.Right()-b.X)/b.W*float64(aw))
	y1 = ay + int((r.Bottom()-b.Y)/b.H*float64(ah))

	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// drawHUD draws the score, lives, and level line plus the combo and effect
// readout below it.
func (m *Model) drawHUD() {
	c := m.canvas

	scoreText := fmt.Sprintf("Score: %d", m.engine.Score())
	c.DrawText(1, 0, scoreText, ColorBrightWhite)

	livesText := fmt.Sprintf("Lives: %d", m.engine.Lives())
	c.DrawTextCentered(0, livesText, ColorBrightRed)

	levelText := fmt.Sprintf("Level: %d", m.engine.Level())
	c.DrawText(c.Width()-len(levelText)-1, 0, levelText, ColorBrightCyan)

	if effects := m.effectsLine(); effects != "" {
		c.DrawText(1, 1, effects, ColorBrightYellow)
	}
}

// effectsLine builds a compact readout of the combo and running effects.
func (m *Model) effectsLine() string {
	parts := make([]string, 0, 5)

	if mult := m.engine.ScoreMultiplier(); mult > 1 {
		parts = append(parts, fmt.Sprintf("combo x%d", mult))
	}

	eff := m.engine.Effects()
	if eff.ExpandRemaining > 0 {
		parts = append(parts, fmt.Sprintf("expand(%d)", int(eff.ExpandRemaining)))
	}
	if eff.SpeedBoostRemaining > 0 {
		parts = append(parts, fmt.Sprintf("speed(%d)", int(eff.SpeedBoostRemaining)))
	}
	if eff.PointMultiplierRemaining > 0 {
		parts = append(parts, fmt.Sprintf("points x%d(%d)", eff.PointMultiplier, int(eff.PointMultiplierRemaining)))
	}
	if eff.BigBallRemaining > 0 {
		parts = append(parts, fmt.Sprintf("bigball(%d)", int(eff.BigBallRemaining)))
	}

	return strings.Join(parts, "  ")
}

// drawBricks draws the standing bricks, colored by row and shaded by
// durability.
func (m *Model) drawBricks() {
	field := m.engine.Playfield()
	for _, br := range m.engine.Bricks() {
		if br.Destroyed {
			continue
		}

		glyph, color := brickAppearance(br, field)
		x0, y0, x1, y1 := m.projectRect(br.Bounds)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				m.canvas.Set(x, y, glyph, color)
			}
		}
	}
}

// brickAppearance picks the glyph and color for a brick.
func brickAppearance(br game.Brick, field geom.Rect) (rune, Color) {
	switch br.Type {
	case game.BrickIndestructible:
		return '█', ColorGray
	case game.BrickDurable:
		if br.Hits > 1 {
			return '▓', ColorWhite
		}
		return '▒', ColorWhite
	default:
		row := int((br.Bounds.Y - field.Y) / br.Bounds.H)
		if row < 0 {
			row = 0
		}
		return '█', brickRowColors[row%len(brickRowColors)]
	}
}

// drawPickups draws the falling pickups.
func (m *Model) drawPickups() {
	for _, p := range m.engine.Powerups() {
		glyph, color := pickupAppearance(p.Type)
		x, y := m.projectPoint(p.Pos)
		m.canvas.Set(x, y, glyph, color)
	}
}

// pickupAppearance picks the glyph and color for a pickup type.
func pickupAppearance(t game.PowerupType) (rune, Color) {
	switch t {
	case game.PowerExpandPaddle:
		return 'E', ColorBrightGreen
	case game.PowerExtraLife:
		return '♥', ColorBrightRed
	case game.PowerSpeedBoost:
		return 'S', ColorBrightYellow
	case game.PowerPointMultiplier:
		return '$', ColorBrightCyan
	case game.PowerBigBall:
		return 'B', ColorBrightMagenta
	}
	return '?', ColorDefault
}

// drawPaddle draws the paddle as a single row of cells.
func (m *Model) drawPaddle() {
	x0, y0, x1, _ := m.projectRect(m.engine.Paddle().Bounds())
	for x := x0; x < x1; x++ {
		m.canvas.Set(x, y0, paddleChar, ColorCyan)
	}
}

// drawBall draws the ball, highlighted while the big-ball effect runs.
func (m *Model) drawBall() {
	color := ColorBrightWhite
	if m.engine.BigBallActive() {
		color = ColorBrightMagenta
	}
	x, y := m.projectPoint(m.engine.Ball().Position())
	m.canvas.Set(x, y, ballChar, color)
}

// drawOverlay draws game state messages.
func (m *Model) drawOverlay() {
	c := m.canvas

	switch {
	case m.paused:
		m.drawCenteredBox("PAUSED", "P resume  |  S save  |  Q quit")

	case m.engine.GameOver():
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", m.engine.Score())
		m.drawCenteredBox("GAME OVER", subtitle)

	case m.engine.LevelComplete() && m.engine.HasNextLevel():
		subtitle := fmt.Sprintf("Press SPACE for level %d", m.engine.Level()+1)
		m.drawCenteredBox("LEVEL CLEAR", subtitle)

	case m.engine.LevelComplete():
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", m.engine.Score())
		m.drawCenteredBox("YOU WIN!", subtitle)

	case m.engine.BallAttached():
		c.DrawTextCentered(c.Height()-1, "Press SPACE to launch", ColorGray)
	}

	if m.status != "" {
		c.DrawTextCentered(c.Height()-1, m.status, ColorBrightYellow)
	}
}

// drawCenteredBox draws a centered message box.
func (m *Model) drawCenteredBox(title, subtitle string) {
	c := m.canvas
	w := c.Width()
	h := c.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	c.FillRect(boxX, boxY, boxW, boxH, ' ', ColorDefault)
	c.DrawBox(boxX, boxY, boxW, boxH, ColorWhite)

	// Draw text
	c.DrawText(boxX+(boxW-len(title))/2, boxY+1, title, ColorBrightWhite)
	c.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, ColorDefault)
}
