package tui

import "strings"

// Color represents a foreground color for a canvas cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Cell is one character cell of the canvas.
type Cell struct {
	Rune  rune
	Color Color
}

// Canvas is a 2D cell buffer for rendering game graphics.
// It decouples game rendering from the terminal: drawing writes runes and
// colors into cells, and the platform turns the buffer into styled output.
type Canvas struct {
	width  int
	height int
	cells  [][]Cell
}

// NewCanvas creates a new canvas with the given dimensions.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		width:  width,
		height: height,
	}
	c.allocate()
	c.Clear()
	return c
}

// allocate creates the underlying cell storage.
func (c *Canvas) allocate() {
	c.cells = make([][]Cell, c.height)
	for y := range c.cells {
		c.cells[y] = make([]Cell, c.width)
	}
}

// Width returns the canvas width in characters.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in characters.
func (c *Canvas) Height() int {
	return c.height
}

// Resize changes the canvas dimensions, preserving content where possible.
func (c *Canvas) Resize(width, height int) {
	if width == c.width && height == c.height {
		return
	}

	oldCells := c.cells
	oldW, oldH := c.width, c.height

	c.width = width
	c.height = height
	c.allocate()
	c.Clear()

	// Copy old content
	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		for x := 0; x < copyW; x++ {
			c.cells[y][x] = oldCells[y][x]
		}
	}
}

// Clear fills the entire canvas with spaces in the default color.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = Cell{Rune: ' ', Color: ColorDefault}
		}
	}
}

// Set places a rune with its color at the given position.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Set(x, y int, r rune, color Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = Cell{Rune: r, Color: color}
}

// Cell returns the cell at the given position.
// Returns a default space cell for out-of-bounds coordinates.
func (c *Canvas) Cell(x, y int) Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Cell{Rune: ' ', Color: ColorDefault}
	}
	return c.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond canvas bounds are clipped.
func (c *Canvas) DrawText(x, y int, text string, color Color) {
	for i, r := range text {
		c.Set(x+i, y, r, color)
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (c *Canvas) DrawTextCentered(y int, text string, color Color) {
	x := (c.width - len(text)) / 2
	c.DrawText(x, y, text, color)
}

// FillRect fills a rectangular cell area with the given rune.
func (c *Canvas) FillRect(x, y, w, h int, r rune, color Color) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			c.Set(i, j, r, color)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (c *Canvas) DrawBox(x, y, w, h int, color Color) {
	// Corners
	c.Set(x, y, '┌', color)
	c.Set(x+w-1, y, '┐', color)
	c.Set(x, y+h-1, '└', color)
	c.Set(x+w-1, y+h-1, '┘', color)

	// Horizontal edges
	for i := x + 1; i < x+w-1; i++ {
		c.Set(i, y, '─', color)
		c.Set(i, y+h-1, '─', color)
	}

	// Vertical edges
	for j := y + 1; j < y+h-1; j++ {
		c.Set(x, j, '│', color)
		c.Set(x+w-1, j, '│', color)
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (c *Canvas) DrawHLine(x, y, length int, r rune, color Color) {
	for i := 0; i < length; i++ {
		c.Set(x+i, y, r, color)
	}
}

// DrawVLine draws a vertical line from (x, y) with the given length.
func (c *Canvas) DrawVLine(x, y, length int, r rune, color Color) {
	for i := 0; i < length; i++ {
		c.Set(x, y+i, r, color)
	}
}

// String converts the canvas to a plain string without styling.
// Each row is joined with newlines.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height + c.height) // Pre-allocate for efficiency

	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < c.width; x++ {
			sb.WriteRune(c.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of the specified row as a string.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return strings.Repeat(" ", c.width)
	}
	runes := make([]rune, c.width)
	for x := range runes {
		runes[x] = c.cells[y][x].Rune
	}
	return string(runes)
}
