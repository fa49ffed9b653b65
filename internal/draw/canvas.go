// Package draw renders to terminals using half-block characters.
package draw

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Point represents a 2D coordinate in logical space.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// circleSegments is the number of edges used to approximate a circle.
const circleSegments = 24

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Logical coordinates are scaled to the canvas area on the terminal.
type Canvas struct {
	termWidth      int    // Canvas width in terminal columns
	termHeight     int    // Canvas height in terminal rows
	subPixelHeight int    // termHeight * 2
	pixels         []bool // Flat slice: [y * termWidth + x] - true if pixel is set

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offsets of the canvas area, for centering.
	offsetCol int
	offsetRow int

	polygonBuf []Point // Reusable buffer for circle outlines
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]bool, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// Fit sizes the canvas to the largest area inside cols x rows that keeps the
// logical aspect ratio, and centers it. Terminal cells are treated as two
// square sub-pixels tall.
func (c *Canvas) Fit(cols, rows int) {
	w := cols
	h := int(float64(w) * c.logicalHeight / c.logicalWidth / 2)
	if h > rows {
		h = rows
		w = int(float64(h) * 2 * c.logicalWidth / c.logicalHeight)
	}
	c.Resize(w, h)
	c.SetOffset((cols-c.termWidth)/2, (rows-c.termHeight)/2)
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at canvas pixel coordinates (no scaling).
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// pixelAt reports whether the pixel at canvas pixel coordinates is set.
func (c *Canvas) pixelAt(x, y int) bool {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return false
	}
	return c.pixels[y*c.termWidth+x]
}

// SetFloat sets a pixel using float logical coordinates (applies scaling).
func (c *Canvas) SetFloat(x, y float64) {
	c.setPixel(int(math.Round(x*c.scaleX)), int(math.Round(y*c.scaleY)))
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws the outline of a closed polygon.
func (c *Canvas) DrawPolygon(points []Point) {
	if len(points) < 2 {
		return
	}
	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// DrawCircle draws a circle outline of logical radius r around center.
func (c *Canvas) DrawCircle(center Point, r float64) {
	if cap(c.polygonBuf) < circleSegments {
		c.polygonBuf = make([]Point, circleSegments)
	}
	points := c.polygonBuf[:circleSegments]
	for i := range points {
		angle := float64(i) * 2 * math.Pi / circleSegments
		points[i] = Point{
			X: center.X + math.Cos(angle)*r,
			Y: center.Y + math.Sin(angle)*r,
		}
	}
	c.DrawPolygon(points)
}

// Render writes the set pixels as half-block characters with absolute cursor
// positioning. Empty cells are skipped, so the caller clears the screen first.
func (c *Canvas) Render(w io.Writer) error {
	var buf strings.Builder
	var num [20]byte

	for row := 0; row < c.termHeight; row++ {
		for col := 0; col < c.termWidth; col++ {
			top := c.pixelAt(col, row*2)
			bottom := c.pixelAt(col, row*2+1)

			var ch rune
			switch {
			case top && bottom:
				ch = BlockFull
			case top:
				ch = BlockUpperHalf
			case bottom:
				ch = BlockLowerHalf
			default:
				continue
			}

			buf.WriteString("\033[")
			buf.Write(strconv.AppendInt(num[:0], int64(row+1+c.offsetRow), 10))
			buf.WriteByte(';')
			buf.Write(strconv.AppendInt(num[:0], int64(col+1+c.offsetCol), 10))
			buf.WriteByte('H')
			buf.WriteRune(ch)
		}
	}

	_, err := io.WriteString(w, buf.String())
	return err
}

// RenderBorder draws a box around the canvas area when there is room for it.
func (c *Canvas) RenderBorder(w io.Writer) error {
	if c.offsetCol < 1 || c.offsetRow < 1 {
		return nil
	}

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1
	bar := strings.Repeat("─", c.termWidth)

	var buf strings.Builder
	buf.WriteString(cursorTo(left, top) + "┌" + bar + "┐")
	buf.WriteString(cursorTo(left, bottom) + "└" + bar + "┘")
	for row := top + 1; row < bottom; row++ {
		buf.WriteString(cursorTo(left, row) + "│" + cursorTo(right, row) + "│")
	}

	_, err := io.WriteString(w, buf.String())
	return err
}

// TerminalWidth returns the canvas width in terminal columns.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the canvas height in terminal rows.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
