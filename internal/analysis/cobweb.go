package analysis

import (
	"strings"

	"github.com/san-kum/chaosgen/internal/chaos"
)

// Cobweb holds the staircase construction of an orbit in the
// (x, f(x)) plane.
type Cobweb struct {
	Rate   float64
	Points []struct{ X, Y float64 }
}

// GenerateCobweb traces an orbit as a cobweb: from (x, x) rise to
// (x, f(x)), slide across to (f(x), f(x)), repeat.
func GenerateCobweb(m chaos.Map, x0 float64, steps int) *Cobweb {
	c := &Cobweb{
		Rate:   m.Rate(),
		Points: make([]struct{ X, Y float64 }, 0, 2*steps+1),
	}

	x := x0
	c.Points = append(c.Points, struct{ X, Y float64 }{x, x})
	for k := 0; k < steps; k++ {
		y := m.Apply(x)
		c.Points = append(c.Points, struct{ X, Y float64 }{x, y})
		c.Points = append(c.Points, struct{ X, Y float64 }{y, y})
		x = y
	}

	return c
}

// CobwebToASCII converts a cobweb to ASCII art.
func CobwebToASCII(c *Cobweb, width, height int) string {
	if c == nil || len(c.Points) == 0 {
		return ""
	}

	// Find bounds
	minX, maxX := c.Points[0].X, c.Points[0].X
	minY, maxY := c.Points[0].Y, c.Points[0].Y

	for _, p := range c.Points {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	// Plot points
	for _, p := range c.Points {
		col := int((p.X - minX) / rangeX * float64(width-1))
		row := height - 1 - int((p.Y-minY)/rangeY*float64(height-1))

		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = '•'
		}
	}

	// Draw axes if they cross the visible area
	if minX <= 0 && maxX >= 0 {
		col := int((0 - minX) / rangeX * float64(width-1))
		for row := 0; row < height; row++ {
			if col >= 0 && col < width && canvas[row][col] == ' ' {
				canvas[row][col] = '│'
			}
		}
	}
	if minY <= 0 && maxY >= 0 {
		row := height - 1 - int((0-minY)/rangeY*float64(height-1))
		for col := 0; col < width; col++ {
			if row >= 0 && row < height && canvas[row][col] == ' ' {
				canvas[row][col] = '─'
			}
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
