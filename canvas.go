package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// paletteEntry pairs the hex value the PNG surface paints with the
// 256-color code the terminal surface uses for the same swatch.
type paletteEntry struct {
	Name string
	Hex  string
	ANSI string
}

var palette = [numColors]paletteEntry{
	{"white", "#f8f8f2", "15"},
	{"red", "#ff5555", "203"},
	{"green", "#50fa7b", "84"},
	{"yellow", "#f1fa8c", "228"},
	{"cyan", "#8be9fd", "117"},
	{"pink", "#ff79c6", "212"},
	{"purple", "#bd93f9", "141"},
	{"orange", "#ffb86c", "215"},
}

const (
	backgroundTop    = "#282a36"
	backgroundBottom = "#16171f"
	wheelHex         = "#6272a4"
	wheelANSI        = "61"
	previewANSI      = "243"
)

func paletteColor(idx int) colorful.Color {
	if idx < 0 || idx >= numColors {
		idx = defaultColor
	}
	c, err := colorful.Hex(palette[idx].Hex)
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return c
}

// Canvas is the composed drawing state: the division count, the active rule
// set, the manual layer and the layer visibility flags. It knows nothing
// about strokes or history; the Pen mutates the manual layer through it.
type Canvas struct {
	divisions     int
	rules         RuleSet
	lines         []DrawnLine
	patternOnly   bool
	showRuleLines bool
}

func NewCanvas() *Canvas {
	return &Canvas{
		divisions:     defaultDivisions,
		showRuleLines: true,
	}
}

func (c *Canvas) Divisions() int {
	return c.divisions
}

// SetDivisions clamps n into [minDivisions, maxDivisions]. Changing the
// count moves every division point, so existing rule lines re-aim, but it
// touches neither the rule set nor the manual layer.
func (c *Canvas) SetDivisions(n int) {
	if n < minDivisions {
		n = minDivisions
	}
	if n > maxDivisions {
		n = maxDivisions
	}
	c.divisions = n
}

// AddRule parses and validates text against the current division count and
// adds the rule. The bool reports whether the set actually grew; a
// duplicate returns (false, nil).
func (c *Canvas) AddRule(text string) (bool, error) {
	rule, err := ParseRule(text, c.divisions)
	if err != nil {
		return false, err
	}
	return c.rules.Add(rule), nil
}

func (c *Canvas) RemoveRule(text string) bool {
	return c.rules.Remove(text)
}

func (c *Canvas) Rules() *RuleSet {
	return &c.rules
}

func (c *Canvas) AddLine(l DrawnLine) {
	c.lines = append(c.lines, l)
}

// Lines exposes the manual layer directly. Callers that need a stable copy
// (history snapshots) use CloneLines.
func (c *Canvas) Lines() []DrawnLine {
	return c.lines
}

func (c *Canvas) CloneLines() []DrawnLine {
	out := make([]DrawnLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Canvas) SetLines(lines []DrawnLine) {
	c.lines = lines
}

func (c *Canvas) PatternOnly() bool {
	return c.patternOnly
}

func (c *Canvas) TogglePatternOnly() {
	c.patternOnly = !c.patternOnly
}

func (c *Canvas) ShowRuleLines() bool {
	return c.showRuleLines
}

func (c *Canvas) ToggleRuleLines() {
	c.showRuleLines = !c.showRuleLines
}

// ResetView restores the default layer visibility flags.
func (c *Canvas) ResetView() {
	c.patternOnly = false
	c.showRuleLines = true
}

// cellGrid rasterizes scene primitives into terminal cells. Each cell
// carries a rune and a color key (empty = default foreground).
type cellGrid struct {
	width  int
	height int
	cells  [][]rune
	colors [][]string
	view   Viewport
}

func newCellGrid(width, height int, view Viewport) *cellGrid {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	g := &cellGrid{width: width, height: height, view: view}
	g.cells = make([][]rune, height)
	g.colors = make([][]string, height)
	for y := range g.cells {
		g.cells[y] = make([]rune, width)
		g.colors[y] = make([]string, width)
		for x := range g.cells[y] {
			g.cells[y][x] = ' '
		}
	}
	return g
}

func (g *cellGrid) set(x, y int, r rune, color string) {
	if y < 0 || y >= g.height || x < 0 || x >= g.width {
		return
	}
	g.cells[y][x] = r
	g.colors[y][x] = color
}

func (g *cellGrid) setPoint(p Point, r rune, color string) {
	x, y := g.view.CanvasToCell(p)
	g.set(x, y, r, color)
}

// drawSegment walks the segment cell by cell (Bresenham). Zero-length
// segments collapse to a single dot.
func (g *cellGrid) drawSegment(from, to Point, r rune, color string) {
	x0, y0 := g.view.CanvasToCell(from)
	x1, y1 := g.view.CanvasToCell(to)
	if x0 == x1 && y0 == y1 {
		g.set(x0, y0, r, color)
		return
	}

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	x, y := x0, y0
	for {
		g.set(x, y, r, color)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func (g *cellGrid) drawCircle(center Point, radius float64) {
	// Sample densely enough that adjacent samples land in neighboring
	// cells even on wide viewports.
	steps := 8 * (g.width + g.height)
	for i := 0; i < steps; i++ {
		angle := float64(i) * 2 * math.Pi / float64(steps)
		p := Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
		g.setPoint(p, '·', wheelANSI)
	}
}

func (g *cellGrid) drawLabel(pos Point, text string) {
	x, y := g.view.CanvasToCell(pos)
	x -= len(text) / 2
	for i, r := range text {
		g.set(x+i, y, r, wheelANSI)
	}
}

func (g *cellGrid) drawPrimitive(prim Primitive) {
	switch p := prim.(type) {
	case BackgroundPrim:
		// The terminal keeps its own background; gradients are for PNG.
	case CirclePrim:
		g.drawCircle(p.Center, p.Radius)
	case MarkerPrim:
		g.setPoint(p.Center, 'o', wheelANSI)
	case LabelPrim:
		g.drawLabel(p.Pos, p.Text)
	case SegmentPrim:
		color := palette[p.Color%numColors].ANSI
		r := '•'
		if p.Preview {
			color = previewANSI
			r = '◦'
		}
		g.drawSegment(p.From, p.To, r, color)
	}
}

var cellStyles = map[string]lipgloss.Style{}

func styleFor(color string) lipgloss.Style {
	if s, ok := cellStyles[color]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	cellStyles[color] = s
	return s
}

// RenderCells paints the primitive list into a width×height cell grid and
// returns one string per row, colored with lipgloss. The cursor overlay is
// drawn last, on top of everything.
func RenderCells(prims []Primitive, width, height int, view Viewport, cursorX, cursorY int, showCursor bool) []string {
	g := newCellGrid(width, height, view)
	for _, prim := range prims {
		g.drawPrimitive(prim)
	}
	if showCursor {
		g.set(cursorX, cursorY, '█', "")
	}

	rows := make([]string, g.height)
	for y := 0; y < g.height; y++ {
		var b strings.Builder
		runStart := 0
		runColor := g.colors[y][0]
		flush := func(end int) {
			text := string(g.cells[y][runStart:end])
			if runColor == "" {
				b.WriteString(text)
			} else {
				b.WriteString(styleFor(runColor).Render(text))
			}
		}
		for x := 1; x < g.width; x++ {
			if g.colors[y][x] != runColor {
				flush(x)
				runStart = x
				runColor = g.colors[y][x]
			}
		}
		flush(g.width)
		rows[y] = b.String()
	}
	return rows
}
