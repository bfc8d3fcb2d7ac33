package main

// Viewport maps the logical canvas onto a grid of terminal cells. Cells
// are taller than they are wide, so the vertical scale carries the aspect
// factor to keep the wheel round on screen.
type Viewport struct {
	Width  int
	Height int
	scale  float64
	offX   float64
	offY   float64
}

func NewViewport(width, height int) Viewport {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	sx := float64(width) / canvasSize
	sy := float64(height) * cellAspect / canvasSize
	scale := sx
	if sy < sx {
		scale = sy
	}
	// Center the canvas in the viewport.
	offX := (float64(width) - canvasSize*scale) / 2
	offY := (float64(height) - canvasSize*scale/cellAspect) / 2
	return Viewport{Width: width, Height: height, scale: scale, offX: offX, offY: offY}
}

func (v Viewport) CanvasToCell(p Point) (int, int) {
	return int(p.X*v.scale + v.offX), int(p.Y*v.scale/cellAspect + v.offY)
}

// CellToCanvas maps a cell back to canvas coordinates, aimed at the cell
// center so a round trip stays inside the same cell.
func (v Viewport) CellToCanvas(x, y int) Point {
	if v.scale == 0 {
		return Point{}
	}
	return Point{
		X: (float64(x) + 0.5 - v.offX) / v.scale,
		Y: (float64(y) + 0.5 - v.offY) * cellAspect / v.scale,
	}
}

func (m *model) ensureCursorInBounds() {
	if m.cursorX < 0 {
		m.cursorX = 0
	}
	if m.cursorY < 0 {
		m.cursorY = 0
	}
	if m.width > 0 && m.cursorX >= m.width {
		m.cursorX = m.width - 1
	}
	if maxY := m.viewHeight(); maxY > 0 && m.cursorY >= maxY {
		m.cursorY = maxY - 1
	}
}

func (m *model) moveCursor(dx, dy int) {
	m.cursorX += dx
	m.cursorY += dy
	m.ensureCursorInBounds()
}
