package main

// History is a linear undo/redo over full manual-layer snapshots.
// Pushing a new snapshot discards any redo branch.
type History struct {
	undoStack [][]DrawnLine
	redoStack [][]DrawnLine
}

func (h *History) Push(snapshot []DrawnLine) {
	h.undoStack = append(h.undoStack, snapshot)
	h.redoStack = h.redoStack[:0]
}

func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// Undo trades the current layer for the most recent snapshot. The bool is
// false when there is nothing to undo and current comes back unchanged.
func (h *History) Undo(current []DrawnLine) ([]DrawnLine, bool) {
	if len(h.undoStack) == 0 {
		return current, false
	}
	last := len(h.undoStack) - 1
	snapshot := h.undoStack[last]
	h.undoStack = h.undoStack[:last]
	h.redoStack = append(h.redoStack, current)
	return snapshot, true
}

func (h *History) Redo(current []DrawnLine) ([]DrawnLine, bool) {
	if len(h.redoStack) == 0 {
		return current, false
	}
	last := len(h.redoStack) - 1
	snapshot := h.redoStack[last]
	h.redoStack = h.redoStack[:last]
	h.undoStack = append(h.undoStack, current)
	return snapshot, true
}

func (h *History) Clear() {
	h.undoStack = h.undoStack[:0]
	h.redoStack = h.redoStack[:0]
}

// Pen drives manual drawing on a Canvas: the stroke state machine plus the
// undo history over the manual layer. One Pen per Canvas.
type Pen struct {
	canvas  *Canvas
	layout  Layout
	history History

	Enabled   bool
	Mode      DrawMode
	Color     int
	Thickness float64

	active    bool
	start     Point
	current   Point
	last      Point // freehand: tail of the committed path
	preStroke []DrawnLine
}

func NewPen(canvas *Canvas, layout Layout) *Pen {
	return &Pen{
		canvas:    canvas,
		layout:    layout,
		Color:     defaultColor,
		Thickness: defaultThickness,
	}
}

func (p *Pen) snap(pt Point) Point {
	return SnapToPoint(pt, p.canvas.Divisions(), p.layout.Center, p.layout.Radius, snapRadius)
}

// BeginStroke starts a stroke at pt. A no-op while drawing is disabled or
// a stroke is already active.
func (p *Pen) BeginStroke(pt Point) {
	if !p.Enabled || p.active {
		return
	}
	p.active = true
	switch p.Mode {
	case DrawPointToPoint:
		p.start = p.snap(pt)
		p.current = p.start
	case DrawFreehand:
		// Freehand commits micro-segments as the pointer moves, so the
		// undo snapshot is taken up front and pushed once at EndStroke.
		p.preStroke = p.canvas.CloneLines()
		p.last = pt
	}
}

// ContinueStroke feeds pointer motion into the active stroke.
func (p *Pen) ContinueStroke(pt Point) {
	if !p.active {
		return
	}
	switch p.Mode {
	case DrawPointToPoint:
		p.current = p.snap(pt)
	case DrawFreehand:
		if pt == p.last {
			return
		}
		p.canvas.AddLine(DrawnLine{
			From:      p.last,
			To:        pt,
			Color:     p.Color,
			Thickness: p.Thickness,
		})
		p.last = pt
	}
}

// EndStroke closes the stroke. Release position is handled exactly like
// any motion point, inside the viewport or not.
func (p *Pen) EndStroke(pt Point) {
	if !p.active {
		return
	}
	switch p.Mode {
	case DrawPointToPoint:
		p.active = false
		end := p.snap(pt)
		p.history.Push(p.canvas.CloneLines())
		p.canvas.AddLine(DrawnLine{
			From:      p.start,
			To:        end,
			Color:     p.Color,
			Thickness: p.Thickness,
		})
	case DrawFreehand:
		p.ContinueStroke(pt)
		p.active = false
		p.history.Push(p.preStroke)
		p.preStroke = nil
	}
}

// CancelStroke abandons an in-progress stroke without committing anything.
// Freehand micro-segments already on the canvas roll back to the
// pre-stroke layer.
func (p *Pen) CancelStroke() {
	if !p.active {
		return
	}
	p.active = false
	if p.Mode == DrawFreehand && p.preStroke != nil {
		p.canvas.SetLines(p.preStroke)
		p.preStroke = nil
	}
}

func (p *Pen) StrokeActive() bool {
	return p.active
}

// PreviewSegment returns the candidate segment of an active point-to-point
// stroke. Freehand has no preview, its segments are already committed.
func (p *Pen) PreviewSegment() (Segment, bool) {
	if !p.active || p.Mode != DrawPointToPoint {
		return Segment{}, false
	}
	return Segment{From: p.start, To: p.current}, true
}

func (p *Pen) Undo() bool {
	restored, ok := p.history.Undo(p.canvas.CloneLines())
	if ok {
		p.canvas.SetLines(restored)
	}
	return ok
}

func (p *Pen) Redo() bool {
	restored, ok := p.history.Redo(p.canvas.CloneLines())
	if ok {
		p.canvas.SetLines(restored)
	}
	return ok
}

func (p *Pen) CanUndo() bool {
	return p.history.CanUndo()
}

func (p *Pen) CanRedo() bool {
	return p.history.CanRedo()
}

// ResetDrawing clears the manual layer as a single undoable step.
func (p *Pen) ResetDrawing() {
	p.CancelStroke()
	p.history.Push(p.canvas.CloneLines())
	p.canvas.SetLines(nil)
}

func (p *Pen) CycleColor() {
	p.Color = (p.Color + 1) % numColors
}

func (p *Pen) AdjustThickness(delta float64) {
	p.Thickness += delta
	if p.Thickness < minThickness {
		p.Thickness = minThickness
	}
	if p.Thickness > maxThickness {
		p.Thickness = maxThickness
	}
}
