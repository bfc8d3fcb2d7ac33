package main

// Segment is a line between two canvas points.
type Segment struct {
	From Point
	To   Point
}

// DrawnLine is one manually placed segment. Color indexes the palette;
// lines are immutable once committed to the manual layer.
type DrawnLine struct {
	From      Point
	To        Point
	Color     int
	Thickness float64
}

// Layout fixes where the wheel sits in canvas space. Both render surfaces
// and the snapping path share one layout so coordinates agree everywhere.
type Layout struct {
	Center Point
	Radius float64
}

func defaultLayout() Layout {
	return Layout{
		Center: Pt(canvasSize/2, canvasSize/2),
		Radius: canvasSize/2 - circleMargin,
	}
}

// Primitive is one drawable element of the composed scene. The scene
// composer emits an ordered back-to-front list of these; render surfaces
// paint them without knowing anything about rules or history.
type Primitive interface {
	primitive()
}

// BackgroundPrim fills the whole surface with a vertical gradient.
// Top == Bottom gives a flat fill.
type BackgroundPrim struct {
	Top    string // hex color, e.g. "#1d2021"
	Bottom string
}

// CirclePrim is the base circle outline.
type CirclePrim struct {
	Center Point
	Radius float64
}

// MarkerPrim is one division point dot.
type MarkerPrim struct {
	Center Point
	Index  int
}

// LabelPrim is a division index label positioned just outside the circle.
type LabelPrim struct {
	Pos  Point
	Text string
}

// SegmentPrim is a stroked line. Preview marks the transient in-progress
// stroke candidate, which the PNG surface never receives.
type SegmentPrim struct {
	From      Point
	To        Point
	Color     int
	Thickness float64
	Preview   bool
}

func (BackgroundPrim) primitive() {}
func (CirclePrim) primitive()     {}
func (MarkerPrim) primitive()     {}
func (LabelPrim) primitive()      {}
func (SegmentPrim) primitive()    {}
