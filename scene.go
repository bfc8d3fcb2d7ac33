package main

import "strconv"

// labelOffset pushes index labels just outside the circle so they do not
// collide with the markers.
const labelOffset = 18.0

// ComposeScene flattens the canvas state into an ordered back-to-front
// primitive list. It is a pure function of its arguments: the same state
// always composes to the same list, so callers may recompose freely after
// any mutation.
func ComposeScene(c *Canvas, pen *Pen, layout Layout) []Primitive {
	prims := []Primitive{
		BackgroundPrim{Top: backgroundTop, Bottom: backgroundBottom},
	}

	n := c.Divisions()

	if !c.PatternOnly() {
		prims = append(prims, CirclePrim{Center: layout.Center, Radius: layout.Radius})
		for i := 0; i < n; i++ {
			pt := DivisionPoint(i, n, layout.Center, layout.Radius)
			prims = append(prims, MarkerPrim{Center: pt, Index: i})
		}
		for i := 0; i < n; i++ {
			pos := DivisionPoint(i, n, layout.Center, layout.Radius+labelOffset)
			prims = append(prims, LabelPrim{Pos: pos, Text: strconv.Itoa(i)})
		}
	}

	if c.ShowRuleLines() {
		for _, rule := range c.Rules().Rules() {
			for _, seg := range rule.Expand(n, layout.Center, layout.Radius) {
				prims = append(prims, SegmentPrim{
					From:      seg.From,
					To:        seg.To,
					Color:     defaultColor,
					Thickness: 1,
				})
			}
		}
	}

	for _, line := range c.Lines() {
		prims = append(prims, SegmentPrim{
			From:      line.From,
			To:        line.To,
			Color:     line.Color,
			Thickness: line.Thickness,
		})
	}

	if pen != nil {
		if seg, ok := pen.PreviewSegment(); ok {
			prims = append(prims, SegmentPrim{
				From:      seg.From,
				To:        seg.To,
				Color:     pen.Color,
				Thickness: pen.Thickness,
				Preview:   true,
			})
		}
	}

	return prims
}

// ComposeCommitted composes the scene without any in-progress preview.
// Image export reads this, never the live scene.
func ComposeCommitted(c *Canvas, layout Layout) []Primitive {
	return ComposeScene(c, nil, layout)
}
