package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countPrims(prims []Primitive) (circles, markers, labels, segments, previews int) {
	for _, p := range prims {
		switch p := p.(type) {
		case CirclePrim:
			circles++
		case MarkerPrim:
			markers++
		case LabelPrim:
			labels++
		case SegmentPrim:
			if p.Preview {
				previews++
			} else {
				segments++
			}
		}
	}
	return
}

func TestComposeSceneIsIdempotent(t *testing.T) {
	canvas := NewCanvas()
	layout := defaultLayout()
	pen := NewPen(canvas, layout)
	pen.Enabled = true

	_, err := canvas.AddRule("0+5")
	require.NoError(t, err)
	canvas.AddLine(DrawnLine{From: Pt(10, 10), To: Pt(50, 50), Color: 2, Thickness: 2})

	first := ComposeScene(canvas, pen, layout)
	second := ComposeScene(canvas, pen, layout)
	assert.Equal(t, first, second, "same state must compose identically")
}

func TestComposeSceneLayerOrder(t *testing.T) {
	canvas := NewCanvas()
	layout := defaultLayout()

	canvas.AddRule("0+5")
	canvas.AddLine(DrawnLine{From: Pt(10, 10), To: Pt(50, 50), Color: 1, Thickness: 2})

	prims := ComposeScene(canvas, nil, layout)
	require.NotEmpty(t, prims)

	_, isBackground := prims[0].(BackgroundPrim)
	assert.True(t, isBackground, "background is the back-most layer")

	// Rule segments come before manual lines: the last segment belongs to
	// the manual layer.
	last, ok := prims[len(prims)-1].(SegmentPrim)
	require.True(t, ok)
	assert.Equal(t, 1, last.Color)
	assert.Equal(t, Pt(10, 10), last.From)
}

func TestComposeSceneCounts(t *testing.T) {
	canvas := NewCanvas()
	layout := defaultLayout()
	n := canvas.Divisions()

	canvas.AddRule("0+3")
	canvas.AddRule("0+5")
	canvas.AddLine(DrawnLine{From: Pt(1, 1), To: Pt(2, 2)})

	circles, markers, labels, segments, previews := countPrims(ComposeScene(canvas, nil, layout))
	assert.Equal(t, 1, circles)
	assert.Equal(t, n, markers)
	assert.Equal(t, n, labels)
	assert.Equal(t, 2*n+1, segments, "n per rule plus the manual line")
	assert.Zero(t, previews)
}

func TestPatternOnlyHidesWheel(t *testing.T) {
	canvas := NewCanvas()
	layout := defaultLayout()
	canvas.AddRule("0+5")

	canvas.TogglePatternOnly()
	circles, markers, labels, segments, _ := countPrims(ComposeScene(canvas, nil, layout))
	assert.Zero(t, circles)
	assert.Zero(t, markers)
	assert.Zero(t, labels)
	assert.Equal(t, canvas.Divisions(), segments, "rule lines survive pattern-only")
}

func TestRuleLinesToggle(t *testing.T) {
	canvas := NewCanvas()
	layout := defaultLayout()
	canvas.AddRule("0+5")
	canvas.AddLine(DrawnLine{From: Pt(1, 1), To: Pt(2, 2)})

	canvas.ToggleRuleLines()
	_, _, _, segments, _ := countPrims(ComposeScene(canvas, nil, layout))
	assert.Equal(t, 1, segments, "only the manual line remains")

	canvas.ToggleRuleLines()
	_, _, _, segments, _ = countPrims(ComposeScene(canvas, nil, layout))
	assert.Equal(t, canvas.Divisions()+1, segments)
}

func TestComposeSceneIncludesPreviewOnlyDuringStroke(t *testing.T) {
	canvas := NewCanvas()
	layout := defaultLayout()
	pen := NewPen(canvas, layout)
	pen.Enabled = true

	_, _, _, _, previews := countPrims(ComposeScene(canvas, pen, layout))
	assert.Zero(t, previews)

	pen.BeginStroke(Pt(10, 10))
	pen.ContinueStroke(Pt(80, 80))
	_, _, _, _, previews = countPrims(ComposeScene(canvas, pen, layout))
	assert.Equal(t, 1, previews)

	pen.EndStroke(Pt(80, 80))
	_, _, _, _, previews = countPrims(ComposeScene(canvas, pen, layout))
	assert.Zero(t, previews)
}

func TestComposeCommittedNeverCarriesPreview(t *testing.T) {
	canvas := NewCanvas()
	layout := defaultLayout()
	pen := NewPen(canvas, layout)
	pen.Enabled = true

	pen.BeginStroke(Pt(10, 10))
	pen.ContinueStroke(Pt(80, 80))

	_, _, _, _, previews := countPrims(ComposeCommitted(canvas, layout))
	assert.Zero(t, previews, "export surface reads committed state only")
}

func TestRenderCellsDeterministic(t *testing.T) {
	canvas := NewCanvas()
	layout := defaultLayout()
	canvas.AddRule("0+5")

	view := NewViewport(80, 24)
	prims := ComposeScene(canvas, nil, layout)

	a := RenderCells(prims, 80, 24, view, 0, 0, false)
	b := RenderCells(prims, 80, 24, view, 0, 0, false)
	require.Equal(t, a, b)
	require.Len(t, a, 24)
}
