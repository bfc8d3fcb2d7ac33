package main

import (
	"fmt"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	exportSize     = 1200
	exportFontSize = 16.0
	markerRadius   = 4.0
)

// ExportPNG paints a committed primitive list onto a fresh raster surface
// and writes it to filename. The list must come from ComposeCommitted so
// no stroke preview leaks into the file.
func ExportPNG(filename string, prims []Primitive) error {
	dc := gg.NewContext(exportSize, exportSize)

	// Everything composes in canvas space; scale once up front.
	scale := float64(exportSize) / canvasSize
	dc.Scale(scale, scale)

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    exportFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	for _, prim := range prims {
		if err := drawPrimitivePNG(dc, prim); err != nil {
			return err
		}
	}

	return dc.SavePNG(filename)
}

func drawPrimitivePNG(dc *gg.Context, prim Primitive) error {
	switch p := prim.(type) {
	case BackgroundPrim:
		top, err := colorful.Hex(p.Top)
		if err != nil {
			return fmt.Errorf("bad background color %q: %v", p.Top, err)
		}
		bottom, err := colorful.Hex(p.Bottom)
		if err != nil {
			return fmt.Errorf("bad background color %q: %v", p.Bottom, err)
		}
		grad := gg.NewLinearGradient(0, 0, 0, canvasSize)
		grad.AddColorStop(0, top)
		grad.AddColorStop(1, bottom)
		dc.SetFillStyle(grad)
		dc.DrawRectangle(0, 0, canvasSize, canvasSize)
		dc.Fill()

	case CirclePrim:
		wheel, _ := colorful.Hex(wheelHex)
		dc.SetColor(wheel)
		dc.SetLineWidth(1.5)
		dc.DrawCircle(p.Center.X, p.Center.Y, p.Radius)
		dc.Stroke()

	case MarkerPrim:
		wheel, _ := colorful.Hex(wheelHex)
		dc.SetColor(wheel)
		dc.DrawCircle(p.Center.X, p.Center.Y, markerRadius)
		dc.Fill()

	case LabelPrim:
		wheel, _ := colorful.Hex(wheelHex)
		dc.SetColor(wheel)
		dc.DrawStringAnchored(p.Text, p.Pos.X, p.Pos.Y, 0.5, 0.5)

	case SegmentPrim:
		if p.Preview {
			return nil
		}
		dc.SetColor(paletteColor(p.Color))
		if p.From == p.To {
			// offset-0 self loop, painted as a dot
			dc.DrawCircle(p.From.X, p.From.Y, p.Thickness)
			dc.Fill()
			return nil
		}
		dc.SetLineWidth(p.Thickness)
		dc.DrawLine(p.From.X, p.From.Y, p.To.X, p.To.Y)
		dc.Stroke()
	}
	return nil
}
