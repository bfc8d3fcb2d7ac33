package main

type Mode int

const (
	ModeStartup Mode = iota
	ModeNormal
	ModeRuleInput
	ModeRuleRemove
	ModeFileInput
	ModeConfirm
)

type DrawMode int

const (
	DrawPointToPoint DrawMode = iota
	DrawFreehand
)

type ConfirmAction int

const (
	ConfirmResetDrawing ConfirmAction = iota
	ConfirmResetAll
	ConfirmOverwriteFile
	ConfirmQuit
)

const (
	minDivisions     = 3
	maxDivisions     = 36
	defaultDivisions = 12

	snapRadius = 20.0 // canvas px within which input snaps to a division point

	minThickness     = 1.0
	maxThickness     = 5.0
	defaultThickness = 2.0

	numColors    = 8
	defaultColor = 0

	// Logical canvas the scene is composed in. The terminal view and the
	// PNG export both map this space onto their own surface.
	canvasSize   = 600.0
	circleMargin = 40.0

	// Terminal cells are roughly twice as tall as wide.
	cellAspect = 2.0
)
