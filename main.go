package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	p := tea.NewProgram(
		initialModel(),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

type model struct {
	width   int
	height  int
	cursorX int
	cursorY int

	canvas *Canvas
	pen    *Pen
	layout Layout

	mode          Mode
	help          bool
	input         string
	confirmAction ConfirmAction
	pendingExport string

	errorMessage   string
	successMessage string

	config *Config
}

func initialModel() model {
	config := loadConfig()
	canvas := NewCanvas()
	canvas.SetDivisions(config.Divisions)
	layout := defaultLayout()
	pen := NewPen(canvas, layout)
	pen.Color = config.Color
	pen.Thickness = config.Thickness

	return model{
		canvas: canvas,
		pen:    pen,
		layout: layout,
		mode:   ModeStartup,
		config: config,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

// viewHeight is the cell rows available to the drawing surface: the full
// terminal minus the message line and the status bar.
func (m *model) viewHeight() int {
	h := m.height - 2
	if h < 1 {
		h = 1
	}
	return h
}

func (m *model) viewport() Viewport {
	return NewViewport(m.width, m.viewHeight())
}

func (m *model) cursorCanvasPoint() Point {
	return m.viewport().CellToCanvas(m.cursorX, m.cursorY)
}

func (m *model) clearMessages() {
	m.errorMessage = ""
	m.successMessage = ""
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInBounds()
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModeNormal {
		return m, nil
	}
	if msg.Y >= m.viewHeight() {
		// Clicks on the status area are ignored, but a release still has
		// to close an active stroke.
		if msg.Action == tea.MouseActionRelease && m.pen.StrokeActive() {
			m.pen.EndStroke(m.viewport().CellToCanvas(msg.X, msg.Y))
		}
		return m, nil
	}

	m.cursorX = msg.X
	m.cursorY = msg.Y
	m.ensureCursorInBounds()
	pt := m.viewport().CellToCanvas(msg.X, msg.Y)

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.clearMessages()
		m.pen.BeginStroke(pt)
	case msg.Action == tea.MouseActionMotion:
		m.pen.ContinueStroke(pt)
	case msg.Action == tea.MouseActionRelease:
		m.pen.EndStroke(pt)
	}
	return m, nil
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.help {
		switch msg.String() {
		case "escape", "q", "?":
			m.help = false
		}
		return m, nil
	}

	switch m.mode {
	case ModeStartup:
		m.mode = ModeNormal
		return m, nil
	case ModeConfirm:
		return m.updateConfirm(msg)
	case ModeRuleInput, ModeRuleRemove, ModeFileInput:
		return m.updateTextInput(msg)
	}
	return m.updateNormal(msg)
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.mode = ModeNormal
		switch m.confirmAction {
		case ConfirmResetDrawing:
			m.pen.ResetDrawing()
			m.successMessage = "drawing cleared"
		case ConfirmResetAll:
			m.resetAll()
			m.successMessage = "reset to defaults"
		case ConfirmOverwriteFile:
			m.doExport(m.pendingExport)
		case ConfirmQuit:
			return m, tea.Quit
		}
	case "n", "N", "escape", "q":
		m.mode = ModeNormal
	}
	return m, nil
}

func (m model) updateTextInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ModeNormal
		m.input = ""
	case tea.KeyEnter:
		text := strings.TrimSpace(m.input)
		mode := m.mode
		m.mode = ModeNormal
		m.input = ""
		switch mode {
		case ModeRuleInput:
			m.addRule(text)
		case ModeRuleRemove:
			m.removeRule(text)
		case ModeFileInput:
			if text != "" {
				m.requestExport(text)
			}
		}
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}
	return m, nil
}

func (m model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.clearMessages()

	switch msg.String() {
	case "q":
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return m, nil
		}
		return m, tea.Quit

	case "?":
		m.help = true

	case "h", "left":
		m.moveCursorStroke(-1, 0)
	case "l", "right":
		m.moveCursorStroke(1, 0)
	case "k", "up":
		m.moveCursorStroke(0, -1)
	case "j", "down":
		m.moveCursorStroke(0, 1)
	case "H", "shift+left":
		m.moveCursorStroke(-5, 0)
	case "L", "shift+right":
		m.moveCursorStroke(5, 0)
	case "K", "shift+up":
		m.moveCursorStroke(0, -3)
	case "J", "shift+down":
		m.moveCursorStroke(0, 3)

	case "enter", " ":
		pt := m.cursorCanvasPoint()
		if m.pen.StrokeActive() {
			m.pen.EndStroke(pt)
		} else {
			m.pen.BeginStroke(pt)
		}

	case "d":
		m.pen.CancelStroke()
		m.pen.Enabled = !m.pen.Enabled

	case "m":
		m.pen.CancelStroke()
		if m.pen.Mode == DrawPointToPoint {
			m.pen.Mode = DrawFreehand
		} else {
			m.pen.Mode = DrawPointToPoint
		}

	case "a":
		m.mode = ModeRuleInput
		m.input = ""

	case "x":
		m.mode = ModeRuleRemove
		m.input = ""

	case "v":
		text, err := readClipboardRule()
		if err != nil {
			m.errorMessage = fmt.Sprintf("clipboard: %v", err)
		} else if text == "" {
			m.errorMessage = "clipboard is empty"
		} else {
			m.addRule(text)
		}

	case "Y":
		rules := m.canvas.Rules().Strings()
		if len(rules) == 0 {
			m.errorMessage = "no rules to copy"
		} else if err := writeClipboardRules(rules); err != nil {
			m.errorMessage = fmt.Sprintf("clipboard: %v", err)
		} else {
			m.successMessage = fmt.Sprintf("copied %d rules", len(rules))
		}

	case "[":
		m.canvas.SetDivisions(m.canvas.Divisions() - 1)
	case "]":
		m.canvas.SetDivisions(m.canvas.Divisions() + 1)

	case "c":
		m.pen.CycleColor()
	case "+", "=":
		m.pen.AdjustThickness(1)
	case "-", "_":
		m.pen.AdjustThickness(-1)

	case "p":
		m.canvas.TogglePatternOnly()
	case "t":
		m.canvas.ToggleRuleLines()

	case "u":
		if !m.pen.Undo() {
			m.errorMessage = "nothing to undo"
		}
	case "U", "ctrl+r":
		if !m.pen.Redo() {
			m.errorMessage = "nothing to redo"
		}

	case "D":
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmResetDrawing
		} else {
			m.pen.ResetDrawing()
			m.successMessage = "drawing cleared"
		}

	case "N":
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmResetAll
		} else {
			m.resetAll()
			m.successMessage = "reset to defaults"
		}

	case "e":
		m.mode = ModeFileInput
		m.input = "pattern.png"
	}
	return m, nil
}

// moveCursorStroke moves the cursor and, when a stroke is active, feeds the
// new position into it so the preview tracks keyboard drawing too.
func (m *model) moveCursorStroke(dx, dy int) {
	m.moveCursor(dx, dy)
	if m.pen.StrokeActive() {
		m.pen.ContinueStroke(m.cursorCanvasPoint())
	}
}

func (m *model) addRule(text string) {
	added, err := m.canvas.AddRule(text)
	if err != nil {
		m.errorMessage = err.Error()
		return
	}
	if added {
		m.successMessage = fmt.Sprintf("added rule %s", strings.TrimSpace(text))
	}
	// Duplicates are dropped without comment.
}

func (m *model) removeRule(text string) {
	// Removing a rule that is not in the set is a no-op, not an error.
	if m.canvas.RemoveRule(text) {
		m.successMessage = fmt.Sprintf("removed rule %s", text)
	}
}

func (m *model) resetAll() {
	m.canvas.SetDivisions(defaultDivisions)
	m.canvas.Rules().Clear()
	m.canvas.ResetView()
	m.pen.ResetDrawing()
}

func (m *model) requestExport(filename string) {
	if !strings.HasSuffix(strings.ToLower(filename), ".png") {
		filename += ".png"
	}
	path := m.config.GetSavePath(filename)
	if m.config.Confirmations {
		if _, err := os.Stat(path); err == nil {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmOverwriteFile
			m.pendingExport = filename
			return
		}
	}
	m.doExport(filename)
}

func (m *model) doExport(filename string) {
	path := m.config.GetSavePath(filename)
	prims := ComposeCommitted(m.canvas, m.layout)
	if err := ExportPNG(path, prims); err != nil {
		m.errorMessage = fmt.Sprintf("export failed: %v", err)
		return
	}
	m.successMessage = fmt.Sprintf("exported %s", path)
}

var (
	statusStyle  = lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("252"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("84"))
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.mode == ModeStartup {
		return m.startupView()
	}
	if m.help {
		return m.helpView()
	}

	view := m.viewport()
	prims := ComposeScene(m.canvas, m.pen, m.layout)
	showCursor := m.mode == ModeNormal
	rows := RenderCells(prims, m.width, m.viewHeight(), view, m.cursorX, m.cursorY, showCursor)

	var b strings.Builder
	b.WriteString(strings.Join(rows, "\n"))
	b.WriteString("\n")
	b.WriteString(padTo(m.messageLine(), m.width))
	b.WriteString("\n")
	b.WriteString(m.statusBar())
	return b.String()
}

func (m model) messageLine() string {
	switch m.mode {
	case ModeRuleInput:
		return promptStyle.Render("add rule (start+offset): ") + m.input + "█"
	case ModeRuleRemove:
		return promptStyle.Render("remove rule: ") + m.input + "█"
	case ModeFileInput:
		return promptStyle.Render("export to: ") + m.input + "█"
	case ModeConfirm:
		return promptStyle.Render(m.confirmPrompt() + " (y/n)")
	}
	if m.errorMessage != "" {
		return errorStyle.Render(m.errorMessage)
	}
	if m.successMessage != "" {
		return successStyle.Render(m.successMessage)
	}
	rules := m.canvas.Rules().Strings()
	if len(rules) == 0 {
		return dimStyle.Render("no rules — press a to add one, ? for help")
	}
	return dimStyle.Render("rules: " + strings.Join(rules, "  "))
}

func (m model) confirmPrompt() string {
	switch m.confirmAction {
	case ConfirmResetDrawing:
		return "clear the drawing?"
	case ConfirmResetAll:
		return "reset everything to defaults?"
	case ConfirmOverwriteFile:
		return fmt.Sprintf("overwrite %s?", m.pendingExport)
	case ConfirmQuit:
		return "quit?"
	}
	return "confirm?"
}

func (m model) statusBar() string {
	drawState := "off"
	if m.pen.Enabled {
		drawState = "on"
	}
	modeName := "p2p"
	if m.pen.Mode == DrawFreehand {
		modeName = "free"
	}
	swatch := lipgloss.NewStyle().
		Foreground(lipgloss.Color(palette[m.pen.Color].ANSI)).
		Render("■")
	flags := ""
	if m.canvas.PatternOnly() {
		flags += " pattern-only"
	}
	if !m.canvas.ShowRuleLines() {
		flags += " rules-hidden"
	}

	bar := fmt.Sprintf(" N=%d │ rules:%d │ draw:%s %s │ %s %s │ w=%.0f%s ",
		m.canvas.Divisions(),
		m.canvas.Rules().Len(),
		drawState, modeName,
		swatch, palette[m.pen.Color].Name,
		m.pen.Thickness,
		flags,
	)
	return statusStyle.Render(padTo(bar, m.width))
}

func (m model) startupView() string {
	lines := []string{
		"",
		titleStyle.Render("  thrum"),
		"",
		"  a string-art wheel for your terminal",
		"",
		dimStyle.Render("  divide a circle, connect the points, draw on top"),
		"",
		"  press any key to start, ? for help",
	}
	return strings.Join(lines, "\n")
}

func (m model) helpView() string {
	lines := []string{
		titleStyle.Render("thrum help"),
		"",
		"Rules:",
		"  a          add a rule, written start+offset (example: 0+5)",
		"             every point i gets a line to point (i+offset) mod N",
		"  x          remove a rule by its exact text",
		"  v          paste a rule from the clipboard",
		"  Y          copy all rules to the clipboard",
		"  [ / ]      fewer / more division points (3-36)",
		"",
		"Drawing:",
		"  d          toggle drawing on/off",
		"  m          switch point-to-point / freehand",
		"  mouse      press, drag and release to draw",
		"  h j k l    move the cursor (arrows work too, shift = faster)",
		"  enter      start / finish a stroke at the cursor",
		"  c          next pen color",
		"  + / -      thicker / thinner pen",
		"  u / U      undo / redo",
		"",
		"View:",
		"  p          pattern only (hide circle, markers, labels)",
		"  t          show / hide rule lines",
		"",
		"Other:",
		"  e          export the drawing as PNG",
		"  D          clear the drawing",
		"  N          reset everything to defaults",
		"  q          quit",
		"",
		dimStyle.Render("press escape, q or ? to close help"),
	}
	return strings.Join(lines, "\n")
}

func padTo(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
