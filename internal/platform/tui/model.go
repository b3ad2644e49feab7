package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-collide/internal/collision"
	"github.com/vovakirdan/tui-collide/internal/core"
	"github.com/vovakirdan/tui-collide/internal/geo"
	"github.com/vovakirdan/tui-collide/internal/room"
)

// probeStep is how far one key press moves the probe.
const probeStep = 1.0

// chromeRows are the terminal rows used below the screen.
const chromeRows = 3

// maxListedHits caps the hit names printed in the status bar.
const maxListedHits = 6

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	hitStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model for viewing a live room.
// Each tick runs one room.Update; every view renders the room and a probe
// shape the user moves around, highlighting what the probe collides with.
type Model struct {
	room      *room.Room
	screen    *core.Screen
	painter   *core.Painter
	keyMapper *KeyMapper
	help      help.Model
	interval  time.Duration
	maxWidth  int
	maxHeight int

	probeKind geo.Kind
	probeX    float64
	probeY    float64
	hits      []collision.Result
	queryErr  error

	input    core.InputFrame
	frame    int
	updates  int
	paused   bool
	quitting bool
}

// NewModel creates a viewer for r on a width x height screen.
// Window resizes shrink the screen but never grow it past that size.
func NewModel(r *room.Room, width, height int, interval time.Duration) Model {
	screen := core.NewScreen(width, height)
	painter := core.NewPainter(screen)
	for e := range r.All() {
		e.Drawer = painter
	}

	m := Model{
		room:      r,
		screen:    screen,
		painter:   painter,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		interval:  interval,
		maxWidth:  width,
		maxHeight: height,
		probeKind: geo.KindRect,
		probeX:    float64(width / 2),
		probeY:    float64(height / 2),
		input:     core.NewInputFrame(),
	}
	m.help.Width = width
	m.refresh()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.screen.Resize(min(msg.Width, m.maxWidth), min(max(msg.Height-chromeRows, 1), m.maxHeight))
		m.refresh()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey applies one key press.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}

	dx, dy := m.input.Delta()
	m.probeX += dx * probeStep
	m.probeY += dy * probeStep

	switch {
	case m.input.Has(core.ActionCycle):
		m.probeKind = (m.probeKind + 1) % geo.KindCount
	case m.input.Has(core.ActionPause):
		m.paused = !m.paused
	case m.input.Has(core.ActionStep):
		if m.paused {
			m.step()
		}
	case m.input.Has(core.ActionHelp):
		m.help.ShowAll = !m.help.ShowAll
	}

	m.input.Clear()
	m.refresh()
	return m, nil
}

// handleTick advances one frame unless paused.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused {
		m.step()
		m.refresh()
	}
	return m, tickCmd(m.interval)
}

func (m *Model) step() {
	m.updates += m.room.Update()
	m.frame++

	// Entities spawned during the frame need a drawer.
	for e := range m.room.All() {
		if e.Drawer == nil {
			e.Drawer = m.painter
		}
	}
}

// Frames returns the frames run and the updater calls they made.
func (m Model) Frames() (frames, updates int) {
	return m.frame, m.updates
}

// Probe returns the probe shape at its current position.
func (m Model) Probe() geo.Shape {
	return probeShape(m.probeKind, m.probeX, m.probeY)
}

// Hits returns the entities the probe collided with on the last refresh.
func (m Model) Hits() []collision.Result {
	return m.hits
}

// refresh queries the probe and redraws the screen.
func (m *Model) refresh() {
	probe := m.Probe()
	m.hits, m.queryErr = collision.CollidesMultiple(m.room, probe)

	highlight := make(map[*room.Entity]bool, len(m.hits))
	for _, e := range collision.Entities(m.hits) {
		highlight[e] = true
	}
	m.painter.Highlight = highlight

	m.screen.Clear()
	m.room.Render()
	m.screen.DrawShape(probe, '@', core.ColorWhite)
	if m.paused {
		m.screen.DrawText(1, 0, " PAUSED ", core.ColorYellow)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status()))
	b.WriteString(" ")
	b.WriteString(m.hitLine())
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keyMapper.Keys())))
	return b.String()
}

func (m Model) status() string {
	state := "running"
	if m.paused {
		state = "paused"
	}
	return fmt.Sprintf("%s  %s  frame %d  entities %d  probe %s",
		m.room.Name(), state, m.frame, m.room.Len(), geo.Format(m.Probe()))
}

func (m Model) hitLine() string {
	if m.queryErr != nil {
		return hitStyle.Render("cannot determine: " + m.queryErr.Error())
	}
	if len(m.hits) == 0 {
		return dimStyle.Render("no hits")
	}

	names := make([]string, 0, maxListedHits)
	for i, res := range m.hits {
		if i == maxListedHits {
			names = append(names, fmt.Sprintf("+%d", len(m.hits)-maxListedHits))
			break
		}
		names = append(names, fmt.Sprintf("%s[%s]", res.Entity.Name, res.Name()))
	}
	return hitStyle.Render(fmt.Sprintf("%d hits: %s", len(m.hits), strings.Join(names, " ")))
}

// probeShape builds the probe for a kind, anchored at (x, y).
func probeShape(k geo.Kind, x, y float64) geo.Shape {
	switch k {
	case geo.KindRect:
		return geo.NewRect(x, y, 6, 3)
	case geo.KindCircle:
		return geo.NewCircle(x, y, 2)
	case geo.KindLine:
		return geo.NewLine(x, y, x+8, y+4)
	default:
		return geo.Pt(x, y)
	}
}

// Run starts the Bubble Tea program with a viewer for r.
func Run(r *room.Room, width, height int, interval time.Duration) error {
	model := NewModel(r, width, height, interval)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
