package term

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/user-none/infoscreens/screen"
)

// FrameInterval is the time between ticks.
const FrameInterval = time.Second / 30

// Director receives input and a call per frame. The preview ends once it
// reports Finished.
type Director interface {
	HandleInput(b screen.Button)
	Update()
	Finished() bool
}

type tickMsg time.Time

// Model is the bubbletea model showing a host.
type Model struct {
	host     *Host
	director Director
	renderer *Renderer
	quitting bool
}

// NewModel creates a model drawing host with the given colour profile.
func NewModel(host *Host, director Director, profile termenv.Profile) Model {
	return Model{
		host:     host,
		director: director,
		renderer: NewRenderer(profile),
	}
}

var keyButtons = map[string]screen.Button{
	"up":    screen.ButtonUp,
	"w":     screen.ButtonUp,
	"k":     screen.ButtonUp,
	"down":  screen.ButtonDown,
	"s":     screen.ButtonDown,
	"j":     screen.ButtonDown,
	"left":  screen.ButtonLeft,
	"a":     screen.ButtonLeft,
	"h":     screen.ButtonLeft,
	"right": screen.ButtonRight,
	"d":     screen.ButtonRight,
	"l":     screen.ButtonRight,
	"enter": screen.ButtonA,
	" ":     screen.ButtonA,
	"z":     screen.ButtonA,
	"esc":   screen.ButtonB,
	"x":     screen.ButtonB,
}

func tick() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init starts the frame ticker.
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update routes keys to the director and steps the host each tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		if b, ok := keyButtons[msg.String()]; ok {
			m.director.HandleInput(b)
		}
		return m, nil
	case tickMsg:
		m.host.Step()
		m.director.Update()
		if m.director.Finished() {
			m.quitting = true
			return m, tea.Quit
		}
		return m, tick()
	}
	return m, nil
}

var (
	noticeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#fff609"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
)

// View draws the stage with the notice line and key hints under it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.renderer.Render(m.host.Stage))
	b.WriteString("\n")
	if msg, ok := m.host.Notice(); ok {
		b.WriteString(noticeStyle.Render(msg))
	}
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("Move: arrows/WASD | A: Enter/Z | B: Esc/X | Quit: q"))
	return b.String()
}

// Run shows the host until the user quits, the director finishes or ctx is
// cancelled.
func Run(ctx context.Context, host *Host, director Director, profile termenv.Profile) error {
	m := NewModel(host, director, profile)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("terminal preview: %w", err)
	}
	return nil
}
