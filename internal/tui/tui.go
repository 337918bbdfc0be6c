package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tatianab/treasure-hunter/internal/engine"
)

// Messages the game goroutine sends into the program.
type presentMsg struct {
	text  string
	style engine.Style
}

type clearMsg struct{}

type gameOverMsg struct {
	state engine.State
	err   error
}

// Bridge lets the game loop, running on its own goroutine, draw into a
// bubbletea program and read the lines the player submits.
type Bridge struct {
	send  func(tea.Msg)
	lines <-chan string
}

func (b *Bridge) Present(text string, style engine.Style) {
	b.send(presentMsg{text: text, style: style})
}

func (b *Bridge) Clear() {
	b.send(clearMsg{})
}

// ReadLine blocks until the player presses Enter or ctx is done.
func (b *Bridge) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line := <-b.lines:
		return line, nil
	}
}

type model struct {
	textInput textinput.Model
	viewport  viewport.Model
	ready     bool
	screen    []string
	lines     chan<- string
	cancel    context.CancelFunc
	over      bool
	result    string
	width     int
	height    int
}

func newModel(lines chan<- string, cancel context.CancelFunc) model {
	ti := textinput.New()
	ti.Placeholder = "Type a command and press Enter..."
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40

	return model{
		textInput: ti,
		lines:     lines,
		cancel:    cancel,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancel()
			return m, tea.Quit

		case tea.KeyEnter:
			if m.over {
				return m, tea.Quit
			}
			line := m.textInput.Value()
			m.textInput.Reset()
			m.screen = append(m.screen, userStyle.Render("> "+line))
			m.refresh()
			// Lines typed while the game is not waiting for input are dropped.
			select {
			case m.lines <- line:
			default:
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		m.refresh()

	case presentMsg:
		m.screen = append(m.screen, styleFor(msg.style).Width(m.width).Render(msg.text))
		m.refresh()
		return m, nil

	case clearMsg:
		m.screen = nil
		m.refresh()
		return m, nil

	case gameOverMsg:
		m.over = true
		m.result = outcomeText(msg.state, msg.err)
		m.textInput.Placeholder = "Press Enter to leave."
		return m, nil
	}

	if !m.over {
		m.textInput, cmd = m.textInput.Update(msg)
	}
	return m, cmd
}

func (m *model) refresh() {
	m.viewport.SetContent(strings.Join(m.screen, "\n"))
	m.viewport.GotoBottom()
}

func (m model) View() string {
	var help string
	if m.over {
		help = helpStyle.Render(m.result + " Press Enter to leave.")
	} else {
		help = helpStyle.Render("Type a letter from the menu. Esc quits.")
	}

	return "\n" + lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(),
		"\n"+m.textInput.View(),
		"\n"+help,
	) + "\n"
}

func outcomeText(state engine.State, err error) string {
	switch {
	case err != nil && !errors.Is(err, context.Canceled):
		return fmt.Sprintf("The game stopped: %v.", err)
	case state == engine.StateWon:
		return "You won!"
	case state == engine.StateBankrupt:
		return "You went bankrupt."
	default:
		return "Thanks for playing."
	}
}

type result struct {
	state engine.State
	err   error
}

// Run plays one session in a full-screen terminal UI. The game loop runs on
// its own goroutine and talks to the program through a Bridge.
func Run(ctx context.Context, opts engine.Options) (*engine.Game, engine.State, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string, 1)
	bridge := &Bridge{lines: lines}
	opts.Display, opts.Input = bridge, bridge
	g, err := engine.New(opts)
	if err != nil {
		return nil, engine.StateWelcome, err
	}

	p := tea.NewProgram(newModel(lines, cancel), tea.WithAltScreen())
	bridge.send = p.Send

	done := make(chan result, 1)
	go func() {
		state, err := g.Run(ctx)
		p.Send(gameOverMsg{state: state, err: err})
		done <- result{state: state, err: err}
	}()

	_, runErr := p.Run()
	cancel()
	res := <-done
	if runErr != nil {
		return g, res.state, runErr
	}
	return g, res.state, res.err
}
