// Package tui provides a terminal viewer for documentation pages, with
// glamour-rendered Markdown and a plain-text fallback toggle.
package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Faint(true).
			Padding(0, 1)
)

// keyMap defines the viewer key bindings.
type keyMap struct {
	Up           key.Binding
	Down         key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	ToggleFormat key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		PageUp:       key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		PageDown:     key.NewBinding(key.WithKeys("pgdown", "f"), key.WithHelp("pgdn", "page down")),
		ToggleFormat: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "toggle format")),
		Quit:         key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.ToggleFormat, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.ToggleFormat, k.Quit},
	}
}

// Viewer is a bubbletea model showing one Markdown document.
type Viewer struct {
	title    string
	markdown string

	viewport viewport.Model
	keys     keyMap
	help     help.Model

	glamourStyle string
	rendered     bool
	ready        bool
	width        int
}

// NewViewer builds a viewer for a titled Markdown document.
func NewViewer(title, markdown string) Viewer {
	return Viewer{
		title:        title,
		markdown:     markdown,
		keys:         defaultKeyMap(),
		help:         help.New(),
		glamourStyle: detectGlamourStyle(50 * time.Millisecond),
		rendered:     true,
	}
}

// detectGlamourStyle picks a glamour style from the terminal background.
// GLAMOUR_STYLE overrides detection when set to a concrete value, and a
// timeout keeps unresponsive terminals from hanging startup.
func detectGlamourStyle(timeout time.Duration) string {
	style := os.Getenv("GLAMOUR_STYLE")
	if style != "" && style != "auto" {
		return style
	}

	ch := make(chan string, 1)
	go func() {
		out := termenv.NewOutput(os.Stdout)
		if out.HasDarkBackground() {
			ch <- "dark"
			return
		}
		ch <- "light"
	}()

	select {
	case detected := <-ch:
		return detected
	case <-time.After(timeout):
		return "dark"
	}
}

func (v Viewer) Init() tea.Cmd {
	return nil
}

func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		headerHeight := lipgloss.Height(v.headerView())
		footerHeight := lipgloss.Height(v.footerView())
		contentHeight := msg.Height - headerHeight - footerHeight

		if !v.ready {
			v.viewport = viewport.New(msg.Width, contentHeight)
			v.viewport.MouseWheelEnabled = true
			v.ready = true
		} else {
			v.viewport.Width = msg.Width
			v.viewport.Height = contentHeight
		}
		v.setContent()
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit
		case key.Matches(msg, v.keys.ToggleFormat):
			v.rendered = !v.rendered
			v.setContent()
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

func (v Viewer) View() string {
	if !v.ready {
		return "Loading..."
	}
	return v.headerView() + "\n" + v.viewport.View() + "\n" + v.footerView()
}

func (v *Viewer) setContent() {
	if !v.ready {
		return
	}

	if !v.rendered {
		v.viewport.SetContent(wordwrap.String(v.markdown, v.viewport.Width))
		v.viewport.GotoTop()
		return
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(v.glamourStyle),
		glamour.WithWordWrap(v.viewport.Width),
	)
	if err != nil {
		v.viewport.SetContent(wordwrap.String(v.markdown, v.viewport.Width))
		v.viewport.GotoTop()
		return
	}

	out, err := renderer.Render(v.markdown)
	if err != nil {
		out = wordwrap.String(v.markdown, v.viewport.Width)
	}
	v.viewport.SetContent(out)
	v.viewport.GotoTop()
}

func (v Viewer) headerView() string {
	return titleStyle.Render(v.title)
}

func (v Viewer) footerView() string {
	format := "rendered"
	if !v.rendered {
		format = "raw"
	}
	status := statusStyle.Render(fmt.Sprintf("%3.0f%% · %s", v.viewport.ScrollPercent()*100, format))
	return status + "\n" + v.help.View(v.keys)
}

// Show runs the viewer in the alternate screen until the user quits.
func Show(title, markdown string) error {
	program := tea.NewProgram(NewViewer(title, markdown), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("viewer failed: %w", err)
	}
	return nil
}
