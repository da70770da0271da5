package app

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/statpick/internal/catalog"
	"github.com/abhisek/statpick/internal/router"
	"github.com/abhisek/statpick/internal/screen"
	"github.com/abhisek/statpick/internal/screens/home"
	"github.com/abhisek/statpick/internal/ui/keys"
	"github.com/abhisek/statpick/internal/ui/layout"
)

// Options configures the terminal UI.
type Options struct {
	Catalog *catalog.Catalog
	Logger  *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	locale string
	logger *zap.Logger
	width  int
	height int
}

// newAppModel creates an AppModel showing the home screen.
func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return AppModel{
		router: router.New(home.New(opts.Catalog, logger)),
		locale: strings.ToUpper(string(opts.Catalog.Locale())),
		logger: logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, keys.Default.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Default.Close):
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.locale, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// footerHints prefers the active screen's own hints.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return keys.Hints(keys.Default.Close, keys.Default.Quit)
	}
	return keys.Hints(keys.Default.Up, keys.Default.Down, keys.Default.Select, keys.Default.Quit)
}

// Run starts the terminal UI and blocks until the user quits.
func Run(opts Options) error {
	if opts.Catalog == nil {
		return errors.New("app: catalog is required")
	}
	m := newAppModel(opts)
	m.logger.Debug("starting terminal ui", zap.String("locale", m.locale))

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
