package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/statpick/internal/catalog"
	"github.com/abhisek/statpick/internal/locale"
	"github.com/abhisek/statpick/internal/router"
	"github.com/abhisek/statpick/internal/screen"
	"github.com/abhisek/statpick/internal/screens/browser"
	wizardscreen "github.com/abhisek/statpick/internal/screens/wizard"
	"github.com/abhisek/statpick/internal/session"
	"github.com/abhisek/statpick/internal/ui/components"
	"github.com/abhisek/statpick/internal/ui/keys"
	"github.com/abhisek/statpick/internal/ui/layout"
)

// HomeScreen is the start menu.
type HomeScreen struct {
	catalog    *catalog.Catalog
	logger     *zap.Logger
	menu       components.Menu
	menuLabels []string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen. Each "start" opens a fresh session over cat.
func New(cat *catalog.Catalog, logger *zap.Logger) *HomeScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := cat.Locale()
	h := &HomeScreen{
		catalog: cat,
		logger:  logger,
		menuLabels: []string{
			locale.T(l, locale.MsgStart),
			locale.T(l, locale.MsgBrowse),
			locale.T(l, locale.MsgQuit),
		},
	}

	items := []components.MenuItem{
		{Label: h.menuLabels[0], Action: func() tea.Cmd {
			s := session.New(cat, session.WithLogger(logger))
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: wizardscreen.New(s)}
			}
		}},
		{Label: h.menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: browser.New(cat)}
			}
		}},
		{Label: h.menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight)
	cw := contentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderTagline(locale.T(h.catalog.Locale(), locale.MsgIntro), cw),
		renderMenu(h.menuLabels, h.menu.Selected, cw, compact),
	}

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return locale.T(h.catalog.Locale(), locale.MsgAppTitle)
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Default.Up, keys.Default.Down, keys.Default.Select, keys.Default.Quit)
}
