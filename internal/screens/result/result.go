package result

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/statpick/internal/locale"
	"github.com/abhisek/statpick/internal/router"
	"github.com/abhisek/statpick/internal/screen"
	"github.com/abhisek/statpick/internal/screens/browser"
	"github.com/abhisek/statpick/internal/session"
	"github.com/abhisek/statpick/internal/ui/components"
	"github.com/abhisek/statpick/internal/ui/keys"
	"github.com/abhisek/statpick/internal/ui/layout"
	"github.com/abhisek/statpick/internal/ui/theme"
)

// ResultScreen shows the recommended test and the answers that led to it.
// It is pushed on top of the wizard screen, which resumes when it closes.
type ResultScreen struct {
	session *session.Session
	rec     session.Recommendation
	buttons []components.Button
	focus   int
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen for the finished session s.
func New(s *session.Session) *ResultScreen {
	rec, _ := s.Recommendation()
	r := &ResultScreen{session: s, rec: rec}
	l := s.Locale()
	r.buttons = []components.Button{
		components.NewButton(locale.T(l, locale.MsgStartOver), true, r.restart),
		components.NewButton(locale.T(l, locale.MsgBack), false, r.back),
	}
	return r
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) Title() string {
	return locale.T(r.session.Locale(), locale.MsgRecommended)
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return r, nil
	}

	switch {
	case key.Matches(kmsg, keys.Default.Restart):
		return r, r.restart()
	case key.Matches(kmsg, keys.Default.Back):
		return r, r.back()
	case key.Matches(kmsg, focusNext), key.Matches(kmsg, keys.Default.Down):
		r.setFocus((r.focus + 1) % len(r.buttons))
		return r, nil
	case key.Matches(kmsg, keys.Default.Up):
		r.setFocus((r.focus + len(r.buttons) - 1) % len(r.buttons))
		return r, nil
	}

	var cmd tea.Cmd
	r.buttons[r.focus], cmd = r.buttons[r.focus].Update(msg)
	return r, cmd
}

var focusNext = key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "switch"))

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(focusNext, keys.Default.Select, keys.Default.Restart, keys.Default.Back, keys.Default.Quit)
}

func (r *ResultScreen) setFocus(i int) {
	for j := range r.buttons {
		r.buttons[j].Active = j == i
	}
	r.focus = i
}

// restart clears the session and returns to the first question.
func (r *ResultScreen) restart() tea.Cmd {
	r.session.Restart()
	return func() tea.Msg { return router.PopScreenMsg{} }
}

// back reopens the question that produced the recommendation.
func (r *ResultScreen) back() tea.Cmd {
	_ = r.session.Back()
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (r *ResultScreen) View(width, height int) string {
	l := r.session.Locale()
	cardWidth := min(max(width-8, 30), 76)

	var b strings.Builder
	b.WriteString(theme.Hint.Render("  " + locale.T(l, locale.MsgRecommended)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Success).
		Bold(true).
		Render("  " + r.rec.Record.DisplayName))
	b.WriteString("\n\n")
	b.WriteString(browser.RenderRecord(r.rec.Record, r.rec.FamilyName, l, cardWidth))

	if !layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight) && len(r.rec.Trail) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Heading.Render("  " + locale.T(l, locale.MsgYourAnswers)))
		b.WriteString("\n")
		dim := lipgloss.NewStyle().Foreground(theme.TextDim)
		for _, a := range r.rec.Trail {
			b.WriteString(dim.Render(fmt.Sprintf("  %s ", a.Prompt)))
			b.WriteString(theme.Body.Render(a.Answer))
			b.WriteString("\n")
		}
	}

	card := theme.Recommendation.Width(cardWidth).Render(b.String())

	var buttons []string
	for i, btn := range r.buttons {
		if i > 0 {
			buttons = append(buttons, "  ")
		}
		buttons = append(buttons, btn.View())
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, buttons...)

	content := lipgloss.JoinVertical(lipgloss.Center, card, "", row)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
