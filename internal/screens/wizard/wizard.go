package wizard

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/statpick/internal/locale"
	"github.com/abhisek/statpick/internal/router"
	"github.com/abhisek/statpick/internal/screen"
	"github.com/abhisek/statpick/internal/screens/result"
	"github.com/abhisek/statpick/internal/session"
	"github.com/abhisek/statpick/internal/ui/components"
	"github.com/abhisek/statpick/internal/ui/keys"
	"github.com/abhisek/statpick/internal/ui/layout"
	"github.com/abhisek/statpick/internal/ui/theme"
	engine "github.com/abhisek/statpick/internal/wizard"
)

// WizardScreen asks the session's current question. It owns no wizard
// state of its own: every render follows the session, so changes made by
// the result screen show up when it closes.
type WizardScreen struct {
	session  *session.Session
	shown    engine.State
	question engine.Question
	choice   components.MultiChoice
	err      error
}

var _ screen.Screen = (*WizardScreen)(nil)
var _ screen.KeyHintProvider = (*WizardScreen)(nil)

// New creates a WizardScreen driving s.
func New(s *session.Session) *WizardScreen {
	w := &WizardScreen{session: s}
	w.reload()
	return w
}

func (w *WizardScreen) Init() tea.Cmd {
	return nil
}

func (w *WizardScreen) Title() string {
	return locale.T(w.session.Locale(), locale.MsgAppTitle)
}

func (w *WizardScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(
		keys.Default.Up, keys.Default.Down, keys.Default.Select,
		keys.Default.Back, keys.Default.Restart, keys.Default.Close,
	)
}

func (w *WizardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// The wizard only receives messages while it is on top, so a
	// recommendation still pending here was closed with Esc.
	if w.session.Finished() {
		_ = w.session.Back()
	}
	w.sync()

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return w, nil
	}

	switch {
	case key.Matches(kmsg, keys.Default.Back):
		err := w.session.Back()
		w.reload()
		if err != nil && !errors.Is(err, engine.ErrNoPreviousStep) {
			w.err = err
		}
		return w, nil
	case key.Matches(kmsg, keys.Default.Restart):
		w.session.Restart()
		w.reload()
		return w, nil
	}

	w.choice, _ = w.choice.Update(msg)
	if !w.choice.Submitted {
		return w, nil
	}
	return w, w.submit()
}

// submit answers the current question with the highlighted choice.
func (w *WizardScreen) submit() tea.Cmd {
	if w.choice.Selected >= len(w.question.Choices) {
		w.reload()
		return nil
	}
	opt := w.question.Choices[w.choice.Selected].Option

	out, err := w.session.Answer(opt)
	if err != nil {
		w.reload()
		w.err = err
		return nil
	}
	if out.IsTerminal() {
		w.choice.Submitted = false
		res := result.New(w.session)
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: res}
		}
	}
	w.reload()
	return nil
}

// sync catches up with session changes made by the result screen.
func (w *WizardScreen) sync() {
	if w.session.Finished() {
		return
	}
	st := w.session.State()
	if st.Step != w.shown.Step || !maps.Equal(st.Answers, w.shown.Answers) {
		w.reload()
	}
}

func (w *WizardScreen) reload() {
	w.shown = w.session.State()
	w.err = nil
	q, err := w.session.Current()
	if err != nil {
		w.err = err
		return
	}
	w.question = q
	labels := make([]string, len(q.Choices))
	for i, c := range q.Choices {
		labels[i] = c.Label
	}
	w.choice = components.NewMultiChoice(q.Prompt, labels)
}

func (w *WizardScreen) View(width, height int) string {
	w.sync()

	l := w.session.Locale()
	cw := min(max(width-8, 30), 72)

	var sections []string
	sections = append(sections, theme.Hint.Render(locale.T(l, locale.MsgIntro)))

	progress := components.NewProgressBar(
		fmt.Sprintf(locale.T(l, locale.MsgStepOf), w.question.Step, engine.MaxStep),
		float64(w.question.Step-1)/float64(engine.MaxStep),
		false, cw,
	)
	sections = append(sections, progress.View())

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(w.question.Title))
	sections = append(sections, w.choice.View())

	if w.err != nil {
		sections = append(sections, theme.ErrorText.Render(w.err.Error()))
	}

	content := lipgloss.NewStyle().Width(cw).Render(strings.Join(sections, "\n\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
