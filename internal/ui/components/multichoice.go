package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/statpick/internal/ui/keys"
	"github.com/abhisek/statpick/internal/ui/theme"
)

// MultiChoice lets the user pick one option with the arrow keys or by
// typing its number.
type MultiChoice struct {
	Question  string
	Options   []string
	Selected  int
	Submitted bool
}

// NewMultiChoice creates a multiple-choice selector with the first option
// highlighted.
func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{
		Question: question,
		Options:  options,
	}
}

// Update handles navigation. Enter, or a digit naming an option, submits.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, keys.Default.Up):
		if m.Selected > 0 {
			m.Selected--
		}
	case key.Matches(kmsg, keys.Default.Down):
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case key.Matches(kmsg, keys.Default.Select):
		if len(m.Options) > 0 {
			m.Submitted = true
		}
	default:
		if len(kmsg.Text) == 1 && kmsg.Text[0] >= '1' && kmsg.Text[0] <= '9' {
			if n := int(kmsg.Text[0] - '1'); n < len(m.Options) {
				m.Selected = n
				m.Submitted = true
			}
		}
	}

	return m, nil
}

// View renders the question and its numbered options.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)
		if i == m.Selected {
			b.WriteString(theme.Selected.Render(line))
		} else {
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}
