package browser

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/statpick/internal/catalog"
	"github.com/abhisek/statpick/internal/locale"
	"github.com/abhisek/statpick/internal/screen"
	"github.com/abhisek/statpick/internal/ui/keys"
	"github.com/abhisek/statpick/internal/ui/layout"
	"github.com/abhisek/statpick/internal/ui/theme"
)

// DetailScreen shows one test's family, assumptions and usage note.
type DetailScreen struct {
	record     catalog.TestRecord
	familyName string
	locale     locale.Locale
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

// NewDetail creates a DetailScreen for rec.
func NewDetail(rec catalog.TestRecord, familyName string, l locale.Locale) *DetailScreen {
	return &DetailScreen{record: rec, familyName: familyName, locale: l}
}

func (d *DetailScreen) Init() tea.Cmd { return nil }
func (d *DetailScreen) Title() string { return d.record.DisplayName }

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return d, nil
}

func (d *DetailScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Default.Close)
}

func (d *DetailScreen) View(width, height int) string {
	name := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  " + d.record.DisplayName)
	body := RenderRecord(d.record, d.familyName, d.locale, width)
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top,
		"\n"+name+"\n\n"+body)
}

// RenderRecord renders a test's family, assumptions and usage note,
// wrapped to fit width.
func RenderRecord(rec catalog.TestRecord, familyName string, l locale.Locale, width int) string {
	contentWidth := min(max(width-8, 20), 70)

	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valStyle := lipgloss.NewStyle().Foreground(theme.Text)
	familyStyle := theme.Parametric
	if rec.Family == catalog.NonParametric {
		familyStyle = theme.NonParametric
	}

	var b strings.Builder
	b.WriteString(dimStyle.Render("  "+locale.T(l, locale.MsgFamily)+": ") + familyStyle.Render(familyName))
	b.WriteString("\n\n")

	b.WriteString(theme.Heading.Render("  " + locale.T(l, locale.MsgAssumptions)))
	b.WriteString("\n")
	for _, a := range rec.Assumptions {
		b.WriteString(valStyle.Width(contentWidth).PaddingLeft(2).Render("• " + a))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(theme.Heading.Render("  " + locale.T(l, locale.MsgUsage)))
	b.WriteString("\n")
	b.WriteString(valStyle.Width(contentWidth).PaddingLeft(2).Render(rec.UsageNote))
	b.WriteString("\n")

	return b.String()
}
