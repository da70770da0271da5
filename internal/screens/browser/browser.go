package browser

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/statpick/internal/catalog"
	"github.com/abhisek/statpick/internal/locale"
	"github.com/abhisek/statpick/internal/router"
	"github.com/abhisek/statpick/internal/screen"
	"github.com/abhisek/statpick/internal/ui/keys"
	"github.com/abhisek/statpick/internal/ui/layout"
	"github.com/abhisek/statpick/internal/ui/theme"
)

type rowKind int

// Every row renders as exactly one line.
const (
	rowSpacer rowKind = iota
	rowFamilyHeader
	rowFamilyNote
	rowTest
)

type row struct {
	kind   rowKind
	family catalog.Family
	record *catalog.TestRecord
}

var (
	nextFamily = key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "family"))
	prevFamily = key.NewBinding(key.WithKeys("shift+tab"))
)

// BrowserScreen lists every test in the catalog grouped by family. It does
// not depend on any wizard state.
type BrowserScreen struct {
	catalog      *catalog.Catalog
	rows         []row
	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*BrowserScreen)(nil)
var _ screen.KeyHintProvider = (*BrowserScreen)(nil)

// New creates a BrowserScreen over cat.
func New(cat *catalog.Catalog) *BrowserScreen {
	var rows []row
	for i, f := range catalog.AllFamilies() {
		if i > 0 {
			rows = append(rows, row{kind: rowSpacer, family: f})
		}
		rows = append(rows, row{kind: rowFamilyHeader, family: f})
		if cat.FamilyDescription(f) != "" {
			rows = append(rows, row{kind: rowFamilyNote, family: f})
		}
		records := cat.ByFamily(f)
		for i := range records {
			rows = append(rows, row{kind: rowTest, family: f, record: &records[i]})
		}
	}

	s := &BrowserScreen{
		catalog: cat,
		rows:    rows,
	}
	for i, r := range s.rows {
		if r.kind == rowTest {
			s.cursor = i
			break
		}
	}
	return s
}

func (s *BrowserScreen) Init() tea.Cmd {
	return nil
}

func (s *BrowserScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch {
	case key.Matches(kmsg, keys.Default.Up):
		s.moveCursor(-1)
	case key.Matches(kmsg, keys.Default.Down):
		s.moveCursor(1)
	case key.Matches(kmsg, nextFamily):
		s.jumpFamily(1)
	case key.Matches(kmsg, prevFamily):
		s.jumpFamily(-1)
	case key.Matches(kmsg, keys.Default.Select):
		return s, s.openSelected()
	}
	return s, nil
}

func (s *BrowserScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return ""
	}

	s.adjustScroll(height)

	var lines []string
	for i := s.scrollOffset; i < len(s.rows) && len(lines) < height; i++ {
		r := s.rows[i]
		switch r.kind {
		case rowSpacer:
			lines = append(lines, "")
		case rowFamilyHeader:
			lines = append(lines, s.renderFamilyHeader(r.family, width))
		case rowFamilyNote:
			lines = append(lines, s.renderFamilyNote(r.family, width))
		case rowTest:
			lines = append(lines, s.renderTestRow(r, i == s.cursor, width))
		}
	}
	return strings.Join(lines, "\n")
}

func (s *BrowserScreen) Title() string {
	return locale.T(s.catalog.Locale(), locale.MsgAllTests)
}

// KeyHints returns the key binding hints for the footer.
func (s *BrowserScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Default.Up, keys.Default.Down, nextFamily, keys.Default.Select, keys.Default.Close)
}

// Selected returns the test under the cursor.
func (s *BrowserScreen) Selected() (catalog.TestRecord, bool) {
	r := s.rows[s.cursor]
	if r.kind != rowTest || r.record == nil {
		return catalog.TestRecord{}, false
	}
	return *r.record, true
}

// moveCursor moves by delta, skipping family headers.
func (s *BrowserScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowTest {
			s.cursor = next
			return
		}
		next += delta
	}
}

// jumpFamily moves to the first test of the next (dir > 0) or previous
// family. It stays put at either end.
func (s *BrowserScreen) jumpFamily(dir int) {
	families := catalog.AllFamilies()
	current := 0
	for i, f := range families {
		if f == s.rows[s.cursor].family {
			current = i
		}
	}
	target := current + dir
	if target < 0 || target >= len(families) {
		return
	}
	for i, r := range s.rows {
		if r.kind == rowTest && r.family == families[target] {
			s.cursor = i
			return
		}
	}
}

// adjustScroll keeps the cursor and its family header in view. Rows are
// one line each, so height is also a row count.
func (s *BrowserScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	headerRow := s.cursor
	for headerRow > 0 && (s.rows[headerRow-1].kind == rowFamilyHeader ||
		s.rows[headerRow-1].kind == rowFamilyNote) {
		headerRow--
	}

	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *BrowserScreen) openSelected() tea.Cmd {
	rec, ok := s.Selected()
	if !ok {
		return nil
	}
	detail := NewDetail(rec, s.catalog.FamilyName(rec.Family), s.catalog.Locale())
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail}
	}
}

func (s *BrowserScreen) renderFamilyHeader(f catalog.Family, width int) string {
	return "  " + theme.Heading.Render(truncate(strings.ToUpper(s.catalog.FamilyName(f)), width-2))
}

func (s *BrowserScreen) renderFamilyNote(f catalog.Family, width int) string {
	return "  " + theme.Hint.Render(truncate(s.catalog.FamilyDescription(f), width-2))
}

// truncate cuts text to at most n runes, ending with an ellipsis when cut.
func truncate(text string, n int) string {
	runes := []rune(text)
	if n < 1 || len(runes) <= n {
		return text
	}
	return string(runes[:n-1]) + "…"
}

func (s *BrowserScreen) renderTestRow(r row, selected bool, width int) string {
	nameWidth := max(width-10, 10)

	name := truncate(r.record.DisplayName, nameWidth)

	cursor := "  "
	style := theme.Unselected
	if selected {
		cursor = "▸ "
		style = theme.Selected
	}

	return fmt.Sprintf("  %s%s", cursor, style.Render(name))
}
