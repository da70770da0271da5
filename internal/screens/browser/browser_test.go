package browser

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/statpick/internal/catalog"
	"github.com/abhisek/statpick/internal/locale"
	"github.com/abhisek/statpick/internal/router"
)

func newTestBrowser(t *testing.T, l locale.Locale) *BrowserScreen {
	t.Helper()
	cat, err := catalog.Load(l)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return New(cat)
}

func selectedID(t *testing.T, b *BrowserScreen) catalog.ID {
	t.Helper()
	rec, ok := b.Selected()
	if !ok {
		t.Fatal("expected a test under the cursor")
	}
	return rec.ID
}

func TestRowsGroupedByFamily(t *testing.T) {
	b := newTestBrowser(t, locale.English)

	headers, tests := 0, 0
	for _, r := range b.rows {
		switch r.kind {
		case rowFamilyHeader:
			headers++
		case rowTest:
			tests++
		}
	}
	if headers != len(catalog.AllFamilies()) {
		t.Errorf("expected %d family headers, got %d", len(catalog.AllFamilies()), headers)
	}
	if tests != len(catalog.IDs()) {
		t.Errorf("expected %d tests, got %d", len(catalog.IDs()), tests)
	}
	if b.rows[b.cursor].kind != rowTest {
		t.Error("expected cursor on a test row")
	}
}

func TestCursorSkipsHeaders(t *testing.T) {
	b := newTestBrowser(t, locale.English)

	for range 20 {
		b.Update(tea.KeyPressMsg{Code: tea.KeyDown})
		if b.rows[b.cursor].kind != rowTest {
			t.Fatal("cursor landed on a header")
		}
	}
	last := b.cursor
	b.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if b.cursor != last {
		t.Error("expected cursor to stop at the last row")
	}
}

func TestTabJumpsFamily(t *testing.T) {
	b := newTestBrowser(t, locale.English)
	first := b.rows[b.cursor].family

	b.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if b.rows[b.cursor].family == first {
		t.Error("expected tab to move to the next family")
	}

	b.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if b.rows[b.cursor].family == first {
		t.Error("expected tab at the last family to stay")
	}

	b.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if b.rows[b.cursor].family != first {
		t.Error("expected shift+tab to return to the first family")
	}
}

func TestEnterOpensDetail(t *testing.T) {
	b := newTestBrowser(t, locale.English)
	id := selectedID(t, b)

	_, cmd := b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	d, ok := push.Screen.(*DetailScreen)
	if !ok {
		t.Fatalf("expected detail screen, got %T", push.Screen)
	}
	if d.record.ID != id {
		t.Errorf("expected detail for %s, got %s", id, d.record.ID)
	}
}

func TestDetailView(t *testing.T) {
	cat, err := catalog.Load(locale.Spanish)
	if err != nil {
		t.Fatal(err)
	}
	rec, err := cat.Lookup(catalog.KruskalWallis)
	if err != nil {
		t.Fatal(err)
	}

	view := NewDetail(rec, cat.FamilyName(rec.Family), locale.Spanish).View(100, 30)
	for _, want := range []string{"Kruskal-Wallis", "Supuestos que debe cumplir", "Cuándo usar"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestViewFitsHeight(t *testing.T) {
	for _, height := range []int{4, 6, 8, 10, 30} {
		b := newTestBrowser(t, locale.English)
		for range 9 {
			b.Update(tea.KeyPressMsg{Code: tea.KeyDown})
		}
		view := b.View(80, height)
		if got := len(strings.Split(view, "\n")); got > height {
			t.Errorf("height %d: view has %d lines", height, got)
		}
		if !strings.Contains(view, "▸") {
			t.Errorf("height %d: expected the cursor row to stay visible after scrolling", height)
		}
	}
}

func TestFamilyNotesShown(t *testing.T) {
	b := newTestBrowser(t, locale.Spanish)
	view := b.View(100, 40)
	for _, want := range []string{"PARAMÉTRICA", "Requieren normalidad", "Más flexibles"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}
