package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMenuSkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "a", Disabled: true},
		{Label: "b"},
		{Label: "c", Disabled: true},
		{Label: "d"},
	})
	if m.Selected != 1 {
		t.Fatalf("expected first enabled item selected, got %d", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("expected down to skip disabled item, got %d", m.Selected)
	}

	m, _ = m.Update(keyPress('k'))
	if m.Selected != 1 {
		t.Errorf("expected k to move up to 1, got %d", m.Selected)
	}
}

func TestMenuEnterRunsAction(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{
		{Label: "go", Action: func() tea.Cmd {
			ran = true
			return nil
		}},
	})

	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !ran {
		t.Error("expected enter to run the selected action")
	}
	if !strings.Contains(m.View(), "▸ go") {
		t.Errorf("expected selection marker in view, got %q", m.View())
	}
}

func TestMultiChoiceNavigateAndSubmit(t *testing.T) {
	mc := NewMultiChoice("Pick", []string{"one", "two", "three"})

	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if mc.Selected != 0 {
		t.Errorf("expected up at top to stay at 0, got %d", mc.Selected)
	}
	mc, _ = mc.Update(keyPress('j'))
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if mc.Selected != 2 {
		t.Errorf("expected down at bottom to stay at 2, got %d", mc.Selected)
	}

	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !mc.Submitted {
		t.Fatal("expected enter to submit")
	}

	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if mc.Selected != 2 {
		t.Error("expected no movement after submit")
	}
}

func TestMultiChoiceDigitSubmits(t *testing.T) {
	mc := NewMultiChoice("Pick", []string{"one", "two"})

	mc, _ = mc.Update(keyPress('5'))
	if mc.Submitted {
		t.Fatal("expected out-of-range digit to be ignored")
	}

	mc, _ = mc.Update(keyPress('2'))
	if !mc.Submitted || mc.Selected != 1 {
		t.Errorf("expected digit 2 to submit option 1, got submitted=%v selected=%d", mc.Submitted, mc.Selected)
	}
}

func TestMultiChoiceView(t *testing.T) {
	view := NewMultiChoice("Which?", []string{"Yes", "No"}).View()
	for _, want := range []string{"Which?", "1)  Yes", "2)  No"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestButtonInactiveIgnoresEnter(t *testing.T) {
	pressed := 0
	b := NewButton("Restart", false, func() tea.Cmd {
		pressed++
		return nil
	})

	b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	b.Active = true
	b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if pressed != 1 {
		t.Errorf("expected one press, got %d", pressed)
	}
}

func TestProgressBarClamps(t *testing.T) {
	for _, pct := range []float64{-1, 0.5, 2} {
		view := NewProgressBar("", pct, true, 30).View()
		if view == "" {
			t.Errorf("expected output for %v", pct)
		}
	}
	if !strings.Contains(NewProgressBar("", 2, true, 30).View(), "100%") {
		t.Error("expected percent to clamp to 100%")
	}
}
