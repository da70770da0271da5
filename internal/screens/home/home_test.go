package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/statpick/internal/catalog"
	"github.com/abhisek/statpick/internal/locale"
	"github.com/abhisek/statpick/internal/router"
	"github.com/abhisek/statpick/internal/screens/browser"
	wizardscreen "github.com/abhisek/statpick/internal/screens/wizard"
)

func newTestHome(t *testing.T, l locale.Locale) *HomeScreen {
	t.Helper()
	cat, err := catalog.Load(l)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return New(cat, nil)
}

func pushed(t *testing.T, cmd tea.Cmd) any {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	return msg.Screen
}

func TestStartOpensWizard(t *testing.T) {
	h := newTestHome(t, locale.English)

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := pushed(t, cmd).(*wizardscreen.WizardScreen); !ok {
		t.Error("expected wizard screen")
	}
}

func TestEachStartIsAFreshSession(t *testing.T) {
	h := newTestHome(t, locale.English)

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	first := pushed(t, cmd)
	_, cmd = h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	second := pushed(t, cmd)

	if first == second {
		t.Error("expected a new wizard screen per start")
	}
}

func TestBrowseOpensCatalog(t *testing.T) {
	h := newTestHome(t, locale.English)

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := pushed(t, cmd).(*browser.BrowserScreen); !ok {
		t.Error("expected browser screen")
	}
}

func TestQuit(t *testing.T) {
	h := newTestHome(t, locale.English)

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestViewLocalized(t *testing.T) {
	tests := []struct {
		locale locale.Locale
		want   []string
	}{
		{locale.English, []string{"Start wizard", "Browse tests", "Quit"}},
		{locale.Spanish, []string{"Iniciar asistente", "Ver pruebas", "Salir"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.locale), func(t *testing.T) {
			view := newTestHome(t, tt.locale).View(100, 34)
			for _, want := range tt.want {
				if !strings.Contains(view, want) {
					t.Errorf("expected view to contain %q", want)
				}
			}
		})
	}
}

func TestCompactView(t *testing.T) {
	view := newTestHome(t, locale.English).View(70, 14)
	if !strings.Contains(view, titleCompact) {
		t.Error("expected compact title on a short terminal")
	}
}
