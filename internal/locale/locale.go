package locale

import (
	"fmt"
	"strings"
)

// Locale selects the language used for questions and catalog text.
type Locale string

const (
	English Locale = "en"
	Spanish Locale = "es"
)

// All returns the supported locales in display order.
func All() []Locale {
	return []Locale{English, Spanish}
}

// Parse accepts a locale tag such as "en", "es" or "es_MX.UTF-8".
func Parse(s string) (Locale, error) {
	tag := strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(tag, "_-."); i > 0 {
		tag = tag[:i]
	}
	for _, l := range All() {
		if string(l) == tag {
			return l, nil
		}
	}
	return "", fmt.Errorf("unsupported locale %q (supported: en, es)", s)
}

// Message identifies a piece of interface text shared by the terminal
// and console front ends.
type Message string

const (
	MsgRecommended Message = "recommended"
	MsgFamily      Message = "family"
	MsgAssumptions Message = "assumptions"
	MsgUsage       Message = "usage"
	MsgYourAnswers Message = "your_answers"
	MsgStepOf      Message = "step_of"
	MsgAllTests    Message = "all_tests"
	MsgAppTitle    Message = "app_title"
	MsgIntro       Message = "intro"
	MsgHint        Message = "hint"
	MsgBadChoice   Message = "bad_choice"
	MsgStartOver   Message = "start_over"
	MsgBack        Message = "back"
	MsgBrowse      Message = "browse"
	MsgStart       Message = "start"
	MsgQuit        Message = "quit"
)

var messages = map[Locale]map[Message]string{
	English: {
		MsgRecommended: "Recommended statistical test",
		MsgFamily:      "Type",
		MsgAssumptions: "Assumptions to check",
		MsgUsage:       "When to use",
		MsgYourAnswers: "Your answers",
		MsgStepOf:      "Step %d of %d",
		MsgAllTests:    "All available tests",
		MsgAppTitle:    "Statistical Test Selector",
		MsgIntro:       "Answer the following questions to find the right statistical test",
		MsgHint:        "[b] back  [r] restart  [c] all tests  [q] quit",
		MsgBadChoice:   "Enter a number from 1 to %d.",
		MsgStartOver:   "Start over",
		MsgBack:        "Back",
		MsgBrowse:      "Browse tests",
		MsgStart:       "Start wizard",
		MsgQuit:        "Quit",
	},
	Spanish: {
		MsgRecommended: "Prueba estadística recomendada",
		MsgFamily:      "Tipo",
		MsgAssumptions: "Supuestos que debe cumplir",
		MsgUsage:       "Cuándo usar",
		MsgYourAnswers: "Tus respuestas",
		MsgStepOf:      "Paso %d de %d",
		MsgAllTests:    "Todas las pruebas disponibles",
		MsgAppTitle:    "Selector de Pruebas Estadísticas",
		MsgIntro:       "Responde las siguientes preguntas para determinar la prueba estadística adecuada",
		MsgHint:        "[b] atrás  [r] reiniciar  [c] todas las pruebas  [q] salir",
		MsgBadChoice:   "Escribe un número del 1 al %d.",
		MsgStartOver:   "Empezar de nuevo",
		MsgBack:        "Atrás",
		MsgBrowse:      "Ver pruebas",
		MsgStart:       "Iniciar asistente",
		MsgQuit:        "Salir",
	},
}

// T returns the text for msg in l, falling back to English.
func T(l Locale, msg Message) string {
	if s, ok := messages[l][msg]; ok {
		return s
	}
	return messages[English][msg]
}
