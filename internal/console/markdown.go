package console

import (
	"fmt"
	"strings"

	"github.com/abhisek/statpick/internal/catalog"
	"github.com/abhisek/statpick/internal/locale"
	"github.com/abhisek/statpick/internal/session"
)

// RecordMarkdown describes one test: family, assumptions and usage note.
func RecordMarkdown(rec catalog.TestRecord, familyName string, l locale.Locale) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", rec.DisplayName)
	writeRecordBody(&b, rec, familyName, l)
	return b.String()
}

// RecommendationMarkdown describes the recommended test followed by the
// answers that selected it.
func RecommendationMarkdown(rec session.Recommendation, l locale.Locale) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s: %s\n\n", locale.T(l, locale.MsgRecommended), rec.Record.DisplayName)
	writeRecordBody(&b, rec.Record, rec.FamilyName, l)

	if len(rec.Trail) > 0 {
		fmt.Fprintf(&b, "\n## %s\n\n", locale.T(l, locale.MsgYourAnswers))
		for _, a := range rec.Trail {
			fmt.Fprintf(&b, "- %s **%s**\n", a.Prompt, a.Answer)
		}
	}
	return b.String()
}

func writeRecordBody(b *strings.Builder, rec catalog.TestRecord, familyName string, l locale.Locale) {
	fmt.Fprintf(b, "**%s:** %s\n\n", locale.T(l, locale.MsgFamily), familyName)
	fmt.Fprintf(b, "## %s\n\n", locale.T(l, locale.MsgAssumptions))
	for _, a := range rec.Assumptions {
		fmt.Fprintf(b, "- %s\n", a)
	}
	fmt.Fprintf(b, "\n**%s:** %s\n", locale.T(l, locale.MsgUsage), rec.UsageNote)
}
