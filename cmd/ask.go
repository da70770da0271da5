package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/statpick/internal/console"
	"github.com/abhisek/statpick/internal/session"
	"github.com/abhisek/statpick/internal/wizard"
)

// markdownWidth is the wrap width for rendered Markdown on a terminal.
const markdownWidth = 80

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Run the wizard as plain text prompts",
	Long: `Run the wizard line by line on stdin and stdout.

With --answer the questions are skipped: each answer is given as key=option
in the order the wizard would ask, and the recommendation is printed.

  statpick ask --answer objective=compare_groups --answer data_type=categorical`,
	RunE: func(cmd *cobra.Command, args []string) error {
		answers, _ := cmd.Flags().GetStringArray("answer")
		if len(answers) > 0 {
			return runAnswers(cmd, answers)
		}
		return runConsole(cmd)
	},
}

func init() {
	askCmd.Flags().StringArray("answer", nil, "Answer as key=option (repeatable, in question order)")
}

// runConsole drives an interactive session over stdin and stdout.
func runConsole(cmd *cobra.Command) error {
	opts := []console.Option{console.WithLocale(rt.catalog.Locale())}
	if isTerminal(os.Stdout) {
		opts = append(opts, console.WithStyle(markdownWidth))
	}
	c, err := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), opts...)
	if err != nil {
		return err
	}
	if err := c.Intro(); err != nil {
		return err
	}

	s := session.New(rt.catalog, session.WithLogger(rt.logger))
	_, err = session.Drive(cmd.Context(), s, c)
	switch {
	case errors.Is(err, session.ErrQuit),
		errors.Is(err, console.ErrInputClosed),
		errors.Is(err, context.Canceled):
		rt.logger.Info("wizard ended without a recommendation",
			zap.String("session_id", s.ID()),
			zap.Error(err),
		)
		return nil
	case err != nil:
		return fmt.Errorf("run wizard: %w", err)
	}
	return nil
}

// runAnswers replays a scripted path and prints the recommendation.
func runAnswers(cmd *cobra.Command, raw []string) error {
	entries, err := parseAnswers(raw)
	if err != nil {
		return err
	}

	out, err := wizard.Replay(entries)
	if err != nil {
		return err
	}
	if !out.IsTerminal() {
		next, err := wizard.Expected(out.State)
		if err != nil {
			return err
		}
		return fmt.Errorf("answers stop before a recommendation: %q is still unanswered (options: %s)",
			next, joinOptions(wizard.Options(next)))
	}

	s := session.New(rt.catalog, session.WithLogger(rt.logger))
	for _, e := range entries {
		if _, err := s.Answer(e.Option); err != nil {
			return err
		}
	}
	rec, ok := s.Recommendation()
	if !ok {
		return fmt.Errorf("no recommendation for %d answers", len(entries))
	}
	return writeMarkdown(cmd.OutOrStdout(), console.RecommendationMarkdown(rec, s.Locale()))
}

// parseAnswers turns key=option pairs into replay entries. Unknown keys and
// options are left for the engine to reject.
func parseAnswers(raw []string) ([]wizard.Entry, error) {
	entries := make([]wizard.Entry, 0, len(raw))
	for _, a := range raw {
		k, v, ok := strings.Cut(a, "=")
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if !ok || k == "" || v == "" {
			return nil, fmt.Errorf("invalid answer %q (want key=option)", a)
		}
		entries = append(entries, wizard.Entry{
			Key:    wizard.QuestionKey(k),
			Option: wizard.Option(v),
		})
	}
	return entries, nil
}

func joinOptions(opts []wizard.Option) string {
	s := make([]string, len(opts))
	for i, o := range opts {
		s[i] = string(o)
	}
	return strings.Join(s, ", ")
}

// writeMarkdown styles md with glamour when w is a terminal.
func writeMarkdown(w io.Writer, md string) error {
	if f, ok := w.(*os.File); ok && isTerminal(f) {
		r, err := console.NewRenderer(markdownWidth)
		if err != nil {
			return err
		}
		styled, err := r.Render(md)
		if err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		md = styled
	}
	_, err := io.WriteString(w, md)
	return err
}
