// Package console implements the wizard over plain line-based input and
// output, for pipes and terminals without the full-screen UI.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/glamour"

	"github.com/abhisek/statpick/internal/catalog"
	"github.com/abhisek/statpick/internal/locale"
	"github.com/abhisek/statpick/internal/session"
	"github.com/abhisek/statpick/internal/wizard"
)

// ErrInputClosed is returned when input ends before a command was read.
var ErrInputClosed = errors.New("input closed")

// Console is a session.Presenter reading commands line by line.
type Console struct {
	in       *bufio.Reader
	out      io.Writer
	locale   locale.Locale
	renderer *glamour.TermRenderer

	// pending carries the result of a read still in flight after its
	// context was cancelled; the next read picks it up.
	pending chan readResult
}

type readResult struct {
	line string
	err  error
}

var _ session.Presenter = (*Console)(nil)

// Option configures a Console.
type Option func(*Console) error

// WithLocale sets the language of interface text.
func WithLocale(l locale.Locale) Option {
	return func(c *Console) error {
		c.locale = l
		return nil
	}
}

// WithStyle renders Markdown through glamour wrapped at width columns.
// Without it Markdown is written as-is.
func WithStyle(width int) Option {
	return func(c *Console) error {
		r, err := NewRenderer(width)
		if err != nil {
			return err
		}
		c.renderer = r
		return nil
	}
}

// NewRenderer returns a glamour renderer that picks a style for the
// terminal background.
func NewRenderer(width int) (*glamour.TermRenderer, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("create markdown renderer: %w", err)
	}
	return r, nil
}

// New returns a Console reading from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) (*Console, error) {
	c := &Console{
		in:     bufio.NewReader(in),
		out:    out,
		locale: locale.English,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Intro writes the application title and instructions.
func (c *Console) Intro() error {
	_, err := fmt.Fprintf(c.out, "%s\n%s\n\n",
		locale.T(c.locale, locale.MsgAppTitle),
		locale.T(c.locale, locale.MsgIntro))
	return err
}

// RenderQuestion prints q and reads until a valid command is entered.
func (c *Console) RenderQuestion(ctx context.Context, q wizard.Question) (session.Command, error) {
	fmt.Fprintf(c.out, "%s\n%s\n", q.Title, q.Prompt)
	for i, ch := range q.Choices {
		fmt.Fprintf(c.out, "  %d) %s\n", i+1, ch.Label)
	}
	fmt.Fprintln(c.out, locale.T(c.locale, locale.MsgHint))

	for {
		if err := ctx.Err(); err != nil {
			return session.Command{}, err
		}
		fmt.Fprint(c.out, "> ")
		line, err := c.readLine(ctx)
		if err != nil {
			return session.Command{}, err
		}
		if cmd, ok := ParseCommand(line, q.Choices); ok {
			fmt.Fprintln(c.out)
			return cmd, nil
		}
		fmt.Fprintf(c.out, locale.T(c.locale, locale.MsgBadChoice)+"\n", len(q.Choices))
	}
}

// RenderRecommendation prints the recommended test and the answers that led
// to it.
func (c *Console) RenderRecommendation(_ context.Context, rec session.Recommendation) error {
	return c.writeMarkdown(RecommendationMarkdown(rec, c.locale))
}

// RenderCatalog prints every test as a table.
func (c *Console) RenderCatalog(_ context.Context, records []catalog.TestRecord) error {
	fmt.Fprintln(c.out, locale.T(c.locale, locale.MsgAllTests))
	if err := WriteTable(c.out, records); err != nil {
		return err
	}
	_, err := fmt.Fprintln(c.out)
	return err
}

// readLine waits for the next input line or for ctx to be done.
func (c *Console) readLine(ctx context.Context) (string, error) {
	if c.pending == nil {
		ch := make(chan readResult, 1)
		go func() {
			line, err := c.scanLine()
			ch <- readResult{line: line, err: err}
		}()
		c.pending = ch
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-c.pending:
		c.pending = nil
		return r.line, r.err
	}
}

func (c *Console) scanLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if strings.TrimSpace(line) != "" {
				return strings.TrimSpace(line), nil
			}
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (c *Console) writeMarkdown(md string) error {
	if c.renderer == nil {
		_, err := io.WriteString(c.out, md)
		return err
	}
	out, err := c.renderer.Render(md)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	_, err = io.WriteString(c.out, out)
	return err
}

// ParseCommand interprets one input line against the offered choices.
// A number selects a choice; b, r, c and q are navigation commands.
func ParseCommand(line string, choices []wizard.Choice) (session.Command, bool) {
	line = strings.ToLower(strings.TrimSpace(line))
	switch line {
	case "b", "back":
		return session.Command{Kind: session.CommandBack}, true
	case "r", "restart":
		return session.Command{Kind: session.CommandRestart}, true
	case "c", "catalog":
		return session.Command{Kind: session.CommandCatalog}, true
	case "q", "quit", "exit":
		return session.Command{Kind: session.CommandQuit}, true
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > len(choices) {
		return session.Command{}, false
	}
	return session.Answer(choices[n-1].Option), true
}

// WriteTable writes records as an aligned ID/NAME/FAMILY table.
func WriteTable(w io.Writer, records []catalog.TestRecord) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tFAMILY")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.ID, r.DisplayName, r.Family)
	}
	return tw.Flush()
}
