package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/statpick/internal/catalog"
	"github.com/abhisek/statpick/internal/wizard"
)

// ErrQuit is returned by Drive when the user leaves before a recommendation.
var ErrQuit = errors.New("wizard quit")

// CommandKind tags what the user asked for at a prompt.
type CommandKind int

const (
	CommandAnswer  CommandKind = iota // Option holds the chosen answer
	CommandBack                       // Return to the previous step
	CommandRestart                    // Discard answers and start over
	CommandCatalog                    // List every test, then ask again
	CommandQuit                       // Leave the wizard
)

func (k CommandKind) String() string {
	switch k {
	case CommandAnswer:
		return "answer"
	case CommandBack:
		return "back"
	case CommandRestart:
		return "restart"
	case CommandCatalog:
		return "catalog"
	case CommandQuit:
		return "quit"
	default:
		return fmt.Sprintf("CommandKind(%d)", int(k))
	}
}

// Command is the user's reply to a question.
type Command struct {
	Kind   CommandKind
	Option wizard.Option
}

// Answer returns a command selecting option.
func Answer(option wizard.Option) Command {
	return Command{Kind: CommandAnswer, Option: option}
}

// Presenter renders the wizard and collects commands. Implementations only
// return answers drawn from the question's choices.
type Presenter interface {
	RenderQuestion(ctx context.Context, q wizard.Question) (Command, error)
	RenderRecommendation(ctx context.Context, rec Recommendation) error
	RenderCatalog(ctx context.Context, records []catalog.TestRecord) error
}

// Drive runs s to completion through p and returns the recommendation.
// It stops with ErrQuit on a quit command and with ctx.Err() once ctx is
// done. Back at step 1 is ignored.
func Drive(ctx context.Context, s *Session, p Presenter) (Recommendation, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Recommendation{}, err
		}

		if rec, ok := s.Recommendation(); ok {
			if err := p.RenderRecommendation(ctx, rec); err != nil {
				return rec, fmt.Errorf("render recommendation: %w", err)
			}
			return rec, nil
		}

		q, err := s.Current()
		if err != nil {
			return Recommendation{}, err
		}
		cmd, err := p.RenderQuestion(ctx, q)
		if err != nil {
			return Recommendation{}, err
		}

		switch cmd.Kind {
		case CommandAnswer:
			if _, err := s.Answer(cmd.Option); err != nil {
				return Recommendation{}, err
			}
		case CommandBack:
			if err := s.Back(); err != nil && !errors.Is(err, wizard.ErrNoPreviousStep) {
				return Recommendation{}, err
			}
		case CommandRestart:
			s.Restart()
		case CommandCatalog:
			if err := p.RenderCatalog(ctx, s.Catalog().All()); err != nil {
				return Recommendation{}, fmt.Errorf("render catalog: %w", err)
			}
		case CommandQuit:
			return Recommendation{}, ErrQuit
		default:
			return Recommendation{}, fmt.Errorf("unknown command %s", cmd.Kind)
		}
	}
}
