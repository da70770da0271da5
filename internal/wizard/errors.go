package wizard

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition marks an answer that does not fit the current state:
// the wrong question, an option outside the question's choices, or a state
// missing the answers needed to reach its step.
var ErrInvalidTransition = errors.New("invalid transition")

// ErrNoPreviousStep is returned by Back at step 1.
var ErrNoPreviousStep = errors.New("no step before step 1")

// TransitionError describes a rejected transition.
type TransitionError struct {
	Step   int
	Key    QuestionKey
	Option Option
	Reason string
}

func (e *TransitionError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("invalid transition at step %d: %s", e.Step, e.Reason)
	}
	if e.Option == "" {
		return fmt.Sprintf("invalid transition at step %d (%s): %s", e.Step, e.Key, e.Reason)
	}
	return fmt.Sprintf("invalid transition at step %d (%s=%s): %s", e.Step, e.Key, e.Option, e.Reason)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }
