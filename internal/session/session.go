package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/statpick/internal/catalog"
	"github.com/abhisek/statpick/internal/locale"
	"github.com/abhisek/statpick/internal/wizard"
)

// Recommendation holds the data displayed once the wizard reaches a test.
type Recommendation struct {
	Record     catalog.TestRecord
	FamilyName string
	Trail      []wizard.AnsweredQuestion
	Steps      int
	Duration   time.Duration
}

// Session is one user's walk through the wizard. It owns its wizard.State
// exclusively; nothing is shared between sessions.
type Session struct {
	id      string
	catalog *catalog.Catalog
	locale  locale.Locale
	logger  *zap.Logger
	now     func() time.Time

	state     wizard.State
	outcome   *wizard.Outcome
	startTime time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger transitions are recorded to.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New starts a session at step 1. Question and catalog text follow the
// catalog's locale.
func New(cat *catalog.Catalog, opts ...Option) *Session {
	s := &Session{
		id:      uuid.New().String(),
		catalog: cat,
		locale:  cat.Locale(),
		logger:  zap.NewNop(),
		now:     time.Now,
		state:   wizard.NewState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.startTime = s.now()
	s.logger = s.logger.With(zap.String("session_id", s.id))
	s.logger.Info("session started", zap.String("locale", string(s.locale)))
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Locale returns the session language.
func (s *Session) Locale() locale.Locale { return s.locale }

// Catalog returns the catalog recommendations are drawn from.
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

// State returns a copy of the current wizard state.
func (s *Session) State() wizard.State {
	return wizard.State{Step: s.state.Step, Answers: s.state.Answers.Clone()}
}

// Steps returns how many wizard steps have been presented so far.
func (s *Session) Steps() int {
	if s.outcome != nil {
		return s.outcome.State.Step
	}
	return s.state.Step
}

// Answers returns a copy of the answers given so far, including the one
// that produced the recommendation.
func (s *Session) Answers() wizard.Answers {
	if s.outcome != nil {
		return s.outcome.State.Answers.Clone()
	}
	return s.state.Answers.Clone()
}

// Finished reports whether a recommendation has been reached.
func (s *Session) Finished() bool {
	return s.outcome != nil
}

// Current returns the question due. It fails once the session is finished.
func (s *Session) Current() (wizard.Question, error) {
	if s.outcome != nil {
		return wizard.Question{}, fmt.Errorf("session finished with %s", s.outcome.TestID)
	}
	return wizard.Describe(s.state, s.locale)
}

// Answer records option as the answer to the current question.
func (s *Session) Answer(option wizard.Option) (wizard.Outcome, error) {
	if s.outcome != nil {
		return *s.outcome, fmt.Errorf("%w: session already has a recommendation", wizard.ErrInvalidTransition)
	}
	key, err := wizard.Expected(s.state)
	if err != nil {
		return wizard.Outcome{}, err
	}

	out, err := wizard.Advance(s.state, key, option)
	if err != nil {
		s.logger.Error("transition rejected",
			zap.Int("step", s.state.Step),
			zap.String("key", string(key)),
			zap.String("option", string(option)),
			zap.Error(err))
		return wizard.Outcome{}, err
	}

	if out.IsTerminal() {
		if _, err := s.catalog.Lookup(out.TestID); err != nil {
			return wizard.Outcome{}, fmt.Errorf("resolve recommendation: %w", err)
		}
		s.outcome = &out
		s.logger.Info("recommendation reached",
			zap.Int("step", s.state.Step),
			zap.String("key", string(key)),
			zap.String("option", string(option)),
			zap.String("test_id", string(out.TestID)),
			zap.Duration("elapsed", s.now().Sub(s.startTime)))
		return out, nil
	}

	s.logger.Info("wizard advanced",
		zap.Int("step", s.state.Step),
		zap.String("key", string(key)),
		zap.String("option", string(option)),
		zap.Int("next_step", out.State.Step))
	s.state = out.State
	return out, nil
}

// Back undoes navigation. From a recommendation it reopens the question that
// produced it; otherwise it moves to the previous step, dropping the answers
// given there. At step 1 it returns wizard.ErrNoPreviousStep.
func (s *Session) Back() error {
	if s.outcome != nil {
		s.outcome = nil
		s.logger.Debug("recommendation dismissed", zap.Int("step", s.state.Step))
		return nil
	}
	prev, err := wizard.Back(s.state)
	if err != nil {
		return err
	}
	s.logger.Debug("stepped back",
		zap.Int("from", s.state.Step),
		zap.Int("to", prev.Step))
	s.state = prev
	return nil
}

// Restart discards all answers and any recommendation.
func (s *Session) Restart() {
	s.logger.Debug("session restarted", zap.Int("from", s.state.Step))
	s.state = wizard.Restart()
	s.outcome = nil
	s.startTime = s.now()
}

// Recommendation returns the reached recommendation, if any.
func (s *Session) Recommendation() (Recommendation, bool) {
	if s.outcome == nil {
		return Recommendation{}, false
	}
	rec, err := s.catalog.Lookup(s.outcome.TestID)
	if err != nil {
		return Recommendation{}, false
	}
	return Recommendation{
		Record:     rec,
		FamilyName: s.catalog.FamilyName(rec.Family),
		Trail:      wizard.Trail(s.outcome.State.Answers, s.locale),
		Steps:      s.outcome.State.Step,
		Duration:   s.now().Sub(s.startTime),
	}, true
}
