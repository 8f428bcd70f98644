// Package session drives a quiz: it asks for the next card, collects an
// answer, scores it and reports the outcome until the quiz ends.
package session

import (
	"context"
	stderrors "errors"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/vytor/flashquiz/internal/errors"
	"github.com/vytor/flashquiz/internal/logger"
	"github.com/vytor/flashquiz/internal/models"
	"github.com/vytor/flashquiz/internal/quiz"
)

// ExitToken ends a session early when typed as an answer, in any case.
const ExitToken = "exit"

// Display renders prompts, feedback and the final statistics.
type Display interface {
	ShowQuestion(number, total int, front string)
	ShowFeedback(correct bool, expected string)
	ShowInterrupted()
	ShowStats(stats models.SessionStats, detailed bool)
}

// Input supplies answers one line at a time.
// ReadLine returns io.EOF when no more input exists, and ctx.Err() when ctx
// is cancelled while waiting.
type Input interface {
	ReadLine(ctx context.Context) (string, error)
}

// Option configures a Session.
type Option func(*Session)

// WithDetailedStats makes the final statistics include the missed cards.
func WithDetailedStats(enabled bool) Option {
	return func(s *Session) {
		s.detailed = enabled
	}
}

// WithID overrides the generated session id used on log lines.
func WithID(id string) Option {
	return func(s *Session) {
		s.id = id
	}
}

// Session runs one quiz over a deck. A Session is single-use and not safe
// for concurrent use.
type Session struct {
	id       string
	mode     quiz.Mode
	cards    []*models.Card
	display  Display
	input    Input
	detailed bool

	state   State
	asked   int
	results []models.AnswerResult
	stats   models.SessionStats
}

// New creates a session over cards presented in the order mode decides.
func New(mode quiz.Mode, cards []*models.Card, display Display, input Input, opts ...Option) (*Session, error) {
	switch {
	case mode == nil:
		return nil, errors.NewConfigError("mode", "a quiz mode is required")
	case display == nil:
		return nil, errors.NewConfigError("display", "a display is required")
	case input == nil:
		return nil, errors.NewConfigError("input", "an input is required")
	case len(cards) == 0:
		return nil, errors.NewInvalidDeckError("no flashcards to quiz on")
	}

	s := &Session{
		id:      uuid.NewString(),
		mode:    mode,
		cards:   cards,
		display: display,
		input:   input,
		state:   Running,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Run presents cards until the mode is exhausted, the user exits, input ends
// or ctx is cancelled, then displays and returns the statistics.
// Ending early is not an error. Once a terminal state is reached, further
// calls present nothing and return the same statistics.
func (s *Session) Run(ctx context.Context) models.SessionStats {
	if s.state.Terminal() {
		return s.stats
	}

	log := logger.FromContext(ctx).WithPrefix("session").WithField("session_id", s.id)
	ctx = logger.NewContext(ctx, log)
	log.Info("session started: %d cards", len(s.cards))

	for s.state == Running {
		s.state = s.step(ctx)
	}

	if s.state == Interrupted {
		s.display.ShowInterrupted()
	}

	s.stats = models.NewSessionStats(s.results)
	log.Info("session %s: %d/%d correct", strings.ToLower(s.state.String()), s.stats.CorrectAnswers, s.stats.TotalQuestions)
	s.display.ShowStats(s.stats, s.detailed)
	return s.stats
}

// step presents one card and returns the next state.
func (s *Session) step(ctx context.Context) State {
	log := logger.FromContext(ctx)

	if ctx.Err() != nil {
		return Interrupted
	}
	if !s.mode.HasMore() {
		return Completed
	}
	card, ok := s.mode.NextCard()
	if !ok {
		return Completed
	}

	s.asked++
	s.display.ShowQuestion(s.asked, len(s.cards), card.Front)

	answer, err := s.input.ReadLine(ctx)
	switch {
	case ctx.Err() != nil, stderrors.Is(err, context.Canceled):
		log.Debug("interrupted while waiting for answer %d", s.asked)
		return Interrupted
	case stderrors.Is(err, io.EOF):
		log.Debug("input ended at question %d", s.asked)
		return Exited
	case err != nil:
		log.Warn("failed to read answer, ending session: %v", err)
		return Exited
	}

	if IsExit(answer) {
		log.Debug("exit requested at question %d", s.asked)
		return Exited
	}

	correct := CheckAnswer(answer, card.Back)
	card.Record(correct)
	s.results = append(s.results, models.AnswerResult{
		Card:       card,
		UserAnswer: answer,
		IsCorrect:  correct,
	})
	s.mode.RecordResult(card, correct)
	s.display.ShowFeedback(correct, card.Back)

	log.Debug("question %d answered: correct=%t", s.asked, correct)
	return Running
}

// CheckAnswer compares answers ignoring case and surrounding whitespace.
func CheckAnswer(answer, expected string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(expected))
}

// IsExit reports whether answer is the exit token.
func IsExit(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), ExitToken)
}
