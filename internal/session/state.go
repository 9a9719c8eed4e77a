package session

import (
	"time"

	"github.com/abhisek/quizgame/internal/quiz"
)

// DefaultQuestionSeconds is the countdown each question starts with.
const DefaultQuestionSeconds = 15

// DefaultPassPercent is the minimum percentage for a win.
const DefaultPassPercent = 60.0

// Phase is the session-level state.
type Phase int

const (
	PhaseLoading    Phase = iota // Waiting for the question set
	PhaseInProgress              // Serving questions
	PhaseCompleted               // Scored, results ready
	PhaseFailed                  // Question set could not be loaded
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseInProgress:
		return "in-progress"
	case PhaseCompleted:
		return "completed"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Step is the per-question state while InProgress.
type Step int

const (
	StepCountingDown Step = iota // Countdown running, input accepted
	StepAnswered                 // Selection made or time ran out; input ignored
)

// Settings are fixed for the life of a session.
type Settings struct {
	QuestionSeconds int
	PassPercent     float64
}

// DefaultSettings returns the standard 15 second / 60% settings.
func DefaultSettings() Settings {
	return Settings{
		QuestionSeconds: DefaultQuestionSeconds,
		PassPercent:     DefaultPassPercent,
	}
}

// WithDefaults fills in a missing countdown length or pass mark.
func (s Settings) WithDefaults() Settings {
	if s.QuestionSeconds <= 0 {
		s.QuestionSeconds = DefaultQuestionSeconds
	}
	if s.PassPercent <= 0 {
		s.PassPercent = DefaultPassPercent
	}
	return s
}

// Answer records what happened to one question.
type Answer struct {
	QuestionID string
	OptionID   string // empty when unattempted
	Correct    bool
	Attempted  bool
	TimedOut   bool
}

// State is the full session state. It is a value: Apply never mutates the
// state it is given.
type State struct {
	ID       string
	Settings Settings
	Phase    Phase
	Step     Step

	// Questions is set once on load and never modified.
	Questions []quiz.Question

	// Index is the active question, 0-based and non-decreasing.
	Index int

	// Remaining is the countdown for the active question, in seconds.
	Remaining int

	// Selected is the option chosen for the active question, nil if none.
	Selected *quiz.Option

	// Answers holds one entry per question, in question order.
	Answers []Answer

	// Token scopes the countdown to the active question. Ticks and advances
	// carrying an older token are stale and dropped.
	Token int

	// Resets counts countdown resets, one per question entered.
	Resets int

	// EndedEarly is set when the player quit before the last question.
	EndedEarly bool

	StartedAt  time.Time
	FinishedAt time.Time

	// Err is the load failure when Phase is PhaseFailed.
	Err error
}

// New returns a session waiting for its questions.
func New(id string, settings Settings) State {
	return State{
		ID:       id,
		Settings: settings.WithDefaults(),
		Phase:    PhaseLoading,
	}
}

// Current returns the active question.
func (s State) Current() (quiz.Question, bool) {
	if s.Phase != PhaseInProgress || s.Index < 0 || s.Index >= len(s.Questions) {
		return quiz.Question{}, false
	}
	return s.Questions[s.Index], true
}

// CountingDown reports whether the active question's countdown is running.
func (s State) CountingDown() bool {
	return s.Phase == PhaseInProgress && s.Step == StepCountingDown
}

// Result is the outcome of a finished session.
type Result struct {
	SessionID  string
	Questions  []quiz.Question
	Answers    []Answer
	Correct    int
	Percentage float64
	Outcome    Outcome
	EndedEarly bool
	StartedAt  time.Time
	FinishedAt time.Time
}

// Result scores the session. Only meaningful once Completed.
func (s State) Result() Result {
	pct := Percentage(s.Answers, len(s.Questions))
	return Result{
		SessionID:  s.ID,
		Questions:  s.Questions,
		Answers:    s.Answers,
		Correct:    CountCorrect(s.Answers),
		Percentage: pct,
		Outcome:    OutcomeFor(pct, s.Settings.PassPercent),
		EndedEarly: s.EndedEarly,
		StartedAt:  s.StartedAt,
		FinishedAt: s.FinishedAt,
	}
}
