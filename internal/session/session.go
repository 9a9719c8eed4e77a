package session

import (
	"time"

	"github.com/abhisek/quizgame/internal/quiz"
)

// Event is an input to the session state machine.
type Event interface {
	isEvent()
}

// Loaded delivers the fetched question set.
type Loaded struct {
	Questions []quiz.Question
	At        time.Time
}

// LoadFailed reports that the question set could not be fetched.
type LoadFailed struct {
	Err error
}

// Tick is one countdown interval for the question scoped by Token.
type Tick struct {
	Token int
	At    time.Time
}

// Select chooses an option on the active question.
type Select struct {
	OptionID string
}

// Advance moves past an answered question scoped by Token.
type Advance struct {
	Token int
	At    time.Time
}

// Quit ends the session early. Unanswered questions stay unattempted.
type Quit struct {
	At time.Time
}

func (Loaded) isEvent()     {}
func (LoadFailed) isEvent() {}
func (Tick) isEvent()       {}
func (Select) isEvent()     {}
func (Advance) isEvent()    {}
func (Quit) isEvent()       {}

// Effect tells the driver what to schedule after a transition.
type Effect int

const (
	EffectNone     Effect = iota // Nothing to schedule; the event was ignored or absorbed
	EffectTick                   // Schedule the next Tick for State.Token
	EffectReveal                 // Schedule Advance for State.Token after the reveal delay
	EffectComplete               // Session finished; score and navigate
	EffectFailed                 // Load failed; show the error view
)

func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectTick:
		return "tick"
	case EffectReveal:
		return "reveal"
	case EffectComplete:
		return "complete"
	case EffectFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Apply is the single transition function of the session. It returns the
// next state and the effect the driver must schedule. Events that do not
// apply in the current state are ignored and return EffectNone.
func Apply(s State, ev Event) (State, Effect) {
	switch ev := ev.(type) {
	case Loaded:
		return applyLoaded(s, ev)
	case LoadFailed:
		return applyLoadFailed(s, ev)
	case Tick:
		return applyTick(s, ev)
	case Select:
		return applySelect(s, ev)
	case Advance:
		return applyAdvance(s, ev)
	case Quit:
		return applyQuit(s, ev)
	}
	return s, EffectNone
}

func applyLoaded(s State, ev Loaded) (State, Effect) {
	if s.Phase != PhaseLoading {
		return s, EffectNone
	}
	s.Questions = ev.Questions
	s.StartedAt = ev.At
	s.Answers = make([]Answer, len(ev.Questions))
	for i, q := range ev.Questions {
		s.Answers[i] = Answer{QuestionID: q.ID}
	}
	if len(ev.Questions) == 0 {
		return complete(s, ev.At)
	}
	s.Phase = PhaseInProgress
	s.Index = 0
	return enterQuestion(s), EffectTick
}

func applyLoadFailed(s State, ev LoadFailed) (State, Effect) {
	if s.Phase != PhaseLoading {
		return s, EffectNone
	}
	s.Phase = PhaseFailed
	s.Err = ev.Err
	return s, EffectFailed
}

func applyTick(s State, ev Tick) (State, Effect) {
	if !s.CountingDown() || ev.Token != s.Token {
		return s, EffectNone
	}
	s.Remaining--
	if s.Remaining > 0 {
		return s, EffectTick
	}

	// Time ran out with no selection.
	s.Remaining = 0
	s.Step = StepAnswered
	s.Answers = cloneAnswers(s.Answers)
	s.Answers[s.Index].TimedOut = true
	return advance(s, ev.At)
}

func applySelect(s State, ev Select) (State, Effect) {
	// First selection wins; later ones land on an Answered question.
	if !s.CountingDown() {
		return s, EffectNone
	}
	q := s.Questions[s.Index]
	opt, ok := q.Option(ev.OptionID)
	if !ok {
		return s, EffectNone
	}

	s.Selected = &opt
	s.Remaining = 0
	s.Step = StepAnswered
	s.Answers = cloneAnswers(s.Answers)
	s.Answers[s.Index] = Answer{
		QuestionID: q.ID,
		OptionID:   opt.ID,
		Correct:    opt.Correct,
		Attempted:  true,
	}
	return s, EffectReveal
}

func applyAdvance(s State, ev Advance) (State, Effect) {
	if s.Phase != PhaseInProgress || s.Step != StepAnswered || ev.Token != s.Token {
		return s, EffectNone
	}
	return advance(s, ev.At)
}

func applyQuit(s State, ev Quit) (State, Effect) {
	if s.Phase != PhaseInProgress {
		return s, EffectNone
	}
	s.EndedEarly = s.Index < len(s.Questions)-1 || s.Step == StepCountingDown
	return complete(s, ev.At)
}

// advance moves to the next question or completes the session.
func advance(s State, at time.Time) (State, Effect) {
	if s.Index < len(s.Questions)-1 {
		s.Index++
		return enterQuestion(s), EffectTick
	}
	return complete(s, at)
}

// enterQuestion resets per-question state and opens a new timer scope.
func enterQuestion(s State) State {
	s.Step = StepCountingDown
	s.Remaining = s.Settings.QuestionSeconds
	s.Selected = nil
	s.Token++
	s.Resets++
	return s
}

func complete(s State, at time.Time) (State, Effect) {
	s.Phase = PhaseCompleted
	s.Step = StepAnswered
	s.Remaining = 0
	s.Token++ // invalidate any outstanding tick or advance
	s.FinishedAt = at
	return s, EffectComplete
}

func cloneAnswers(in []Answer) []Answer {
	out := make([]Answer, len(in))
	copy(out, in)
	return out
}
