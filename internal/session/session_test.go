package session

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizgame/internal/quiz"
)

// testQuestions builds n questions with options "<id>-right" and "<id>-wrong".
func testQuestions(n int) []quiz.Question {
	qs := make([]quiz.Question, n)
	for i := range qs {
		id := fmt.Sprintf("q%d", i+1)
		qs[i] = quiz.Question{
			ID:   id,
			Text: "Question " + id,
			Options: []quiz.Option{
				{ID: id + "-right", Text: "Right", Correct: true},
				{ID: id + "-wrong", Text: "Wrong"},
			},
		}
	}
	return qs
}

func loaded(t *testing.T, n int) State {
	t.Helper()
	s, eff := Apply(New("test", DefaultSettings()), Loaded{Questions: testQuestions(n)})
	require.Equal(t, EffectTick, eff)
	return s
}

// answer selects an option on the active question and advances past it.
func answer(t *testing.T, s State, optionID string) State {
	t.Helper()
	s, eff := Apply(s, Select{OptionID: optionID})
	require.Equal(t, EffectReveal, eff)
	s, _ = Apply(s, Advance{Token: s.Token})
	return s
}

// timeout runs the countdown for the active question to zero.
func timeout(t *testing.T, s State) (State, Effect) {
	t.Helper()
	var eff Effect
	for i := 0; i < s.Settings.QuestionSeconds; i++ {
		s, eff = Apply(s, Tick{Token: s.Token})
	}
	return s, eff
}

func TestNew(t *testing.T) {
	s := New("abc", Settings{})
	assert.Equal(t, PhaseLoading, s.Phase)
	assert.Equal(t, DefaultQuestionSeconds, s.Settings.QuestionSeconds)
	assert.False(t, s.CountingDown())

	_, ok := s.Current()
	assert.False(t, ok)
}

func TestNew_ZeroSettingsUseDefaultPassMark(t *testing.T) {
	s := New("x", Settings{})
	assert.Equal(t, DefaultPassPercent, s.Settings.PassPercent)

	s, _ = Apply(s, Loaded{Questions: testQuestions(1)})
	s, eff := Apply(s, Select{OptionID: "q1-wrong"})
	require.Equal(t, EffectReveal, eff)
	s, eff = Apply(s, Advance{Token: s.Token})
	require.Equal(t, EffectComplete, eff)

	res := s.Result()
	assert.Equal(t, 0.0, res.Percentage)
	assert.Equal(t, OutcomeLose, res.Outcome)
}

func TestLoaded_EntersFirstQuestion(t *testing.T) {
	s := loaded(t, 3)

	assert.Equal(t, PhaseInProgress, s.Phase)
	assert.Equal(t, StepCountingDown, s.Step)
	assert.Equal(t, 0, s.Index)
	assert.Equal(t, 15, s.Remaining)
	assert.Nil(t, s.Selected)
	assert.Equal(t, 1, s.Resets)
	require.Len(t, s.Answers, 3)
	assert.Equal(t, "q1", s.Answers[0].QuestionID)

	q, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "q1", q.ID)
}

func TestLoaded_IgnoredOutsideLoading(t *testing.T) {
	s := loaded(t, 2)
	next, eff := Apply(s, Loaded{Questions: testQuestions(5)})
	assert.Equal(t, EffectNone, eff)
	assert.Len(t, next.Questions, 2)
}

func TestLoadFailed_NoCountdown(t *testing.T) {
	boom := errors.New("boom")
	s, eff := Apply(New("test", DefaultSettings()), LoadFailed{Err: boom})

	assert.Equal(t, EffectFailed, eff)
	assert.Equal(t, PhaseFailed, s.Phase)
	assert.ErrorIs(t, s.Err, boom)
	assert.False(t, s.CountingDown())

	// Ticks never start a countdown after a failed load.
	s, eff = Apply(s, Tick{Token: s.Token})
	assert.Equal(t, EffectNone, eff)
	assert.Zero(t, s.Resets)
}

func TestTick_CountsDown(t *testing.T) {
	s := loaded(t, 2)

	s, eff := Apply(s, Tick{Token: s.Token})
	assert.Equal(t, EffectTick, eff)
	assert.Equal(t, 14, s.Remaining)
}

func TestTick_StaleTokenIgnored(t *testing.T) {
	s := loaded(t, 2)
	stale := s.Token

	s = answer(t, s, "q1-right")
	require.Equal(t, 1, s.Index)

	next, eff := Apply(s, Tick{Token: stale})
	assert.Equal(t, EffectNone, eff)
	assert.Equal(t, s, next)
}

func TestTimeout_AdvancesAsUnattempted(t *testing.T) {
	s := loaded(t, 2)

	s, eff := timeout(t, s)
	assert.Equal(t, EffectTick, eff)
	assert.Equal(t, 1, s.Index)
	assert.Equal(t, 15, s.Remaining)
	assert.Equal(t, 2, s.Resets)

	first := s.Answers[0]
	assert.False(t, first.Attempted)
	assert.False(t, first.Correct)
	assert.True(t, first.TimedOut)
}

func TestTimeout_LastQuestionCompletes(t *testing.T) {
	s := loaded(t, 1)

	s, eff := timeout(t, s)
	assert.Equal(t, EffectComplete, eff)
	assert.Equal(t, PhaseCompleted, s.Phase)
	assert.Equal(t, OutcomeLose, s.Result().Outcome)
}

func TestSelect_HaltsCountdown(t *testing.T) {
	s := loaded(t, 2)
	s, _ = Apply(s, Tick{Token: s.Token})

	s, eff := Apply(s, Select{OptionID: "q1-right"})
	assert.Equal(t, EffectReveal, eff)
	assert.Equal(t, StepAnswered, s.Step)
	assert.Equal(t, 0, s.Remaining)
	require.NotNil(t, s.Selected)
	assert.Equal(t, "q1-right", s.Selected.ID)
	assert.True(t, s.Answers[0].Attempted)
	assert.True(t, s.Answers[0].Correct)

	// The countdown no longer moves.
	next, eff := Apply(s, Tick{Token: s.Token})
	assert.Equal(t, EffectNone, eff)
	assert.Equal(t, s, next)
}

func TestSelect_FirstSelectionWins(t *testing.T) {
	s := loaded(t, 2)
	s, _ = Apply(s, Select{OptionID: "q1-wrong"})

	next, eff := Apply(s, Select{OptionID: "q1-right"})
	assert.Equal(t, EffectNone, eff)
	require.NotNil(t, next.Selected)
	assert.Equal(t, "q1-wrong", next.Selected.ID)
	assert.False(t, next.Answers[0].Correct)
}

func TestSelect_UnknownOptionIgnored(t *testing.T) {
	s := loaded(t, 2)
	next, eff := Apply(s, Select{OptionID: "nope"})
	assert.Equal(t, EffectNone, eff)
	assert.Equal(t, s, next)
}

func TestAdvance_ResetsPerQuestionState(t *testing.T) {
	s := loaded(t, 2)
	s, _ = Apply(s, Select{OptionID: "q1-right"})
	token := s.Token

	s, eff := Apply(s, Advance{Token: token})
	assert.Equal(t, EffectTick, eff)
	assert.Equal(t, 1, s.Index)
	assert.Equal(t, StepCountingDown, s.Step)
	assert.Equal(t, 15, s.Remaining)
	assert.Nil(t, s.Selected)
	assert.Greater(t, s.Token, token)

	// A duplicate advance for the old question does nothing.
	next, eff := Apply(s, Advance{Token: token})
	assert.Equal(t, EffectNone, eff)
	assert.Equal(t, s, next)
}

func TestAdvance_IgnoredWhileCountingDown(t *testing.T) {
	s := loaded(t, 2)
	next, eff := Apply(s, Advance{Token: s.Token})
	assert.Equal(t, EffectNone, eff)
	assert.Equal(t, s, next)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	s := loaded(t, 2)
	before := cloneAnswers(s.Answers)

	_, _ = Apply(s, Select{OptionID: "q1-right"})
	assert.Equal(t, before, s.Answers)
	assert.Nil(t, s.Selected)
}

func TestHappyPath_OneResetPerQuestion(t *testing.T) {
	const n = 5
	s := loaded(t, n)
	for i := 1; i <= n; i++ {
		s = answer(t, s, fmt.Sprintf("q%d-right", i))
	}
	assert.Equal(t, PhaseCompleted, s.Phase)
	assert.Equal(t, n, s.Resets)
}

func TestAtMostOneSelectionPerQuestion(t *testing.T) {
	s := loaded(t, 3)
	events := []Event{
		Select{OptionID: "q1-wrong"},
		Select{OptionID: "q1-right"},
		Tick{Token: s.Token},
		Advance{Token: s.Token},
		Select{OptionID: "q2-right"},
		Select{OptionID: "q2-wrong"},
	}
	for _, ev := range events {
		s, _ = Apply(s, ev)
		attempted := 0
		for _, a := range s.Answers {
			if a.Attempted {
				attempted++
			}
		}
		assert.LessOrEqual(t, attempted, s.Index+1)
	}
	assert.Equal(t, "q1-wrong", s.Answers[0].OptionID)
	assert.Equal(t, "q2-right", s.Answers[1].OptionID)
}

func TestScenario_ThreeOfFiveWins(t *testing.T) {
	s := loaded(t, 5)
	s = answer(t, s, "q1-right")
	s = answer(t, s, "q2-right")
	s = answer(t, s, "q3-right")
	s, _ = timeout(t, s)
	s, eff := timeout(t, s)

	require.Equal(t, EffectComplete, eff)
	res := s.Result()
	assert.Equal(t, 60.0, res.Percentage)
	assert.Equal(t, OutcomeWon, res.Outcome)
	assert.Equal(t, 3, res.Correct)
	assert.False(t, res.EndedEarly)
}

func TestQuit_EndsEarly(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s := loaded(t, 4)
	s = answer(t, s, "q1-right")
	token := s.Token

	s, eff := Apply(s, Quit{At: at})
	assert.Equal(t, EffectComplete, eff)
	assert.Equal(t, PhaseCompleted, s.Phase)
	assert.True(t, s.EndedEarly)
	assert.Equal(t, at, s.FinishedAt)

	// Pending ticks are dead.
	_, eff = Apply(s, Tick{Token: token})
	assert.Equal(t, EffectNone, eff)

	res := s.Result()
	assert.Equal(t, 25.0, res.Percentage)
	assert.Equal(t, OutcomeLose, res.Outcome)
}

func TestQuit_IgnoredWhenNotInProgress(t *testing.T) {
	s := New("test", DefaultSettings())
	_, eff := Apply(s, Quit{})
	assert.Equal(t, EffectNone, eff)
}

func TestLoaded_ZeroQuestionsCompletes(t *testing.T) {
	s, eff := Apply(New("test", DefaultSettings()), Loaded{})
	assert.Equal(t, EffectComplete, eff)
	assert.Equal(t, PhaseCompleted, s.Phase)
	assert.Equal(t, 0.0, s.Result().Percentage)
}
