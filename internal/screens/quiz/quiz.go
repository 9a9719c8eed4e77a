package quiz

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/quizgame/internal/questions"
	"github.com/abhisek/quizgame/internal/report"
	"github.com/abhisek/quizgame/internal/router"
	"github.com/abhisek/quizgame/internal/screen"
	"github.com/abhisek/quizgame/internal/screens/results"
	sess "github.com/abhisek/quizgame/internal/session"
	"github.com/abhisek/quizgame/internal/store"
	"github.com/abhisek/quizgame/internal/ui/components"
	"github.com/abhisek/quizgame/internal/ui/layout"
	"github.com/abhisek/quizgame/internal/ui/theme"
)

// saveTimeout bounds persisting a finished game.
const saveTimeout = 5 * time.Second

var screenIDs atomic.Int64

var errNoLoader = errors.New("no question source configured")

// Options carries the dependencies of a quiz screen.
type Options struct {
	Loader   questions.Loader
	Games    store.GameRepo // nil disables history
	Logger   *zap.Logger
	Settings sess.Settings

	// RevealDelay is how long the answered question stays on screen.
	RevealDelay time.Duration

	// RedirectDelay is how long the redirect view shows before results.
	RedirectDelay time.Duration
}

// QuizScreen plays one session: it fetches the questions, runs the
// per-question countdown and hands the outcome to the results screen.
type QuizScreen struct {
	opts   Options
	id     int
	ctx    context.Context
	cancel context.CancelFunc
	now    func() time.Time
	second time.Duration // countdown interval

	state       sess.State
	options     components.OptionList
	spinner     spinner.Model
	quitConfirm bool
	report      *report.Report
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)
var _ screen.Closer = (*QuizScreen)(nil)

// New creates a QuizScreen. The fetch starts on Init.
func New(opts Options) *QuizScreen {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	id := int(screenIDs.Add(1))
	sessionID := uuid.New().String()

	return &QuizScreen{
		opts:   opts,
		id:     id,
		ctx:    ctx,
		cancel: cancel,
		now:    time.Now,
		second: time.Second,
		state:  sess.New(sessionID, opts.Settings),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
		),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return tea.Batch(s.spinner.Tick, s.loadQuestions())
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

// Status shows the question counter and seconds left while a game is
// running. It turns urgent with the countdown bar.
func (s *QuizScreen) Status() layout.Status {
	if s.state.Phase != sess.PhaseInProgress {
		return layout.Status{}
	}
	return layout.Status{
		Text: fmt.Sprintf("Q %d/%d · %ds",
			s.state.Index+1, len(s.state.Questions), s.state.Remaining),
		Urgent: s.state.CountingDown() && s.state.Remaining <= components.LowSeconds,
	}
}

// Close cancels an in-flight fetch.
func (s *QuizScreen) Close() {
	s.cancel()
}

// State returns the current session state.
func (s *QuizScreen) State() sess.State {
	return s.state
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.state.Phase == sess.PhaseFailed:
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	case s.state.Phase == sess.PhaseLoading:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	case s.state.Phase == sess.PhaseCompleted:
		return nil
	case s.quitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End game", Urgent: true},
			{Key: "N", Description: "Keep going"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-9", Description: "Answer"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if s.state.Phase != sess.PhaseLoading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case questionsLoadedMsg:
		if msg.ScreenID != s.id {
			return s, nil
		}
		return s.handleLoaded(msg)

	case countdownTickMsg:
		if msg.ScreenID != s.id {
			return s, nil
		}
		return s, s.apply(sess.Tick{Token: msg.Token, At: s.now()})

	case advanceMsg:
		if msg.ScreenID != s.id {
			return s, nil
		}
		return s, s.apply(sess.Advance{Token: msg.Token, At: s.now()})

	case gameSavedMsg:
		if msg.ScreenID == s.id && msg.Err != nil {
			s.opts.Logger.Warn("save game failed",
				zap.String("session_id", s.state.ID),
				zap.Error(msg.Err))
		}
		return s, nil

	case redirectMsg:
		if msg.ScreenID != s.id || s.report == nil {
			return s, nil
		}
		rep := *s.report
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: results.New(rep)}
		}

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleLoaded(msg questionsLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.opts.Logger.Error("load questions failed",
			zap.String("session_id", s.state.ID),
			zap.Error(msg.Err))
		return s, s.apply(sess.LoadFailed{Err: msg.Err})
	}
	s.opts.Logger.Info("session started",
		zap.String("session_id", s.state.ID),
		zap.Int("questions", len(msg.Questions)))
	return s, s.apply(sess.Loaded{Questions: msg.Questions, At: s.now()})
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.state.Phase {
	case sess.PhaseFailed:
		switch key {
		case "r", "R":
			// A fresh screen is a full reload with a new session.
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: New(s.opts)}
			}
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil

	case sess.PhaseLoading:
		if key == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil

	case sess.PhaseCompleted:
		return s, nil
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			return s, s.apply(sess.Quit{At: s.now()})
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.quitConfirm = true
		return s, nil
	case "up", "k":
		s.options = s.options.Up()
		return s, nil
	case "down", "j":
		s.options = s.options.Down()
		return s, nil
	case "enter", "space":
		return s, s.choose(s.options.Cursor)
	}

	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= 9 {
		return s, s.choose(n - 1)
	}
	return s, nil
}

// choose selects the option at index i of the active question.
func (s *QuizScreen) choose(i int) tea.Cmd {
	opt, ok := s.options.At(i)
	if !ok || !s.state.CountingDown() {
		return nil
	}
	s.options.Cursor = i
	return s.apply(sess.Select{OptionID: opt.ID})
}

// apply runs ev through the session and schedules its effect.
func (s *QuizScreen) apply(ev sess.Event) tea.Cmd {
	prev := s.state
	next, eff := sess.Apply(s.state, ev)
	s.state = next

	switch eff {
	case sess.EffectTick:
		if next.Resets != prev.Resets {
			if q, ok := next.Current(); ok {
				s.options = components.NewOptionList(q)
			}
			s.quitConfirm = false
		}
		return s.tickCmd(next.Token)

	case sess.EffectReveal:
		if next.Selected != nil {
			s.options = s.options.Reveal(next.Selected.ID)
		}
		return s.advanceCmd(next.Token)

	case sess.EffectComplete:
		s.quitConfirm = false
		rep := report.Build(next.Result())
		s.report = &rep
		s.opts.Logger.Info("session finished",
			zap.String("session_id", rep.SessionID),
			zap.String("outcome", string(rep.Outcome)),
			zap.Float64("percentage", rep.Percentage),
			zap.Int("correct", rep.Correct),
			zap.Int("unattempted", rep.Unattempted),
			zap.Bool("ended_early", rep.EndedEarly))
		return tea.Batch(s.saveGame(rep), s.redirectCmd())
	}
	return nil
}

// loadQuestions fetches the question set under the screen's context.
func (s *QuizScreen) loadQuestions() tea.Cmd {
	ctx, loader, id := s.ctx, s.opts.Loader, s.id
	return func() tea.Msg {
		if loader == nil {
			return questionsLoadedMsg{ScreenID: id, Err: errNoLoader}
		}
		qs, err := loader.Load(ctx)
		return questionsLoadedMsg{ScreenID: id, Questions: qs, Err: err}
	}
}

func (s *QuizScreen) tickCmd(token int) tea.Cmd {
	id := s.id
	return tea.Tick(s.second, func(time.Time) tea.Msg {
		return countdownTickMsg{ScreenID: id, Token: token}
	})
}

func (s *QuizScreen) advanceCmd(token int) tea.Cmd {
	msg := advanceMsg{ScreenID: s.id, Token: token}
	if s.opts.RevealDelay <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(s.opts.RevealDelay, func(time.Time) tea.Msg { return msg })
}

func (s *QuizScreen) redirectCmd() tea.Cmd {
	msg := redirectMsg{ScreenID: s.id}
	if s.opts.RedirectDelay <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(s.opts.RedirectDelay, func(time.Time) tea.Msg { return msg })
}

// saveGame persists the finished game. Failures are logged only.
func (s *QuizScreen) saveGame(rep report.Report) tea.Cmd {
	games, id := s.opts.Games, s.id
	if games == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		return gameSavedMsg{ScreenID: id, Err: games.SaveGame(ctx, rep)}
	}
}
