package quiz

import (
	qz "github.com/abhisek/quizgame/internal/quiz"
)

// Every message carries the ID of the screen that scheduled it. A screen
// drops messages addressed to another instance, so a retry never sees the
// previous attempt's fetch or timers.

// questionsLoadedMsg is sent when the question fetch finishes.
type questionsLoadedMsg struct {
	ScreenID  int
	Questions []qz.Question
	Err       error
}

// countdownTickMsg is one second of the countdown for the question scoped
// by Token.
type countdownTickMsg struct {
	ScreenID int
	Token    int
}

// advanceMsg ends the reveal period of an answered question.
type advanceMsg struct {
	ScreenID int
	Token    int
}

// gameSavedMsg confirms the finished game was persisted.
type gameSavedMsg struct {
	ScreenID int
	Err      error
}

// redirectMsg ends the "Redirecting to results..." view.
type redirectMsg struct {
	ScreenID int
}
