package report

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizgame/internal/quiz"
	rpt "github.com/abhisek/quizgame/internal/report"
	"github.com/abhisek/quizgame/internal/router"
	"github.com/abhisek/quizgame/internal/session"
	"github.com/abhisek/quizgame/internal/ui/layout"
)

func partialReport() rpt.Report {
	return rpt.Report{
		SessionID:   "s1",
		Outcome:     session.OutcomeLose,
		Percentage:  40,
		Total:       5,
		Correct:     2,
		Incorrect:   1,
		Unattempted: 2,
		UnattemptedQuestions: []quiz.Question{
			{ID: "q4", Text: "Pick the gopher", Kind: quiz.KindImage, Options: []quiz.Option{
				{ID: "a", Text: "Gopher", ImageURL: "https://example.com/g.png", Correct: true},
				{ID: "b", Text: "Crab", ImageURL: "https://example.com/c.png"},
			}},
			{ID: "q5", Text: "Zero value of int?", Kind: quiz.KindSingleSelect, Options: []quiz.Option{
				{ID: "a", Text: "nil"},
				{ID: "b", Text: "0", Correct: true},
			}},
		},
	}
}

func TestRender_Counts(t *testing.T) {
	out := ansi.Strip(Render(partialReport(), 80))

	assert.Contains(t, out, "2 Correct answers")
	assert.Contains(t, out, "1 Incorrect answers")
	assert.Contains(t, out, "2 Unattempted answers")
}

func TestRender_AllAttempted(t *testing.T) {
	r := rpt.Report{Total: 3, Correct: 2, Incorrect: 1}
	out := ansi.Strip(Render(r, 80))

	assert.Contains(t, out, "Attempted all the questions")
	assert.NotContains(t, out, "Unattempted Questions")
}

func TestRender_UnattemptedQuestions(t *testing.T) {
	out := ansi.Strip(Render(partialReport(), 80))

	assert.Contains(t, out, "Unattempted Questions")
	assert.Contains(t, out, "1. Pick the gopher")
	assert.Contains(t, out, "[image] Gopher <https://example.com/g.png>  ✓")
	assert.Contains(t, out, "[image] Crab <https://example.com/c.png>")
	assert.Contains(t, out, "2. Zero value of int?")
	assert.Contains(t, out, "( ) 0  ✓")
	assert.NotContains(t, out, "( ) nil  ✓")
	assert.NotContains(t, out, "Attempted all the questions")
}

func TestReportScreen_EscPops(t *testing.T) {
	s := New(partialReport())
	assert.Equal(t, "Game Report", s.Title())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok, "expected PopScreenMsg")
}

func TestReportScreen_Scroll(t *testing.T) {
	s := New(partialReport())
	full := strings.Split(s.View(80, 100), "\n")
	require.Greater(t, len(full), 7)

	// Nothing to scroll until the terminal size is known.
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 0, s.offset)

	s.Update(tea.WindowSizeMsg{Width: 80, Height: 6 + layout.HeaderHeight + layout.FooterHeight})
	top := s.View(80, 6)
	assert.Len(t, strings.Split(top, "\n"), 6)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, s.offset)
	assert.NotEqual(t, top, s.View(80, 6))

	// The offset stops at the last page.
	for i := 0; i < 100; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	assert.Equal(t, len(full)-6, s.offset)

	// A single Up moves the view straight away.
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, len(full)-7, s.offset)
}

func TestReportScreen_ResizeClampsOffset(t *testing.T) {
	s := New(partialReport())
	lines := len(strings.Split(s.View(80, 100), "\n"))

	s.Update(tea.WindowSizeMsg{Width: 80, Height: 4 + layout.HeaderHeight + layout.FooterHeight})
	for i := 0; i < 100; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	require.Equal(t, lines-4, s.offset)

	s.Update(tea.WindowSizeMsg{Width: 80, Height: 100})
	assert.Equal(t, 0, s.offset)
}

func TestReportScreen_ViewKeepsOffset(t *testing.T) {
	s := New(partialReport())
	s.Update(tea.WindowSizeMsg{Width: 80, Height: 6 + layout.HeaderHeight + layout.FooterHeight})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	s.View(80, 100)
	assert.Equal(t, 2, s.offset)
	s.View(80, 6)
	assert.Equal(t, 2, s.offset)
}

func TestReportScreen_KeyHints(t *testing.T) {
	assert.Len(t, New(partialReport()).KeyHints(), 2)
	assert.Len(t, New(rpt.Report{Total: 1, Correct: 1}).KeyHints(), 1)
}
