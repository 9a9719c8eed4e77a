package quiz

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgame/internal/questions"
	sess "github.com/abhisek/quizgame/internal/session"
	"github.com/abhisek/quizgame/internal/ui/components"
	"github.com/abhisek/quizgame/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	switch s.state.Phase {
	case sess.PhaseLoading:
		return s.renderLoading(width)
	case sess.PhaseFailed:
		return renderError(width, s.state.Err)
	case sess.PhaseCompleted:
		return s.renderRedirect(width)
	}
	if s.quitConfirm {
		return renderQuitConfirm(width)
	}
	return s.renderQuestion(width)
}

func centered(width int) lipgloss.Style {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
}

// renderLoading renders the spinner while questions are fetched.
func (s *QuizScreen) renderLoading(width int) string {
	return centered(width).
		Foreground(theme.TextDim).
		Render("\n\n\n" + s.spinner.View() + " Loading questions...")
}

// renderError renders the failure view with the retry hint.
func renderError(width int, err error) string {
	detail := "Our servers are busy, please try again"
	if errors.Is(err, questions.ErrInvalidPayload) {
		detail = "The questions could not be read, please try again"
	}

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(centered(width).
		Foreground(theme.Error).
		Bold(true).
		Render("Something went wrong"))
	b.WriteString("\n\n")
	b.WriteString(centered(width).
		Foreground(theme.Text).
		Render(detail))
	b.WriteString("\n\n")
	b.WriteString(centered(width).
		Foreground(theme.TextDim).
		Render("[R] Retry   [Esc] Back"))
	return b.String()
}

// renderQuestion renders the active question with its countdown.
func (s *QuizScreen) renderQuestion(width int) string {
	q, ok := s.state.Current()
	if !ok {
		return ""
	}

	var b strings.Builder

	info := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d of %d", s.state.Index+1, len(s.state.Questions)))
	b.WriteString(info)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	barWidth := min(width-8, 60)
	bar := components.NewCountdown(s.state.Remaining, s.state.Settings.QuestionSeconds, barWidth)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	b.WriteString(centered(width).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.options.View()))
	b.WriteString("\n\n")

	hint := fmt.Sprintf("Select (1-%d) or use arrows + Enter", len(q.Options))
	if s.state.Step == sess.StepAnswered {
		hint = "Next question coming up..."
	}
	b.WriteString(centered(width).Foreground(theme.TextDim).Render(hint))

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(centered(width).
		Foreground(theme.Text).
		Bold(true).
		Render("End game early?"))
	b.WriteString("\n")
	b.WriteString(centered(width).
		Foreground(theme.TextDim).
		Render("Questions you have not answered count as unattempted."))
	b.WriteString("\n\n")

	b.WriteString(centered(width).
		Foreground(theme.Success).
		Render("[Y] Yes, end game"))
	b.WriteString("\n")
	b.WriteString(centered(width).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderRedirect renders the transitional view shown before results.
func (s *QuizScreen) renderRedirect(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	if s.report != nil {
		color := theme.Error
		banner := "You lose"
		if s.report.Outcome == sess.OutcomeWon {
			color = theme.Success
			banner = "You won!"
		}
		b.WriteString(centered(width).Foreground(color).Bold(true).Render(banner))
		b.WriteString("\n\n")
	}

	b.WriteString(centered(width).
		Foreground(theme.TextDim).
		Render("Redirecting to results..."))
	return b.String()
}
