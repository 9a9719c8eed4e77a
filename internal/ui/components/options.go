package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgame/internal/quiz"
	"github.com/abhisek/quizgame/internal/ui/theme"
)

// OptionList renders the options of one question according to its kind
// and tracks the keyboard cursor. Once Revealed, the correct options and
// the chosen one are highlighted and the cursor is hidden.
type OptionList struct {
	Kind     quiz.OptionKind
	Options  []quiz.Option
	Cursor   int
	Chosen   string // option ID, set by Reveal
	Revealed bool
}

// NewOptionList creates an option list for q with the cursor on the first option.
func NewOptionList(q quiz.Question) OptionList {
	return OptionList{
		Kind:    q.Kind,
		Options: q.Options,
	}
}

// Up moves the cursor up.
func (l OptionList) Up() OptionList {
	if !l.Revealed && l.Cursor > 0 {
		l.Cursor--
	}
	return l
}

// Down moves the cursor down.
func (l OptionList) Down() OptionList {
	if !l.Revealed && l.Cursor < len(l.Options)-1 {
		l.Cursor++
	}
	return l
}

// At returns the option at the 0-based index i.
func (l OptionList) At(i int) (quiz.Option, bool) {
	if i < 0 || i >= len(l.Options) {
		return quiz.Option{}, false
	}
	return l.Options[i], true
}

// Reveal marks id as the chosen option and shows the answers.
func (l OptionList) Reveal(id string) OptionList {
	l.Chosen = id
	l.Revealed = true
	return l
}

// View renders the list.
func (l OptionList) View() string {
	lines := make([]string, 0, len(l.Options))
	for i, o := range l.Options {
		lines = append(lines, l.renderOption(i, o))
	}
	return strings.Join(lines, "\n")
}

func (l OptionList) renderOption(i int, o quiz.Option) string {
	prefix := "  "
	if i == l.Cursor && !l.Revealed {
		prefix = "▸ "
	}

	body := o.Text
	switch l.Kind {
	case quiz.KindSingleSelect:
		mark := "( )"
		if (l.Revealed && o.ID == l.Chosen) || (!l.Revealed && i == l.Cursor) {
			mark = "(•)"
		}
		body = mark + " " + o.Text
	case quiz.KindImage:
		body = "[image] " + o.Text
		if o.ImageURL != "" {
			body += "  " + lipgloss.NewStyle().Foreground(theme.TextDim).Underline(true).Render(o.ImageURL)
		}
	}

	line := fmt.Sprintf("%s%d) %s", prefix, i+1, body)

	if !l.Revealed {
		if i == l.Cursor {
			return theme.Selected.Render(line)
		}
		return theme.Unselected.Render(line)
	}

	switch {
	case o.Correct:
		return theme.Correct.Render(line + "  ✓")
	case o.ID == l.Chosen:
		return theme.Incorrect.Render(line + "  ✗")
	default:
		return theme.Dimmed.Render(line)
	}
}
