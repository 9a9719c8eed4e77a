package report

import (
	"fmt"
	"time"

	"github.com/abhisek/quizgame/internal/quiz"
	"github.com/abhisek/quizgame/internal/session"
)

// Report is the post-game breakdown shown by the report view.
type Report struct {
	SessionID            string          `json:"session_id" yaml:"session_id"`
	Outcome              session.Outcome `json:"outcome" yaml:"outcome"`
	Percentage           float64         `json:"percentage" yaml:"percentage"`
	Total                int             `json:"total" yaml:"total"`
	Correct              int             `json:"correct" yaml:"correct"`
	Incorrect            int             `json:"incorrect" yaml:"incorrect"`
	Unattempted          int             `json:"unattempted" yaml:"unattempted"`
	UnattemptedQuestions []quiz.Question `json:"unattempted_questions" yaml:"-"`
	EndedEarly           bool            `json:"ended_early" yaml:"ended_early"`
	StartedAt            time.Time       `json:"started_at" yaml:"started_at"`
	FinishedAt           time.Time       `json:"finished_at" yaml:"finished_at"`
}

// Build derives counts and the unattempted question list from a finished
// session. Unattempted questions keep their original order.
func Build(res session.Result) Report {
	r := Report{
		SessionID:  res.SessionID,
		Outcome:    res.Outcome,
		Percentage: res.Percentage,
		Total:      len(res.Questions),
		EndedEarly: res.EndedEarly,
		StartedAt:  res.StartedAt,
		FinishedAt: res.FinishedAt,
	}

	for i, q := range res.Questions {
		var a session.Answer
		if i < len(res.Answers) {
			a = res.Answers[i]
		}
		switch {
		case !a.Attempted:
			r.Unattempted++
			r.UnattemptedQuestions = append(r.UnattemptedQuestions, q)
		case a.Correct:
			r.Correct++
		default:
			r.Incorrect++
		}
	}
	return r
}

// AllAttempted reports whether every question got an answer.
func (r Report) AllAttempted() bool {
	return r.Unattempted == 0
}

// Duration is how long the session ran.
func (r Report) Duration() time.Duration {
	if r.StartedAt.IsZero() || r.FinishedAt.Before(r.StartedAt) {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// Summary is a one-line description for lists and logs.
func (r Report) Summary() string {
	return fmt.Sprintf("%s %.0f%% (%d correct, %d incorrect, %d unattempted)",
		r.Outcome, r.Percentage, r.Correct, r.Incorrect, r.Unattempted)
}
