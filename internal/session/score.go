package session

// Outcome is the win/lose classification of a session.
type Outcome string

const (
	OutcomeWon  Outcome = "won"
	OutcomeLose Outcome = "lose"
)

// ParseOutcome accepts "won" and "lose".
func ParseOutcome(s string) (Outcome, bool) {
	switch Outcome(s) {
	case OutcomeWon:
		return OutcomeWon, true
	case OutcomeLose:
		return OutcomeLose, true
	}
	return "", false
}

// CountCorrect returns how many answers picked a correct option.
func CountCorrect(answers []Answer) int {
	n := 0
	for _, a := range answers {
		if a.Attempted && a.Correct {
			n++
		}
	}
	return n
}

// Percentage is correct answers over total questions, times 100.
// Zero questions score 0.
func Percentage(answers []Answer, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(CountCorrect(answers)*100) / float64(total)
}

// OutcomeFor classifies a percentage. Reaching the threshold exactly wins.
func OutcomeFor(percentage, passPercent float64) Outcome {
	if percentage >= passPercent {
		return OutcomeWon
	}
	return OutcomeLose
}
