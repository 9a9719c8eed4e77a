package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/quizgame/internal/quiz"
)

// Format selects how a report is written by Write.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown report format %q (want text, json or yaml)", s)
}

// yamlReport flattens questions into a readable YAML shape.
type yamlReport struct {
	Report      `yaml:",inline"`
	Unattempted []yamlQuestion `yaml:"unattempted_questions,omitempty"`
}

type yamlQuestion struct {
	ID      string       `yaml:"id"`
	Text    string       `yaml:"text"`
	Kind    string       `yaml:"kind"`
	Options []yamlOption `yaml:"options"`
}

type yamlOption struct {
	ID       string `yaml:"id"`
	Text     string `yaml:"text"`
	ImageURL string `yaml:"image_url,omitempty"`
	Correct  bool   `yaml:"correct"`
}

// Write encodes r to w in the given format.
func Write(w io.Writer, r Report, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toYAML(r)); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		_, err := io.WriteString(w, Text(r))
		return err
	}
}

func toYAML(r Report) yamlReport {
	out := yamlReport{Report: r}
	for _, q := range r.UnattemptedQuestions {
		yq := yamlQuestion{ID: q.ID, Text: q.Text, Kind: q.Kind.String()}
		for _, o := range q.Options {
			yq.Options = append(yq.Options, yamlOption{
				ID:       o.ID,
				Text:     o.Text,
				ImageURL: o.ImageURL,
				Correct:  o.Correct,
			})
		}
		out.Unattempted = append(out.Unattempted, yq)
	}
	return out
}

// Text renders a plain-text report.
func Text(r Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Game Report (%s, %.0f%%)\n\n", r.Outcome, r.Percentage)
	fmt.Fprintf(&b, "%d Correct answers\n", r.Correct)
	fmt.Fprintf(&b, "%d Incorrect answers\n", r.Incorrect)
	fmt.Fprintf(&b, "%d Unattempted answers\n\n", r.Unattempted)

	if r.AllAttempted() {
		b.WriteString("Attempted all the questions\n")
		return b.String()
	}

	b.WriteString("Unattempted Questions\n")
	for i, q := range r.UnattemptedQuestions {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, q.Text)
		for _, o := range q.Options {
			fmt.Fprintf(&b, "   %s\n", OptionLine(q.Kind, o))
		}
	}
	return b.String()
}

// OptionLine renders one option of an unattempted question for its kind,
// marking correct options.
func OptionLine(kind quiz.OptionKind, o quiz.Option) string {
	var line string
	switch kind {
	case quiz.KindImage:
		line = fmt.Sprintf("[image] %s", o.Text)
		if o.ImageURL != "" {
			line += " <" + o.ImageURL + ">"
		}
	case quiz.KindSingleSelect:
		line = "( ) " + o.Text
	default:
		line = "- " + o.Text
	}
	if o.Correct {
		line += "  ✓"
	}
	return line
}
