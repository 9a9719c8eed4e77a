package quiz

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Payload is the body returned by the questions endpoint.
type Payload struct {
	Total     int        `json:"total,omitempty"`
	Questions []Question `json:"questions"`
}

type wireQuestion struct {
	ID           string       `json:"id"`
	QuestionText string       `json:"question_text"`
	OptionsType  string       `json:"options_type"`
	OptionType   string       `json:"option_type"`
	Options      []wireOption `json:"options"`
}

type wireOption struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	ImageURL  string   `json:"image_url,omitempty"`
	IsCorrect flexBool `json:"is_correct"`
	// Some producers use camelCase for the flag.
	IsCorrectCamel flexBool `json:"isCorrect"`
}

// flexBool accepts true, false, "true" and "false".
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var v bool
	if err := json.Unmarshal(data, &v); err == nil {
		*b = flexBool(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("correctness flag: %w", err)
	}
	if s == "" {
		*b = false
		return nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("correctness flag %q: %w", s, err)
	}
	*b = flexBool(v)
	return nil
}

// UnmarshalJSON decodes a wire question. The option discriminator is read
// from options_type, falling back to option_type.
func (q *Question) UnmarshalJSON(data []byte) error {
	var w wireQuestion
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	kind := w.OptionsType
	if kind == "" {
		kind = w.OptionType
	}

	q.ID = w.ID
	q.Text = w.QuestionText
	q.Kind = ParseOptionKind(kind)
	q.Options = make([]Option, 0, len(w.Options))
	for _, o := range w.Options {
		q.Options = append(q.Options, Option{
			ID:       o.ID,
			Text:     o.Text,
			ImageURL: o.ImageURL,
			Correct:  bool(o.IsCorrect) || bool(o.IsCorrectCamel),
		})
	}
	return nil
}

// MarshalJSON encodes a question in the endpoint's wire shape.
func (q Question) MarshalJSON() ([]byte, error) {
	w := struct {
		ID           string           `json:"id"`
		QuestionText string           `json:"question_text"`
		OptionsType  string           `json:"options_type"`
		Options      []map[string]any `json:"options"`
	}{
		ID:           q.ID,
		QuestionText: q.Text,
		OptionsType:  q.Kind.String(),
		Options:      make([]map[string]any, 0, len(q.Options)),
	}
	for _, o := range q.Options {
		m := map[string]any{
			"id":         o.ID,
			"text":       o.Text,
			"is_correct": strconv.FormatBool(o.Correct),
		}
		if o.ImageURL != "" {
			m["image_url"] = o.ImageURL
		}
		w.Options = append(w.Options, m)
	}
	return json.Marshal(w)
}
