package questions

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/quizgame/internal/quiz"
)

// FileLoader reads a question set from a local JSON file in the endpoint's
// wire format. Used for offline play.
type FileLoader struct {
	Path string
}

func (f FileLoader) Load(ctx context.Context) ([]quiz.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read questions file: %w", err)
	}
	return Decode(raw)
}

// StaticLoader returns a fixed question set, or Err when set.
type StaticLoader struct {
	Questions []quiz.Question
	Err       error
}

func (s StaticLoader) Load(context.Context) ([]quiz.Question, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Questions, nil
}
