package questions

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://questions-payload.json"

// payloadSchema describes the minimum shape a playable question set must have.
var payloadSchema = map[string]any{
	"type":     "object",
	"required": []any{"questions"},
	"properties": map[string]any{
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id", "question_text", "options"},
				"properties": map[string]any{
					"id":            map[string]any{"type": "string", "minLength": 1},
					"question_text": map[string]any{"type": "string"},
					"options_type":  map[string]any{"type": "string"},
					"option_type":   map[string]any{"type": "string"},
					"options": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type":     "object",
							"required": []any{"id", "text"},
							"properties": map[string]any{
								"id":         map[string]any{"type": "string", "minLength": 1},
								"text":       map[string]any{"type": "string"},
								"image_url":  map[string]any{"type": "string"},
								"is_correct": map[string]any{"type": []any{"string", "boolean"}},
								"isCorrect":  map[string]any{"type": []any{"string", "boolean"}},
							},
						},
					},
				},
			},
		},
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants JSON-decoded values, not Go ints.
		defBytes, err := json.Marshal(payloadSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validatePayload checks raw JSON against the payload schema.
func validatePayload(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &PayloadError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := compiledSchema()
	if err != nil {
		return &PayloadError{Err: fmt.Errorf("compile schema: %w", err)}
	}
	if err := schema.Validate(parsed); err != nil {
		return &PayloadError{Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}
