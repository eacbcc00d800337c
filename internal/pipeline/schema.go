package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/Shubh2310-developer/cc-statement-parser/constants"
)

// resultSchema describes the engine output persisted to parse_results. It is
// enforced before any row is written so downstream consumers can trust the
// stored JSON shape.
func resultSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"fields": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"field_id", "raw_value", "value", "confidence", "strategy"},
					"properties": map[string]any{
						"field_id":   map[string]any{"type": "string", "enum": toAny(constants.TargetFields)},
						"raw_value":  map[string]any{"type": "string"},
						"value":      map[string]any{"type": "string"},
						"normalized": map[string]any{"type": "boolean"},
						"confidence": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
						"strategy":   map[string]any{"type": "string", "enum": []any{"PROXIMITY", "COLUMN", "TABLE"}},
						"snippet":    map[string]any{"type": "string"},
					},
				},
			},
			"transactions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"date", "amount"},
					"properties": map[string]any{
						"date":        map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
						"description": map[string]any{"type": "string"},
						"amount":      map[string]any{"type": "string", "pattern": `^-?\d+(\.\d+)?$`},
						"credit":      map[string]any{"type": "boolean"},
						"confidence":  map[string]any{"type": "number", "minimum": 0, "maximum": 1},
						"page":        map[string]any{"type": "integer", "minimum": 0},
					},
				},
			},
		},
		"required": []any{"fields", "transactions"},
	}
}

func toAny(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}

// validateAgainst validates data against schemaMap.
func validateAgainst(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("result.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("result.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("result does not match schema: %w", err)
	}
	return nil
}
