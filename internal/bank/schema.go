package bank

// catalogSchema validates the JSON shape of an exam catalog before
// unmarshalling. Range checks that depend on other fields (answer indices
// vs. option count) happen in Go after decoding.
var catalogSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":          map[string]any{"type": "string", "minLength": 1},
			"title":       map[string]any{"type": "string", "minLength": 1},
			"description": map[string]any{"type": "string"},
			"timeLimit": map[string]any{
				"type":    "integer",
				"minimum": 1,
			},
			"passingScore": map[string]any{
				"type":    "integer",
				"minimum": 0,
				"maximum": 100,
			},
			"category":    map[string]any{"type": "string"},
			"subCategory": map[string]any{"type": "string"},
			"icon":        map[string]any{"type": "string"},
			"realExamQuestionCount": map[string]any{
				"type":    "integer",
				"minimum": 1,
			},
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":       map[string]any{"type": "string", "minLength": 1},
						"question": map[string]any{"type": "string", "minLength": 1},
						"options": map[string]any{
							"type":     "array",
							"minItems": 2,
							"items":    map[string]any{"type": "string"},
						},
						"correctAnswer": map[string]any{
							"oneOf": []any{
								map[string]any{"type": "integer", "minimum": 0},
								map[string]any{
									"type":     "array",
									"minItems": 1,
									"items":    map[string]any{"type": "integer", "minimum": 0},
								},
							},
						},
						"explanation": map[string]any{"type": "string"},
						"category":    map[string]any{"type": "string"},
						"difficulty": map[string]any{
							"enum": []any{DifficultyEasy, DifficultyMedium, DifficultyHard},
						},
					},
					"required":             []any{"id", "question", "options", "correctAnswer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"id", "title", "timeLimit", "passingScore", "questions"},
		"additionalProperties": false,
	},
}
