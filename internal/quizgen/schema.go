package quizgen

import "github.com/mkale/skillforge/internal/llm"

// QuizSchema defines the JSON schema for LLM quiz generation responses.
var QuizSchema = &llm.Schema{
	Name:        "quiz-challenge",
	Description: "A complete multiple-choice quiz challenge",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": QuizSize,
				"maxItems": QuizSize,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt shown to the user, plain text",
						},
						"options": map[string]any{
							"type":     "array",
							"minItems": OptionCount,
							"maxItems": OptionCount,
							"items":    map[string]any{"type": "string"},
							"description": "Exactly 4 answer options, exactly one correct",
						},
						"correct_index": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     OptionCount - 1,
							"description": "Index of the correct option",
						},
						"difficulty": map[string]any{
							"type":        "string",
							"enum":        []any{"easy", "medium", "hard"},
							"description": "This question's slot in the quiz difficulty mix",
						},
						"skill": map[string]any{
							"type":        "string",
							"description": "The skill this question exercises",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "One or two sentences explaining the correct answer",
						},
					},
					"required":             []any{"question", "options", "correct_index", "difficulty", "skill", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
