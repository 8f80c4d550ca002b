package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mkale/skillforge/internal/ledger"
	"github.com/mkale/skillforge/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// quizOutput is the raw LLM response before validation.
type quizOutput struct {
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Difficulty   string   `json:"difficulty"`
	Skill        string   `json:"skill"`
	Explanation  string   `json:"explanation"`
}

// Generate produces a full quiz for the given input.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Quiz, error) {
	if len(input.Skills) == 0 {
		return nil, fmt.Errorf("at least one skill is required")
	}
	if !input.Difficulty.Valid() {
		return nil, fmt.Errorf("unknown difficulty: %q", input.Difficulty)
	}

	ctx = llm.WithPurpose(ctx, "quiz-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw quizOutput
	if err := json.Unmarshal(stripCodeFences(resp.Content), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	quiz := &Quiz{
		ChallengeName: challengeName(input),
		Difficulty:    input.Difficulty,
		Skills:        input.Skills,
		Questions:     make([]Question, len(raw.Questions)),
	}
	for i, q := range raw.Questions {
		quiz.Questions[i] = Question{
			Text:         q.Question,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
			Difficulty:   ledger.Difficulty(q.Difficulty),
			Skill:        q.Skill,
			Explanation:  q.Explanation,
		}
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(quiz, input); verr != nil {
			return nil, verr
		}
	}

	return quiz, nil
}

// stripCodeFences removes a surrounding Markdown code fence, with or
// without a language tag. Some models wrap JSON output this way even
// when asked not to.
func stripCodeFences(raw json.RawMessage) json.RawMessage {
	s := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(s, "```") {
		return raw
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		// Drop the language tag line ("json", "JSON", or empty).
		s = s[idx+1:]
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return json.RawMessage(strings.TrimSpace(s))
}
