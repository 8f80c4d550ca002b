package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/mkale/skillforge/internal/ledger"
	"github.com/mkale/skillforge/internal/llm"
)

// validQuizJSON builds a well-formed LLM response with the required
// 3 easy / 4 medium / 3 hard mix.
func validQuizJSON(t *testing.T) json.RawMessage {
	t.Helper()

	difficulties := []string{
		"easy", "easy", "easy",
		"medium", "medium", "medium", "medium",
		"hard", "hard", "hard",
	}

	out := quizOutput{Questions: make([]questionOutput, QuizSize)}
	for i := range out.Questions {
		out.Questions[i] = questionOutput{
			Question:     fmt.Sprintf("Question %d?", i+1),
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: i % OptionCount,
			Difficulty:   difficulties[i],
			Skill:        "go",
			Explanation:  "Because.",
		}
	}

	raw, err := json.Marshal(out)
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

func testInput() GenerateInput {
	return GenerateInput{
		Skills:     []string{"go", "sql"},
		Difficulty: ledger.DifficultyMedium,
	}
}

func TestGenerate_ValidResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON(t)})
	gen := New(mock, DefaultConfig())

	quiz, err := gen.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(quiz.Questions) != QuizSize {
		t.Fatalf("got %d questions, want %d", len(quiz.Questions), QuizSize)
	}
	if quiz.Fallback {
		t.Error("LLM quiz must not be marked fallback")
	}
	if quiz.ChallengeName == "" {
		t.Error("expected a derived challenge name")
	}
	for i, q := range quiz.Questions {
		if len(q.Options) != OptionCount {
			t.Errorf("question %d: %d options", i, len(q.Options))
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= OptionCount {
			t.Errorf("question %d: correct index %d out of range", i, q.CorrectIndex)
		}
	}
}

func TestGenerate_StripsCodeFences(t *testing.T) {
	fenced := json.RawMessage("```json\n" + string(validQuizJSON(t)) + "\n```")
	mock := llm.NewMockProvider(llm.MockResponse{Content: fenced})
	gen := New(mock, DefaultConfig())

	quiz, err := gen.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("Generate with fenced response: %v", err)
	}
	if len(quiz.Questions) != QuizSize {
		t.Fatalf("got %d questions, want %d", len(quiz.Questions), QuizSize)
	}
}

func TestGenerate_MalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{broken`)})
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), testInput()); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestGenerate_WrongQuestionCount(t *testing.T) {
	out := quizOutput{Questions: []questionOutput{{
		Question: "only one?", Options: []string{"a", "b", "c", "d"},
		CorrectIndex: 0, Difficulty: "easy", Skill: "go", Explanation: "x",
	}}}
	raw, _ := json.Marshal(out)

	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if verr.Validator != "structural" {
		t.Errorf("validator = %q, want structural", verr.Validator)
	}
}

func TestGenerate_WrongDifficultyMix(t *testing.T) {
	raw := validQuizJSON(t)
	// All-easy breaks the 3/4/3 mix but stays structurally valid.
	broken := strings.ReplaceAll(string(raw), `"medium"`, `"easy"`)
	broken = strings.ReplaceAll(broken, `"hard"`, `"easy"`)

	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(broken)})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if verr.Validator != "difficulty-mix" {
		t.Errorf("validator = %q, want difficulty-mix", verr.Validator)
	}
}

func TestGenerate_RejectsEmptySkills(t *testing.T) {
	gen := New(llm.NewMockProvider(), DefaultConfig())
	_, err := gen.Generate(context.Background(), GenerateInput{Difficulty: ledger.DifficultyEasy})
	if err == nil {
		t.Fatal("expected error for empty skills")
	}
}

func TestGenerate_RejectsUnknownDifficulty(t *testing.T) {
	gen := New(llm.NewMockProvider(), DefaultConfig())
	_, err := gen.Generate(context.Background(), GenerateInput{
		Skills:     []string{"go"},
		Difficulty: ledger.Difficulty("nightmare"),
	})
	if err == nil {
		t.Fatal("expected error for unknown difficulty")
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain json", `{"a":1}`, `{"a":1}`},
		{"fence with tag", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fence without tag", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"leading whitespace", "  \n```json\n{\"a\":1}\n```\n", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(stripCodeFences(json.RawMessage(tt.in)))
			if got != tt.want {
				t.Errorf("stripCodeFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
