package quizgen

import (
	"context"
	"testing"

	"github.com/mkale/skillforge/internal/llm"
)

func TestSource_UsesGeneratorOnSuccess(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON(t)})
	src := NewSource(New(mock, DefaultConfig()))

	quiz := src.Challenge(context.Background(), testInput())
	if quiz.Fallback {
		t.Error("expected generated quiz, got fallback")
	}
	if len(quiz.Questions) != QuizSize {
		t.Errorf("got %d questions, want %d", len(quiz.Questions), QuizSize)
	}
}

func TestSource_FallsBackOnGenerationError(t *testing.T) {
	// Empty mock queue makes every Generate call fail.
	src := NewSource(New(llm.NewMockProvider(), DefaultConfig()))

	quiz := src.Challenge(context.Background(), testInput())
	if quiz == nil {
		t.Fatal("expected a quiz despite generation failure")
	}
	if !quiz.Fallback {
		t.Error("expected fallback quiz")
	}
	if len(quiz.Questions) != QuizSize {
		t.Errorf("got %d questions, want %d", len(quiz.Questions), QuizSize)
	}
}

func TestSource_FallsBackOnInvalidResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: []byte(`{"questions":[]}`)})
	src := NewSource(New(mock, DefaultConfig()))

	quiz := src.Challenge(context.Background(), testInput())
	if !quiz.Fallback {
		t.Error("expected fallback quiz for invalid response")
	}
}

func TestSource_NilGenerator(t *testing.T) {
	src := NewSource(nil)
	quiz := src.Challenge(context.Background(), testInput())
	if !quiz.Fallback {
		t.Error("expected fallback quiz with nil generator")
	}
}
