package quizgen

import (
	"testing"

	"github.com/mkale/skillforge/internal/ledger"
)

func TestFallbackQuiz_SatisfiesValidators(t *testing.T) {
	input := testInput()
	quiz := FallbackQuiz(input)

	for _, v := range DefaultConfig().Validators {
		if err := v.Validate(quiz, input); err != nil {
			t.Errorf("fallback quiz fails %s validator: %v", v.Name(), err)
		}
	}
	if !quiz.Fallback {
		t.Error("expected Fallback flag set")
	}
}

func TestFallbackQuiz_TagsFirstSkill(t *testing.T) {
	quiz := FallbackQuiz(GenerateInput{Skills: []string{"rust", "go"}, Difficulty: ledger.DifficultyEasy})
	for i, q := range quiz.Questions {
		if q.Skill != "rust" {
			t.Fatalf("question %d tagged %q, want rust", i, q.Skill)
		}
	}

	quiz = FallbackQuiz(GenerateInput{Difficulty: ledger.DifficultyEasy})
	if quiz.Questions[0].Skill != "programming" {
		t.Errorf("no-skill fallback tagged %q, want programming", quiz.Questions[0].Skill)
	}
}

func TestFallbackQuiz_ReturnsFreshInstances(t *testing.T) {
	input := testInput()
	a := FallbackQuiz(input)
	b := FallbackQuiz(input)

	a.Questions[0].Text = "mutated"
	if b.Questions[0].Text == "mutated" {
		t.Error("fallback quizzes share question storage")
	}
}
