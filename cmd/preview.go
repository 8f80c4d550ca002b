package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkale/skillforge/internal/ledger"
	"github.com/mkale/skillforge/internal/llm"
	"github.com/mkale/skillforge/internal/quizgen"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview an LLM-generated quiz (no database)",
	Long: `Generate and interactively answer a quiz for the given skills.

This is a stateless developer tool — no database, no XP, no events.
Useful for evaluating question quality for new skill combinations.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("skills", "", "Comma-separated skill list (required)")
	previewCmd.Flags().String("difficulty", "medium", "Difficulty: easy, medium, hard, or expert")
	_ = previewCmd.MarkFlagRequired("skills")
}

func runPreview(cmd *cobra.Command, args []string) error {
	skillsVal, _ := cmd.Flags().GetString("skills")
	diffVal, _ := cmd.Flags().GetString("difficulty")

	var skills []string
	for _, part := range strings.Split(skillsVal, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	if len(skills) == 0 {
		return fmt.Errorf("no skills given")
	}

	difficulty := ledger.Difficulty(strings.ToLower(diffVal))
	if !difficulty.Valid() {
		return fmt.Errorf("invalid difficulty %q: must be easy, medium, hard, or expert", diffVal)
	}

	// Create LLM provider (no event log — this tool is stateless).
	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gen := quizgen.New(provider, quizgen.DefaultConfig())
	source := quizgen.NewSource(gen)

	fmt.Printf("Skills: %s (%s)\n", strings.Join(skills, ", "), difficulty.DisplayName())
	fmt.Println("Generating quiz...")
	fmt.Println()

	quiz := source.Challenge(ctx, quizgen.GenerateInput{
		Skills:     skills,
		Difficulty: difficulty,
	})
	if quiz.Fallback {
		fmt.Println("(generation failed — showing built-in question bank)")
		fmt.Println()
	}

	scanner := bufio.NewScanner(os.Stdin)
	labels := []string{"A", "B", "C", "D"}
	var correct int

	for i, q := range quiz.Questions {
		fmt.Printf("── Question %d/%d (%s) ──\n", i+1, len(quiz.Questions), q.Difficulty.DisplayName())
		fmt.Println(q.Text)
		for j, opt := range q.Options {
			fmt.Printf("  %s) %s\n", labels[j], opt)
		}

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		if parseChoice(answer) == q.CorrectIndex {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s) %s\n",
				labels[q.CorrectIndex], q.Options[q.CorrectIndex])
		}
		if q.Explanation != "" {
			fmt.Printf("Explanation: %s\n", q.Explanation)
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, len(quiz.Questions))
	return nil
}

// parseChoice maps "A"-"D" or "1"-"4" to an option index, -1 when invalid.
func parseChoice(answer string) int {
	answer = strings.ToUpper(strings.TrimSpace(answer))
	if len(answer) != 1 {
		return -1
	}
	if answer[0] >= 'A' && answer[0] <= 'D' {
		return int(answer[0] - 'A')
	}
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= 4 {
		return n - 1
	}
	return -1
}
