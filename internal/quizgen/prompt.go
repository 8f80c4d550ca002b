package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a quiz master creating skill-assessment challenges for a programming learning community.

Rules:
- Generate exactly 10 multiple-choice questions covering the given skills.
- Every question has exactly 4 options with exactly one correct answer. Distractors should reflect plausible misconceptions, not random values.
- The difficulty mix is fixed: 3 easy, 4 medium, 3 hard questions, in any order. Label each question with its mix slot.
- Calibrate the overall depth to the requested challenge difficulty: at "easy" even hard-slot questions stay fundamental; at "expert" even easy-slot questions assume real experience.
- Question text is plain text. Short inline code is fine; no Markdown formatting.
- Each question includes a one or two sentence explanation of the correct answer.
- Spread questions across all listed skills.`

// buildUserMessage constructs the user message from GenerateInput.
func buildUserMessage(input GenerateInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Skills: %s\n", strings.Join(input.Skills, ", "))
	fmt.Fprintf(&b, "Challenge difficulty: %s\n", input.Difficulty)
	if input.ChallengeName != "" {
		fmt.Fprintf(&b, "Challenge name: %s\n", input.ChallengeName)
	}

	return b.String()
}

// challengeName derives a display name when the user did not provide one.
func challengeName(input GenerateInput) string {
	if input.ChallengeName != "" {
		return input.ChallengeName
	}
	return fmt.Sprintf("%s Challenge (%s)", strings.Join(input.Skills, " + "), input.Difficulty.DisplayName())
}
