package quizgen

import "github.com/mkale/skillforge/internal/ledger"

// FallbackQuiz returns the built-in quiz used when generation fails.
// Each call returns a fresh value so callers can mutate it freely.
func FallbackQuiz(input GenerateInput) *Quiz {
	skill := "programming"
	if len(input.Skills) > 0 {
		skill = input.Skills[0]
	}

	questions := []Question{
		{
			Text:         "Which of these is a compiled language?",
			Options:      []string{"Go", "Python", "JavaScript", "Ruby"},
			CorrectIndex: 0,
			Difficulty:   ledger.DifficultyEasy,
			Explanation:  "Go compiles to native machine code; the others are interpreted or JIT-compiled at runtime.",
		},
		{
			Text:         "What does a version control system primarily track?",
			Options:      []string{"Changes to files over time", "Server uptime", "Memory usage", "Network traffic"},
			CorrectIndex: 0,
			Difficulty:   ledger.DifficultyEasy,
			Explanation:  "Version control records the history of changes so work can be compared, merged, and rolled back.",
		},
		{
			Text:         "Which HTTP status code means \"Not Found\"?",
			Options:      []string{"200", "301", "404", "500"},
			CorrectIndex: 2,
			Difficulty:   ledger.DifficultyEasy,
			Explanation:  "404 indicates the server could not find the requested resource.",
		},
		{
			Text:         "What is the average time complexity of binary search?",
			Options:      []string{"O(n)", "O(log n)", "O(n log n)", "O(1)"},
			CorrectIndex: 1,
			Difficulty:   ledger.DifficultyMedium,
			Explanation:  "Each comparison halves the search space, giving logarithmic time.",
		},
		{
			Text:         "Which data structure uses first-in, first-out ordering?",
			Options:      []string{"Stack", "Queue", "Tree", "Hash map"},
			CorrectIndex: 1,
			Difficulty:   ledger.DifficultyMedium,
			Explanation:  "A queue removes elements in the order they were added.",
		},
		{
			Text:         "What does an SQL JOIN do?",
			Options:      []string{"Deletes duplicate rows", "Combines rows from two tables on a related column", "Creates an index", "Encrypts a column"},
			CorrectIndex: 1,
			Difficulty:   ledger.DifficultyMedium,
			Explanation:  "A JOIN matches rows across tables using a shared key column.",
		},
		{
			Text:         "Which of these best describes idempotency in an API?",
			Options:      []string{"Requests are encrypted", "Repeating a request has the same effect as making it once", "Responses are cached", "Requests are rate limited"},
			CorrectIndex: 1,
			Difficulty:   ledger.DifficultyMedium,
			Explanation:  "An idempotent operation can be safely retried without changing the outcome beyond the first call.",
		},
		{
			Text:         "What problem does a mutex solve?",
			Options:      []string{"Slow disk reads", "Concurrent access to shared state", "Network packet loss", "Integer overflow"},
			CorrectIndex: 1,
			Difficulty:   ledger.DifficultyHard,
			Explanation:  "A mutex serializes access so only one thread mutates the shared state at a time.",
		},
		{
			Text:         "In a B-tree index, why are nodes kept wide (many keys per node)?",
			Options:      []string{"To reduce disk reads per lookup", "To simplify deletion", "To avoid hashing", "To keep keys sorted"},
			CorrectIndex: 0,
			Difficulty:   ledger.DifficultyHard,
			Explanation:  "Wide nodes mean a shallower tree, so a lookup touches fewer disk pages.",
		},
		{
			Text:         "What is the main trade-off of eventual consistency?",
			Options:      []string{"Higher latency on every write", "Readers may briefly observe stale data", "Data loss on restart", "No horizontal scaling"},
			CorrectIndex: 1,
			Difficulty:   ledger.DifficultyHard,
			Explanation:  "Replicas converge over time, so a read may return a value that predates the latest write.",
		},
	}

	for i := range questions {
		questions[i].Skill = skill
	}

	return &Quiz{
		ChallengeName: challengeName(input),
		Difficulty:    input.Difficulty,
		Skills:        input.Skills,
		Questions:     questions,
		Fallback:      true,
	}
}
