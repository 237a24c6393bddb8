package questiongen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxPriorQuestions is the maximum number of prior questions
	// to include in the prompt for deduplication.
	MaxPriorQuestions int

	// DuplicateThreshold is the word-set similarity above which a
	// generated question counts as a repeat of an asked one.
	DuplicateThreshold float64

	// MaxAttempts is how many times to regenerate before giving up
	// on producing a non-duplicate question.
	MaxAttempts int
}

// DefaultConfig returns recommended generation defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:          512,
		Temperature:        0.8,
		MaxPriorQuestions:  20,
		DuplicateThreshold: 0.7,
		MaxAttempts:        3,
	}
}
