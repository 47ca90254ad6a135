package cohere

import "time"

const (
	// DefaultModel is the default Cohere generation model
	DefaultModel = "command"

	// DefaultBaseURL is the default Cohere API endpoint
	DefaultBaseURL = "https://api.cohere.com"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// finishReasonMaxTokens marks a generation cut off by max_tokens.
	finishReasonMaxTokens = "MAX_TOKENS"
)
