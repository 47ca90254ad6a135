package deepseek

import "time"

const (
	DefaultModel   = "deepseek-chat"
	DefaultBaseURL = "https://api.deepseek.com/v1"
	DefaultTimeout = 60 * time.Second

	chatCompletionsPath = "/chat/completions"

	// finishReasonLength marks a completion cut off by max_tokens.
	finishReasonLength = "length"
)
