package qwen

import "time"

const (
	DefaultModel = "qwen-plus"
	// DefaultBaseURL is DashScope's OpenAI-compatible endpoint.
	DefaultBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
	DefaultTimeout = 30 * time.Second

	chatCompletionsPath = "/chat/completions"

	// finishReasonLength marks a completion cut off by max_tokens.
	finishReasonLength = "length"
)
