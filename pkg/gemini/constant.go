package gemini

import "time"

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultAPIURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 30 * time.Second

	// generateContentPath is joined to the API URL with the model name.
	generateContentPath = "%s/models/%s:generateContent"

	// finishReasonMaxTokens marks a candidate cut off by maxOutputTokens.
	finishReasonMaxTokens = "MAX_TOKENS"
)
