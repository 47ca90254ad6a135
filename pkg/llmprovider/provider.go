package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateText sends a prompt and returns the generated text
	GenerateText(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "cohere", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized single-prompt generation request
type Request struct {
	SystemInstruction string
	Prompt            string
	Temperature       float64
	MaxTokens         int // output cap; zero leaves the provider default
}

// Response represents a normalized LLM generation response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	// Truncated reports that the provider stopped at MaxTokens.
	Truncated bool
	Usage     *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
