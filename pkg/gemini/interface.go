package gemini

import "context"

// IGemini generates text through the Gemini REST API with an API key.
// Use the genai provider in pkg/llmprovider for the official SDK.
type IGemini interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New returns a client for cfg. APIKey is required.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
