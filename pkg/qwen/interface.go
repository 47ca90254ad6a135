package qwen

import "context"

// IQwen generates text through DashScope's OpenAI-compatible chat endpoint.
type IQwen interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New returns a client for cfg. APIKey is required.
func New(cfg Config) (IQwen, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newQwenImpl(cfg), nil
}
