package deepseek

import "context"

// IDeepSeek generates text through the DeepSeek chat completions endpoint.
type IDeepSeek interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New returns a client for cfg. APIKey is required; the other fields fall
// back to the package defaults.
func New(cfg Config) (IDeepSeek, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newDeepSeekImpl(cfg), nil
}
