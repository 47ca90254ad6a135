package cohere

import "context"

// ICohere defines the interface for the Cohere API client.
// Implementations are safe for concurrent use.
type ICohere interface {
	// Generate sends a prompt to the generate endpoint and returns the first generation
	Generate(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a new Cohere client with the given configuration
func New(cfg Config) (ICohere, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newCohereImpl(cfg), nil
}
