package ai

import "context"

// Provider is the interface the storefront operations call to fulfill an
// AI-backed product. Implementations must honor context cancellation.
type Provider interface {
	// Name returns the model identifier, e.g. "llama-3" or "gpt-4o".
	Name() string

	// Generate produces output for the given prompt.
	Generate(ctx context.Context, prompt string) (string, error)
}
