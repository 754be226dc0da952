// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// AdviceService defines the interface for the LLM-backed advice generator.
// The engine supplies it data; it does not depend on the model's internals.
type AdviceService interface {
	// IsAvailable reports whether the service is configured.
	IsAvailable() bool

	// GenerateAdvice produces free-text spending advice for the given
	// user-context prompt.
	GenerateAdvice(ctx context.Context, prompt string) (string, error)
}

// AdviceCache defines the interface for caching generated advice.
type AdviceCache interface {
	// Get returns the cached advice for a key, or ok=false on a miss.
	Get(ctx context.Context, key string) (advice string, ok bool, err error)

	// Set stores advice under a key with the cache's configured TTL.
	Set(ctx context.Context, key, advice string) error
}
