// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// CompletionService is the external text-completion oracle used by the
// budget assistant.
type CompletionService interface {
	// IsAvailable reports whether the service is configured with a credential.
	IsAvailable() bool

	// Complete sends a system prompt and user text to the oracle and
	// returns its free-text reply.
	Complete(ctx context.Context, systemPrompt, userText string) (string, error)
}
