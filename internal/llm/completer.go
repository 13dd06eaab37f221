// Package llm provides text generation via the hosted chat completion API.
package llm

import "context"

// Completer produces a completion for a prompt under a system instruction.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}
