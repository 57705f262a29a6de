package llm

import (
	"context"
	"errors"
)

// ErrServiceUnavailable wraps transport and quota failures from the chat
// completion provider. No automatic retry is applied here.
var ErrServiceUnavailable = errors.New("llm service unavailable")

// Provider is a single-turn chat completion: system instruction plus one
// user prompt in, one text completion out.
type Provider interface {
	Complete(ctx context.Context, systemPrompt string, userPrompt string) (string, error)
}
