package embedding

import (
	"context"
	"errors"
)

// ErrServiceUnavailable wraps transport and quota failures from the
// embedding provider. Callers must treat it as retryable with their own
// backoff; there is no automatic retry and no zero-vector fallback here -
// dependent features degrade to unavailable instead.
var ErrServiceUnavailable = errors.New("embedding service unavailable")

type Embedder interface {
	GetEmbedding(ctx context.Context, query string) ([]float32, error)
	// BatchEmbedding preserves input order in its result.
	BatchEmbedding(ctx context.Context, chunks []string) ([][]float32, error)
}
