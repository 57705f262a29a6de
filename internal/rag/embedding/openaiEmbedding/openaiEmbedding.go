package openaiEmbedding

import (
	"context"
	"fmt"
	"sync"

	"github.com/interviewcoach/CoachAPI/internal/config"
	"github.com/interviewcoach/CoachAPI/internal/rag/embedding"
	"github.com/interviewcoach/CoachAPI/pkg/logger_i"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var logger *logger_i.Logger
var once sync.Once
var embeddingClient *client
var dimension = int64(config.EmbeddingOutputDimensionality)

type client struct {
	openAi openai.Client
	model  string
}

func newOpenAIEmbedder(modelName string, apikey string) {
	c := openai.NewClient(option.WithAPIKey(apikey))
	embeddingClient = &client{
		openAi: c,
		model:  modelName,
	}
	logger.Debug("OpenAI Embedding model name: " + modelName)
	logger.Info("OpenAI Embedding client created")
}

func GetOpenAIEmbeddingClient(ctx context.Context, modelName string, apikey string) embedding.Embedder {
	once.Do(func() {
		logger = logger_i.NewLogger("openai_embedding")
		newOpenAIEmbedder(modelName, apikey)
	})

	//if init still fails
	if embeddingClient == nil {
		return nil
	}
	return &client{openAi: embeddingClient.openAi, model: embeddingClient.model}
}

func (c *client) GetEmbedding(ctx context.Context, query string) ([]float32, error) {
	vectors, err := c.BatchEmbedding(ctx, []string{query})
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("%w: no embedding returned", embedding.ErrServiceUnavailable)
	}
	return vectors[0], nil
}

func (c *client) BatchEmbedding(ctx context.Context, chunks []string) ([][]float32, error) {
	log := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))
	if len(chunks) == 0 {
		return nil, nil
	}

	result, err := c.openAi.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model:      openai.EmbeddingModel(c.model),
		Input:      openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: chunks},
		Dimensions: openai.Int(dimension),
	})
	if err != nil {
		log.Error("Error getting Embeddings from OpenAI", "error", err.Error())
		return nil, fmt.Errorf("%w: %v", embedding.ErrServiceUnavailable, err)
	}
	if len(result.Data) != len(chunks) {
		log.Error("Embedding count mismatch", "want", len(chunks), "got", len(result.Data))
		return nil, fmt.Errorf("%w: expected %d embeddings, got %d", embedding.ErrServiceUnavailable, len(chunks), len(result.Data))
	}

	//response entries carry their input index, order the output by it
	vectors := make([][]float32, len(chunks))
	for _, data := range result.Data {
		vec := make([]float32, len(data.Embedding))
		for i, v := range data.Embedding {
			vec[i] = float32(v)
		}
		vectors[data.Index] = vec
	}
	return vectors, nil
}
