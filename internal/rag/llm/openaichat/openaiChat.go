package openaichat

import (
	"context"
	"fmt"
	"sync"

	"github.com/interviewcoach/CoachAPI/internal/config"
	"github.com/interviewcoach/CoachAPI/internal/rag/llm"
	"github.com/interviewcoach/CoachAPI/pkg/logger_i"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type chatClient struct {
	client    openai.Client
	modelName string
}

var logger *logger_i.Logger
var openAIClient *chatClient
var once sync.Once

func GetOpenAIChatClient(ctx context.Context, modelName string, apikey string) llm.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("llm_openai")
		newChatClient(modelName, apikey)
	})

	if openAIClient == nil {
		return nil
	}
	return &chatClient{client: openAIClient.client, modelName: openAIClient.modelName}
}

func newChatClient(modelName string, apikey string) {
	if apikey == "" {
		logger.Error("OpenAI API key is empty, chat client not created")
		return
	}
	c := openai.NewClient(option.WithAPIKey(apikey))
	openAIClient = &chatClient{client: c, modelName: modelName}
	logger.Info("OpenAI chat client created")
}

func (c *chatClient) Complete(ctx context.Context, systemPrompt string, userPrompt string) (string, error) {
	log := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.modelName,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Temperature: openai.Float(config.ModelTemperature),
		MaxTokens:   openai.Int(config.ModelMaxTokens),
	})
	if err != nil {
		log.Error("OpenAI chat completion failed", "error", err)
		return "", fmt.Errorf("%w: %v", llm.ErrServiceUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion response", llm.ErrServiceUnavailable)
	}
	return resp.Choices[0].Message.Content, nil
}
