package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/interviewcoach/CoachAPI/internal/config"
	"github.com/interviewcoach/CoachAPI/internal/mcpserver"
	"github.com/interviewcoach/CoachAPI/internal/mcq"
	"github.com/interviewcoach/CoachAPI/internal/rag"
	"github.com/interviewcoach/CoachAPI/internal/rag/embedding/openaiEmbedding"
	"github.com/interviewcoach/CoachAPI/internal/rag/vectorDB"
	"github.com/interviewcoach/CoachAPI/internal/rag/vectorDB/memoryDB"
	"github.com/interviewcoach/CoachAPI/internal/rag/vectorDB/qdrantDB"
	"github.com/interviewcoach/CoachAPI/pkg/logger_i"
)

// Serves the search_resume and search_mcqs tools over stdio. Logging goes to
// stderr so it never corrupts the protocol stream.
func main() {
	logger_i.InitStderr()
	logger := logger_i.NewLogger("mcp main")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		cancel()
	}()

	var index vectorDB.Index
	if qdrantClient := qdrantDB.GetQuadrantClient(ctx); qdrantClient != nil {
		index = qdrantClient
	} else {
		logger.Error("Qdrant is offline, falling back to in-memory index")
		index = memoryDB.InitMemoryIndex()
	}

	embeddingService := openaiEmbedding.GetOpenAIEmbeddingClient(ctx, config.EmbeddingModelName, config.OpenAIAPIKey)
	if embeddingService == nil {
		logger.Error("Embedding client failed to initialize. Shutting down.")
		os.Exit(1)
	}

	ragService := rag.NewService(index, embeddingService)

	mcqService, err := mcq.NewService(config.MCQFilePath, ragService, embeddingService, index)
	if err != nil {
		logger.Error("MCQ bank failed to load, serving resume search only", "error", err)
		mcqService = nil
	}

	srv, err := mcpserver.NewServer(ragService, mcqService)
	if err != nil {
		logger.Error("Could not create MCP server", "error", err)
		os.Exit(1)
	}

	if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("MCP server stopped", "error", err)
		os.Exit(1)
	}
}
