// @title           Interview Coach API
// @version         1.0
// @description     This API handles mock interview sessions, resume ingestion jobs and MCQ quizzing.
// @termsOfService  http://swagger.io/terms/

// @contact.name    API Support
// @contact.url
// @contact.email

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/interviewcoach/CoachAPI/internal/avatar"
	"github.com/interviewcoach/CoachAPI/internal/config"
	"github.com/interviewcoach/CoachAPI/internal/data/store"
	"github.com/interviewcoach/CoachAPI/internal/domain/interviewModel"
	jobmodel "github.com/interviewcoach/CoachAPI/internal/domain/jobModel"
	"github.com/interviewcoach/CoachAPI/internal/handlers"
	"github.com/interviewcoach/CoachAPI/internal/interview"
	"github.com/interviewcoach/CoachAPI/internal/job"
	"github.com/interviewcoach/CoachAPI/internal/mcq"
	"github.com/interviewcoach/CoachAPI/internal/rag"
	"github.com/interviewcoach/CoachAPI/internal/rag/embedding/openaiEmbedding"
	"github.com/interviewcoach/CoachAPI/internal/rag/llm"
	"github.com/interviewcoach/CoachAPI/internal/rag/llm/gemini"
	"github.com/interviewcoach/CoachAPI/internal/rag/llm/openaichat"
	"github.com/interviewcoach/CoachAPI/internal/rag/vectorDB"
	"github.com/interviewcoach/CoachAPI/internal/rag/vectorDB/memoryDB"
	"github.com/interviewcoach/CoachAPI/internal/rag/vectorDB/qdrantDB"
	"github.com/interviewcoach/CoachAPI/internal/report"
	"github.com/interviewcoach/CoachAPI/internal/server"
	"github.com/interviewcoach/CoachAPI/internal/worker"
	"github.com/interviewcoach/CoachAPI/pkg/logger_i"
)

var (
	listenAddr        string
	requestCount      int64
	stopWorkerChannel chan bool
	workerWaitGroup   sync.WaitGroup
)

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	//init buffered job channel
	jobChannel := make(chan jobmodel.Job, config.BufferLimit)
	dispatcherChannel := make(chan bool, 1)
	stopWorkerChannel = make(chan bool, 1)

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//init stores - redis with in-memory fallback
	var jobStore jobmodel.JobStore
	if redisJobStore := store.GetRedisJobStore(serviceContext); redisJobStore != nil {
		jobStore = redisJobStore
	} else {
		logger.Error("Redis job store is offline, falling back to in-memory")
		jobStore = store.InitInMemoryJobStore()
	}

	var sessionStore interviewModel.SessionStore
	if redisSessionStore := store.GetRedisSessionStore(serviceContext); redisSessionStore != nil {
		sessionStore = redisSessionStore
	} else {
		logger.Error("Redis session store is offline, falling back to in-memory")
		sessionStore = store.InitInMemorySessionStore()
	}

	//init job service
	serviceConfig := job.ServiceConfig{
		JobChannel:        jobChannel,
		RequestCount:      requestCount,
		DispatcherChannel: dispatcherChannel,
		JobStore:          jobStore,
	}
	logger.Info("Starting job service")
	service := job.InitJobService(serviceConfig)

	//vector index - qdrant with in-memory fallback
	var index vectorDB.Index
	if qdrantClient := qdrantDB.GetQuadrantClient(serviceContext); qdrantClient != nil {
		index = qdrantClient
	} else {
		logger.Error("Qdrant is offline, falling back to in-memory index")
		index = memoryDB.InitMemoryIndex()
	}

	embeddingService := openaiEmbedding.GetOpenAIEmbeddingClient(serviceContext, config.EmbeddingModelName, config.OpenAIAPIKey)
	if embeddingService == nil {
		logger.Error("Embedding client failed to initialize. Shutting down.")
		return
	}

	var llmProvider llm.Provider
	if config.LLMProviderName == "gemini" {
		llmProvider = gemini.GetGeminiClient(serviceContext, config.GeminiModelName, config.GeminiAPIKey)
	} else {
		llmProvider = openaichat.GetOpenAIChatClient(serviceContext, config.OpenAIChatModel, config.OpenAIAPIKey)
	}
	if llmProvider == nil {
		logger.Error("LLM provider failed to initialize. Shutting down.", "provider", config.LLMProviderName)
		return
	}

	ragService := rag.NewService(index, embeddingService)

	reportService := report.NewService(config.ResultsDirectory, nil)
	interviewService := interview.NewService(ragService, llmProvider, embeddingService, reportService, nil)

	mcqService, err := mcq.NewService(config.MCQFilePath, ragService, embeddingService, index)
	if err != nil {
		logger.Error("MCQ bank failed to load. Shutting down.", "error", err)
		return
	}
	if err := mcqService.IndexQuestions(serviceContext); err != nil {
		//quiz search degrades, the bank itself still works
		logger.Error("MCQ indexing failed", "error", err)
	}

	avatarClient := avatar.NewClient(config.AvatarBaseURL, config.AvatarAPIKey, nil)

	handlers.InitJobHandler(service)
	handlers.InitInterviewHandler(interviewService, sessionStore, reportService)
	handlers.InitMCQHandler(mcqService)

	//init worker pool
	worker.InitServices(service, ragService, avatarClient)
	worker.InitWorkerPool(stopWorkerChannel, &workerWaitGroup)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		WorkerStop:       stopWorkerChannel,
		Group:            &workerWaitGroup,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}
