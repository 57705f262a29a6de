package config

import (
	"log/slog"
	"os"
	"time"
)

// secrets are read from the environment
var (
	OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	AvatarAPIKey = os.Getenv("DID_API_KEY")
)

const (
	IS_PROD        = false
	LOG_LEVEL_PROD = slog.LevelInfo
	TRACE_ID_KEY   = "traceId"

	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	//auth
	NoAuthBypass = true //set false and provide a token before deploying
	AuthToken    = ""

	//embedding model output size - fixed per collection at creation
	EmbeddingOutputDimensionality int32 = 1536
	EmbeddingModelName                  = "text-embedding-3-small"

	//vector collections
	ResumeCollectionName = "resume_chunks"
	MCQCollectionName    = "mcqs"

	//chunking
	MaxChunkSize = 1000 //characters
	ChunkOverlap = 150

	//retrieval
	RetrievalTopK    = 3
	MCQSearchTopK    = 5
	ResumeSearchTopK = 4

	//answer evaluation
	SimilarityThreshold = 0.5

	//worker pool
	RequestsPerNewWorkerCount int64 = 10
	MaxWorkerCount            int64 = 10
	MinWorkerCount            int64 = 1
	IdleWorkerTimeout               = 1 * time.Minute
	JobExecutionTimeout             = 90 * time.Second

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 10 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//job requests buffer limit
	BufferLimit = 100

	//vectorDB
	QdrantConnectionTimeout = 30 * time.Second
	QdrantHost              = ""
	QdrantPort              = 6333 //http
	QdrantGrpcPort          = 6334
	QdrantUseTLS            = false
	QdrantPoolSize          = 1
	QdrantKeepAliveTimeout  = 30 * time.Second

	//llm
	LLMProviderName        = "openai" //or "gemini"
	OpenAIChatModel        = "gpt-4-turbo-preview"
	GeminiModelName        = "gemini-2.5-flash-lite-preview-09-2025"
	ModelTemperature       = 0.7
	ModelMaxTokens         = 150
	InterviewSystemContext = "You are an expert interviewer helping to evaluate and guide candidates. Keep the tone professional."

	//avatar video generation
	AvatarBaseURL      = "https://api.d-id.com"
	AvatarDefaultID    = "amy"
	AvatarPollInterval = 1 * time.Second
	AvatarPollAttempts = 30

	//http pooling
	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//redis
	redisHost     = "127.0.0.1"
	redisPort     = "6379"
	RedisAddr     = redisHost + ":" + redisPort
	RedisPassword = ""

	//redis has 16 DB we can use
	RedisJobStore     = 0
	RedisSessionStore = 1

	//redis timeouts
	RedisJobStoreTTL     = 24 * time.Hour
	RedisSessionStoreTTL = 24 * time.Hour

	//mcq question bank
	MCQFilePath = "data/mcqs.json"

	//session results
	ResultsDirectory = "data/interview_results"
)
