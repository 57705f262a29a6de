package mcpserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/interviewcoach/CoachAPI/internal/mcq"
	"github.com/interviewcoach/CoachAPI/internal/rag"
	"github.com/interviewcoach/CoachAPI/pkg/logger_i"
)

const Version = "1.0.0"

// Server exposes the resume and MCQ search tools over the Model Context
// Protocol so external agents can query the same indexes the API uses.
type Server struct {
	retriever  rag.Service
	mcqService mcq.Service
	server     *mcp.Server
	logger     *logger_i.Logger
}

func NewServer(retriever rag.Service, mcqService mcq.Service) (*Server, error) {
	if retriever == nil {
		return nil, errors.New("mcp server needs a retriever")
	}

	impl := &mcp.Implementation{
		Name:    "interview-coach",
		Version: Version,
	}

	s := &Server{
		retriever:  retriever,
		mcqService: mcqService,
		server:     mcp.NewServer(impl, nil),
		logger:     logger_i.NewLogger("MCP Server"),
	}

	s.registerTools()

	return s, nil
}

// Run serves over stdio until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("MCP server listening on stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
