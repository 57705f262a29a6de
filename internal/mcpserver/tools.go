package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/interviewcoach/CoachAPI/internal/config"
)

// SearchResumeInput is the input schema for the search_resume tool.
type SearchResumeInput struct {
	Query string `json:"query" jsonschema:"the query to match against indexed resume chunks"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of chunks to return (default 4)"`
}

// SearchResumeOutput is the output schema for the search_resume tool.
type SearchResumeOutput struct {
	Chunks []ResumeChunkOutput `json:"chunks"`
	Count  int                 `json:"count"`
}

type ResumeChunkOutput struct {
	Content  string  `json:"content"`
	FileName string  `json:"file_name,omitempty"`
	Distance float64 `json:"distance"`
}

// SearchMCQInput is the input schema for the search_mcqs tool.
type SearchMCQInput struct {
	Query  string `json:"query" jsonschema:"the topic to find quiz questions about"`
	RoleId string `json:"role_id,omitempty" jsonschema:"restrict results to one role"`
	Limit  int    `json:"limit,omitempty" jsonschema:"maximum number of questions to return (default 5)"`
}

// SearchMCQOutput is the output schema for the search_mcqs tool.
type SearchMCQOutput struct {
	Questions []MCQOutput `json:"questions"`
	Count     int         `json:"count"`
}

type MCQOutput struct {
	Id       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	RoleId   string   `json:"role_id"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_resume",
		Description: "Search the ingested resume chunks semantically",
	}, s.handleSearchResume)

	if s.mcqService != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "search_mcqs",
			Description: "Search the multiple-choice question bank semantically",
		}, s.handleSearchMCQs)
	}
}

func (s *Server) handleSearchResume(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchResumeInput,
) (*mcp.CallToolResult, SearchResumeOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = config.ResumeSearchTopK
	}

	hits, err := s.retriever.Search(ctx, config.ResumeCollectionName, input.Query, limit, nil)
	if err != nil {
		s.logger.Error("Resume search failed", "error", err)
		return nil, SearchResumeOutput{}, err
	}

	output := SearchResumeOutput{
		Chunks: make([]ResumeChunkOutput, 0, len(hits)),
		Count:  len(hits),
	}
	for _, hit := range hits {
		output.Chunks = append(output.Chunks, ResumeChunkOutput{
			Content:  hit.Entry.Metadata["content"],
			FileName: hit.Entry.Metadata["file_name"],
			Distance: hit.Distance,
		})
	}

	return nil, output, nil
}

func (s *Server) handleSearchMCQs(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchMCQInput,
) (*mcp.CallToolResult, SearchMCQOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = config.MCQSearchTopK
	}

	questions, err := s.mcqService.SearchQuestions(ctx, input.Query, input.RoleId, limit)
	if err != nil {
		s.logger.Error("MCQ search failed", "error", err)
		return nil, SearchMCQOutput{}, err
	}

	output := SearchMCQOutput{
		Questions: make([]MCQOutput, 0, len(questions)),
		Count:     len(questions),
	}
	for _, q := range questions {
		output.Questions = append(output.Questions, MCQOutput{
			Id:       q.Id,
			Question: q.Text,
			Options:  q.Options,
			RoleId:   q.RoleId,
		})
	}

	return nil, output, nil
}
