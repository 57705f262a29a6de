package mcq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"

	"github.com/interviewcoach/CoachAPI/internal/config"
	"github.com/interviewcoach/CoachAPI/internal/domain/interviewModel"
	"github.com/interviewcoach/CoachAPI/internal/rag"
	"github.com/interviewcoach/CoachAPI/internal/rag/embedding"
	"github.com/interviewcoach/CoachAPI/internal/rag/vectorDB"
	"github.com/interviewcoach/CoachAPI/pkg/logger_i"
)

var ErrUnknownRole = errors.New("unknown role id")

type Role struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

// AnswerResult is the outcome of checking one selected option.
type AnswerResult struct {
	IsCorrect     bool   `json:"is_correct"`
	CorrectOption int    `json:"correct_option"`
	Explanation   string `json:"explanation"`
}

// roleBank is the on-disk shape of one role's question bank.
type roleBank struct {
	Name      string                    `json:"name"`
	Questions []interviewModel.Question `json:"questions"`
}

// Service is the multiple-choice question bank. The bank is loaded once at
// startup and is read-only afterwards; only the vector index changes, and
// only during IndexQuestions.
type Service interface {
	Roles() []Role
	RoleName(roleId string) (string, bool)
	QuestionsForRole(roleId string) []interviewModel.Question
	RandomQuestions(n int) []interviewModel.Question
	SearchQuestions(ctx context.Context, query string, roleId string, k int) ([]interviewModel.Question, error)
	RoleSpecificQuestions(ctx context.Context, roleId string, k int) ([]interviewModel.Question, error)
	CheckAnswer(question interviewModel.Question, selectedOption int) AnswerResult
	IndexQuestions(ctx context.Context) error
}

type service struct {
	banks     map[string]roleBank
	roleOrder []string
	byId      map[string]interviewModel.Question
	retriever rag.Service
	embedder  embedding.Embedder
	index     vectorDB.Index
	logger    *logger_i.Logger
}

// NewService loads the question bank from the JSON file at path. A missing
// file is an empty bank, not an error; malformed JSON is an error.
func NewService(path string, retriever rag.Service, em embedding.Embedder, index vectorDB.Index) (Service, error) {
	s := &service{
		banks:     map[string]roleBank{},
		byId:      map[string]interviewModel.Question{},
		retriever: retriever,
		embedder:  em,
		index:     index,
		logger:    logger_i.NewLogger("MCQ Service :"),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Warn("MCQ file not found, starting with empty bank", "path", path)
			return s, nil
		}
		return nil, fmt.Errorf("reading mcq file %s: %w", path, err)
	}

	if err := json.Unmarshal(raw, &s.banks); err != nil {
		return nil, fmt.Errorf("parsing mcq file %s: %w", path, err)
	}

	for roleId, bank := range s.banks {
		s.roleOrder = append(s.roleOrder, roleId)
		for i := range bank.Questions {
			bank.Questions[i].RoleId = roleId
			s.byId[bank.Questions[i].Id] = bank.Questions[i]
		}
		s.banks[roleId] = bank
	}
	// Map iteration order is random; keep role listings stable.
	sort.Strings(s.roleOrder)

	s.logger.Info("MCQ bank loaded", "roles", len(s.banks), "questions", len(s.byId))
	return s, nil
}

func (s *service) Roles() []Role {
	roles := make([]Role, 0, len(s.roleOrder))
	for _, id := range s.roleOrder {
		roles = append(roles, Role{Id: id, Name: s.banks[id].Name})
	}
	return roles
}

func (s *service) RoleName(roleId string) (string, bool) {
	bank, ok := s.banks[roleId]
	if !ok {
		return "", false
	}
	return bank.Name, true
}

func (s *service) QuestionsForRole(roleId string) []interviewModel.Question {
	return s.banks[roleId].Questions
}

func (s *service) RandomQuestions(n int) []interviewModel.Question {
	if n <= 0 || len(s.byId) == 0 {
		return []interviewModel.Question{}
	}

	all := make([]interviewModel.Question, 0, len(s.byId))
	for _, id := range s.roleOrder {
		all = append(all, s.banks[id].Questions...)
	}

	rand.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	if n > len(all) {
		n = len(all)
	}
	return all[:n]
}

// SearchQuestions runs a semantic search over the indexed bank. An empty
// roleId searches across all roles.
func (s *service) SearchQuestions(ctx context.Context, query string, roleId string, k int) ([]interviewModel.Question, error) {
	var filter map[string]string
	if roleId != "" {
		filter = map[string]string{"role_id": roleId}
	}

	hits, err := s.retriever.Search(ctx, config.MCQCollectionName, query, k, filter)
	if err != nil {
		return nil, fmt.Errorf("searching mcqs: %w", err)
	}

	questions := make([]interviewModel.Question, 0, len(hits))
	for _, hit := range hits {
		if q, ok := s.byId[hit.Entry.Metadata["question_id"]]; ok {
			questions = append(questions, q)
		}
	}
	return questions, nil
}

// RoleSpecificQuestions draws questions for a role via semantic search,
// using the role name as the query.
func (s *service) RoleSpecificQuestions(ctx context.Context, roleId string, k int) ([]interviewModel.Question, error) {
	bank, ok := s.banks[roleId]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRole, roleId)
	}
	return s.SearchQuestions(ctx, bank.Name+" interview questions", roleId, k)
}

func (s *service) CheckAnswer(question interviewModel.Question, selectedOption int) AnswerResult {
	return AnswerResult{
		IsCorrect:     selectedOption == question.CorrectAnswer,
		CorrectOption: question.CorrectAnswer,
		Explanation:   question.Explanation,
	}
}

// IndexQuestions embeds every question into the mcqs collection. Documents
// are a rich text rendering so option and explanation wording is searchable
// too. Runs once at startup; upserts by question id keep it idempotent.
func (s *service) IndexQuestions(ctx context.Context) error {
	if len(s.byId) == 0 {
		return nil
	}

	if err := s.index.EnsureCollection(ctx, config.MCQCollectionName); err != nil {
		return fmt.Errorf("ensuring mcq collection: %w", err)
	}

	var texts []string
	var questions []interviewModel.Question
	for _, roleId := range s.roleOrder {
		bank := s.banks[roleId]
		for _, q := range bank.Questions {
			texts = append(texts, renderQuestionDocument(bank.Name, q))
			questions = append(questions, q)
		}
	}

	vectors, err := s.embedder.BatchEmbedding(ctx, texts)
	if err != nil {
		return fmt.Errorf("embedding mcqs: %w", err)
	}
	if len(vectors) != len(questions) {
		return fmt.Errorf("embedding returned %d vectors for %d questions", len(vectors), len(questions))
	}

	entries := make([]vectorDB.IndexEntry, 0, len(questions))
	for i, q := range questions {
		entries = append(entries, vectorDB.IndexEntry{
			Id:     q.Id,
			Vector: vectors[i],
			Metadata: map[string]string{
				"question_id": q.Id,
				"role_id":     q.RoleId,
			},
		})
	}

	count, err := s.index.Upsert(ctx, config.MCQCollectionName, entries)
	if err != nil {
		return fmt.Errorf("indexing mcqs: %w", err)
	}
	s.logger.Info("MCQ bank indexed", "questions", count)
	return nil
}

func renderQuestionDocument(roleName string, q interviewModel.Question) string {
	return fmt.Sprintf("Role: %s\nQuestion: %s\nOptions: %s\nExplanation: %s",
		roleName, q.Text, strings.Join(q.Options, ", "), q.Explanation)
}
