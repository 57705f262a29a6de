package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/interviewcoach/CoachAPI/internal/adapter"
	"github.com/interviewcoach/CoachAPI/internal/adapter/utils"
	"github.com/interviewcoach/CoachAPI/internal/api"
	"github.com/interviewcoach/CoachAPI/internal/config"
	"github.com/interviewcoach/CoachAPI/internal/mcq"
	"github.com/interviewcoach/CoachAPI/pkg/logger_i"
)

var (
	mcqInstance mcq.Service
	mcqOnce     sync.Once
	logMH       *logger_i.Logger
)

func InitMCQHandler(service mcq.Service) {
	mcqOnce.Do(func() {
		mcqInstance = service
		logMH = logger_i.NewLogger("MCQHandler")
		logMH.Info("Starting MCQ handler")
	})
}

// GetRolesHandler godoc
// @Summary      List quiz roles
// @Description  Returns the roles available in the question bank.
// @Tags         MCQ
// @Produce      json
// @Success      200  {array}  api.MCQRoleResponse
// @Router       /mcq/roles [get]
func GetRolesHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	roles := mcqInstance.Roles()
	out := make([]api.MCQRoleResponse, 0, len(roles))
	for _, role := range roles {
		out = append(out, api.MCQRoleResponse{Id: role.Id, Name: role.Name})
	}
	writeJsonResponse(w, http.StatusOK, out)
}

// GetRoleQuestionsHandler godoc
// @Summary      Get questions for a role
// @Description  Returns the question bank for a role, or semantically matched questions when a query is given.
// @Tags         MCQ
// @Produce      json
// @Param        roleId  path   string  true   "Role ID"
// @Param        q       query  string  false  "Semantic search query"
// @Param        k       query  int     false  "Max results for semantic search"
// @Success      200  {array}   api.MCQQuestionResponse
// @Failure      404  {object}  api.JobResponse  "Unknown role"
// @Router       /mcq/roles/{roleId}/questions [get]
func GetRoleQuestionsHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	roleId := utils.GetChiURLParam(r, "roleId")
	if _, known := mcqInstance.RoleName(roleId); !known {
		WriteErrorResponse(w, http.StatusNotFound, roleId, "Unknown role")
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		questions := mcqInstance.QuestionsForRole(roleId)
		writeJsonResponse(w, http.StatusOK, adapter.ToMCQQuestionResponses(questions))
		return
	}

	k := queryInt(r, "k", config.MCQSearchTopK)
	questions, err := mcqInstance.SearchQuestions(r.Context(), query, roleId, k)
	if err != nil {
		logMH.Error("MCQ search failed", "roleId", roleId, "err", err)
		WriteErrorResponse(w, http.StatusBadGateway, roleId, "Search unavailable")
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToMCQQuestionResponses(questions))
}

// GetRandomQuestionsHandler godoc
// @Summary      Draw random questions
// @Description  Returns up to n random questions across all roles.
// @Tags         MCQ
// @Produce      json
// @Param        n    query     int  false  "Number of questions to draw"
// @Success      200  {array}  api.MCQQuestionResponse
// @Router       /mcq/random [get]
func GetRandomQuestionsHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	n := queryInt(r, "n", config.MCQSearchTopK)
	questions := mcqInstance.RandomQuestions(n)
	writeJsonResponse(w, http.StatusOK, adapter.ToMCQQuestionResponses(questions))
}

// CheckAnswerHandler godoc
// @Summary      Check a quiz answer
// @Description  Checks the selected option against the question bank and returns the correct option with its explanation.
// @Tags         MCQ
// @Accept       json
// @Produce      json
// @Param        request  body      api.CheckAnswerRequest  true  "Role, question and selected option"
// @Success      200      {object}  api.CheckAnswerResponse
// @Failure      404      {object}  api.JobResponse  "Unknown role or question"
// @Router       /mcq/check [post]
func CheckAnswerHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	var requestData api.CheckAnswerRequest
	defer closeBody(r.Body)
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil || requestData.RoleId == "" || requestData.QuestionId == "" {
		logMH.Warn("Bad check request", "error:", err)
		WriteErrorResponse(w, http.StatusBadRequest, "", "role_id and question_id are required")
		return
	}

	for _, q := range mcqInstance.QuestionsForRole(requestData.RoleId) {
		if q.Id != requestData.QuestionId {
			continue
		}
		result := mcqInstance.CheckAnswer(q, requestData.SelectedOption)
		writeJsonResponse(w, http.StatusOK, api.CheckAnswerResponse{
			IsCorrect:     result.IsCorrect,
			CorrectOption: result.CorrectOption,
			Explanation:   result.Explanation,
		})
		return
	}
	WriteErrorResponse(w, http.StatusNotFound, requestData.QuestionId, "Unknown role or question")
}

// SearchMCQHandler godoc
// @Summary      Search questions across roles
// @Description  Semantic search over the indexed question bank, optionally filtered by role_id.
// @Tags         MCQ
// @Produce      json
// @Param        q        query  string  true   "Search query"
// @Param        role_id  query  string  false  "Restrict to one role"
// @Param        k        query  int     false  "Max results"
// @Success      200  {array}   api.MCQQuestionResponse
// @Failure      400  {object}  api.JobResponse  "Missing query"
// @Router       /mcq/search [get]
func SearchMCQHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "", "q is required")
		return
	}

	roleId := r.URL.Query().Get("role_id")
	k := queryInt(r, "k", config.MCQSearchTopK)

	questions, err := mcqInstance.SearchQuestions(r.Context(), query, roleId, k)
	if err != nil {
		logMH.Error("MCQ search failed", "err", err)
		WriteErrorResponse(w, http.StatusBadGateway, "", "Search unavailable")
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToMCQQuestionResponses(questions))
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
