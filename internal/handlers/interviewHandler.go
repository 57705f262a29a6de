package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/interviewcoach/CoachAPI/internal/adapter"
	"github.com/interviewcoach/CoachAPI/internal/adapter/utils"
	"github.com/interviewcoach/CoachAPI/internal/api"
	"github.com/interviewcoach/CoachAPI/internal/domain/interviewModel"
	"github.com/interviewcoach/CoachAPI/internal/interview"
	"github.com/interviewcoach/CoachAPI/internal/report"
	"github.com/interviewcoach/CoachAPI/pkg/logger_i"
)

var (
	interviewInstance *InterviewHandler
	interviewOnce     sync.Once
	logIH             *logger_i.Logger
)

type InterviewHandler struct {
	service  interview.Service
	sessions interviewModel.SessionStore
	reports  report.Service
}

func InitInterviewHandler(service interview.Service, sessions interviewModel.SessionStore, reports report.Service) {
	interviewOnce.Do(func() {
		interviewInstance = &InterviewHandler{
			service:  service,
			sessions: sessions,
			reports:  reports,
		}
		logIH = logger_i.NewLogger("InterviewHandler")
		logIH.Info("Starting interview handler")
	})
}

// StartInterviewHandler godoc
// @Summary      Start an interview session
// @Description  Creates a session for the given role, generates the opening question, and returns the session state.
// @Tags         Interview
// @Accept       json
// @Produce      json
// @Param        request  body      api.StartInterviewRequest  true  "Target role and experience level"
// @Success      201      {object}  api.InterviewStateResponse
// @Failure      400      {object}  api.JobResponse  "Missing role"
// @Router       /interview/start [post]
func StartInterviewHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	var requestData api.StartInterviewRequest
	defer closeBody(r.Body)
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil || strings.TrimSpace(requestData.Role) == "" {
		logIH.Warn("Bad start request", "error:", err)
		WriteErrorResponse(w, http.StatusBadRequest, "", "role is required")
		return
	}

	session := interviewInstance.service.StartInterview(r.Context(), requestData.Role, requestData.ExperienceLevel)
	if err := interviewInstance.sessions.SaveSession(r.Context(), session); err != nil {
		logIH.Error("Failed to persist new session", "sessionId", session.Id, "err", err)
	}

	writeJsonResponse(w, http.StatusCreated, adapter.ToInterviewStateResponse(session, nil))
}

// SubmitAnswerHandler godoc
// @Summary      Submit an answer
// @Description  Evaluates the answer against the current question, records it, and returns the next or follow-up question.
// @Tags         Interview
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Session ID"
// @Param        request  body      api.SubmitAnswerRequest  true  "Candidate answer"
// @Success      200      {object}  api.InterviewStateResponse
// @Failure      404      {object}  api.JobResponse  "Session not found"
// @Failure      409      {object}  api.JobResponse  "Session has ended or is mid-evaluation"
// @Failure      502      {object}  api.JobResponse  "Evaluation backend unavailable"
// @Router       /interview/{id}/answer [post]
func SubmitAnswerHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	sessionId := utils.GetChiURLParam(r, "id")
	session, found := interviewInstance.sessions.GetSession(r.Context(), sessionId)
	if !found {
		WriteErrorResponse(w, http.StatusNotFound, sessionId, "Session not found")
		return
	}

	var requestData api.SubmitAnswerRequest
	defer closeBody(r.Body)
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		logIH.Warn("Bad answer request", "sessionId", sessionId, "error:", err)
		WriteErrorResponse(w, http.StatusBadRequest, sessionId, "Bad Request")
		return
	}

	updated, err := interviewInstance.service.SubmitAnswer(r.Context(), session, requestData.Answer)
	if err != nil {
		writeSubmitError(w, sessionId, err)
		return
	}

	if err := interviewInstance.sessions.SaveSession(r.Context(), updated); err != nil {
		logIH.Error("Failed to persist session", "sessionId", sessionId, "err", err)
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToInterviewStateResponse(updated, adapter.LastEvaluation(updated)))
}

// EndInterviewHandler godoc
// @Summary      End an interview session
// @Description  Marks the session as ended, writes the JSON export, and returns the summary. Ending twice is a no-op.
// @Tags         Interview
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  api.EndInterviewResponse
// @Failure      404  {object}  api.JobResponse  "Session not found"
// @Router       /interview/{id}/end [post]
func EndInterviewHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	sessionId := utils.GetChiURLParam(r, "id")
	session, found := interviewInstance.sessions.GetSession(r.Context(), sessionId)
	if !found {
		WriteErrorResponse(w, http.StatusNotFound, sessionId, "Session not found")
		return
	}

	ended, err := interviewInstance.service.EndInterview(r.Context(), session)
	if err != nil {
		// session is still marked ended, the export just failed
		logIH.Error("Session export failed", "sessionId", sessionId, "err", err)
	}
	if err := interviewInstance.sessions.SaveSession(r.Context(), ended); err != nil {
		logIH.Error("Failed to persist ended session", "sessionId", sessionId, "err", err)
	}

	stats := interviewInstance.service.SessionStats(ended)
	writeJsonResponse(w, http.StatusOK, api.EndInterviewResponse{
		SessionId:      ended.Id,
		TotalQuestions: stats.TotalQuestions,
		AverageScore:   stats.AverageScore,
	})
}

// GetReportHandler godoc
// @Summary      Get the session report
// @Description  Returns aggregated stats, the response tree, and recommendation strings for a session.
// @Tags         Interview
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  report.Payload
// @Failure      404  {object}  api.JobResponse  "Session not found"
// @Router       /interview/{id}/report [get]
func GetReportHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	sessionId := utils.GetChiURLParam(r, "id")
	session, found := interviewInstance.sessions.GetSession(r.Context(), sessionId)
	if !found {
		WriteErrorResponse(w, http.StatusNotFound, sessionId, "Session not found")
		return
	}

	writeJsonResponse(w, http.StatusOK, interviewInstance.reports.BuildReport(session))
}

func writeSubmitError(w http.ResponseWriter, sessionId string, err error) {
	switch {
	case errors.Is(err, interview.ErrSessionEnded), errors.Is(err, interview.ErrInvalidState):
		WriteErrorResponse(w, http.StatusConflict, sessionId, err.Error())
	default:
		WriteErrorResponse(w, http.StatusBadGateway, sessionId, "Could not evaluate answer, try again")
	}
}

func closeBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		logRH.Error("Couldn't close the request body reader :", err)
	}
}
