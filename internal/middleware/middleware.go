package middleware

import (
	"net/http"
	"strconv"

	"github.com/interviewcoach/CoachAPI/internal/handlers"
	"github.com/interviewcoach/CoachAPI/internal/metrics"
	"github.com/interviewcoach/CoachAPI/pkg/logger_i"
)

type requestResponseStruct struct {
	writer     http.ResponseWriter
	req        *http.Request
	badRequest failureStruct
	logger     *logger_i.Logger
}

type failureStruct struct {
	isBadRequest bool
	httpCode     int
	errorMessage string
	id           string
}

var GetHandler = Wrap(handlers.GetHandler)

var GetStatusHandler = Wrap(handlers.GetStatusHandler)
var PostIngestHandler = Wrap(handlers.PostIngestHandler)
var PostAvatarHandler = Wrap(handlers.PostAvatarHandler)

var StartInterviewHandler = Wrap(handlers.StartInterviewHandler)
var SubmitAnswerHandler = Wrap(handlers.SubmitAnswerHandler)
var EndInterviewHandler = Wrap(handlers.EndInterviewHandler)
var GetReportHandler = Wrap(handlers.GetReportHandler)

var GetRolesHandler = Wrap(handlers.GetRolesHandler)
var GetRoleQuestionsHandler = Wrap(handlers.GetRoleQuestionsHandler)
var GetRandomQuestionsHandler = Wrap(handlers.GetRandomQuestionsHandler)
var CheckAnswerHandler = Wrap(handlers.CheckAnswerHandler)
var SearchMCQHandler = Wrap(handlers.SearchMCQHandler)

func Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &metrics.HttpStatusRecorder{ResponseWriter: w, Status: 200} //metrics
		re := processRequest(requestResponseStruct{req: r, writer: rec})

		if re.badRequest.isBadRequest {
			handleBadRequest(re)
			return
		}
		next(rec, re.req)

		metrics.HttpRequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(rec.Status)).Inc() //metrics
	}
}
func processRequest(re requestResponseStruct) requestResponseStruct {
	re.logger = logger_i.NewLogger("middleware")
	re.logger.Info("New request received")
	//TODO:make this cleaner
	re = injectTrace(re)
	re = authenticate(re)
	if re.badRequest.isBadRequest {
		return re //stop if auth fails, Wrap writes the error
	}
	re = rateLimiter(re)
	return re
}
