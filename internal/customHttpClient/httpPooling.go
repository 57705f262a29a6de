package customHttpClient

import (
	"net/http"
	"time"

	"github.com/interviewcoach/CoachAPI/internal/config"
)

// Shared transport so outbound API calls reuse connections instead of paying
// connection setup per request.
var customTransport = &http.Transport{
	MaxIdleConns:        config.MaxIdleConns,
	MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
	IdleConnTimeout:     config.IdleConnTimeout,
}

func NewPooledClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: customTransport,
		Timeout:   timeout,
	}
}
