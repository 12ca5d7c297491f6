package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/DHRUV222222/CareerLift/internal/services"
)

type CompleteSessionsRequest struct {
	SessionIDs []string `json:"sessionIds"`
}

type CompleteSessionsResponse struct {
	Completed int `json:"completed"`
}

// CompleteSessions is the batch admin action: every listed session that is
// currently accepted becomes completed, the rest are left untouched.
func (s *Server) CompleteSessions(w http.ResponseWriter, r *http.Request) {
	var req CompleteSessionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	completed, err := services.CompleteAcceptedSessions(s.DB, req.SessionIDs)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, CompleteSessionsResponse{Completed: completed})
}

type MetricsHistoryResponse struct {
	Items []services.PlatformSample `json:"items"`
}

func (s *Server) MetricsHistory(w http.ResponseWriter, r *http.Request) {
	limit := parseInt(r.URL.Query().Get("limit"), 120)
	if limit > 500 {
		limit = 500
	}
	items, err := services.LatestPlatformSamples(s.DB, limit)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, MetricsHistoryResponse{Items: items})
}
