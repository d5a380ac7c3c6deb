package http

import (
	"errors"
	"net/http"

	"dashportal/internal/embedurl"
	"dashportal/internal/logger"
	"dashportal/internal/store"
	"dashportal/internal/utils"
)

// probeResponse reports the outcome of an on-demand embed-URL check.
type probeResponse struct {
	URL        string `json:"url"`
	Reachable  bool   `json:"reachable"`
	StatusCode int    `json:"status_code,omitempty"`
	ElapsedMS  int64  `json:"elapsed_ms"`
	Error      string `json:"error,omitempty"`
}

// probeDashboard checks whether one catalog entry's embed URL still answers.
// The result is advisory; an unreachable URL is reported, not removed.
func (h *Handler) probeDashboard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid dashboard id", http.StatusBadRequest)
		return
	}

	dashboard, err := h.services.DashboardService.GetDashboard(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDashboardNotFound):
			http.Error(w, "dashboard not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", id).Msg("unexpected error occurred during dashboard lookup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	result := h.checker.Check(r.Context(), embedurl.Normalize(dashboard.EmbedURL))

	response := probeResponse{
		URL:        result.URL,
		Reachable:  result.Reachable(),
		StatusCode: result.StatusCode,
		ElapsedMS:  result.Elapsed.Milliseconds(),
	}
	if result.Err != nil {
		response.Error = result.Err.Error()
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
