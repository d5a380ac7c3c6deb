package http

import (
	"errors"
	"net/http"

	"dashportal/internal/logger"
	"dashportal/internal/service"
	"dashportal/internal/utils"
)

// assignedDashboards lists the dashboards the logged-in user may open.
// An empty list is a normal response; the UI tells the user nothing has
// been assigned yet.
func (h *Handler) assignedDashboards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	dashboards, err := h.services.ViewerService.AssignedDashboards(r.Context(), session.UserID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.assignedDashboards").Msg("error listing assigned dashboards")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, dashboards, http.StatusOK)
}

// resolveDashboard returns the render-ready view of one assigned
// dashboard. A dashboard outside the user's assignment set answers 404, so
// existence of unassigned catalog entries is not revealed.
func (h *Handler) resolveDashboard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid dashboard id", http.StatusBadRequest)
		return
	}

	view, err := h.services.ViewerService.ResolveDashboard(r.Context(), session.UserID, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAssigned):
			http.Error(w, "dashboard not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("dashboard_id", id).Msg("unexpected error occurred resolving dashboard")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, view, http.StatusOK)
}
