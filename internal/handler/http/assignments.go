package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"dashportal/internal/logger"
	"dashportal/internal/store"
	"dashportal/internal/utils"
	"dashportal/models"
)

func (h *Handler) listAssignments(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	dashboards, err := h.services.AssignmentService.ListForUser(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listAssignments").Int64("user_id", id).Msg("error listing assignments")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, dashboards, http.StatusOK)
}

func (h *Handler) replaceAssignments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	var req models.AssignmentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.replaceAssignments").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AssignmentService.ReplaceForUser(ctx, id, req.DashboardIDs); err != nil {
		switch {
		case errors.Is(err, store.ErrUnknownAssignmentTarget):
			http.Error(w, "unknown user or dashboard in assignment", http.StatusBadRequest)
			return
		default:
			log.Err(err).Int64("user_id", id).Msg("unexpected error occurred during assignment replace")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearAssignments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	if err := h.services.AssignmentService.ClearForUser(ctx, id); err != nil {
		log.Err(err).Int64("user_id", id).Msg("unexpected error occurred during assignment clear")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) assignmentSummary(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	summary, err := h.services.AssignmentService.Summary(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.assignmentSummary").Msg("error building assignment summary")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}
