package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"dashportal/internal/logger"
	"dashportal/internal/service"
	"dashportal/internal/store"
	"dashportal/internal/utils"
	"dashportal/models"
)

func (h *Handler) listDashboards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	dashboards, err := h.services.DashboardService.ListDashboards(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listDashboards").Msg("error listing dashboards")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, dashboards, http.StatusOK)
}

func (h *Handler) createDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.DashboardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createDashboard").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.DashboardService.CreateDashboard(ctx, req.Name, req.EmbedURL)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during dashboard creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
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

	utils.WriteJSON(w, dashboard, http.StatusOK)
}

func (h *Handler) updateDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid dashboard id", http.StatusBadRequest)
		return
	}

	var req models.DashboardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updateDashboard").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.DashboardService.UpdateDashboard(ctx, id, req.Name, req.EmbedURL); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrDashboardNotFound):
			http.Error(w, "dashboard not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", id).Msg("unexpected error occurred during dashboard update")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idParam(r)
	if err != nil {
		http.Error(w, "invalid dashboard id", http.StatusBadRequest)
		return
	}

	if err := h.services.DashboardService.DeleteDashboard(ctx, id, confirmParam(r)); err != nil {
		switch {
		case errors.Is(err, service.ErrConfirmationRequired):
			http.Error(w, service.ErrConfirmationRequired.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrDashboardNotFound):
			http.Error(w, "dashboard not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", id).Msg("unexpected error occurred during dashboard deletion")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
