package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
	})

	// routes for any authenticated user
	router.Group(func(r chi.Router) {
		r.Use(h.session)

		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/auth/session", h.currentSession)

		r.Get("/api/viewer/dashboards", h.assignedDashboards)
		r.Get("/api/viewer/dashboards/{id}", h.resolveDashboard)
	})

	// admin console
	router.Group(func(r chi.Router) {
		r.Use(h.session)
		r.Use(h.requireAdmin)

		r.Route("/api/admin/users", func(r chi.Router) {
			r.Get("/", h.listUsers)
			r.Post("/", h.createUser)
			r.Put("/{id}", h.updateUser)
			r.Put("/{id}/password", h.resetPassword)
			r.Delete("/{id}", h.deleteUser)

			r.Get("/{id}/dashboards", h.listAssignments)
			r.Put("/{id}/dashboards", h.replaceAssignments)
			r.Delete("/{id}/dashboards", h.clearAssignments)
		})

		r.Route("/api/admin/dashboards", func(r chi.Router) {
			r.Get("/", h.listDashboards)
			r.Post("/", h.createDashboard)
			r.Get("/{id}", h.getDashboard)
			r.Put("/{id}", h.updateDashboard)
			r.Delete("/{id}", h.deleteDashboard)
			r.Get("/{id}/probe", h.probeDashboard)
		})

		r.Get("/api/admin/assignments", h.assignmentSummary)
	})

	return router
}
