package http

import (
	"net/http"

	"dashportal/internal/logger"
	"dashportal/internal/utils"
)

// requireAdmin gates the admin console routes. It must run after the
// session middleware; an authenticated non-admin gets HTTP 403 Forbidden.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		session, ok := utils.GetSessionFromContext(r.Context())
		if !ok {
			log.Error().Msg("no session in context on admin route")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		if !session.IsAdmin() {
			log.Warn().Int64("id", session.UserID).Str("username", session.Username).Msg("admin route denied")
			http.Error(w, ErrAdminOnly.Error(), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
