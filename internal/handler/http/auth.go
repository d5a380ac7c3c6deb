package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"dashportal/internal/logger"
	"dashportal/internal/service"
	"dashportal/internal/utils"
	"dashportal/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	session, err := h.services.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Warn().Str("username", req.Username).Msg("login rejected")
			http.Error(w, service.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, session)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, sessionCookie(token))

	log.Info().Int64("id", session.UserID).Str("username", session.Username).Msg("user logged in")

	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	http.SetCookie(w, expiredSessionCookie())

	if session, ok := utils.GetSessionFromContext(r.Context()); ok {
		log.Info().Int64("id", session.UserID).Str("username", session.Username).Msg("user logged out")
	}

	w.WriteHeader(http.StatusNoContent)
}

// currentSession echoes the authenticated session back to the client, so
// the UI can restore its state after a page reload.
func (h *Handler) currentSession(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}

// sessionCookie wraps the signed token in an HTTP-only cookie scoped to the
// whole site. Expiry follows the token's own "exp" claim.
func sessionCookie(token models.Token) *http.Cookie {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if token.ExpiresAt != nil {
		cookie.Expires = token.ExpiresAt.Time
	}

	return cookie
}

func expiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	}
}
