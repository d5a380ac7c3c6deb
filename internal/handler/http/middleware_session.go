// Package http implements the HTTP transport layer of the portal.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, authorization, logging, and tracing
// concerns are all handled at this layer before requests are forwarded to
// the service layer.
package http

import (
	"context"
	"net/http"

	"dashportal/internal/logger"
	"dashportal/internal/utils"
)

// sessionCookieName is the HTTP-only cookie holding the signed session
// token between requests.
const sessionCookieName = "portal_session"

// session is an HTTP middleware that enforces authentication.
//
// It locates the session token (cookie first, then the "Authorization"
// bearer header for non-browser clients), validates it via
// [service.AuthService.ParseToken], and rebuilds the session from the
// users table via [service.AuthService.Session]. The rebuild means a
// deactivated or deleted user is locked out on their very next request,
// even with a still-valid token.
//
// On success the session is stored in the request context under
// [utils.SessionCtxKey] before delegating to the next handler. Every
// failure is rejected with HTTP 401 Unauthorized.
func (h *Handler) session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := sessionTokenFromRequest(r)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()

		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("session token rejected")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		session, err := h.services.AuthService.Session(ctx, token.UserID)
		if err != nil {
			log.Err(err).Int64("id", token.UserID).Msg("session refresh rejected")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.SessionCtxKey, session)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionTokenFromRequest extracts the raw session token: the session
// cookie when present, otherwise the "Authorization: Bearer ..." header.
func sessionTokenFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingSessionToken
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}

	return tokenString, nil
}
