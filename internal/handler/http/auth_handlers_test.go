package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashportal/models"
)

func TestLogin(t *testing.T) {
	portal := newTestPortal(t)
	portal.seedUser(t, "alice", "s3cret", models.RoleUser, true)
	portal.seedUser(t, "carol", "s3cret", models.RoleUser, false)

	t.Run("valid credentials set a session cookie and return the session", func(t *testing.T) {
		resp := doJSON(t, http.DefaultClient, http.MethodPost, portal.srv.URL+"/api/auth/login", models.LoginRequest{
			Username: "alice",
			Password: "s3cret",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var cookie *http.Cookie
		for _, c := range resp.Cookies() {
			if c.Name == sessionCookieName {
				cookie = c
			}
		}
		require.NotNil(t, cookie, "session cookie missing")
		assert.NotEmpty(t, cookie.Value)
		assert.True(t, cookie.HttpOnly)

		var session models.Session
		decodeInto(t, resp, &session)
		assert.Equal(t, "alice", session.Username)
		assert.Equal(t, models.RoleUser, session.Role)
	})

	t.Run("wrong password is rejected with 401", func(t *testing.T) {
		resp := doJSON(t, http.DefaultClient, http.MethodPost, portal.srv.URL+"/api/auth/login", models.LoginRequest{
			Username: "alice",
			Password: "wrong",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("unknown user is rejected with the same 401", func(t *testing.T) {
		resp := doJSON(t, http.DefaultClient, http.MethodPost, portal.srv.URL+"/api/auth/login", models.LoginRequest{
			Username: "ghost",
			Password: "s3cret",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("inactive user cannot log in even with correct credentials", func(t *testing.T) {
		resp := doJSON(t, http.DefaultClient, http.MethodPost, portal.srv.URL+"/api/auth/login", models.LoginRequest{
			Username: "carol",
			Password: "s3cret",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("malformed JSON is a 400", func(t *testing.T) {
		resp, err := http.Post(portal.srv.URL+"/api/auth/login", "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestSessionLifecycle(t *testing.T) {
	portal := newTestPortal(t)
	alice := portal.seedUser(t, "alice", "s3cret", models.RoleUser, true)
	client := portal.login(t, "alice", "s3cret")

	t.Run("session endpoint echoes the logged-in user", func(t *testing.T) {
		resp := doJSON(t, client, http.MethodGet, portal.srv.URL+"/api/auth/session", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var session models.Session
		decodeInto(t, resp, &session)
		assert.Equal(t, alice.ID, session.UserID)
		assert.Equal(t, "alice", session.Username)
	})

	t.Run("requests without a token are rejected", func(t *testing.T) {
		resp := doJSON(t, http.DefaultClient, http.MethodGet, portal.srv.URL+"/api/auth/session", nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("deactivation revokes an existing session immediately", func(t *testing.T) {
		admin := portal.seedUser(t, "root", "Caps+1234", models.RoleAdmin, true)
		_ = admin
		adminClient := portal.login(t, "root", "Caps+1234")

		resp := doJSON(t, adminClient, http.MethodPut, portal.srv.URL+"/api/admin/users/"+itoa(alice.ID), models.UpdateUserRequest{
			Name:   alice.Name,
			Role:   alice.Role,
			Active: false,
		})
		resp.Body.Close()
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp = doJSON(t, client, http.MethodGet, portal.srv.URL+"/api/auth/session", nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("logout expires the cookie", func(t *testing.T) {
		bob := portal.seedUser(t, "bob", "s3cret", models.RoleUser, true)
		_ = bob
		bobClient := portal.login(t, "bob", "s3cret")

		resp := doJSON(t, bobClient, http.MethodPost, portal.srv.URL+"/api/auth/logout", nil)
		resp.Body.Close()
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp = doJSON(t, bobClient, http.MethodGet, portal.srv.URL+"/api/auth/session", nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestBearerTokenFallback(t *testing.T) {
	portal := newTestPortal(t)
	portal.seedUser(t, "alice", "s3cret", models.RoleUser, true)

	resp := doJSON(t, http.DefaultClient, http.MethodPost, portal.srv.URL+"/api/auth/login", models.LoginRequest{
		Username: "alice",
		Password: "s3cret",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var token string
	for _, c := range resp.Cookies() {
		if c.Name == sessionCookieName {
			token = c.Value
		}
	}
	resp.Body.Close()
	require.NotEmpty(t, token)

	req, err := http.NewRequest(http.MethodGet, portal.srv.URL+"/api/auth/session", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
