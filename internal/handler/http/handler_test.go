package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dashportal/internal/config"
	"dashportal/internal/logger"
	"dashportal/internal/probe"
	"dashportal/internal/service"
	"dashportal/internal/store"
	"dashportal/models"
)

// testPortal is a full portal stack (sqlite store, services, router) backed
// by a throwaway database file, served over httptest.
type testPortal struct {
	srv      *httptest.Server
	services *service.Services
}

func newTestPortal(t *testing.T) *testPortal {
	t.Helper()

	log := logger.Nop()

	db, err := store.NewConnectSQLite(context.Background(), config.DB{Path: filepath.Join(t.TempDir(), "portal.db")}, log)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	cfg := &config.StructuredConfig{
		Auth: config.Auth{
			TokenSignKey:  "test-sign-key",
			TokenIssuer:   "dashportal-test",
			TokenDuration: time.Hour,
		},
	}

	services := service.NewServices(store.NewRepositories(db, log), cfg, log)

	srv := httptest.NewServer(NewHandler(services, probe.NewChecker(time.Second, log), log).Init())
	t.Cleanup(srv.Close)

	return &testPortal{srv: srv, services: services}
}

// seedUser creates an account directly through the service layer.
func (p *testPortal) seedUser(t *testing.T, username, password, role string, active bool) models.User {
	t.Helper()

	user, err := p.services.UserService.CreateUser(context.Background(), username, username+" (test)", password, role, active)
	require.NoError(t, err)

	return user
}

// login performs the HTTP login flow and returns a client whose cookie jar
// carries the issued session cookie.
func (p *testPortal) login(t *testing.T, username, password string) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar}

	resp := doJSON(t, client, http.MethodPost, p.srv.URL+"/api/auth/login", models.LoginRequest{
		Username: username,
		Password: password,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "login as %q failed", username)

	return client
}

// doJSON issues a request with an optional JSON body and returns the raw
// response. The caller owns the body.
func doJSON(t *testing.T, client *http.Client, method, url string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	require.NoError(t, err)

	return resp
}

// itoa renders an id for use in a URL path.
func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

// decodeInto drains and closes the response body, decoding it into out.
func decodeInto(t *testing.T, resp *http.Response, out any) {
	t.Helper()

	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
