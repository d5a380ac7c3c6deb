package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashportal/models"
)

func TestProbeDashboard(t *testing.T) {
	bi := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer bi.Close()

	portal := newTestPortal(t)
	portal.seedUser(t, "root", "Caps+1234", models.RoleAdmin, true)
	admin := portal.login(t, "root", "Caps+1234")

	resp := doJSON(t, admin, http.MethodPost, portal.srv.URL+"/api/admin/dashboards/", models.DashboardRequest{
		Name: "Sales", EmbedURL: bi.URL + "/sales",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var sales models.Dashboard
	decodeInto(t, resp, &sales)

	t.Run("live embed URL reports reachable", func(t *testing.T) {
		resp := doJSON(t, admin, http.MethodGet, portal.srv.URL+"/api/admin/dashboards/"+itoa(sales.ID)+"/probe", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var report probeResponse
		decodeInto(t, resp, &report)
		assert.True(t, report.Reachable)
		assert.Equal(t, http.StatusOK, report.StatusCode)
		assert.Contains(t, report.URL, "filterPaneEnabled=false", "probe hits the normalized URL")
	})

	t.Run("dead embed URL reports unreachable without failing the request", func(t *testing.T) {
		resp := doJSON(t, admin, http.MethodPost, portal.srv.URL+"/api/admin/dashboards/", models.DashboardRequest{
			Name: "Dead", EmbedURL: "http://127.0.0.1:1/gone",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var dead models.Dashboard
		decodeInto(t, resp, &dead)

		resp = doJSON(t, admin, http.MethodGet, portal.srv.URL+"/api/admin/dashboards/"+itoa(dead.ID)+"/probe", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var report probeResponse
		decodeInto(t, resp, &report)
		assert.False(t, report.Reachable)
		assert.NotEmpty(t, report.Error)
	})

	t.Run("unknown dashboard answers 404", func(t *testing.T) {
		resp := doJSON(t, admin, http.MethodGet, portal.srv.URL+"/api/admin/dashboards/9999/probe", nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
