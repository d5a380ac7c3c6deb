package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// idParam parses the {id} route parameter as an int64.
func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// confirmParam reports whether the request carries ?confirm=true, the
// explicit acknowledgement required by destructive admin actions.
func confirmParam(r *http.Request) bool {
	return r.URL.Query().Get("confirm") == "true"
}
