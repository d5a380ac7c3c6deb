// Package probe checks that catalog embed URLs still answer over HTTP.
// Results are advisory: an unreachable dashboard is logged for the admins
// but never blocked, since BI providers routinely reject anonymous probes.
package probe

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"dashportal/internal/logger"
)

const defaultTimeout = 10 * time.Second

// Result is the outcome of probing one embed URL.
type Result struct {
	URL        string
	StatusCode int
	Elapsed    time.Duration
	Err        error
}

// Reachable reports whether the URL answered at all with a non-5xx status.
// Auth-walled providers answer 401/403 to anonymous probes; that still
// proves the host is alive, so anything below 500 counts.
func (r Result) Reachable() bool {
	return r.Err == nil && r.StatusCode < http.StatusInternalServerError
}

// Checker probes embed URLs with a shared resty client.
type Checker struct {
	client *resty.Client
	logger *logger.Logger
}

func NewChecker(timeout time.Duration, logger *logger.Logger) *Checker {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New().
		SetTimeout(timeout).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(5))

	logger.Debug().Str("func", "probe.NewChecker").Dur("timeout", timeout).Msg("embed URL checker created")

	return &Checker{client: client, logger: logger}
}

// Check issues a GET against the URL and reports the outcome. The response
// body is discarded; only status and timing matter.
func (c *Checker) Check(ctx context.Context, url string) Result {
	start := time.Now()

	resp, err := c.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)

	result := Result{URL: url, Elapsed: time.Since(start), Err: err}
	if err != nil {
		return result
	}

	defer resp.RawBody().Close() //nolint:errcheck

	result.StatusCode = resp.StatusCode()
	return result
}
