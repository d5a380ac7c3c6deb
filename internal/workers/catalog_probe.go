package workers

import (
	"context"
	"time"

	"dashportal/internal/embedurl"
	"dashportal/internal/logger"
	"dashportal/internal/probe"
	"dashportal/internal/service"
)

// CatalogProbe periodically walks the dashboard catalog and probes every
// embed URL, logging entries whose provider stopped answering. It never
// mutates the catalog; the log is the whole output.
type CatalogProbe struct {
	dashboardService service.DashboardService
	checker          *probe.Checker
	interval         time.Duration
	logger           *logger.Logger
}

func NewCatalogProbe(dashboardService service.DashboardService, checker *probe.Checker, interval time.Duration, logger *logger.Logger) *CatalogProbe {
	return &CatalogProbe{
		dashboardService: dashboardService,
		checker:          checker,
		interval:         interval,
		logger:           logger,
	}
}

// Run probes the catalog every interval until ctx is cancelled. A zero or
// negative interval disables the worker.
func (p *CatalogProbe) Run(ctx context.Context) {
	log := p.logger.With().Str("func", "CatalogProbe.Run").Logger()

	if p.interval <= 0 {
		log.Debug().Msg("catalog probe disabled")
		return
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	log.Info().Dur("interval", p.interval).Msg("catalog probe started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("catalog probe stopped")
			return
		case <-ticker.C:
			p.probeOnce(ctx)
		}
	}
}

func (p *CatalogProbe) probeOnce(ctx context.Context) {
	log := p.logger.With().Str("func", "CatalogProbe.probeOnce").Logger()

	dashboards, err := p.dashboardService.ListDashboards(ctx)
	if err != nil {
		log.Err(err).Msg("catalog listing failed, skipping probe round")
		return
	}

	for _, dashboard := range dashboards {
		result := p.checker.Check(ctx, embedurl.Normalize(dashboard.EmbedURL))

		if result.Reachable() {
			log.Debug().
				Int64("dashboard_id", dashboard.ID).
				Int("status", result.StatusCode).
				Dur("elapsed", result.Elapsed).
				Msg("embed URL reachable")
			continue
		}

		event := log.Warn().
			Int64("dashboard_id", dashboard.ID).
			Str("name", dashboard.Name).
			Dur("elapsed", result.Elapsed)
		if result.Err != nil {
			event = event.Err(result.Err)
		} else {
			event = event.Int("status", result.StatusCode)
		}
		event.Msg("embed URL unreachable")
	}
}
