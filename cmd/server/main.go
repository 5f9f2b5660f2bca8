// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	_ "github.com/tomtom215/iims/docs" // Import generated swagger docs
	"github.com/tomtom215/iims/internal/analytics"
	"github.com/tomtom215/iims/internal/api"
	"github.com/tomtom215/iims/internal/audit"
	"github.com/tomtom215/iims/internal/auth"
	"github.com/tomtom215/iims/internal/authz"
	"github.com/tomtom215/iims/internal/backup"
	"github.com/tomtom215/iims/internal/config"
	"github.com/tomtom215/iims/internal/events"
	"github.com/tomtom215/iims/internal/integrations"
	"github.com/tomtom215/iims/internal/inventory"
	"github.com/tomtom215/iims/internal/logging"
	"github.com/tomtom215/iims/internal/metrics"
	"github.com/tomtom215/iims/internal/monitoring"
	"github.com/tomtom215/iims/internal/store"
	"github.com/tomtom215/iims/internal/supervisor"
	"github.com/tomtom215/iims/internal/supervisor/services"
	ws "github.com/tomtom215/iims/internal/websocket"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

//nolint:gocyclo // Main initialization function with sequential setup steps
func main() {
	cfg, err := config.Load()
	if err != nil {
		// Config not yet available; the default logger is used.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	logging.Info().
		Str("version", version).
		Str("addr", cfg.Server.ListenAddr()).
		Bool("events_enabled", cfg.Events.Enabled).
		Bool("host_collector", cfg.Monitoring.HostEnabled).
		Bool("snmp_collector", cfg.Monitoring.SNMPEnabled).
		Msg("Starting IIMS with supervisor tree")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	startedAt := time.Now()
	st := store.New(store.Seed(startedAt))

	wsHub := ws.NewHub()

	// Audit entries reach dashboards through the bus; without it they are
	// only stored.
	auditOpts := []audit.Option{}
	var bus *events.Bus
	if cfg.Events.Enabled {
		busCfg := events.DefaultConfig()
		busCfg.Buffer = cfg.Events.Buffer
		bus, err = events.NewBus(busCfg, wsHub)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to create audit event bus")
		}
		defer func() {
			if err := bus.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing audit event bus")
			}
		}()
		auditOpts = append(auditOpts, audit.WithPublisher(bus))
	}
	auditLog := audit.NewLogger(audit.NewMemoryStore(), auditOpts...)

	enforcer, err := authz.NewEnforcer(authz.DefaultEnforcerConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize authorization")
	}
	defer enforcer.Close()
	authorizer := authz.NewAuthorizer(enforcer)

	credentials, err := auth.NewCredentialTable(bcrypt.DefaultCost, auth.DemoCredentials(cfg.Security.EmployeeIdentity)...)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build credential table")
	}
	sessions := auth.NewSessionHolder()

	monitoringSvc, err := initMonitoring(cfg, st)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize monitoring collectors")
	}

	handler := api.NewHandler(api.Dependencies{
		Auth:      auth.NewService(credentials, sessions, auditLog, cfg.Security.MFACode),
		Authz:     authorizer,
		Inventory: inventory.NewService(st, auditLog, authorizer, inventory.Config{
			AllowDuplicateIDs: cfg.Inventory.AllowDuplicateIDs,
			EnforceSeatLimit:  cfg.Inventory.EnforceSeatLimit,
			RequireFields:     cfg.Inventory.RequireFields,
			EmployeeIdentity:  cfg.Security.EmployeeIdentity,
			PublicURL:         cfg.Server.PublicURL,
		}),
		Analytics:      analytics.NewService(st, time.Now),
		Backup:         backup.NewVerifier(st, auditLog, authorizer, time.Now),
		Monitoring:     monitoringSvc,
		Integrations:   integrations.NewStaticProvider(startedAt),
		Audit:          auditLog,
		Hub:            wsHub,
		AllowedOrigins: cfg.Security.CORSOrigins,
	})

	chiMiddleware := api.NewChiMiddlewareFromSecurity(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.LoginRateLimitReqs,
		cfg.Security.LoginRateLimitWindow,
		cfg.Security.LoginRateLimitAll,
		cfg.Security.RateLimitDisabled,
	)
	router := api.NewRouter(handler, chiMiddleware)

	server := &http.Server{
		Addr:              cfg.Server.ListenAddr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})

	if monitoringSvc.HasCollectors() {
		tree.AddCollectorService(services.NewMonitoringSamplerService(monitoringSvc))
		logging.Info().Dur("interval", cfg.Monitoring.SampleInterval).Msg("Monitoring sampler added to supervisor tree")
	}

	tree.AddMessagingService(services.NewWebSocketHubService(wsHub))
	if bus != nil {
		tree.AddMessagingService(services.NewEventBusService(bus))
	}
	logging.Info().Msg("WebSocket hub and audit event bus added to supervisor tree")

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	// Written before the listener opens, so it is always the first entry.
	auditLog.LogStartup(ctx)

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Int("audit_entries", len(auditLog.Entries())).Msg("Application stopped gracefully")
}

// initMonitoring builds the monitoring service with the configured live
// collectors. With none enabled it serves the seeded samples only.
func initMonitoring(cfg *config.Config, st *store.Store) (*monitoring.Service, error) {
	m := cfg.Monitoring
	opts := []monitoring.Option{monitoring.WithSampleInterval(m.SampleInterval)}

	if m.HostEnabled {
		collector := monitoring.NewHostCollector(m.HostDeviceID, m.OverheatCelsius)
		opts = append(opts, monitoring.WithHealthCollector(collector))
		logging.Info().Str("collector", collector.Name()).Msg("Host health collector enabled")
	}

	if m.SNMPEnabled {
		targets, err := monitoring.ParseSNMPTargets(m.SNMPTargets, m.SNMPPort)
		if err != nil {
			return nil, err
		}
		collector := monitoring.NewSNMPCollector(monitoring.SNMPCollectorConfig{
			Targets:    targets,
			Community:  m.SNMPCommunity,
			Timeout:    m.SNMPTimeout,
			IfIndex:    m.SNMPIfIndex,
			AbnormalMB: m.AbnormalMB,
		})
		opts = append(opts, monitoring.WithNetworkCollector(collector))
		logging.Info().Int("targets", len(targets)).Msg("SNMP network collector enabled")
	}

	return monitoring.NewService(st, opts...), nil
}
