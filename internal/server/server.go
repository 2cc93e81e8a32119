// Package server wires the HTTP routes and middleware.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/osse101/InventoryManager_Go/internal/handler"
	"github.com/osse101/InventoryManager_Go/internal/metrics"
	"github.com/osse101/InventoryManager_Go/internal/snapshot"
	"github.com/osse101/InventoryManager_Go/internal/user"
)

// Options configures the HTTP surface.
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Dependencies are the services the routes call into.
type Dependencies struct {
	Store     handler.Pinger
	Users     user.Service
	Snapshots snapshot.Service
	Lifecycle handler.LifecycleHandler
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the chi router. Exposed for tests.
func NewRouter(opts Options, deps Dependencies) http.Handler {
	r := chi.NewRouter()

	limiter := NewLimiterStore(rate.Limit(opts.RateLimitRPS), opts.RateLimitBurst, LimiterTTL)
	detector := NewFailedAuthDetector()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(requestIDMiddleware)
	r.Use(SecurityHeadersMiddleware())
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)
	r.Use(RateLimitMiddleware(limiter, opts.TrustedProxies))
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Store))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", handler.HandleSaveUser(deps.Users))
			r.Post("/join", handler.HandleJoin(deps.Lifecycle))
			r.Post("/leave", handler.HandleLeave(deps.Lifecycle))
			r.Get("/find", handler.HandleFindUser(deps.Users))
			r.Get("/search", handler.HandleSearchUsers(deps.Users))
			r.Get("/{xuid}", handler.HandleGetUser(deps.Users))
			r.Post("/{xuid}/leave", handler.HandleRecordLeave(deps.Users))
		})

		r.Put("/inventories", handler.HandleSaveInventory(deps.Snapshots))
		r.Get("/inventories/{xuid}", handler.HandleGetInventory(deps.Snapshots))
		r.Put("/enderchests", handler.HandleSaveEnderChest(deps.Snapshots))
		r.Get("/enderchests/{xuid}", handler.HandleGetEnderChest(deps.Snapshots))
	})

	return r
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
