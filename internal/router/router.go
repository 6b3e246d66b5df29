// Package router mounts the treibstoff endpoints and the optional static view
// on a host router. chi is the default host; gorilla/mux is supported for
// applications built on it.
package router

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/conestack/treibstoff/internal/config"
	"github.com/conestack/treibstoff/internal/handlers"
	"github.com/conestack/treibstoff/internal/metrics"
	"github.com/conestack/treibstoff/internal/middleware"
)

// StaticView is the asset directory handler mounted under the static prefix.
type StaticView interface {
	http.Handler

	// Has reports whether file names an asset the view serves.
	Has(file string) bool
}

// Options carries everything the routers mount.
type Options struct {
	Assets  *handlers.Assets
	Metrics *metrics.Metrics

	// View serves the asset directory under StaticPrefix. Both are empty when
	// no static view is available; the routes are then simply not mounted.
	View         StaticView
	StaticPrefix string

	CORSOrigins []string
}

// Build returns the router for the configured host kind.
func Build(kind string, o Options) (http.Handler, error) {
	switch kind {
	case config.RouterChi:
		return New(o), nil
	case config.RouterMux:
		return NewMux(o), nil
	default:
		return nil, fmt.Errorf("router: unknown host router %q", kind)
	}
}

// New creates the chi router with all middleware and routes wired up.
func New(o Options) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.Get("/health", handlers.Health)
	r.With(o.Metrics.Route("manifest")).Get("/manifest.json", o.Assets.Manifest)
	r.With(o.Metrics.Route("includes")).Get("/includes", o.Assets.Includes)
	r.Method(http.MethodGet, "/metrics", o.Metrics.Handler())

	if o.View != nil {
		r.Group(func(r chi.Router) {
			r.Use(middleware.CORS(o.CORSOrigins))
			r.Use(o.Metrics.Route("static"))
			r.Use(o.Metrics.Assets(o.StaticPrefix, o.View.Has))
			r.Handle(o.StaticPrefix+"*", o.View)
		})
		slog.Debug("static view mounted", "host", config.RouterChi, "prefix", o.StaticPrefix)
	} else {
		slog.Info("static view unavailable, assets must be published by the host")
	}

	return r
}
