package router

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/conestack/treibstoff/internal/config"
	"github.com/conestack/treibstoff/internal/handlers"
	"github.com/conestack/treibstoff/internal/middleware"
)

// NewMux creates the same routes on a gorilla/mux router.
func NewMux(o Options) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)
	r.Handle("/manifest.json", o.Metrics.Route("manifest")(http.HandlerFunc(o.Assets.Manifest))).Methods(http.MethodGet)
	r.Handle("/includes", o.Metrics.Route("includes")(http.HandlerFunc(o.Assets.Includes))).Methods(http.MethodGet)
	r.Handle("/metrics", o.Metrics.Handler()).Methods(http.MethodGet)

	if o.View != nil {
		static := r.PathPrefix(o.StaticPrefix).Subrouter()
		static.Use(middleware.CORS(o.CORSOrigins))
		static.Use(o.Metrics.Route("static"))
		static.Use(o.Metrics.Assets(o.StaticPrefix, o.View.Has))
		static.PathPrefix("/").Handler(o.View)
		slog.Debug("static view mounted", "host", config.RouterMux, "prefix", o.StaticPrefix)
	} else {
		slog.Info("static view unavailable, assets must be published by the host")
	}

	return r
}
