package gateway

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/saransh1220/artist-console/internal/gateway/layout"
	"github.com/saransh1220/artist-console/internal/gateway/middleware"
	auth_http "github.com/saransh1220/artist-console/internal/modules/auth/interfaces/http"
	dashboard_http "github.com/saransh1220/artist-console/internal/modules/dashboard/interfaces/http"
	"github.com/saransh1220/artist-console/internal/modules/resource/domain"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// RouterConfig holds all the handlers and middleware needed for routing
type RouterConfig struct {
	AuthHandler      *auth_http.AuthHandler
	DashboardHandler *dashboard_http.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
	RateLimiter      *middleware.RateLimiter
	Logger           *zap.Logger
}

// sectionGates maps each management kind to the roles allowed on its pages
var sectionGates = map[domain.Kind]layout.Gate{
	domain.KindUser:    layout.UsersGate,
	domain.KindArtist:  layout.ArtistsGate,
	domain.KindManager: layout.ManagersGate,
	domain.KindMusic:   layout.MusicGate,
}

// SetupRoutes creates and configures all application routes
func SetupRoutes(config RouterConfig) *Router {
	router := NewRouter()
	auth := config.AuthMiddleware
	public := func(h http.HandlerFunc) http.Handler { return auth.PublicOnly(h) }
	gated := func(gate layout.Gate, h http.HandlerFunc) http.Handler { return auth.RequireRoles(gate)(h) }

	router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	router.Handle("GET /metrics", promhttp.Handler())

	router.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
	})

	// Auth routes
	ah := config.AuthHandler
	router.Handle("GET /login", public(ah.LoginPage))
	router.Handle("POST /login", config.RateLimiter.Limit(public(ah.Login)))
	router.Handle("GET /register", public(ah.RegisterPage))
	router.Handle("POST /register", config.RateLimiter.Limit(public(ah.Register)))
	router.HandleFunc("POST /logout", ah.Logout)

	// Dashboard
	dh := config.DashboardHandler
	router.Handle("GET /dashboard", gated(layout.AllRoles, dh.Home))

	router.Handle("GET /dashboard/profile", gated(layout.ProfileGate, dh.Profile))
	router.Handle("GET /dashboard/profile/new", gated(layout.ProfileGate, dh.NewProfile))
	router.Handle("GET /dashboard/profile/edit", gated(layout.ProfileGate, dh.EditProfile))
	router.Handle("POST /dashboard/profile", gated(layout.ProfileGate, dh.SaveProfile))
	router.Handle("POST /dashboard/profile/delete", gated(layout.ProfileGate, dh.DeleteProfile))

	for _, kind := range domain.Kinds {
		gate := sectionGates[kind]
		pages := dh.Pages(kind)
		base := "/dashboard/" + kind.Segment()

		router.Handle("GET "+base, gated(gate, pages.List))
		router.Handle("GET "+base+"/new", gated(gate, pages.New))
		router.Handle("POST "+base, gated(gate, pages.Create))
		router.Handle("GET "+base+"/{id}/edit", gated(gate, pages.Edit))
		router.Handle("POST "+base+"/{id}", gated(gate, pages.Update))
		router.Handle("POST "+base+"/{id}/delete", gated(gate, pages.Delete))
	}

	return router
}

// Handler wraps the routes in the request middleware chain. Metrics sit
// closest to the mux so they see the matched route pattern.
func Handler(config RouterConfig, router *Router) http.Handler {
	router.Use(
		tracing,
		middleware.RequestLogger(config.Logger),
		config.AuthMiddleware.Session,
		middleware.Prometheus,
	)
	return router.Handler()
}

func tracing(next http.Handler) http.Handler {
	return otelhttp.NewHandler(next, "artist-console",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}))
}
