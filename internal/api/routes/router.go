package routes

import (
	"net/http"

	"github.com/zatekoja/tastebuddies/frontend/internal/api/handlers"
	"github.com/zatekoja/tastebuddies/frontend/internal/api/middleware"
	"github.com/zatekoja/tastebuddies/frontend/internal/api/views"
	"github.com/zatekoja/tastebuddies/frontend/internal/infrastructure/observability"
)

// homePath is where the site root and the Home link land
const homePath = "/user/profile"

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	messHandler    *handlers.MessHandler
	headerHandler  *handlers.HeaderHandler
	profileHandler *handlers.ProfileHandler

	allowedOrigins []string
	metrics        *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	messHandler *handlers.MessHandler,
	headerHandler *handlers.HeaderHandler,
	profileHandler *handlers.ProfileHandler,
	allowedOrigins []string,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:            http.NewServeMux(),
		messHandler:    messHandler,
		headerHandler:  headerHandler,
		profileHandler: profileHandler,
		allowedOrigins: allowedOrigins,
		metrics:        metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	r.mux.Handle("GET "+middleware.StaticPrefix, http.FileServerFS(views.Static))

	r.mux.HandleFunc("GET /{$}", redirectHome)
	r.mux.HandleFunc("GET /user", redirectHome)

	// Mess detail view
	r.mux.HandleFunc("GET /mess/{id}", r.messHandler.ShowMess)
	r.mux.HandleFunc("GET /mess/{id}/details", r.messHandler.MessDetails)
	r.mux.HandleFunc("POST /mess/{id}/subscribe", r.messHandler.Subscribe)
	r.mux.HandleFunc("POST /mess/{id}/review", r.messHandler.SubmitReview)
	r.mux.HandleFunc("POST /mess/{id}/review/star", r.messHandler.ClickStar)

	// Header
	r.mux.HandleFunc("POST /search", r.headerHandler.Search)
	r.mux.HandleFunc("POST /logout", r.headerHandler.Logout)

	// Profile view
	r.mux.HandleFunc("GET /user/profile", r.profileHandler.ShowProfile)
	r.mux.HandleFunc("GET "+views.ProfileDetailsPath, r.profileHandler.ProfileDetails)

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.CrossOriginMiddleware(r.allowedOrigins)(handler)
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics, r.mux)(handler)

	// Apply HTTP performance optimizations (compression, ETag, cache headers)
	handler = middleware.ResponseOptimization(handler)

	// CORS wraps everything so headers are set on every response
	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)

	return handler
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, homePath, http.StatusSeeOther)
}
