package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sablemoor/RitualBot_Go/internal/database"
	"github.com/sablemoor/RitualBot_Go/internal/handler"
	"github.com/sablemoor/RitualBot_Go/internal/logger"
	"github.com/sablemoor/RitualBot_Go/internal/metrics"
	"github.com/sablemoor/RitualBot_Go/internal/ocr"
	"github.com/sablemoor/RitualBot_Go/internal/prefs"
	"github.com/sablemoor/RitualBot_Go/internal/ritual"
)

// Deps carries everything the router needs. DBPool and OCRClient may be nil
// when the corresponding backend is not configured.
type Deps struct {
	DBPool        database.Pool
	OCRClient     ocr.Client
	RitualService ritual.Service
	PrefsService  prefs.Service
}

type Server struct {
	httpServer *http.Server
	deps       Deps
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, deps Deps) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(RateLimitMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.DBPool, deps.OCRClient))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/ritual", func(r chi.Router) {
			r.Post("/plan", handler.HandlePlan(deps.RitualService))
			r.Post("/scan", handler.HandleScan(deps.RitualService))
			r.Get("/policies", handler.HandlePolicies())
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Post("/resolve", handler.HandleResolve(deps.RitualService))
		})

		r.Route("/prefs", func(r chi.Router) {
			r.Get("/", handler.HandleGetPrefs(deps.PrefsService))
			r.Put("/", handler.HandlePutPrefs(deps.PrefsService))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		deps: deps,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info("Request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info("Server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
