package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/osse101/SwapMeet_Go/docs"
	"github.com/osse101/SwapMeet_Go/internal/handler"
	"github.com/osse101/SwapMeet_Go/internal/logger"
	"github.com/osse101/SwapMeet_Go/internal/metrics"
	"github.com/osse101/SwapMeet_Go/internal/swapmeet"
)

// Options configures the HTTP server
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	RateLimitRPS   float64 // 0 disables rate limiting
	RateLimitBurst int
	MaxBodyBytes   int64
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance routing the swap meet API
func NewServer(opts Options, svc swapmeet.Service) *Server {
	handler.InitValidator()
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)
	if opts.RateLimitRPS > 0 {
		r.Use(RateLimitMiddleware(opts.TrustedProxies, NewIPRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst)))
	}
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(opts.MaxBodyBytes))
	r.Use(metrics.Middleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc))
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	r.Route(APIPrefix, func(r chi.Router) {
		r.Route("/vendors", func(r chi.Router) {
			r.Post("/", handler.HandleCreateVendor(svc))
			r.Get("/", handler.HandleListVendors(svc))

			r.Route("/{vendorID}", func(r chi.Router) {
				r.Get("/", handler.HandleGetVendor(svc))

				r.Route("/items", func(r chi.Router) {
					r.Post("/", handler.HandleAddItem(svc))
					r.Get("/", handler.HandleGetByCategory(svc))
					r.Get("/best", handler.HandleGetBestByCategory(svc))
					r.Get("/newest", handler.HandleGetNewest(svc))
					r.Get("/age/{age}", handler.HandleGetByAge(svc))
					r.Delete("/{itemID}", handler.HandleRemoveItem(svc))
				})

				r.Route("/swap", func(r chi.Router) {
					r.Post("/", handler.HandleSwapItems(svc))
					r.Post("/first", handler.HandleSwapFirstItem(svc))
					r.Post("/best", handler.HandleSwapBestByCategory(svc))
					r.Post("/newest", handler.HandleSwapByNewest(svc))
				})
			})
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           otelhttp.NewHandler(r, tracingOperation),
			ReadHeaderTimeout: ReadHeaderTimeout,
			WriteTimeout:      WriteTimeout,
			IdleTimeout:       IdleTimeout,
		},
	}
}

// Handler returns the root handler, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
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

// requestIDMiddleware puts a request ID into the context and echoes it in X-Request-ID.
// A well-formed inbound X-Request-ID is kept so IDs follow a request across services.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" || len(requestID) > 64 || strings.ContainsAny(requestID, "\r\n") {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(logger.WithRequestID(r.Context(), requestID)))
	})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, quiet := range quietPaths {
			if strings.HasPrefix(r.URL.Path, quiet) {
				next.ServeHTTP(w, r)
				return
			}
		}

		start := time.Now()
		log := logger.FromContext(r.Context())

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// respondError writes the same JSON error shape the handlers use
func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(handler.ErrorResponse{Error: message}); err != nil {
		slog.Error("Failed to encode error response", "error", err)
	}
}

// Start starts the server. It returns http.ErrServerClosed after Stop.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
