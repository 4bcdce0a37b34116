package httpserver

import (
	"context"
	"crm-server/internal/infra/node"
	"crm-server/internal/logger"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/otel/attribute"
)

type Server interface {
	Run()
	Shutdown()
}

var _ Server = &StandardServer{}

type StandardServer struct {
	server *http.Server
}

type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
	// Readiness lists the dependencies /readyz pings.
	Readiness []Pinger
	AccessLog logger.Logger
}

func (s *StandardServer) Run() {
	slog.Info("http server listening", slog.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}

func (s *StandardServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		slog.Error("shutting down http server", slog.String("error", err.Error()))
	}
}

func NewServer(config ServerConfig, controllers ...Controller) *StandardServer {
	addr := config.Addr
	if addr == "" {
		addr = ":3000"
	}
	return &StandardServer{
		&http.Server{
			Addr:              addr,
			Handler:           NewRouter(config, controllers...),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// NewRouter builds the full handler chain, also used by in-process tests.
func NewRouter(config ServerConfig, controllers ...Controller) http.Handler {
	router := http.NewServeMux()

	origins := config.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	}

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			UserIDHeader,
			"X-User-Email",
		},
		AllowCredentials: false,
		MaxAge:           300,
	})

	accessLog := config.AccessLog
	if accessLog == nil {
		accessLog = logger.NewDefaultLogger()
	}

	router.Handle("GET /healthz", getHealthz())
	router.Handle("GET /readyz", getReadyz(config.Readiness))
	router.Handle("GET /metrics", promhttp.Handler())

	for _, controller := range controllers {
		controller.AddRoutes(router)
	}

	return c.Handler(
		MetricsMiddleware()(
			createTracingMiddleware()(
				createUserHeaderMiddleware()(
					createAccessLogMiddleware(accessLog)(router),
				),
			),
		),
	)
}

func getHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		span := GetSpanFromContext(r)
		span.SetAttributes(attribute.String("endpoint", "healthz"))

		info := node.GetNodeInfo()
		ReplyJSONResponse(w, http.StatusOK, map[string]string{
			"status":  "success",
			"node":    info.ID,
			"host":    info.Hostname,
			"version": info.Version,
		})
	}
}

func getReadyz(dependencies []Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		for _, dependency := range dependencies {
			if err := dependency.Ping(ctx); err != nil {
				slog.Warn("readiness check failed", slog.String("error", err.Error()))
				ReplyWithError(w, http.StatusServiceUnavailable, "not ready")
				return
			}
		}

		ReplyJSONResponse(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
