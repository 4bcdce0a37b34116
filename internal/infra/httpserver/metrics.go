package httpserver

import (
	"bufio"
	"errors"
	"net"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const _metricPrefix = "crm_server.http."

var (
	// record ids in paths collapse to one endpoint label
	uuidRegex = regexp.MustCompile(`[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)

	errHijackUnsupported = errors.New("underlying ResponseWriter does not support hijacking")
)

type httpInstruments struct {
	duration metric.Float64Histogram
	requests metric.Int64Counter
	active   metric.Int64UpDownCounter
	upgrades metric.Int64Counter
}

var (
	instruments     *httpInstruments
	instrumentsOnce sync.Once
	instrumentsMu   sync.Mutex
)

// ResetMetricsForTesting forces the next middleware to register its
// instruments against the current meter provider.
func ResetMetricsForTesting() {
	instrumentsMu.Lock()
	defer instrumentsMu.Unlock()
	instruments = nil
	instrumentsOnce = sync.Once{}
}

// IsMetricsInitialized reports whether the instruments are registered.
func IsMetricsInitialized() bool {
	instrumentsMu.Lock()
	defer instrumentsMu.Unlock()
	return instruments != nil
}

func loadInstruments() *httpInstruments {
	instrumentsMu.Lock()
	defer instrumentsMu.Unlock()

	instrumentsOnce.Do(func() {
		meter := otel.GetMeterProvider().Meter("crm-server")
		instruments = &httpInstruments{
			duration: must(meter.Float64Histogram(_metricPrefix+"request.duration.seconds",
				metric.WithDescription("Duration of HTTP requests"),
				metric.WithUnit("s"),
				metric.WithExplicitBucketBoundaries(0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10),
			)),
			requests: must(meter.Int64Counter(_metricPrefix+"requests.total",
				metric.WithDescription("Total number of HTTP requests"),
			)),
			active: must(meter.Int64UpDownCounter(_metricPrefix+"requests.active",
				metric.WithDescription("HTTP requests in flight, websocket sessions included"),
			)),
			upgrades: must(meter.Int64Counter(_metricPrefix+"websocket.upgrades.total",
				metric.WithDescription("Connections switched to a live websocket session"),
			)),
		}
	})

	return instruments
}

func must[T any](instrument T, err error) T {
	if err != nil {
		panic(err)
	}
	return instrument
}

// MetricsMiddleware measures every request by method, endpoint and status.
func MetricsMiddleware() func(http.Handler) http.Handler {
	m := loadInstruments()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			route := metric.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.endpoint", normalizeEndpoint(r.URL.Path)),
			)

			m.active.Add(r.Context(), 1, route)
			defer m.active.Add(r.Context(), -1, route)

			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			if wrapped.hijacked {
				m.upgrades.Add(r.Context(), 1, route)
				return
			}

			status := metric.WithAttributes(attribute.Int("http.status_code", wrapped.statusCode))
			m.duration.Record(r.Context(), time.Since(start).Seconds(), route, status)
			m.requests.Add(r.Context(), 1, route, status)
		})
	}
}

// responseWriter remembers the status code and keeps websocket upgrades
// working through the middleware chain.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	hijacked   bool
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := rw.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errHijackUnsupported
	}
	rw.hijacked = true
	rw.statusCode = http.StatusSwitchingProtocols
	return hijacker.Hijack()
}

func normalizeEndpoint(path string) string {
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		return "root"
	}
	return uuidRegex.ReplaceAllLiteralString(path, "_id")
}
