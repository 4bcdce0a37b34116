package main

import (
	"context"
	"crm-server/cmd/api/wire"
	"crm-server/cmd/config"
	dealshttpapi "crm-server/internal/deals/httpapi"
	"crm-server/internal/infra/async"
	"crm-server/internal/infra/httpserver"
	"crm-server/internal/infra/node"
	"crm-server/internal/infra/sql"
	sharedhttpapi "crm-server/internal/shared_kernel/httpapi"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

var (
	logLevelMapping = map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
)

func main() {
	configFile := pflag.String("config", "", "path to the server configuration file")
	pflag.Parse()
	config.UseConfigFile(*configFile)
	cfg := config.LoadConfig()

	level := logLevelMapping[cfg.General.LogLevel]
	baseHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{AddSource: true, Level: level, ReplaceAttr: slogReplaceAttr})
	info := node.GetNodeInfo()
	handler := baseHandler.WithAttrs([]slog.Attr{slog.String("version", info.Version), slog.String("node", info.ID), slog.String("host", info.Hostname)})
	slog.SetDefault(slog.New(handler))
	slog.Info("🚀 crm server is initializing")
	slog.Debug("config loaded", "data", cfg)

	shutdownOtel := startOTel()

	internalBroker := async.NewLocalBroker()

	liveQueryController := handleWireInjector(wire.InitializeLiveQueryController()).(*sharedhttpapi.LiveQueryController)
	pipelineStreamController := handleWireInjector(wire.InitializePipelineStreamController(internalBroker)).(*dealshttpapi.PipelineStreamController)

	httpServer := httpserver.NewServer(
		httpserver.ServerConfig{
			Addr:           cfg.HTTP.Addr,
			AllowedOrigins: cfg.HTTP.AllowedOrigins,
			Readiness:      readinessChecks(cfg),
		},
		handleWireInjector(wire.InitializeCustomFieldController()).(httpserver.Controller),
		handleWireInjector(wire.InitializeColumnConfigController()).(httpserver.Controller),
		handleWireInjector(wire.InitializeContactController()).(httpserver.Controller),
		handleWireInjector(wire.InitializeDealController()).(httpserver.Controller),
		pipelineStreamController,
		liveQueryController,
	)

	appCtx, cancelFn := context.WithCancel(context.Background())
	go httpServer.Run()

	var wg sync.WaitGroup
	wg.Add(1)
	go handleWireInjector(wire.InitializePipelineWorker(internalBroker)).(async.Worker).Run(appCtx, wg.Done)
	wg.Add(1)
	go handleWireInjector(wire.InitializeOverdueDealWorker(internalBroker)).(async.Worker).Run(appCtx, wg.Done)

	signalChannel := make(chan os.Signal, 2)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)

	<-signalChannel
	httpServer.Shutdown()
	liveQueryController.Shutdown()
	pipelineStreamController.Shutdown()

	cancelFn()
	wg.Wait()
	internalBroker.Stop()

	if err := shutdownOtel(); err != nil {
		slog.Error("shutting down otel", slog.String("error", err.Error()))
	}
	slog.Info("good bye!!!")
	os.Exit(0)
}

// readinessChecks pings the ORM and, on postgres, the pgx pool as well.
func readinessChecks(cfg config.AppConfig) []httpserver.Pinger {
	orm := handleWireInjector(wire.InitializeDatabase()).(sql.ORM)
	checks := []httpserver.Pinger{orm}

	if cfg.Database.Driver != "postgres" {
		return checks
	}

	db := sql.NewPosgreDatabase(cfg.Database.URL)
	if err := db.Open(); err != nil {
		slog.Error("opening readiness pool", slog.String("error", err.Error()))
		return checks
	}
	return append(checks, db)
}

func slogReplaceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.SourceKey {
		source := a.Value.Any().(*slog.Source)
		source.File = filepath.Base(source.File)
		return slog.Any(a.Key, source)
	}
	return a
}

type ShutdownFunc func() error

const (
	_defautlEndpoint = "localhost:4317"
	_collectPeriod   = 30 * time.Second
	_collectTimeout  = 35 * time.Second
	_minimumInterval = time.Minute
)

var (
	_histogramBuckets = []float64{5, 10, 25, 50, 75, 100, 250, 500, 750, 1000, 2500, 5000, 7500, 10000, 25000, 50000, 100000}
)

func startOTel() ShutdownFunc {
	slog.Info("starting OTel providers")
	shutdown, err := otelStart(context.Background())
	if err != nil {
		panic(err)
	}

	return shutdown
}

func otelStart(ctx context.Context) (ShutdownFunc, error) {
	metricsShutdownFunc, err := startMetricsProvider(ctx)
	if err != nil {
		return nil, err
	}

	traceShutdownFunc, err := startTraceProvider(ctx)
	if err != nil {
		return nil, err
	}

	return func() error {
		if err := metricsShutdownFunc(); err != nil {
			return err
		}
		if err := traceShutdownFunc(); err != nil {
			return err
		}
		return nil
	}, nil
}

func startTraceProvider(ctx context.Context) (ShutdownFunc, error) {
	exp, err := newTraceExporter(ctx)
	if err != nil {
		return nil, err
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exp),
		trace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String("crm-server"),
		)),
	)
	otel.SetTracerProvider(tp)

	return func() error {
		return tp.Shutdown(ctx)
	}, nil
}

func newTraceExporter(ctx context.Context) (trace.SpanExporter, error) {
	endpoint := _defautlEndpoint
	if value, ok := os.LookupEnv("CRM_SERVER_OTELCOL_ENDPOINT"); ok {
		endpoint = value
	}

	return otlptracegrpc.New(
		ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	)
}

func startMetricsProvider(ctx context.Context) (ShutdownFunc, error) {
	exp, err := newMetricExporter(ctx)
	if err != nil {
		return nil, err
	}

	mp := newMeterProvider(exp)
	otel.SetMeterProvider(mp)

	err = runtime.Start(runtime.WithMinimumReadMemStatsInterval(_minimumInterval))
	if err != nil {
		return nil, err
	}

	return func() error {
		return mp.Shutdown(ctx)
	}, nil
}

func newMetricExporter(ctx context.Context) (metric.Exporter, error) {
	endpoint := _defautlEndpoint
	if value, ok := os.LookupEnv("CRM_SERVER_OTELCOL_ENDPOINT"); ok {
		endpoint = value
	}

	return otlpmetricgrpc.New(
		ctx,
		otlpmetricgrpc.WithEndpoint(endpoint),
		otlpmetricgrpc.WithInsecure(),
	)
}

func newMeterProvider(metricExporter metric.Exporter) *metric.MeterProvider {
	return metric.NewMeterProvider(
		metric.WithReader(
			metric.NewPeriodicReader(
				metricExporter,
				metric.WithTimeout(_collectTimeout),
				metric.WithInterval(_collectPeriod))),
		metric.WithView(metric.NewView(
			metric.Instrument{
				Name: "*",
				Kind: metric.InstrumentKindHistogram,
			},
			metric.Stream{
				Aggregation: metric.AggregationExplicitBucketHistogram{
					Boundaries: _histogramBuckets,
				},
			},
		)),
	)
}

func handleWireInjector(value any, err error) any {
	if err != nil {
		panic(err)
	}

	return value
}
