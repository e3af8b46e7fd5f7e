package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"tagback-server/cmd/api/wire"
	"tagback-server/cmd/config"
	catalogUsecases "tagback-server/internal/catalog/usecases"
	"tagback-server/internal/infra/async"
	"tagback-server/internal/infra/httpserver"
	"tagback-server/internal/infra/node"
	tagsHTTPAPI "tagback-server/internal/tags/httpapi"

	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"gopkg.in/natefinch/lumberjack.v2"
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
	config := config.LoadConfig()

	level := logLevelMapping[config.General.LogLevel]
	baseHandler := slog.NewTextHandler(logWriter(config.General.LogFile), &slog.HandlerOptions{AddSource: true, Level: level, ReplaceAttr: slogReplaceAttr})
	handler := baseHandler.WithAttrs(node.Current().LogAttrs())
	slog.SetDefault(slog.New(handler))
	slog.Info("🚀 tagback is initializing")
	slog.Debug("config loaded", "data", config)

	shutdownOtel := startOTel()

	internalBroker := async.NewLocalBroker()

	if config.General.IsLocal() {
		seedTagTypes()
	}

	scanFeedController := handleWireInjector(wire.InitializeScanFeedController(internalBroker)).(*tagsHTTPAPI.ScanFeedController)

	httpServer := httpserver.NewServer(
		httpserver.ServerConfig{
			Addr:           config.HTTP.Addr,
			AllowedOrigins: config.HTTP.AllowedOrigins,
		},
		handleWireInjector(wire.InitializeReadinessController()).(httpserver.Controller),
		handleWireInjector(wire.InitializeTagTypeController()).(httpserver.Controller),
		handleWireInjector(wire.InitializeChecklistTemplateController()).(httpserver.Controller),
		handleWireInjector(wire.InitializeItemController()).(httpserver.Controller),
		handleWireInjector(wire.InitializeTagController(internalBroker)).(httpserver.Controller),
		handleWireInjector(wire.InitializePublicTagController(internalBroker)).(httpserver.Controller),
		handleWireInjector(wire.InitializeSubmissionController(internalBroker)).(httpserver.Controller),
		scanFeedController,
	)

	appCtx, cancelFn := context.WithCancel(context.Background())
	go httpServer.Run()

	var wg sync.WaitGroup
	wg.Add(1)
	go handleWireInjector(wire.InitializeNotificationWorker(internalBroker)).(async.Worker).Run(appCtx, wg.Done)
	wg.Add(1)
	go handleWireInjector(wire.InitializeScanReconcileWorker()).(async.Worker).Run(appCtx, wg.Done)

	signalChannel := make(chan os.Signal, 2)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)

	<-signalChannel
	scanFeedController.Shutdown()
	httpServer.Shutdown()
	if err := shutdownOtel(); err != nil {
		slog.Warn("otel shutdown failed", slog.String("error", err.Error()))
	}

	cancelFn()
	wg.Wait()
	internalBroker.Stop()
	slog.Info("good bye!!!")
	os.Exit(0)
}

// seedTagTypes fills a fresh in-memory database so local runs start with the
// predefined tag types.
func seedTagTypes() {
	service := handleWireInjector(wire.InitializeTagTypeService()).(*catalogUsecases.SimpleTagTypeService)
	created, err := service.SeedPredefinedTagTypes(context.Background())
	if err != nil {
		panic(err)
	}
	slog.Info("predefined tag types seeded", slog.Int("count", len(created)))
}

func logWriter(file string) io.Writer {
	if file == "" {
		return os.Stdout
	}

	return io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   file,
		MaxSize:    100,
		MaxBackups: 5,
		MaxAge:     28,
		Compress:   true,
	})
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
			node.Current().ResourceAttrs("tagback-server")...,
		)),
	)
	otel.SetTracerProvider(tp)

	return func() error {
		return tp.Shutdown(ctx)
	}, nil
}

func newTraceExporter(ctx context.Context) (trace.SpanExporter, error) {
	endpoint := _defautlEndpoint
	if value, ok := os.LookupEnv("TAGBACK_SERVER_OTELCOL_ENDPOINT"); ok {
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
	if value, ok := os.LookupEnv("TAGBACK_SERVER_OTELCOL_ENDPOINT"); ok {
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
		metric.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			node.Current().ResourceAttrs("tagback-server")...,
		)),
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
