package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Gobusters/ectoenv"
	"github.com/Gobusters/ectologger"
	"github.com/Gobusters/ectologger/zapadapter"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.uber.org/zap"

	"github.com/Ramsey-B/fern/config"
	"github.com/Ramsey-B/fern/internal/services/dashboard"
	"github.com/Ramsey-B/fern/pkg/decode"
	"github.com/Ramsey-B/fern/pkg/fieldmap"
	"github.com/Ramsey-B/fern/pkg/httpclient"
	"github.com/Ramsey-B/fern/pkg/middleware"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/routes/database"
	"github.com/Ramsey-B/fern/pkg/routes/health"
	"github.com/Ramsey-B/fern/pkg/routes/overview"
	"github.com/Ramsey-B/fern/pkg/routes/projects"
	"github.com/Ramsey-B/fern/pkg/routes/quality"
	"github.com/Ramsey-B/fern/pkg/routes/trendreport"
	"github.com/Ramsey-B/fern/pkg/sheets"
	"github.com/Ramsey-B/fern/pkg/tracing"
	"github.com/Ramsey-B/fern/pkg/tracing/exporters"
	"github.com/Ramsey-B/fern/pkg/trends"
)

const version = "1.0.0"

func main() {
	_ = godotenv.Load()

	var cfg config.Config
	if err := ectoenv.BindEnv(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := tracing.Init(ctx, tracing.Config{
		Enabled:     cfg.TracingEnabled,
		ServiceName: cfg.AppName,
		Exporter:    cfg.TracingExporter,
		OTLP: exporters.OTLPConfig{
			Endpoint: cfg.TracingOTLPEndpoint,
			Protocol: cfg.TracingOTLPProtocol,
			Insecure: cfg.TracingOTLPInsecure,
			Timeout:  10 * time.Second,
		},
	})
	if err != nil {
		logger.WithError(err).Error("failed to initialize tracing")
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	profile, err := fieldmap.GetProfile(cfg.SheetMappingProfile)
	if err != nil {
		logger.WithError(err).Error("failed to load mapping profile")
		os.Exit(1)
	}
	logger.WithField("profile", profile.Name).Info("Loaded sheet mapping profile")

	clientCfg := httpclient.DefaultConfig()
	clientCfg.Timeout = time.Duration(cfg.FetchTimeoutSeconds) * time.Second
	client := httpclient.NewClient(clientCfg, logger)

	sheetService := sheets.NewService(sheets.Config{
		BaseURL: cfg.SheetBaseURL,
		SheetID: cfg.SheetID,
		GIDs: map[models.Feed]string{
			models.FeedNewProject:     cfg.NewProjectGID,
			models.FeedVersionUpgrade: cfg.VersionUpgradeGID,
			models.FeedEstimation:     cfg.EstimationGID,
			models.FeedApproval:       cfg.ApprovalGID,
			models.FeedDelivery:       cfg.DeliveryGID,
			models.FeedFeedback:       cfg.FeedbackGID,
		},
	}, client, decode.NewDecoder(profile), logger)

	trendsClient := trends.NewClient(trends.Config{
		Enabled: cfg.TrendsEnabled,
		BaseURL: cfg.TrendsBaseURL,
		APIKey:  cfg.TrendsAPIKey,
		Model:   cfg.TrendsModel,
	}, client, logger)

	service := dashboard.NewService(sheetService, trendsClient, logger)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.Error(logger)
	e.Use(middleware.Context())
	e.Use(middleware.Logger(logger))
	e.Use(otelecho.Middleware(cfg.AppName))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: cfg.AllowMethods,
	}))

	checker := health.NewChecker(sheetService, version)
	checker.RegisterRoutes(e)
	overview.NewHandler(service).RegisterRoutes(e)
	database.NewHandler(service).RegisterRoutes(e)
	quality.NewHandler(service).RegisterRoutes(e)
	projects.NewHandler(service).RegisterRoutes(e)
	trendreport.NewHandler(service).RegisterRoutes(e)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           e,
		ReadTimeout:       time.Duration(cfg.HttpServerReadTimeoutSeconds) * time.Second,
		WriteTimeout:      time.Duration(cfg.HttpServerWriteTimeoutSeconds) * time.Second,
		IdleTimeout:       time.Duration(cfg.HttpServerIdleTimeoutSeconds) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.ReadHeaderTimeoutSeconds) * time.Second,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		logger.WithField("port", cfg.Port).Infof("Starting %s on port %d", cfg.AppName, cfg.Port)
		checker.SetReady(true)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Error("http server stopped unexpectedly")
			cancel()
		}
	}()

	<-ctx.Done()
	checker.SetReady(false)
	logger.Info("Shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("graceful shutdown failed")
	}
}

func newLogger(cfg config.Config) ectologger.Logger {
	zapCfg := zap.NewProductionConfig()
	if cfg.PrettyLogs {
		zapCfg = zap.NewDevelopmentConfig()
	}
	if level, err := zap.ParseAtomicLevel(cfg.LogLevel); err == nil {
		zapCfg.Level = level
	}

	zapLogger, err := zapCfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	return zapadapter.NewZapEctoLogger(zapLogger, nil)
}
