package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"social-insights-service/internal/config"
	"social-insights-service/internal/logging"

	datasetsDecoder "social-insights-service/internal/datasets/adapters/decoder"
	datasetsHttp "social-insights-service/internal/datasets/adapters/http/fiber"
	datasetsMemory "social-insights-service/internal/datasets/adapters/memory"
	datasetsUsecase "social-insights-service/internal/datasets/core/usecase"

	metricsChart "social-insights-service/internal/metrics/adapters/chart"
	metricsHttp "social-insights-service/internal/metrics/adapters/http/fiber"
	metricsUsecase "social-insights-service/internal/metrics/core/usecase"

	insightsHttp "social-insights-service/internal/insights/adapters/http/fiber"
	insightsLangflow "social-insights-service/internal/insights/adapters/langflow"
	insightsLLM "social-insights-service/internal/insights/adapters/llm"
	insightsRepoPg "social-insights-service/internal/insights/adapters/postgres"
	insightsDomain "social-insights-service/internal/insights/core/domain"
	insightsPorts "social-insights-service/internal/insights/core/ports"
	insightsUsecase "social-insights-service/internal/insights/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "social-insights-service/docs"
)

// @title Social Insights Service
// @version 1.0
// @description Upload social media post metrics, compute dashboard tables and charts, and ask an LLM pipeline for insights.
// @BasePath /
func main() {
	logger := logging.NewLoggerWithService("social-insights-service")
	config.LoadEnv(logger)

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}

	// Repositories
	datasetRepository := datasetsMemory.NewDatasetRepository(cfg.MaxDatasets)

	// nil keeps history disabled when no database is configured
	var insightRepository insightsPorts.InsightRepositoryPort
	if cfg.PostgresDSN != "" {
		db := openPostgres(cfg.PostgresDSN, logger)
		defer db.Close()

		repo := insightsRepoPg.NewInsightRepository(insightsRepoPg.NewSQLDB(db))
		schemaCtx, cancelSchema := context.WithTimeout(context.Background(), 10*time.Second)
		if err := repo.EnsureSchema(schemaCtx); err != nil {
			logger.WithError(err).Fatal("failed to prepare insights table")
		}
		cancelSchema()
		insightRepository = repo
	} else {
		logger.Warn("POSTGRES_DSN is not set; insight history is disabled")
	}

	pipeline, err := newPipeline(cfg.Pipeline)
	if err != nil {
		logger.WithError(err).Fatal("failed to create pipeline")
	}

	// Usecases
	datasetUC := datasetsUsecase.NewDatasetUseCase(datasetRepository, datasetsDecoder.New(), cfg.MaxUploadBytes, cfg.PreviewRows)
	dashboardUC := metricsUsecase.NewGetDashboardUseCase(datasetRepository)
	insightUC := insightsUsecase.NewInsightUseCase(pipeline, datasetRepository, insightRepository, insightSettings(cfg.Pipeline))

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{
		AppName: "social-insights-service",
		// multipart overhead on top of the file itself
		BodyLimit: int(cfg.MaxUploadBytes) + 1<<20,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logging.RequestLogger(logger))

	// dataset endpoints
	datasetHandler := datasetsHttp.NewDatasetHandler(datasetUC, logger)
	app.Post("/datasets", datasetHandler.UploadDataset)
	app.Get("/datasets/:id", datasetHandler.GetDataset)
	app.Delete("/datasets/:id", datasetHandler.DeleteDataset)

	// dashboard endpoints
	metricsHandler := metricsHttp.NewMetricsHandler(dashboardUC, metricsChart.NewRenderer(0, 0), logger)
	app.Get("/datasets/:id/dashboard", metricsHandler.GetDashboard)
	app.Get("/datasets/:id/charts/:chart", metricsHandler.GetChart)

	// insight endpoints
	insightHandler := insightsHttp.NewInsightHandler(insightUC, logger)
	app.Post("/datasets/:id/insights", insightHandler.GenerateInsights)
	app.Post("/chat", insightHandler.Chat)
	app.Get("/insights", insightHandler.ListInsights)

	// Ops
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "datasets": datasetRepository.Len()})
	})

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			logger.WithError(err).Error("fiber stopped")
		}
	}()

	logger.WithFields(logging.Fields{
		"addr":     cfg.HTTPAddr,
		"pipeline": pipeline.Name(),
	}).Info("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.WithError(err).Error("fiber shutdown error")
	}

	logger.Info("server exiting")
}

func openPostgres(dsn string, logger *logrus.Logger) *sql.DB {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		logger.WithError(err).Fatal("failed to open postgres")
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		logger.WithError(err).Fatal("failed to ping postgres")
	}
	return db
}

func newPipeline(cfg config.PipelineConfig) (insightsPorts.PipelinePort, error) {
	if cfg.Provider == "langflow" {
		c := cfg.Components
		return insightsLangflow.NewPipeline(insightsLangflow.Config{
			BaseURL: cfg.LangflowURL,
			APIKey:  cfg.LangflowAPIKey,
			Components: insightsLangflow.Components{
				InsightsChatInput: c.InsightsChatInput,
				InsightsPrompt:    c.InsightsPrompt,
				InsightsFile:      c.InsightsFile,
				InsightsModel:     c.InsightsModel,
				ChatInput:         c.ChatInput,
				ChatPrompt:        c.ChatPrompt,
				ChatModel:         c.ChatModel,
				ChatStore:         c.ChatStore,
			},
		}), nil
	}

	return insightsLLM.NewPipeline(insightsLLM.Config{
		Provider:        cfg.Provider,
		Model:           cfg.Model,
		APIKey:          cfg.ModelAPIKey,
		APIURL:          cfg.ModelURL,
		MaxTokens:       cfg.MaxTokens,
		MaxContextBytes: cfg.ContextMaxBytes,
	})
}

func insightSettings(cfg config.PipelineConfig) insightsUsecase.Settings {
	return insightsUsecase.Settings{
		InsightsFlowID: cfg.InsightsFlowID,
		ChatFlowID:     cfg.ChatFlowID,
		Model:          cfg.Model,
		ModelURL:       cfg.ModelURL,
		Temperature:    cfg.Temperature,
		Retrieval: insightsDomain.Retrieval{
			CollectionName:   cfg.CollectionName,
			PersistDirectory: cfg.PersistDirectory,
			NumberOfResults:  cfg.NumberOfResults,
			SearchType:       cfg.SearchType,
		},
		Timeout:      cfg.Timeout,
		HistoryLimit: cfg.HistoryLimit,
	}
}
