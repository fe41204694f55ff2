package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"turbo-api/internal/application/controller"
	"turbo-api/internal/application/middleware"
	"turbo-api/internal/application/schedule"
	"turbo-api/internal/domain/gateway/db"
	"turbo-api/internal/domain/profitability"
	"turbo-api/internal/domain/usecase/health"
	"turbo-api/internal/domain/usecase/report"
	"turbo-api/internal/domain/usecase/territory"
	"turbo-api/internal/domain/usecase/wind"
	"turbo-api/internal/infra/database"
	gormdb "turbo-api/internal/infra/database/gorm"
	"turbo-api/internal/infra/database/sqlc"
	"turbo-api/internal/infra/metrics"
	"turbo-api/pkg/log"
	"turbo-api/pkg/msg"
	"turbo-api/pkg/resource"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	envErr := godotenv.Load()
	log.Configure(os.Getenv("LOG_LEVEL"))
	if envErr != nil {
		log.Debug(msg.GetMessage("app.config.env_missing", envErr))
	}
	defer log.Sync()

	if path := os.Getenv("MESSAGES_FILE_PATH"); path != "" {
		if err := msg.Init(path); err != nil {
			log.Warn(err.Error())
		}
	}
	if err := resource.Init(resource.Path()); err != nil {
		log.Fatal(msg.GetMessage("app.config.properties_failed", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatal(err.Error())
	}
}

func run(ctx context.Context) error {
	name := resource.GetStringOrDefault("app.name", "turbo-api")
	port := resource.GetStringOrDefault("app.server.port", "8080")
	log.Info(msg.GetMessage("app.starting", name, port))

	// Init infra
	dbConfig := database.ConfigFromProperties()
	sqlDB, err := sqlc.Open(ctx, dbConfig)
	if err != nil {
		log.Error(msg.GetMessage("db.connection_failed", dbConfig.Target(), err))
		return err
	}
	defer sqlDB.Close()
	log.Info(msg.GetMessage("db.connected", dbConfig.Target()))

	gormDB, err := gormdb.Open(sqlDB)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(registry)

	clock := clockwork.NewRealClock()
	engine, err := profitability.NewEngine(engineConfig(), clock)
	if err != nil {
		return err
	}

	redisClient, err := newRedisClient(ctx)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	publisher, err := newPublisher(ctx)
	if err != nil {
		return err
	}
	defer publisher.Close()

	// Init Gateways
	windCache := newWindCache(redisClient)
	windDataGateway := db.NewSQLCWindDataGateway(sqlDB)
	territoryGateway := db.NewGormTerritoryGateway(gormDB)
	healthGateway := db.NewSQLCHealthDBGateway(sqlDB)
	resolver := territory.NewBoundaryResolver(territoryGateway)

	// Init UseCases
	windUseCase := wind.NewWindUseCase(wind.Config{
		FreshnessWindow:   resource.GetDurationOrDefault("app.wind.cache.freshness", wind.DefaultFreshnessWindow),
		StrictPersistence: resource.GetBool("app.wind.persistence.strict"),
	}, wind.Dependencies{
		Weather:   newWeatherGateway(),
		Store:     windDataGateway,
		Cache:     windCache,
		Engine:    engine,
		Resolver:  resolver,
		Publisher: publisher,
		Metrics:   appMetrics,
		Clock:     clock,
	})
	territoryUseCase := territory.NewTerritoryUseCase(territoryGateway, windUseCase, engine, resolver, appMetrics)
	reportUseCase := report.NewReportUseCase(engine.Config().RatedPowerKW, clock)
	healthUseCase := health.NewHealthUseCase(name, healthGateway, windCache)

	// Init Controllers
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.Setup(e, resource.GetStringSlice("app.server.cors-origins"))
	api := e.Group(resource.GetString("app.server.context-path"))

	controller.NewHealthController(api, healthUseCase).InitHealthRoutes()
	controller.NewWindController(api, windUseCase).InitWindRoutes()
	controller.NewTerritoryController(api, territoryUseCase).InitTerritoryRoutes()
	controller.NewReportController(api, reportUseCase).InitReportRoutes()
	controller.InitMetricsRoutes(e, registry)

	// Init Schedule
	if resource.GetBool("app.territory.sampling.enabled") {
		scheduler := schedule.NewTerritoryScheduler(territoryUseCase, newSamplingLock(redisClient), schedule.TerritorySchedulerConfig{
			CronExpression: resource.GetString("app.territory.sampling.cron"),
			Timeout:        resource.GetDuration("app.territory.sampling.timeout"),
		})
		if err := scheduler.InitTerritoryScheduleTasks(); err != nil {
			return err
		}
		defer scheduler.Stop()
	}

	// Start Routes
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + port)
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
	}

	log.Info(msg.GetMessage("app.stopping", name))
	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		resource.GetDurationOrDefault("app.server.shutdown-timeout", defaultShutdownTimeout))
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Warn("server shutdown", zap.Error(err))
	}
	log.Info(msg.GetMessage("app.stopped", name))
	return nil
}
