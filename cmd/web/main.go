package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/earnnest/earnnest-web/internal/pkg/config"
	"github.com/earnnest/earnnest-web/internal/pkg/database"
	"github.com/earnnest/earnnest-web/internal/pkg/health"
	"github.com/earnnest/earnnest-web/internal/pkg/logger"
	"github.com/earnnest/earnnest-web/internal/pkg/middleware"
	nrpkg "github.com/earnnest/earnnest-web/internal/pkg/newrelic"

	dashboardGateway "github.com/earnnest/earnnest-web/services/dashboard/gateway/http"
	dashboardHandler "github.com/earnnest/earnnest-web/services/dashboard/handler"
	dashboardHTTP "github.com/earnnest/earnnest-web/services/dashboard/handler/http"
	dashboardUsecase "github.com/earnnest/earnnest-web/services/dashboard/usecase"
	emergencyGateway "github.com/earnnest/earnnest-web/services/emergency/gateway/http"
	emergencyHandler "github.com/earnnest/earnnest-web/services/emergency/handler"
	emergencyHTTP "github.com/earnnest/earnnest-web/services/emergency/handler/http"
	emergencyRepository "github.com/earnnest/earnnest-web/services/emergency/repository"
	emergencyUsecase "github.com/earnnest/earnnest-web/services/emergency/usecase"
	hustlesGateway "github.com/earnnest/earnnest-web/services/hustles/gateway/http"
	hustlesHandler "github.com/earnnest/earnnest-web/services/hustles/handler"
	hustlesHTTP "github.com/earnnest/earnnest-web/services/hustles/handler/http"
	hustlesUsecase "github.com/earnnest/earnnest-web/services/hustles/usecase"
	viralGateway "github.com/earnnest/earnnest-web/services/viral/gateway/http"
	viralHandler "github.com/earnnest/earnnest-web/services/viral/handler"
	viralHTTP "github.com/earnnest/earnnest-web/services/viral/handler/http"
	viralUsecase "github.com/earnnest/earnnest-web/services/viral/usecase"
)

func main() {
	appName := "earnnest-web"
	configPath := config.GetEnv("CONFIG_PATH", "config/web.env")
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Redis backs the geocode and place caches
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	upstreamTimeout := time.Duration(configs.Upstream.TimeoutSeconds) * time.Second

	// Gateways
	earnnestGW := dashboardGateway.NewEarnNestGateway(configs.Upstream.BaseURL, upstreamTimeout)
	hustlesGW := hustlesGateway.NewHustlesGateway(configs.Upstream.BaseURL, upstreamTimeout)
	viralGW := viralGateway.NewViralGateway(configs.Upstream.BaseURL, upstreamTimeout)
	geoGW := emergencyGateway.NewGeoGateway(configs.Geo)

	// Repositories
	geoRepo := emergencyRepository.NewGeoRepository(redisClient, configs.Geo)

	// UseCases
	dashboardUC := dashboardUsecase.NewDashboardUC(earnnestGW, configs)
	hustlesUC := hustlesUsecase.NewHustlesUC(hustlesGW, configs)
	viralUC := viralUsecase.NewViralUC(viralGW, configs)
	emergencyUC := emergencyUsecase.NewEmergencyUC(geoGW, geoRepo, configs)

	// Handlers
	dashboardH := dashboardHandler.NewHandler(dashboardHTTP.NewDashboardHandler(dashboardUC))
	hustlesH := hustlesHandler.NewHandler(hustlesHTTP.NewHustlesHandler(hustlesUC))
	viralH := viralHandler.NewHandler(viralHTTP.NewViralHandler(viralUC))
	emergencyH := emergencyHandler.NewHandler(emergencyHTTP.NewEmergencyHandler(emergencyUC))

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.NewRelicMiddleware(nrApp))
	e.Use(middleware.SessionMiddleware(configs.JWT))
	e.Use(logger.EchoMiddleware(zapLogger))

	// Register health endpoints with a redis readiness check
	health.RegisterHealthEndpoints(e, appName, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return redisClient.Ping(ctx)
	})

	// Register service routes
	dashboardH.RegisterRoutes(e)
	hustlesH.RegisterRoutes(e)
	viralH.RegisterRoutes(e)
	emergencyH.RegisterRoutes(e)

	// Start server in goroutine
	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		zapLogger.Info("Starting HTTP server",
			logger.String("address", addr),
			logger.String("app", appName))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	zapLogger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	zapLogger.Info("Shutting down HTTP server...")
	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", logger.Err(err))
	}

	zapLogger.Info("Closing Redis connection...")
	if err := redisClient.Close(); err != nil {
		zapLogger.Error("Error closing Redis connection", logger.Err(err))
	}

	if nrApp != nil {
		zapLogger.Info("Shutting down New Relic...")
		nrApp.Shutdown(10 * time.Second)
	}

	zapLogger.Info("Server exiting gracefully")
}
