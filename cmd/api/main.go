package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ronaldmendzas/licor-system-sub000/app/config"
	"github.com/ronaldmendzas/licor-system-sub000/app/controllers"
	"github.com/ronaldmendzas/licor-system-sub000/app/services"
	"github.com/ronaldmendzas/licor-system-sub000/internal/intent"
	"github.com/ronaldmendzas/licor-system-sub000/internal/matcher"
	"github.com/ronaldmendzas/licor-system-sub000/routes"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(configPath())
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	logger.Info("Iniciando Licor Command Service...")

	// Los umbrales del intérprete se fijan una sola vez al arrancar
	applyParserTunables(cfg)

	// Catálogo
	catalogService := services.NewCatalogService(cfg.Catalog.SeedPath, logger)
	if err := catalogService.Load(); err != nil {
		logger.Fatal("No se pudo cargar el catálogo", zap.Error(err))
	}

	// Cache: memoria siempre, Redis como L2 si está habilitado
	cacheService, err := buildCacheService(cfg, logger)
	if err != nil {
		logger.Fatal("No se pudo crear el cache", zap.Error(err))
	}
	defer cacheService.Close()

	historyService := services.NewHistoryService(cfg.History.Size)
	commandService := services.NewCommandService(catalogService, cacheService, historyService, logger)
	executor := services.NewAckExecutor()

	commandController := controllers.NewCommandController(commandService, executor, logger)
	adminController := controllers.NewAdminController(catalogService, commandService, cacheService, logger)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	routes.SetupAllRoutes(router, commandController, adminController)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Servidor HTTP escuchando", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Error al iniciar el servidor", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Apagando servidor...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Error en el apagado", zap.Error(err))
	}

	logger.Info("Servidor detenido")
}

func buildCacheService(cfg *config.Config, logger *zap.Logger) (services.ICacheService, error) {
	memoryCache, err := services.NewMemoryCacheService(cfg.Cache.MaxItems, cfg.CacheTTL())
	if err != nil {
		return nil, err
	}

	if !cfg.Redis.Enabled {
		return memoryCache, nil
	}

	redisCache, err := services.NewRedisCacheService(cfg.Redis.URL, cfg.CacheTTL(), logger)
	if err != nil {
		logger.Warn("Redis no disponible, se usa solo cache en memoria", zap.Error(err))
		return memoryCache, nil
	}

	return services.NewHybridCacheService(memoryCache, redisCache, logger), nil
}

func applyParserTunables(cfg *config.Config) {
	if cfg.Parser.ScoreCeiling > 0 {
		intent.ScoreCeiling = cfg.Parser.ScoreCeiling
	}
	if cfg.Parser.ProductThreshold > 0 {
		matcher.DefaultThresholds.ProductPhrase = cfg.Parser.ProductThreshold
	}
	if cfg.Parser.ProductTokenThreshold > 0 {
		matcher.DefaultThresholds.ProductToken = cfg.Parser.ProductTokenThreshold
	}
	if cfg.Parser.TermThreshold > 0 {
		matcher.DefaultThresholds.Term = cfg.Parser.TermThreshold
	}
}

func configPath() string {
	if path := os.Getenv("LICOR_CONFIG"); path != "" {
		return path
	}
	return "config/parser.yaml"
}
