package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skillmap_backend/internal/config"
	"skillmap_backend/internal/controller"
	"skillmap_backend/internal/service"
	"skillmap_backend/pkg/configwatcher"
	"skillmap_backend/pkg/logger"
	"skillmap_backend/pkg/monitoring"
	"skillmap_backend/pkg/security"
	"skillmap_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

type App struct {
	Config  *config.Config
	Router  *gin.Engine
	Storage *service.StorageService
	Store   *service.RoadmapStore
	Catalog *service.SkillCatalog

	rateLimiter     *security.RateLimiter
	tracerProvider  *sdktrace.TracerProvider
	unsubscribe     func()
	configCallbacks []func(*config.Config)
}

type controllers struct {
	auth    *controller.AuthController
	catalog *controller.CatalogController
	roadmap *controller.RoadmapController
	health  *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	app, err := Build(cfg, storage)
	if err != nil {
		storage.Close()
		return nil, err
	}

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(&cfg.Tracing)
		if err != nil {
			logger.Log.Error("Failed to initialize tracing", zap.Error(err))
		} else {
			app.tracerProvider = tp
		}
	}

	return app, nil
}

// Build 组装存储、目录、控制器与路由，不初始化日志与追踪，测试直接使用
func Build(cfg *config.Config, storage *service.StorageService) (*App, error) {
	catalog, err := service.NewSkillCatalog(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}

	resources := service.NewResourceMockProvider(nil, nil, nil)
	generator := service.NewRoadmapGenerator(catalog, resources, nil)
	store := service.NewRoadmapStore(storage.Blob, generator, service.WithStorageKey(cfg.Storage.Key))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := store.Load(ctx); err != nil {
		var warning *service.LoadWarning
		if !errors.As(err, &warning) {
			return nil, err
		}
		logger.Log.Warn("Starting with an empty roadmap collection", zap.Error(warning))
	}

	monitoring.Init()
	monitoring.RoadmapsTotal.Set(float64(store.Count()))

	app := &App{
		Config:      cfg,
		Storage:     storage,
		Store:       store,
		Catalog:     catalog,
		rateLimiter: security.NewRateLimiter(cfg.RateLimit.MaxRequests, rateWindow(cfg)),
	}

	app.unsubscribe = store.Subscribe(func(e service.StoreEvent) {
		monitoring.RecordStoreEvent(string(e.Kind), e.Count)
		logger.Log.Debug("Roadmap store changed",
			zap.String("kind", string(e.Kind)),
			zap.String("roadmapId", e.RoadmapID),
		)
	})

	app.RegisterConfigCallback(logger.SetLevel)
	app.RegisterConfigCallback(func(newCfg *config.Config) {
		app.rateLimiter.Update(newCfg.RateLimit.MaxRequests, rateWindow(newCfg))
	})

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, app.initControllers(cfg))

	return app, nil
}

func rateWindow(cfg *config.Config) time.Duration {
	return time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
}

func (a *App) initControllers(cfg *config.Config) *controllers {
	return &controllers{
		auth:    controller.NewAuthController(&cfg.JWT),
		catalog: controller.NewCatalogController(a.Catalog),
		roadmap: controller.NewRoadmapController(a.Store),
		health:  controller.NewHealthController(a.Store, a.Storage.Type),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(a.rateLimiter.Middleware())

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) applyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

// Close 释放后台资源，可重复调用
func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	a.rateLimiter.Stop()

	if a.tracerProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
		a.tracerProvider = nil
	}

	if err := a.Storage.Close(); err != nil {
		logger.Log.Error("Failed to close storage", zap.Error(err))
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.Config.ConfigFile != "" {
		if err := configwatcher.WatchConfig(ctx, a.Config.ConfigFile, a.applyConfig); err != nil {
			logger.Log.Error("Failed to watch config file", zap.Error(err))
		}
	}

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("listen", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.Close()
	logger.Log.Info("Server exiting")
}
