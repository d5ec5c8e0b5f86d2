package di

import (
	"context"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"weather-dash/config"
	"weather-dash/dao/redis"
	"weather-dash/db"
	"weather-dash/logging"
	"weather-dash/server"
	"weather-dash/server/handlers"
	"weather-dash/server/responseformat"
	services "weather-dash/service"
	"weather-dash/util"
)

// Container holds all application dependencies.
type Container struct {
	Config              *config.Config
	Dashboard           *services.Dashboard
	CallbackRegistry    *services.CallbackRegistry
	RedisClient         db.RedisClient
	RecomputeCacheDao   *redis.RecomputeCacheDAO
	RecomputeService    *services.RecomputeService
	ViewWarmerService   *services.ViewWarmerService
	DashboardHandler    *handlers.DashboardHandler
	ChartHandler        *handlers.ChartHandler
	APIHandler          *handlers.APIHandler
	MuxRouter           *mux.Router
	Router              *server.Router
	DashboardHttpServer *server.DashboardHttpServer
}

// NewContainer initializes and wires up all dependencies. A dataset that
// cannot be loaded is fatal: the dashboard has nothing to show without it.
func NewContainer(cfg *config.Config) *Container {
	logging.Infof("[Container] initializing - dataset: %s", cfg.DatasetPath)
	ctx := context.Background()

	ds, err := util.LoadDataset(cfg.DatasetPath)
	if err != nil {
		logging.Fatalf("[Container] Failed to load dataset: %v", err)
	}

	// Dashboard context and callback registry
	dashboard := services.NewDashboard(ds)
	logging.Infof("[Container] dashboard ready with %d observations", dashboard.Dataset().Len())
	registry := services.RegisterDashboard(services.NewCallbackRegistry(), dashboard)

	// Result cache: shared redis when configured, in-process otherwise
	var redisClient db.RedisClient
	if cfg.RedisAddress != "" {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		redisClient = db.NewCacheRedisClient(ctx, redisInternalClient)
		if err := redisClient.Ping(); err != nil {
			// the circuit breaker in the DAO keeps serving by recomputing
			logging.Warnf("[Container] Redis at %s unreachable: %v", cfg.RedisAddress, err)
		}
	} else {
		logging.Infof("[Container] Using in-memory result cache")
		redisClient = db.NewMemoryRedisClient()
	}
	recomputeCacheDao := redis.NewRecomputeCacheDAO(redisClient, cfg.CacheTTL)
	// a shared cache may hold results computed from a previous dataset
	if _, err := recomputeCacheDao.Purge(); err != nil {
		logging.Warnf("[Container] Failed to purge result cache: %v", err)
	}

	recomputeService := services.NewRecomputeService(registry, recomputeCacheDao)
	viewWarmerService := services.NewViewWarmerService(recomputeService, dashboard.Defaults())

	// Handlers
	formatter := responseformat.NewFormatter()
	dashboardHandler := handlers.NewDashboardHandler(dashboard, recomputeService, formatter)
	chartHandler := handlers.NewChartHandler(dashboard, recomputeService, formatter)
	apiHandler := handlers.NewAPIHandler(dashboard, recomputeService, formatter)

	// Router and server
	muxRouter := mux.NewRouter()
	router := server.NewRouter(dashboardHandler, chartHandler, apiHandler, muxRouter)
	dashboardHttpServer := server.NewDashboardHttpServer(router, muxRouter, cfg.ListenAddress,
		config.SHUTDOWN_TIMEOUT_SECONDS*time.Second)

	return &Container{
		Config:              cfg,
		Dashboard:           dashboard,
		CallbackRegistry:    registry,
		RedisClient:         redisClient,
		RecomputeCacheDao:   recomputeCacheDao,
		RecomputeService:    recomputeService,
		ViewWarmerService:   viewWarmerService,
		DashboardHandler:    dashboardHandler,
		ChartHandler:        chartHandler,
		APIHandler:          apiHandler,
		MuxRouter:           muxRouter,
		Router:              router,
		DashboardHttpServer: dashboardHttpServer,
	}
}
