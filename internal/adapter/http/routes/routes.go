package routes

import (
	"context"
	"log"
	"simulador_tokenizacao/internal/adapter/http/handlers"
	"simulador_tokenizacao/internal/adapter/persistence/repository"
	"simulador_tokenizacao/internal/config"
	"simulador_tokenizacao/internal/domain/finance"
	"simulador_tokenizacao/internal/infrastructure/cache"
	"simulador_tokenizacao/internal/infrastructure/database"
	"simulador_tokenizacao/internal/usecase"
	"simulador_tokenizacao/internal/usecase/interfaces"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	engine, err := cfg.Engine()
	if err != nil {
		log.Fatalf("Failed to build the finance engine: %v", err)
	}
	log.Printf("[config] port=%d cache_backend=%s scenarios=%d workers=%d", cfg.Port, cfg.CacheBackend, len(engine.Scenarios), engine.Workers)

	router := NewRouter(engine, newResultCache(context.Background(), cfg))

	err = router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter wires use cases and handlers over engine. cache may be nil.
func NewRouter(engine finance.Engine, resultCache interfaces.ISimulationCache) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	simulationUseCase := usecase.NewSimulationUseCase(engine, resultCache)
	viabilityUseCase := usecase.NewViabilityUseCase(engine, resultCache)

	simulationHandler := handlers.NewSimulationHandler(simulationUseCase)
	viabilityHandler := handlers.NewViabilityHandler(viabilityUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSimulatorRoutes(v1, simulationHandler, viabilityHandler)
	return router
}

// newResultCache picks the cache backend. Redis and DynamoDB fall back to memory when the
// client cannot be created.
func newResultCache(ctx context.Context, cfg config.Config) interfaces.ISimulationCache {
	switch cfg.CacheBackend {
	case config.CacheBackendNone:
		log.Printf("[cache] disabled")
		return nil
	case config.CacheBackendRedis:
		rdb, err := cache.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			log.Printf("[cache] redis unavailable addr=%s err=%v, using memory", cfg.Redis.Addr, err)
			break
		}
		log.Printf("[cache] redis addr=%s ttl=%s", cfg.Redis.Addr, cfg.CacheTTL)
		return repository.NewRedisCache(rdb, cfg.CacheTTL)
	case config.CacheBackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			log.Printf("[cache] dynamodb unavailable err=%v, using memory", err)
			break
		}
		log.Printf("[cache] dynamodb table=%s ttl=%s", cfg.DynamoDB.Table, cfg.CacheTTL)
		return repository.NewDynamoResultCache(ddb, cfg.DynamoDB.Table, cfg.CacheTTL)
	}
	log.Printf("[cache] memory ttl=%s", cfg.CacheTTL)
	return repository.NewMemoryCache(cfg.CacheTTL)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
