package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/agustinbotella/articulos-api/internal/config"
	"github.com/agustinbotella/articulos-api/internal/handler"
	"github.com/agustinbotella/articulos-api/internal/middleware"
	"github.com/agustinbotella/articulos-api/internal/repository"
	"github.com/agustinbotella/articulos-api/internal/service"
	"github.com/agustinbotella/articulos-api/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB, plus the stats
// dispatcher feeding the Redis-backed worker pool.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	articuloRepo := repository.NewArticuloRepository(db, cfg)
	aplicacionRepo := repository.NewAplicacionRepository(db, cfg)
	rubroRepo := repository.NewRubroRepository(db, cfg)

	// ── Services ─────────────────────────────────────────────────────────────
	articuloSvc := service.NewArticuloService(articuloRepo, dispatcher)
	aplicacionSvc := service.NewAplicacionService(aplicacionRepo, dispatcher)
	rubroSvc := service.NewRubroService(rubroRepo, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	articulosH := handler.NewArticulosHandler(articuloSvc)
	aplicacionesH := handler.NewAplicacionesHandler(aplicacionSvc)
	rubrosH := handler.NewRubrosHandler(rubroSvc)
	statsH := handler.NewStatsHandler(rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Everything else requires the API key
	v1 := r.Group("/v1", middleware.APIKey(cfg.APIKey))
	{
		v1.GET("/articulos", articulosH.Listar)
		v1.GET("/articulos/por-aplicacion", articulosH.ListarPorAplicacion)
		v1.GET("/aplicaciones", aplicacionesH.Buscar)
		v1.GET("/rubros", rubrosH.Listar)
		v1.GET("/stats", statsH.Obtener)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
