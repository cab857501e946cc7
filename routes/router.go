package routes

import (
	"net/http"
	"regexp"
	"time"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/eplradar/config"
	"github.com/DhavalSuthar-24/eplradar/docs"
	"github.com/DhavalSuthar-24/eplradar/internal/auth"
	"github.com/DhavalSuthar-24/eplradar/internal/club"
	"github.com/DhavalSuthar-24/eplradar/internal/events"
	"github.com/DhavalSuthar-24/eplradar/internal/home"
	"github.com/DhavalSuthar-24/eplradar/internal/match"
	"github.com/DhavalSuthar-24/eplradar/internal/middleware"
	"github.com/DhavalSuthar-24/eplradar/internal/news"
	"github.com/DhavalSuthar-24/eplradar/internal/player"
	"github.com/DhavalSuthar-24/eplradar/internal/stats"
	"github.com/DhavalSuthar-24/eplradar/pkg/responses"
)

const MetricsPath = "/metrics"

// Deps are the long lived services the HTTP layer needs.
type Deps struct {
	DB        *gorm.DB
	Config    *config.Config
	Logger    zerolog.Logger
	Hub       *match.LiveHub
	Publisher events.Publisher
	// Store overrides the cache store picked from the config.
	Store persistence.CacheStore
}

// CacheStore returns a Redis store when an address is configured and an
// in-memory one otherwise.
func CacheStore(cfg *config.Config) persistence.CacheStore {
	if cfg.Cache.RedisAddress != "" {
		return persistence.NewRedisCache(cfg.Cache.RedisAddress, cfg.Cache.RedisPassword, cfg.Cache.TTL)
	}
	return persistence.NewInMemoryStore(cfg.Cache.TTL)
}

func SetupRoutes(d Deps) *gin.Engine {
	cfg := d.Config
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	_ = r.SetTrustedProxies(nil)

	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(d.Logger, MetricsPath),
		middleware.Recovery(d.Logger),
	)
	setCors(r, cfg)
	addMetrics(r)
	addDocs(r)

	r.NoRoute(func(c *gin.Context) {
		responses.SendError(c, http.StatusNotFound, "Route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		responses.SendError(c, http.StatusMethodNotAllowed, "Method not allowed")
	})

	store := d.Store
	if store == nil {
		store = CacheStore(cfg)
	}
	publisher := d.Publisher
	if publisher == nil {
		publisher = events.Nop{}
	}

	r.GET("/health", func(c *gin.Context) {
		responses.SendSuccess(c, http.StatusOK, "ok", gin.H{"time": time.Now().UTC()})
	})

	api := r.Group("/api")
	home.HomeRoutes(api, d.DB, cfg)
	club.ClubRoutes(api, d.DB, cfg)
	player.PlayerRoutes(api, d.DB, cfg)
	match.MatchRoutes(api, d.DB, cfg, store, d.Hub, publisher)
	news.NewsRoutes(api, d.DB, cfg, publisher)
	stats.StatsRoutes(api, d.DB, cfg, store)
	auth.RegisterAuthRoutes(api, d.DB, cfg)

	return r
}

func setCors(r *gin.Engine, cfg *config.Config) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader, "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

var idSegment = regexp.MustCompile(`/\d+(/|$)`)

func addMetrics(r *gin.Engine) {
	p := ginprometheus.NewPrometheus("gin")
	p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
		if route := c.FullPath(); route != "" {
			return route
		}
		return idSegment.ReplaceAllString(c.Request.URL.Path, "/:id$1")
	}
	p.MetricsPath = MetricsPath
	p.Use(r)
}

func addDocs(r *gin.Engine) {
	docs.SwaggerInfo.BasePath = "/api"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
