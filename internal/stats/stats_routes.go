package stats

import (
	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/eplradar/config"
	mw "github.com/DhavalSuthar-24/eplradar/internal/middleware"
)

// StatsRoutes mounts the leaderboards and the favourite players API. The
// leaderboards are cached in store when one is given.
func StatsRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, store persistence.CacheStore) {
	statsController := NewStatsController(NewStatsRepository(db), appConfig)

	cached := func(h gin.HandlerFunc) gin.HandlerFunc {
		if store == nil {
			return h
		}
		return cache.CachePage(store, appConfig.Cache.TTL, h)
	}

	stats := router.Group("/stats")
	{
		stats.GET("/clubs", cached(statsController.ClubStats))
		stats.GET("/players", cached(statsController.PlayerStats))
	}

	favorites := router.Group("/favorites")
	favorites.Use(mw.AuthMiddleware(appConfig.JWT.Secret, appConfig.Cookie.Name, db))
	{
		favorites.GET("", statsController.ListFavorites)
		favorites.POST("", statsController.AddFavorite)
		favorites.PUT("/:id", statsController.UpdateFavorite)
		favorites.DELETE("/:id", statsController.DeleteFavorite)
	}
}
