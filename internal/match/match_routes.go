package match

import (
	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/eplradar/config"
	"github.com/DhavalSuthar-24/eplradar/internal/events"
	mw "github.com/DhavalSuthar-24/eplradar/internal/middleware"
	"github.com/DhavalSuthar-24/eplradar/internal/standings"
	"github.com/DhavalSuthar-24/eplradar/pkg/rmiddleware"
)

// MatchRoutes sets up fixtures, standings, predictions and the live feed.
func MatchRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, store persistence.CacheStore, hub *LiveHub, publisher events.Publisher) {
	n := notifier{hub: hub, publisher: publisher, mediaURL: appConfig.App.MediaURL}
	matchController := NewMatchController(NewMatchRepository(db), standings.NewRepository(db), appConfig, n)
	secret, cookie := appConfig.JWT.Secret, appConfig.Cookie.Name

	matches := router.Group("/matches")
	{
		matches.GET("", matchController.GetWeek)
		matches.GET("/all", matchController.ListAll)
		matches.GET("/live", matchController.Live)
		matches.GET("/:id", matchController.GetMatch)
	}

	if store != nil {
		router.GET("/standings", cache.CachePage(store, appConfig.Cache.TTL, matchController.Standings))
	} else {
		router.GET("/standings", matchController.Standings)
	}

	router.GET("/predictions/leaderboard", matchController.Leaderboard)
	predictions := router.Group("/predictions")
	predictions.Use(mw.AuthMiddleware(secret, cookie, db))
	{
		predictions.GET("", matchController.ListPredictions)
		predictions.POST("", matchController.CreatePrediction)
		predictions.PUT("/:id", matchController.UpdatePrediction)
		predictions.DELETE("/:id", matchController.DeletePrediction)
	}

	admin := router.Group("/admin/matches")
	admin.Use(mw.AuthMiddleware(secret, cookie, db), rmiddleware.AdminMiddleware(db))
	{
		admin.PATCH("/:id", matchController.AdminUpdate)
	}
}
