package news

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/eplradar/config"
	"github.com/DhavalSuthar-24/eplradar/internal/events"
	mw "github.com/DhavalSuthar-24/eplradar/internal/middleware"
)

func NewsRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, publisher events.Publisher) {
	newsController := NewNewsController(NewNewsRepository(db), appConfig, publisher)
	auth := mw.AuthMiddleware(appConfig.JWT.Secret, appConfig.Cookie.Name, db)

	news := router.Group("/news")
	{
		news.GET("", newsController.ListNews)
		news.GET("/:id", newsController.GetNews)
		news.POST("", auth, newsController.CreateNews)
		news.PUT("/:id", auth, newsController.UpdateNews)
		news.DELETE("/:id", auth, newsController.DeleteNews)
	}
}
