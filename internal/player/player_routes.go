package player

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/eplradar/config"
)

func PlayerRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	playerController := NewPlayerController(NewPlayerRepository(db), appConfig)

	players := router.Group("/players")
	{
		players.GET("", playerController.ListPlayers)
		players.GET("/:id", playerController.GetPlayer)
	}
}
