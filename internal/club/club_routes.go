package club

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/eplradar/config"
	mw "github.com/DhavalSuthar-24/eplradar/internal/middleware"
	"github.com/DhavalSuthar-24/eplradar/pkg/rmiddleware"
)

// ClubRoutes sets up club listing, detail and comment routes.
func ClubRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	clubController := NewClubController(NewClubRepository(db), appConfig)
	secret, cookie := appConfig.JWT.Secret, appConfig.Cookie.Name

	clubs := router.Group("/clubs")
	{
		clubs.GET("", clubController.ListClubs)
		clubs.GET("/:name", clubController.GetClub)
		clubs.GET("/:name/comments", mw.OptionalAuth(secret, cookie, db), clubController.ListComments)
		clubs.POST("/:name/comments", mw.AuthMiddleware(secret, cookie, db), clubController.AddComment)
	}

	comments := router.Group("/comments")
	comments.Use(mw.AuthMiddleware(secret, cookie, db))
	{
		comments.PUT("/:id", clubController.UpdateComment)
		comments.DELETE("/:id", clubController.DeleteComment)
	}

	admin := router.Group("/admin/clubs")
	admin.Use(mw.AuthMiddleware(secret, cookie, db), rmiddleware.AdminMiddleware(db))
	{
		admin.POST("/recompute", clubController.RecomputeRecords)
	}
}
