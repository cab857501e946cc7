package auth

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/eplradar/config"
	"github.com/DhavalSuthar-24/eplradar/internal/middleware"
	"github.com/DhavalSuthar-24/eplradar/pkg/rmiddleware"
)

func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	authController := NewAuthController(NewAuthRepository(db), appConfig)
	mountAuthRoutes(router, db, appConfig, authController)
}

func mountAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, authController *AuthController) {
	auth := middleware.AuthMiddleware(appConfig.JWT.Secret, appConfig.Cookie.Name, db)
	loginLimiter := middleware.NewIPRateLimiter(appConfig.RateLimit.LoginRPS, appConfig.RateLimit.LoginBurst)

	authPublic := router.Group("/auth")
	{
		authPublic.POST("/register", authController.Register)
		authPublic.POST("/login", loginLimiter.Middleware(), authController.Login)
		authPublic.POST("/logout", authController.Logout)
	}

	authProtected := router.Group("/auth")
	authProtected.Use(auth)
	{
		authProtected.GET("/me", authController.GetProfile)
		authProtected.DELETE("/me", authController.DeleteAccount)
		authProtected.POST("/change-password", authController.ChangePassword)
	}

	admin := router.Group("/admin/users")
	admin.Use(auth, rmiddleware.AdminMiddleware(db))
	{
		admin.DELETE("/:id", authController.AdminDeleteUser)
	}
}
