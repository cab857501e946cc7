package rmiddleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/eplradar/internal/middleware"
	"github.com/DhavalSuthar-24/eplradar/internal/models"
	"github.com/DhavalSuthar-24/eplradar/pkg/responses"
)

const IsAdminKey = "is_admin"

// AdminMiddleware must run after middleware.AuthMiddleware. The admin flag is
// read from the database on every request so revoking it takes effect
// immediately.
func AdminMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := middleware.GetUserIDFromContext(c)
		if err != nil {
			responses.Unauthorized(c, "")
			return
		}

		var u models.User
		err = db.WithContext(c.Request.Context()).Select("id", "is_admin").First(&u, userID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.Unauthorized(c, "User not found")
			return
		}
		if err != nil {
			responses.InternalServerError(c, err)
			return
		}

		if !u.IsAdmin {
			responses.Forbidden(c, "Admin access required")
			return
		}

		c.Set(IsAdminKey, true)
		c.Next()
	}
}
