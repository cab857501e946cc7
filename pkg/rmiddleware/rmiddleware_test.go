package rmiddleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/DhavalSuthar-24/eplradar/internal/middleware"
	"github.com/DhavalSuthar-24/eplradar/internal/testutil"
)

func TestAdminMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testutil.NewDB(t)
	admin := testutil.CreateUser(t, db, "root", true)
	fan := testutil.CreateUser(t, db, "fan", false)

	newRouter := func(userID uint) *gin.Engine {
		r := gin.New()
		r.GET("/admin", func(c *gin.Context) {
			if userID != 0 {
				c.Set(middleware.AuthUserIDKey, userID)
			}
			c.Next()
		}, AdminMiddleware(db), func(c *gin.Context) { c.Status(http.StatusNoContent) })
		return r
	}

	tests := []struct {
		name   string
		userID uint
		code   int
	}{
		{"admin passes", admin.ID, http.StatusNoContent},
		{"regular user forbidden", fan.ID, http.StatusForbidden},
		{"unauthenticated", 0, http.StatusUnauthorized},
		{"unknown user", 404, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newRouter(tt.userID).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
			assert.Equal(t, tt.code, w.Code)
		})
	}
}
