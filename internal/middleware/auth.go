package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/eplradar/pkg/responses"
	"github.com/DhavalSuthar-24/eplradar/pkg/token"
)

const (
	AuthUserIDKey = "auth_user_id"
)

// tokenFromRequest prefers the Authorization header and falls back to the
// session cookie set at login.
func tokenFromRequest(c *gin.Context, cookieName string) (string, error) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return "", errors.New("invalid Authorization header format, expected: Bearer <token>")
		}
		return parts[1], nil
	}
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie, nil
	}
	return "", errors.New("authentication required")
}

func activeUser(db *gorm.DB, c *gin.Context, userID uint) bool {
	var count int64
	err := db.WithContext(c.Request.Context()).
		Table("users").
		Where("id = ? AND is_active = ?", userID, true).
		Count(&count).Error
	return err == nil && count == 1
}

// AuthMiddleware rejects requests without a valid session for an active user.
func AuthMiddleware(jwtSecret, cookieName string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := tokenFromRequest(c, cookieName)
		if err != nil {
			responses.Unauthorized(c, err.Error())
			return
		}

		claims, err := token.ValidateJWT(raw, jwtSecret)
		if err != nil {
			responses.Unauthorized(c, "Invalid or expired session")
			return
		}

		if !activeUser(db, c, claims.UserID) {
			responses.Unauthorized(c, "User not found or inactive")
			return
		}

		c.Set(AuthUserIDKey, claims.UserID)
		c.Next()
	}
}

// OptionalAuth records the user when a valid session is present and lets
// anonymous requests through untouched.
func OptionalAuth(jwtSecret, cookieName string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := tokenFromRequest(c, cookieName)
		if err == nil {
			if claims, err := token.ValidateJWT(raw, jwtSecret); err == nil && activeUser(db, c, claims.UserID) {
				c.Set(AuthUserIDKey, claims.UserID)
			}
		}
		c.Next()
	}
}

// GetUserIDFromContext extracts the user ID from the context
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	userID, exists := c.Get(AuthUserIDKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}

	uid, ok := userID.(uint)
	if !ok {
		return 0, fmt.Errorf("user ID has unexpected type: %T", userID)
	}

	return uid, nil
}
