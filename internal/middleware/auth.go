package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campusbook/appointment-scheduler/internal/config"
	domain "github.com/campusbook/appointment-scheduler/internal/domain/booking"
	"github.com/campusbook/appointment-scheduler/internal/httperr"
	"github.com/campusbook/appointment-scheduler/internal/models"
)

const (
	ContextPrincipal = "principal"
	ContextUser      = "currentUser"
)

// AuthMiddleware verifies the bearer token and loads the user behind it, so
// downstream handlers get a Principal that is guaranteed to still exist.
func AuthMiddleware(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "Access denied. No token provided.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "Access denied. No token provided.")
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				httperr.Unauthorized(c, "Token expired.")
			} else {
				httperr.Unauthorized(c, "Invalid token.")
			}
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Unauthorized(c, "Invalid token.")
			c.Abort()
			return
		}

		sub, _ := claims["sub"].(string)
		userID, err := uuid.Parse(sub)
		if err != nil {
			httperr.Unauthorized(c, "Invalid token.")
			c.Abort()
			return
		}

		var user models.User
		if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
			httperr.Unauthorized(c, "Invalid token. User not found.")
			c.Abort()
			return
		}

		c.Set(ContextUser, &user)
		c.Set(ContextPrincipal, domain.Principal{
			UserID: user.ID,
			Role:   user.Role,
		})

		c.Next()
	}
}

// PrincipalFrom extracts the authenticated principal stashed by
// AuthMiddleware.
func PrincipalFrom(c *gin.Context) domain.Principal {
	return c.MustGet(ContextPrincipal).(domain.Principal)
}

// UserFrom extracts the authenticated user record.
func UserFrom(c *gin.Context) *models.User {
	return c.MustGet(ContextUser).(*models.User)
}
