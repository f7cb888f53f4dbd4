package middleware

import (
	"net/http"
	"strings"

	"github.com/classroomquiz/backend/config"
	"github.com/classroomquiz/backend/internal/auth"
	"github.com/classroomquiz/backend/internal/dto"
	"github.com/classroomquiz/backend/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// AuthMiddleware validates the bearer token and stores the parsed claims in
// the gin context under "user".
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		if h := c.GetHeader("Authorization"); h != "" {
			tokenString = strings.TrimPrefix(h, "Bearer ")
		}

		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing token"})
			return
		}

		claims, err := auth.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			log.Debug().Err(err).Msg("Token rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid token"})
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// RequireTeacher allows teachers and admins through, everyone else gets 403.
func RequireTeacher() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := auth.GetUserFromContext(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing token"})
			return
		}
		if !claims.Role.CanManageActivities() {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Only teachers can perform this action"})
			return
		}
		c.Next()
	}
}

// RequireStudent allows only students through.
func RequireStudent() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := auth.GetUserFromContext(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing token"})
			return
		}
		if claims.Role != model.RoleStudent {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Only students can perform this action"})
			return
		}
		c.Next()
	}
}
