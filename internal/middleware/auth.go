package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/peoplehr/hr_ops_app/internal/core/domain"
	"github.com/peoplehr/hr_ops_app/internal/utils"
)

// AuthMiddleware creates a Gin middleware handler that validates access
// tokens and stores the verified domain.Identity in the request context.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		if claims.Subject == "" {
			logger.Error("Employee ID (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		role := domain.Role(claims.Role)
		if role != domain.RoleAdmin && role != domain.RoleEmployee {
			logger.Warn("Unknown role claim in token", slog.String("role", claims.Role))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		identity := domain.Identity{
			EmployeeID: claims.Subject,
			Role:       role,
		}

		// Store the identity in the request context and enrich the logger
		ctxWithIdentity := context.WithValue(c.Request.Context(), identityKey, identity)
		enrichedLogger := GetLoggerFromCtx(c.Request.Context()).With(
			slog.String("employee_id", identity.EmployeeID),
			slog.String("role", string(identity.Role)),
		)
		ctxWithLogger := context.WithValue(ctxWithIdentity, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctxWithLogger)

		c.Next()
	}
}
