package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shoplite/storeapi/internal/dto"
	"github.com/shoplite/storeapi/internal/model"
	"github.com/shoplite/storeapi/pkg/database"
	"github.com/shoplite/storeapi/pkg/jwtutil"
	"github.com/shoplite/storeapi/pkg/logger"
	"go.uber.org/zap"
)

const userContextKey = "user"

// JWTAuthMiddleware creates a middleware that validates JWT tokens. On
// success the claims land in the Echo context and the request context is
// tagged with the actor for the audit columns.
func JWTAuthMiddleware(jwtUtil *jwtutil.JWTUtil) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromEcho(c)

			// Extract the token from the Authorization header
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				log.Warn("Missing authorization header")
				return c.JSON(http.StatusUnauthorized,
					dto.NewErrorResponse(http.StatusUnauthorized, "Missing authorization header"))
			}

			// Check if the header format is valid
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Warn("Invalid authorization header format")
				return c.JSON(http.StatusUnauthorized,
					dto.NewErrorResponse(http.StatusUnauthorized, "Invalid authorization header format"))
			}

			// Validate the token
			claims, err := jwtUtil.ValidateToken(parts[1])
			if err != nil {
				log.Warn("Invalid or expired token", zap.Error(err))
				return c.JSON(http.StatusUnauthorized,
					dto.NewErrorResponse(http.StatusUnauthorized, "Invalid or expired token"))
			}

			// Store the claims and stamp the request context with the actor
			c.Set(userContextKey, claims)
			ctx := database.WithActor(c.Request().Context(), claims.Email)
			c.SetRequest(c.Request().WithContext(ctx))

			log.Debug("JWT token validated",
				zap.Uint("user_id", claims.UserID),
				zap.String("email", claims.Email),
				zap.String("role", claims.Role))
			return next(c)
		}
	}
}

// RequireAdmin gates a route group to admin users. Runs after
// JWTAuthMiddleware; a valid non-admin token gets 403.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := ClaimsFromEcho(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized,
				dto.NewErrorResponse(http.StatusUnauthorized, "Authentication required"))
		}
		if claims.Role != model.RoleAdmin {
			logger.FromEcho(c).Warn("Admin route denied",
				zap.Uint("user_id", claims.UserID),
				zap.String("role", claims.Role))
			return c.JSON(http.StatusForbidden,
				dto.NewErrorResponse(http.StatusForbidden, "Admin access required"))
		}
		return next(c)
	}
}

// ClaimsFromEcho returns the authenticated user's claims, or nil.
func ClaimsFromEcho(c echo.Context) *jwtutil.UserClaims {
	claims, _ := c.Get(userContextKey).(*jwtutil.UserClaims)
	return claims
}
