package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	adminService "github.com/allisson/enrollment/internal/admin/service"
	adminUseCase "github.com/allisson/enrollment/internal/admin/usecase"
	apperrors "github.com/allisson/enrollment/internal/errors"
	"github.com/allisson/enrollment/internal/httputil"
)

// SessionMiddleware requires an active admin session.
//
// The token is read from the admin_session cookie, falling back to an
// "Authorization: Bearer <token>" header (case-insensitive "bearer"). It is
// hashed with tokenService.HashToken and resolved through Authenticate; the
// session is then stored in the request context for GetSession.
//
// Error handling:
//   - Missing or malformed token → 401 Unauthorized
//   - Unknown, expired or revoked session → 401 Unauthorized
//   - Admin area disabled → 403 Forbidden
//   - Other errors → 500 Internal Server Error
func SessionMiddleware(
	sessionUseCase adminUseCase.SessionUseCase,
	tokenService adminService.TokenService,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		plainToken, ok := extractToken(c)
		if !ok {
			logger.Debug("admin authentication failed: missing session token")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		session, err := sessionUseCase.Authenticate(c.Request.Context(), tokenService.HashToken(plainToken))
		if err != nil {
			logger.Debug("admin authentication failed", slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(WithSession(c.Request.Context(), session))

		logger.Debug("admin authentication successful", slog.String("session_id", session.ID.String()))

		c.Next()
	}
}

// extractToken returns the plain session token from the cookie or the Bearer header.
func extractToken(c *gin.Context) (string, bool) {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie, true
	}

	authHeader := c.GetHeader("Authorization")
	const bearerPrefix = "bearer "
	if len(authHeader) < len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	plainToken := strings.TrimSpace(authHeader[len(bearerPrefix):])
	return plainToken, plainToken != ""
}
