package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/allisson/enrollment/internal/admin/http/dto"
	adminService "github.com/allisson/enrollment/internal/admin/service"
	adminUseCase "github.com/allisson/enrollment/internal/admin/usecase"
	"github.com/allisson/enrollment/internal/httputil"
)

// SessionCookieName is the cookie carrying the plain admin session token.
const SessionCookieName = "admin_session"

// SessionHandler handles admin login and logout.
type SessionHandler struct {
	sessionUseCase adminUseCase.SessionUseCase
	tokenService   adminService.TokenService
	cookieSecure   bool
	logger         *slog.Logger
	now            func() time.Time
}

// NewSessionHandler creates a new session handler with required dependencies.
func NewSessionHandler(
	sessionUseCase adminUseCase.SessionUseCase,
	tokenService adminService.TokenService,
	cookieSecure bool,
	logger *slog.Logger,
) *SessionHandler {
	return &SessionHandler{
		sessionUseCase: sessionUseCase,
		tokenService:   tokenService,
		cookieSecure:   cookieSecure,
		logger:         logger,
		now:            time.Now,
	}
}

// LoginHandler verifies the admin password and opens a session.
// POST /v1/admin/login
//
// Sets the admin_session cookie and returns 200 with the expiry.
// Wrong password returns 401, a disabled admin area 403.
func (h *SessionHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBind(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	output, err := h.sessionUseCase.Login(c.Request.Context(), req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	maxAge := int(output.ExpiresAt.Sub(h.now()).Seconds())
	h.setCookie(c, output.PlainToken, maxAge)

	h.logger.Info("admin logged in", slog.String("client_ip", c.ClientIP()))

	c.JSON(http.StatusOK, dto.MapLoginOutputToResponse(output))
}

// LogoutHandler revokes the current session, if any, and clears the cookie.
// POST /v1/admin/logout
//
// Always returns 204 unless revoking fails.
func (h *SessionHandler) LogoutHandler(c *gin.Context) {
	if plainToken, ok := extractToken(c); ok {
		tokenHash := h.tokenService.HashToken(plainToken)
		if err := h.sessionUseCase.Logout(c.Request.Context(), tokenHash); err != nil {
			httputil.HandleErrorGin(c, err, h.logger)
			return
		}
	}

	h.setCookie(c, "", -1)
	c.Data(http.StatusNoContent, "application/json", nil)
}

func (h *SessionHandler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, value, maxAge, "/", "", h.cookieSecure, true)
}
