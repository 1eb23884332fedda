// Package http provides HTTP server implementation and request handlers.
package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adminDomain "github.com/allisson/enrollment/internal/admin/domain"
	adminHTTP "github.com/allisson/enrollment/internal/admin/http"
	adminService "github.com/allisson/enrollment/internal/admin/service"
	adminMocks "github.com/allisson/enrollment/internal/admin/usecase/mocks"
	"github.com/allisson/enrollment/internal/config"
	"github.com/allisson/enrollment/internal/metrics"
	registrationDomain "github.com/allisson/enrollment/internal/registration/domain"
	registrationHTTP "github.com/allisson/enrollment/internal/registration/http"
	registrationMocks "github.com/allisson/enrollment/internal/registration/usecase/mocks"
)

// TestMain sets Gin to test mode for all tests in this package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testRouter struct {
	server          *Server
	registrationUC  *registrationMocks.MockRegistrationUseCase
	sessionUC       *adminMocks.MockSessionUseCase
	tokenService    adminService.TokenService
	metricsProvider *metrics.Provider
}

// newTestRouter builds the full router around mocked use cases.
func newTestRouter(t *testing.T, cfg *config.Config) *testRouter {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := discardLogger()
	tr := &testRouter{
		server:         NewServer(nil, "localhost", 0, logger),
		registrationUC: registrationMocks.NewMockRegistrationUseCase(t),
		sessionUC:      adminMocks.NewMockSessionUseCase(t),
		tokenService:   adminService.NewTokenService(),
	}

	provider, err := metrics.NewProvider("enrollment_test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
	tr.metricsProvider = provider

	tr.server.SetupRouter(
		ctx,
		cfg,
		registrationHTTP.NewRegistrationHandler(tr.registrationUC, logger),
		adminHTTP.NewSessionHandler(tr.sessionUC, tr.tokenService, cfg.AdminCookieSecure, logger),
		tr.sessionUC,
		tr.tokenService,
		provider,
		"enrollment_test",
	)
	return tr
}

func (tr *testRouter) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	tr.server.GetHandler().ServeHTTP(w, req)
	return w
}

func TestHealthHandler(t *testing.T) {
	server := NewServer(nil, "localhost", 8080, discardLogger())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	server.healthHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}

func TestReadinessHandler(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(t *testing.T) *Server
		wantStatus int
		wantBody   string
	}{
		{
			name: "nil db",
			setup: func(t *testing.T) *Server {
				return NewServer(nil, "localhost", 8080, discardLogger())
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"not_ready","components":{"database":"error"}}`,
		},
		{
			name: "ping ok",
			setup: func(t *testing.T) *Server {
				db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
				require.NoError(t, err)
				t.Cleanup(func() { _ = db.Close() })
				mock.ExpectPing()
				return NewServer(db, "localhost", 8080, discardLogger())
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ready","components":{"database":"ok"}}`,
		},
		{
			name: "ping failure",
			setup: func(t *testing.T) *Server {
				db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
				require.NoError(t, err)
				t.Cleanup(func() { _ = db.Close() })
				mock.ExpectPing().WillReturnError(assert.AnError)
				return NewServer(db, "localhost", 8080, discardLogger())
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"not_ready","components":{"database":"error"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := tt.setup(t)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)

			server.readinessHandler(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestCustomLoggerMiddleware_LogsRoutePattern(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(logger))
	router.GET("/v1/admin/registrations/:cpf", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/registrations/52998224725", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(buf.String()), &entry))
	assert.Equal(t, "http request", entry["msg"])
	assert.Equal(t, "/v1/admin/registrations/:cpf", entry["path"])
	assert.Equal(t, w.Header().Get("X-Request-Id"), entry["request_id"])
	assert.NotContains(t, buf.String(), "52998224725")
}

func TestRecoveryMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CustomLoggerMiddleware(discardLogger()))
	router.GET("/panic", func(c *gin.Context) {
		panic("test panic")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestServer_StartWithoutRouter(t *testing.T) {
	server := NewServer(nil, "localhost", 0, discardLogger())
	assert.ErrorContains(t, server.Start(context.Background()), "router not initialized")
}

func TestServer_ShutdownGracefully(t *testing.T) {
	tr := newTestRouter(t, &config.Config{})

	errChan := make(chan error, 1)
	go func() {
		errChan <- tr.server.Start(context.Background())
	}()

	time.Sleep(100 * time.Millisecond)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	require.NoError(t, tr.server.Shutdown(shutdownCtx))
	assert.NoError(t, <-errChan)
}

func TestRouter_RequestIDHeader(t *testing.T) {
	tr := newTestRouter(t, &config.Config{})

	w := tr.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	parsed, err := uuid.Parse(w.Header().Get("X-Request-Id"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, parsed)
}

func TestRouter_NotFoundAndNoMetrics(t *testing.T) {
	tr := newTestRouter(t, &config.Config{})

	assert.Equal(t, http.StatusNotFound, tr.do(httptest.NewRequest(http.MethodGet, "/nonexistent", nil)).Code)
	assert.Equal(t, http.StatusNotFound, tr.do(httptest.NewRequest(http.MethodGet, "/metrics", nil)).Code)
}

func TestRouter_PublicRegistration(t *testing.T) {
	tr := newTestRouter(t, &config.Config{})

	tr.registrationUC.On("Register", mock.Anything, mock.Anything).
		Return(&registrationDomain.Registration{ID: uuid.Must(uuid.NewV7()), CPF: "52998224725", Name: "Maria"}, nil).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/v1/registrations",
		strings.NewReader(`{"cpf":"529.982.247-25","name":"Maria"}`))
	req.Header.Set("Content-Type", "application/json")

	w := tr.do(req)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRouter_AdminRoutesRequireSession(t *testing.T) {
	tr := newTestRouter(t, &config.Config{})

	w := tr.do(httptest.NewRequest(http.MethodGet, "/v1/admin/registrations", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	session := &adminDomain.Session{ID: uuid.Must(uuid.NewV7()), ExpiresAt: time.Now().Add(time.Hour)}
	tr.sessionUC.On("Authenticate", mock.Anything, tr.tokenService.HashToken("tok")).Return(session, nil).Once()
	tr.registrationUC.On("List", mock.Anything, 0, 50).Return([]*registrationDomain.Registration{}, nil).Once()
	tr.registrationUC.On("Count", mock.Anything).Return(int64(0), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/registrations", nil)
	req.AddCookie(&http.Cookie{Name: adminHTTP.SessionCookieName, Value: "tok"})

	w = tr.do(req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[],"total":0,"offset":0,"limit":50}`, w.Body.String())
}

func TestRouter_LoginRateLimited(t *testing.T) {
	tr := newTestRouter(t, &config.Config{
		RateLimitLoginEnabled:        true,
		RateLimitLoginRequestsPerSec: 0.01,
		RateLimitLoginBurst:          1,
	})

	tr.sessionUC.On("Login", mock.Anything, "wrong").Return(nil, adminDomain.ErrInvalidCredentials).Once()

	newLogin := func() *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/login", strings.NewReader(`{"password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		return req
	}

	assert.Equal(t, http.StatusUnauthorized, tr.do(newLogin()).Code)
	assert.Equal(t, http.StatusTooManyRequests, tr.do(newLogin()).Code)
}

func TestMetricsServer_Endpoints(t *testing.T) {
	provider, err := metrics.NewProvider("test_app")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	metricsServer := NewMetricsServer("localhost", 8081, discardLogger(), provider)
	require.NotNil(t, metricsServer)

	w := httptest.NewRecorder()
	metricsServer.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}

func TestMetricsServer_WithoutProvider(t *testing.T) {
	metricsServer := NewMetricsServer("localhost", 8081, discardLogger(), nil)

	w := httptest.NewRecorder()
	metricsServer.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	metricsServer.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
