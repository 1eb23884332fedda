// Package integration provides end-to-end tests for the registration API.
// Tests run against both PostgreSQL and MySQL and are skipped when a database
// is not reachable.
package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adminHTTP "github.com/allisson/enrollment/internal/admin/http"
	adminService "github.com/allisson/enrollment/internal/admin/service"
	"github.com/allisson/enrollment/internal/app"
	"github.com/allisson/enrollment/internal/config"
	"github.com/allisson/enrollment/internal/httputil"
	"github.com/allisson/enrollment/internal/registration/http/dto"
	"github.com/allisson/enrollment/internal/testutil"
)

const adminPassword = "integration-admin-password"

type integrationTestContext struct {
	container *app.Container
	db        *sql.DB
	server    *httptest.Server
	client    *http.Client
}

// do performs a request with the shared cookie jar and returns status and body.
func (ctx *integrationTestContext) do(
	t *testing.T,
	method, path, contentType, body string,
) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, ctx.server.URL+path, reader)
	require.NoError(t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	//nolint:gosec // controlled test environment with localhost URLs
	resp, err := ctx.client.Do(req)
	require.NoError(t, err)

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()

	return resp, respBody
}

func setupIntegrationTest(t *testing.T, dbDriver string) *integrationTestContext {
	t.Helper()

	gin.SetMode(gin.TestMode)

	var db *sql.DB
	var dsn string
	if dbDriver == "postgres" {
		db = testutil.SetupPostgresDB(t)
		dsn = testutil.GetPostgresTestDSN()
	} else {
		db = testutil.SetupMySQLDB(t)
		dsn = testutil.GetMySQLTestDSN()
	}

	passwordHash, err := adminService.NewPasswordService().Hash(adminPassword)
	require.NoError(t, err)

	cfg := &config.Config{
		DBDriver:               dbDriver,
		DBConnectionString:     dsn,
		DBMaxOpenConnections:   10,
		DBMaxIdleConnections:   5,
		DBConnMaxLifetime:      time.Hour,
		ServerHost:             "localhost",
		ServerPort:             8080,
		LogLevel:               "error",
		AdminPasswordHash:      passwordHash,
		AdminSessionExpiration: time.Hour,
		AdminCookieSecure:      false,
	}

	container := app.NewContainer(cfg)

	httpSrv, err := container.HTTPServer()
	require.NoError(t, err)

	handler := httpSrv.GetHandler()
	require.NotNil(t, handler)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &integrationTestContext{
		container: container,
		db:        db,
		server:    httptest.NewServer(handler),
		client:    &http.Client{Timeout: 10 * time.Second, Jar: jar},
	}
}

func teardownIntegrationTest(t *testing.T, ctx *integrationTestContext) {
	t.Helper()

	ctx.server.Close()
	if err := ctx.container.Shutdown(context.Background()); err != nil {
		t.Logf("Warning: container shutdown error: %v", err)
	}
	testutil.TeardownDB(t, ctx.db)
}

func runRegistrationFlow(t *testing.T, dbDriver string) {
	ctx := setupIntegrationTest(t, dbDriver)
	defer teardownIntegrationTest(t, ctx)

	const jsonType = "application/json"

	t.Run("health and readiness", func(t *testing.T) {
		resp, _ := ctx.do(t, http.MethodGet, "/health", "", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, body := ctx.do(t, http.MethodGet, "/ready", "", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"status":"ready","components":{"database":"ok"}}`, string(body))
	})

	t.Run("register with JSON", func(t *testing.T) {
		resp, body := ctx.do(t, http.MethodPost, "/v1/registrations", jsonType, `{
			"cpf": "529.982.247-25",
			"name": "  Maria da Silva  ",
			"marital_status": "married",
			"sex": "female",
			"birth_date": "1990-05-20",
			"city_state": "Recife/PE",
			"team_leader": true
		}`)
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

		var registration dto.RegistrationResponse
		require.NoError(t, json.Unmarshal(body, &registration))
		assert.Equal(t, "529.982.247-25", registration.CPF)
		assert.Equal(t, "Maria da Silva", registration.Name)
		assert.True(t, registration.TeamLeader)
		require.NotNil(t, registration.Age)
	})

	t.Run("register with form encoding", func(t *testing.T) {
		form := url.Values{"cpf": {"111.444.777-35"}, "name": {"João Souza"}, "team_leader": {"on"}}
		resp, body := ctx.do(t, http.MethodPost, "/v1/registrations",
			"application/x-www-form-urlencoded", form.Encode())
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	})

	t.Run("duplicate CPF with different punctuation", func(t *testing.T) {
		resp, body := ctx.do(t, http.MethodPost, "/v1/registrations", jsonType,
			`{"cpf":"52998224725","name":"Outra Pessoa"}`)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		var errResp httputil.ErrorResponse
		require.NoError(t, json.Unmarshal(body, &errResp))
		assert.Equal(t, "CPF already registered", errResp.Message)
	})

	t.Run("invalid CPF", func(t *testing.T) {
		resp, body := ctx.do(t, http.MethodPost, "/v1/registrations", jsonType,
			`{"cpf":"111.111.111-11","name":"Maria"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		var errResp httputil.ErrorResponse
		require.NoError(t, json.Unmarshal(body, &errResp))
		assert.Equal(t, "invalid CPF", errResp.Fields["cpf"])
	})

	t.Run("admin list requires session", func(t *testing.T) {
		resp, _ := ctx.do(t, http.MethodGet, "/v1/admin/registrations", "", "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("wrong admin password", func(t *testing.T) {
		resp, _ := ctx.do(t, http.MethodPost, "/v1/admin/login", jsonType, `{"password":"nope"}`)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("admin login, list, get and logout", func(t *testing.T) {
		resp, body := ctx.do(t, http.MethodPost, "/v1/admin/login", jsonType,
			`{"password":"`+adminPassword+`"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

		var sessionCookie *http.Cookie
		for _, c := range resp.Cookies() {
			if c.Name == adminHTTP.SessionCookieName {
				sessionCookie = c
			}
		}
		require.NotNil(t, sessionCookie)
		assert.True(t, sessionCookie.HttpOnly)

		resp, body = ctx.do(t, http.MethodGet, "/v1/admin/registrations", "", "")
		require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

		var list httputil.ListResponse[dto.RegistrationResponse]
		require.NoError(t, json.Unmarshal(body, &list))
		assert.Equal(t, int64(2), list.Total)
		require.Len(t, list.Data, 2)
		assert.Equal(t, "111.444.777-35", list.Data[0].CPF, "newest first")

		resp, _ = ctx.do(t, http.MethodGet, "/v1/admin/registrations/529.982.247-25", "", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = ctx.do(t, http.MethodGet, "/v1/admin/registrations/39053344705", "", "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		resp, _ = ctx.do(t, http.MethodPost, "/v1/admin/logout", "", "")
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp, _ = ctx.do(t, http.MethodGet, "/v1/admin/registrations", "", "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestIntegration_PostgreSQL(t *testing.T) {
	runRegistrationFlow(t, "postgres")
}

func TestIntegration_MySQL(t *testing.T) {
	runRegistrationFlow(t, "mysql")
}
