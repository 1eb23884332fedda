package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/enrollment/internal/errors"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandleErrorGin(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedCode    string
		expectedMessage string
	}{
		{
			name:            "not found",
			err:             apperrors.Wrap(apperrors.ErrNotFound, "registration"),
			expectedStatus:  http.StatusNotFound,
			expectedCode:    "not_found",
			expectedMessage: "The requested resource was not found",
		},
		{
			name:            "conflict keeps domain message",
			err:             apperrors.Kind(apperrors.ErrConflict, "CPF already registered"),
			expectedStatus:  http.StatusConflict,
			expectedCode:    "conflict",
			expectedMessage: "CPF already registered",
		},
		{
			name:            "invalid input",
			err:             apperrors.Kind(apperrors.ErrInvalidInput, "invalid CPF"),
			expectedStatus:  http.StatusUnprocessableEntity,
			expectedCode:    "validation_error",
			expectedMessage: "invalid CPF",
		},
		{
			name:            "unauthorized",
			err:             apperrors.ErrUnauthorized,
			expectedStatus:  http.StatusUnauthorized,
			expectedCode:    "unauthorized",
			expectedMessage: "Authentication is required",
		},
		{
			name:            "forbidden",
			err:             apperrors.ErrForbidden,
			expectedStatus:  http.StatusForbidden,
			expectedCode:    "forbidden",
			expectedMessage: "You don't have permission to access this resource",
		},
		{
			name:            "internal error hides detail",
			err:             errors.New("pq: connection refused"),
			expectedStatus:  http.StatusInternalServerError,
			expectedCode:    "internal_error",
			expectedMessage: "An internal error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(t)

			HandleErrorGin(c, tt.err, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.expectedCode, resp.Error)
			assert.Equal(t, tt.expectedMessage, resp.Message)
		})
	}

	t.Run("nil error writes nothing", func(t *testing.T) {
		c, w := newTestContext(t)

		HandleErrorGin(c, nil, nil)

		assert.Empty(t, w.Body.String())
	})
}

func TestHandleErrorGin_FieldErrors(t *testing.T) {
	c, w := newTestContext(t)
	verr := validation.Errors{
		"cpf":  validation.NewError("validation_cpf", "invalid CPF"),
		"name": validation.NewError("validation_required", "cannot be blank"),
	}

	HandleErrorGin(c, errors.Join(apperrors.ErrInvalidInput, verr), nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, map[string]string{"cpf": "invalid CPF", "name": "cannot be blank"}, resp.Fields)
}

func TestHandleBadRequestGin(t *testing.T) {
	c, w := newTestContext(t)

	HandleBadRequestGin(c, errors.New("invalid limit parameter"), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "bad_request", resp.Error)
	assert.Equal(t, "invalid limit parameter", resp.Message)
	assert.Nil(t, resp.Fields)
}

func TestHandleValidationErrorGin(t *testing.T) {
	c, w := newTestContext(t)
	verr := validation.Errors{"cpf": validation.NewError("validation_cpf_shape", "only digits, dots and dashes are allowed")}

	HandleValidationErrorGin(c, verr, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "validation_error", resp.Error)
	assert.Equal(t, "only digits, dots and dashes are allowed", resp.Fields["cpf"])
}
