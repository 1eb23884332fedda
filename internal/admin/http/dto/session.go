// Package dto provides data transfer objects for the admin HTTP endpoints.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	adminDomain "github.com/allisson/enrollment/internal/admin/domain"
	customValidation "github.com/allisson/enrollment/internal/validation"
)

// LoginRequest contains the admin password. It binds from JSON or form data.
type LoginRequest struct {
	Password string `json:"password" form:"password"`
}

// Validate checks that a password was supplied.
func (r *LoginRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Password, validation.Required),
	)
	return customValidation.WrapValidationError(err)
}

// LoginResponse reports when the new session expires. The token itself only
// travels in the session cookie.
type LoginResponse struct {
	ExpiresAt time.Time `json:"expires_at"`
}

// MapLoginOutputToResponse converts a login output to its API response.
func MapLoginOutputToResponse(output *adminDomain.LoginOutput) LoginResponse {
	return LoginResponse{
		ExpiresAt: output.ExpiresAt.UTC(),
	}
}
