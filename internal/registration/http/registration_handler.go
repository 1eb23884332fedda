// Package http provides HTTP handlers for registration operations.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/allisson/enrollment/internal/httputil"
	"github.com/allisson/enrollment/internal/registration/http/dto"
	registrationUseCase "github.com/allisson/enrollment/internal/registration/usecase"
	customValidation "github.com/allisson/enrollment/internal/validation"
)

// RegistrationHandler handles HTTP requests for registrations.
type RegistrationHandler struct {
	registrationUseCase registrationUseCase.RegistrationUseCase
	logger              *slog.Logger
	now                 func() time.Time
}

// NewRegistrationHandler creates a new registration handler with required dependencies.
func NewRegistrationHandler(
	registrationUseCase registrationUseCase.RegistrationUseCase,
	logger *slog.Logger,
) *RegistrationHandler {
	return &RegistrationHandler{
		registrationUseCase: registrationUseCase,
		logger:              logger,
		now:                 time.Now,
	}
}

// CreateHandler submits the public registration form.
// POST /v1/registrations - accepts JSON or form-encoded bodies.
// Returns 201 Created with the stored registration.
func (h *RegistrationHandler) CreateHandler(c *gin.Context) {
	var req dto.RegisterRequest

	// ShouldBind picks JSON or form binding from the Content-Type header
	if err := c.ShouldBind(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(h.now); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	registration, err := h.registrationUseCase.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("registration created", slog.String("registration_id", registration.ID.String()))

	c.JSON(http.StatusCreated, dto.MapRegistrationToResponse(registration))
}

// ListHandler lists registrations newest first.
// GET /v1/admin/registrations?offset=0&limit=50 - requires an admin session.
// Returns 200 OK with the page and the total number of registrations.
func (h *RegistrationHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	ctx := c.Request.Context()

	registrations, err := h.registrationUseCase.List(ctx, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	total, err := h.registrationUseCase.Count(ctx)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, httputil.NewListResponse(
		dto.MapRegistrationsToResponses(registrations),
		total,
		offset,
		limit,
	))
}

// GetHandler retrieves a registration by CPF in any accepted formatting.
// GET /v1/admin/registrations/:cpf - requires an admin session.
func (h *RegistrationHandler) GetHandler(c *gin.Context) {
	registration, err := h.registrationUseCase.GetByCPF(c.Request.Context(), c.Param("cpf"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapRegistrationToResponse(registration))
}
