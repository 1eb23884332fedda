package usecase

import (
	"context"
	"time"

	"github.com/allisson/enrollment/internal/metrics"
	registrationDomain "github.com/allisson/enrollment/internal/registration/domain"
)

const metricsDomain = "registrations"

// registrationUseCaseWithMetrics decorates RegistrationUseCase with metrics instrumentation.
type registrationUseCaseWithMetrics struct {
	next    RegistrationUseCase
	metrics metrics.BusinessMetrics
}

// NewRegistrationUseCaseWithMetrics wraps a RegistrationUseCase with metrics recording.
func NewRegistrationUseCaseWithMetrics(
	useCase RegistrationUseCase,
	m metrics.BusinessMetrics,
) RegistrationUseCase {
	return &registrationUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (r *registrationUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusOf(err)
	r.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	r.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// Register records metrics for registration creation.
func (r *registrationUseCaseWithMetrics) Register(
	ctx context.Context,
	input *registrationDomain.RegisterInput,
) (*registrationDomain.Registration, error) {
	start := time.Now()
	registration, err := r.next.Register(ctx, input)
	r.record(ctx, "registration_create", start, err)
	return registration, err
}

// List records metrics for registration listing.
func (r *registrationUseCaseWithMetrics) List(
	ctx context.Context,
	offset, limit int,
) ([]*registrationDomain.Registration, error) {
	start := time.Now()
	registrations, err := r.next.List(ctx, offset, limit)
	r.record(ctx, "registration_list", start, err)
	return registrations, err
}

// Count records metrics for registration counting.
func (r *registrationUseCaseWithMetrics) Count(ctx context.Context) (int64, error) {
	start := time.Now()
	total, err := r.next.Count(ctx)
	r.record(ctx, "registration_count", start, err)
	return total, err
}

// GetByCPF records metrics for registration lookups.
func (r *registrationUseCaseWithMetrics) GetByCPF(
	ctx context.Context,
	raw string,
) (*registrationDomain.Registration, error) {
	start := time.Now()
	registration, err := r.next.GetByCPF(ctx, raw)
	r.record(ctx, "registration_get", start, err)
	return registration, err
}
