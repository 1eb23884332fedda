package usecase

import (
	"context"
	"time"

	adminDomain "github.com/allisson/enrollment/internal/admin/domain"
	"github.com/allisson/enrollment/internal/metrics"
)

const metricsDomain = "admin"

// sessionUseCaseWithMetrics decorates SessionUseCase with metrics instrumentation.
type sessionUseCaseWithMetrics struct {
	next    SessionUseCase
	metrics metrics.BusinessMetrics
}

// NewSessionUseCaseWithMetrics wraps a SessionUseCase with metrics recording.
func NewSessionUseCaseWithMetrics(useCase SessionUseCase, m metrics.BusinessMetrics) SessionUseCase {
	return &sessionUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (s *sessionUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusOf(err)
	s.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	s.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// Login records metrics for admin logins.
func (s *sessionUseCaseWithMetrics) Login(ctx context.Context, password string) (*adminDomain.LoginOutput, error) {
	start := time.Now()
	output, err := s.next.Login(ctx, password)
	s.record(ctx, "admin_login", start, err)
	return output, err
}

// Authenticate records metrics for session authentication.
func (s *sessionUseCaseWithMetrics) Authenticate(
	ctx context.Context,
	tokenHash string,
) (*adminDomain.Session, error) {
	start := time.Now()
	session, err := s.next.Authenticate(ctx, tokenHash)
	s.record(ctx, "admin_authenticate", start, err)
	return session, err
}

// Logout records metrics for admin logouts.
func (s *sessionUseCaseWithMetrics) Logout(ctx context.Context, tokenHash string) error {
	start := time.Now()
	err := s.next.Logout(ctx, tokenHash)
	s.record(ctx, "admin_logout", start, err)
	return err
}

// PurgeExpired records metrics for session purges.
func (s *sessionUseCaseWithMetrics) PurgeExpired(ctx context.Context, before time.Time, dryRun bool) (int64, error) {
	start := time.Now()
	n, err := s.next.PurgeExpired(ctx, before, dryRun)
	s.record(ctx, "admin_session_purge", start, err)
	return n, err
}
