package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	adminUseCase "github.com/allisson/enrollment/internal/admin/usecase"
)

// RunPurgeSessions deletes admin sessions that expired or were revoked more
// than days ago. dryRun only counts them.
func RunPurgeSessions(
	ctx context.Context,
	sessionUseCase adminUseCase.SessionUseCase,
	logger *slog.Logger,
	writer io.Writer,
	now time.Time,
	days int,
	dryRun bool,
	format string,
) error {
	if days < 0 {
		return fmt.Errorf("days must be a positive number, got: %d", days)
	}
	if err := validateFormat(format); err != nil {
		return err
	}

	before := now.AddDate(0, 0, -days)

	logger.Info("purging admin sessions",
		slog.Int("days", days),
		slog.Time("before", before),
		slog.Bool("dry_run", dryRun),
	)

	count, err := sessionUseCase.PurgeExpired(ctx, before, dryRun)
	if err != nil {
		return fmt.Errorf("failed to purge admin sessions: %w", err)
	}

	if format == "json" {
		err = writeJSON(writer, map[string]any{
			"count":   count,
			"days":    days,
			"dry_run": dryRun,
		})
	} else if dryRun {
		_, err = fmt.Fprintf(writer, "Dry-run mode: Would delete %d admin session(s) older than %d day(s)\n", count, days)
	} else {
		_, err = fmt.Fprintf(writer, "Successfully deleted %d admin session(s) older than %d day(s)\n", count, days)
	}
	if err != nil {
		return err
	}

	logger.Info("purge completed", slog.Int64("count", count), slog.Bool("dry_run", dryRun))
	return nil
}
