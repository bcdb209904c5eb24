package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"blog-api/internal/domain"
	"blog-api/internal/logger"
)

var domainErrors = []error{
	domain.ErrValidation,
	domain.ErrDuplicateEmail,
	domain.ErrInvalidCredentials,
	domain.ErrUnauthorized,
	domain.ErrForbidden,
	domain.ErrNotFound,
	domain.ErrStoreUnavailable,
}

func isDomainError(err error) bool {
	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

type noopReporter struct{}

func (noopReporter) ReportFailure(error) {}

// storeGuard turns raw repository failures into ErrStoreUnavailable and
// reports them. Domain errors pass through untouched.
type storeGuard struct {
	reporter FailureReporter
}

func newStoreGuard(reporter FailureReporter) storeGuard {
	if reporter == nil {
		reporter = noopReporter{}
	}
	return storeGuard{reporter: reporter}
}

func (g storeGuard) check(ctx context.Context, op string, err error) error {
	if err == nil || isDomainError(err) {
		return err
	}
	g.reporter.ReportFailure(err)
	logger.ErrorContext(ctx, "Store operation failed",
		slog.String("operation", op),
		slog.String("error", err.Error()))
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}
