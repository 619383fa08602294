package market

import (
	"context"

	"github.com/osse101/TradingPost_Go/internal/logger"
	"github.com/osse101/TradingPost_Go/internal/metrics"
)

// Reconciler is the part of Repository the reconcile job needs
type Reconciler interface {
	ReconcilePlaceholders(ctx context.Context) (int, error)
}

// ReconcileJob resolves placeholder items when run by the worker pool
type ReconcileJob struct {
	reconciler Reconciler
}

// NewReconcileJob creates a job over r
func NewReconcileJob(r Reconciler) *ReconcileJob {
	return &ReconcileJob{reconciler: r}
}

// Process implements worker.Job
func (j *ReconcileJob) Process(ctx context.Context) error {
	ctx = logger.WithRequestID(ctx, logger.GenerateRequestID())

	if _, err := j.reconciler.ReconcilePlaceholders(ctx); err != nil {
		metrics.ReconciliationsFailed.Inc()
		logger.FromContext(ctx).Error(LogMsgReconcileFailed, "error", err)
		return err
	}
	return nil
}
