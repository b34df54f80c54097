// Package scheduler runs the periodic order status reconciliation sweep,
// decoupled from request handling.
package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/onlineshop/shop-system/internal/api/metrics"
	"github.com/onlineshop/shop-system/internal/core/ports"
)

// reconcileSpec fires at the top of each hour.
const reconcileSpec = "0 * * * *"

// Scheduler owns the cron runner for background maintenance tasks.
type Scheduler struct {
	cron   *cron.Cron
	orders ports.OrderService
	log    zerolog.Logger
}

func New(orders ports.OrderService, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		orders: orders,
		log:    log,
	}
}

// Start registers the hourly sweep and launches the cron runner. The sweep
// has no caller to report to; failures are logged and the next tick retries.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(reconcileSpec, func() {
		transitioned, err := s.orders.ReconcileStatuses(ctx)
		if err != nil {
			s.log.Error().Err(err).Msg("order status sweep failed")
			return
		}
		metrics.OrdersReconciledTotal.Add(float64(transitioned))
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.log.Info().Str("spec", reconcileSpec).Msg("reconciliation scheduler started")
	return nil
}

// Stop halts the runner and waits for an in-flight sweep to finish.
func (s *Scheduler) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
}
