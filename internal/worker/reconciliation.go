package worker

import (
	"context"
	"sync"
	"time"

	"homestay-settlement/internal/service"

	"github.com/rs/zerolog"
)

// ReconciliationWorker periodically sweeps the ledger for transfers left
// half-applied and lets the reconciliation service repair them.
type ReconciliationWorker struct {
	service  service.ReconciliationService
	interval time.Duration
	logger   zerolog.Logger
	stopChan chan struct{}
	wg       *sync.WaitGroup
}

func NewReconciliationWorker(svc service.ReconciliationService, interval time.Duration, logger zerolog.Logger) *ReconciliationWorker {
	return &ReconciliationWorker{
		service:  svc,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		wg:       &sync.WaitGroup{},
	}
}

func (w *ReconciliationWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("Reconciliation worker started")

		for {
			select {
			case <-ticker.C:
				w.logger.Debug().Msg("Running reconciliation sweep")
				err := w.service.ReconcileTransfers(ctx)
				if err != nil {
					w.logger.Error().Err(err).Msg("Failed to run reconciliation sweep")
				}
			case <-w.stopChan:
				w.logger.Info().Msg("Reconciliation worker stopping")
				return
			case <-ctx.Done():
				w.logger.Info().Msg("Reconciliation worker stopping (context done)")
				return
			}
		}
	}()
}

func (w *ReconciliationWorker) Stop() {
	close(w.stopChan)
	w.wg.Wait()
}
