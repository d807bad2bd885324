package catalog

import (
	"context"
	"invrent-service/internal/app/contracts"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	refreshTimeout      = 30 * time.Second
	fallbackRefreshSpec = "@every 30m"
)

// Worker keeps the category and location cache warm on a cron schedule.
type Worker struct {
	log            *zap.Logger
	catalogUsecase contracts.CatalogUsecase
	spec           string
	cron           *cron.Cron
	warmup         sync.WaitGroup
	runCtx         context.Context
	cancel         context.CancelFunc
}

func NewWorker(logger *zap.Logger, catalogUsecase contracts.CatalogUsecase, spec string) *Worker {
	return &Worker{log: logger, catalogUsecase: catalogUsecase, spec: spec}
}

// Start schedules the refresh and warms the cache once right away. An empty
// spec leaves the worker idle.
func (w *Worker) Start(ctx context.Context) {
	if w.spec == "" {
		w.log.Info("catalog.worker: no refresh spec configured, cache is filled on demand")
		return
	}

	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	_, err := c.AddFunc(w.spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("catalog.worker: invalid refresh spec, falling back to "+fallbackRefreshSpec,
			zap.String("spec", w.spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(fallbackRefreshSpec, func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c

	w.warmup.Add(1)
	go func() {
		defer w.warmup.Done()
		w.runOnce(w.runCtx)
	}()
}

// Stop cancels in-flight refreshes and waits for the warm-up and any
// scheduled run to return.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
	w.warmup.Wait()
}

func (w *Worker) runOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	err := w.catalogUsecase.RefreshCache(ctx)
	if err != nil {
		w.log.Warn("catalog.worker: cache refresh failed", zap.Error(err))
	}
}
