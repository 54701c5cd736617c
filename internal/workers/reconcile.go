package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/food-reels/domain"
)

const (
	defaultQueueSize     = 1024
	defaultFlushInterval = 5 * time.Second
	defaultSweepBatch    = 500
	batchSize            = 100
	shutdownFlushTimeout = 10 * time.Second
)

type ReconcileOptions struct {
	QueueSize     int
	FlushInterval time.Duration
	// SweepInterval of zero disables the periodic full sweep.
	SweepInterval time.Duration
	SweepBatch    int64
}

type reconcileWorker struct {
	reconciler domain.Reconciler
	opts       ReconcileOptions
	ch         chan string
}

var _ domain.ReconcileWorker = (*reconcileWorker)(nil)

func NewReconcileWorker(r domain.Reconciler, opts ReconcileOptions) *reconcileWorker {
	if opts.QueueSize <= 0 {
		opts.QueueSize = defaultQueueSize
	}
	if opts.FlushInterval <= 0 {
		opts.FlushInterval = defaultFlushInterval
	}
	if opts.SweepBatch <= 0 {
		opts.SweepBatch = defaultSweepBatch
	}
	return &reconcileWorker{
		reconciler: r,
		opts:       opts,
		ch:         make(chan string, opts.QueueSize),
	}
}

// Send queues a food for reconciliation. It never blocks; a full queue drops the id
// and the next sweep picks the food up.
func (w *reconcileWorker) Send(foodID string) {
	select {
	case w.ch <- foodID:
	default:
		logrus.Warnf("reconcile queue is full, food %s dropped", foodID)
	}
}

func (w *reconcileWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.opts.FlushInterval)
	defer ticker.Stop()

	var sweep <-chan time.Time
	if w.opts.SweepInterval > 0 {
		sweepTicker := time.NewTicker(w.opts.SweepInterval)
		defer sweepTicker.Stop()
		sweep = sweepTicker.C
	}

	batch := make([]string, 0, batchSize)
	for {
		select {
		case id := <-w.ch:
			batch = append(batch, id)
			if len(batch) == batchSize {
				w.flush(ctx, batch)
				batch = make([]string, 0, batchSize)
			}
		case <-ticker.C:
			if len(batch) > 0 {
				w.flush(ctx, batch)
				batch = make([]string, 0, batchSize)
			}
		case <-sweep:
			if _, err := w.reconciler.ReconcileAll(ctx, w.opts.SweepBatch); err != nil {
				logrus.Errorf("reconcile sweep failed: %v", err)
			}
		case <-ctx.Done():
			logrus.Info("shutting down ReconcileWorker, flushing remaining foods...")
			batch = w.drain(batch)
			flushCtx, cancel := context.WithTimeout(context.Background(), shutdownFlushTimeout)
			w.flush(flushCtx, batch)
			cancel()
			return
		}
	}
}

func (w *reconcileWorker) drain(batch []string) []string {
	for {
		select {
		case id := <-w.ch:
			batch = append(batch, id)
		default:
			return batch
		}
	}
}

func (w *reconcileWorker) flush(ctx context.Context, batch []string) {
	seen := make(map[string]struct{}, len(batch))
	for _, id := range batch {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		if _, err := w.reconciler.ReconcileFood(ctx, id); err != nil {
			logrus.Errorf("failed to reconcile food %s: %v", id, err)
		}
	}
}
