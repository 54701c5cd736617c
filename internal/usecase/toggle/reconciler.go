package toggle

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/food-reels/domain"
	"github.com/Guyuepp/food-reels/internal/metrics"
)

// IDSource pages through every food id in ascending order.
type IDSource interface {
	FetchIDs(ctx context.Context, cursor string, limit int64) ([]string, error)
}

type Reconciler struct {
	store domain.MembershipStore
	ids   IDSource
}

var _ domain.Reconciler = (*Reconciler)(nil)

func NewReconciler(store domain.MembershipStore, ids IDSource) *Reconciler {
	return &Reconciler{
		store: store,
		ids:   ids,
	}
}

// ReconcileFood recomputes the counters of one food from its edges.
func (r *Reconciler) ReconcileFood(ctx context.Context, foodID string) ([]domain.ReconcileReport, error) {
	if foodID == "" {
		return nil, domain.ErrNotFound
	}

	reports, err := r.store.Reconcile(ctx, foodID)
	if err != nil {
		return nil, err
	}
	for _, rep := range reports {
		if rep.Repaired {
			metrics.ReconcileRepairsTotal.WithLabelValues(rep.Kind.String()).Inc()
		}
	}
	return reports, nil
}

// ReconcileAll walks every food in batches and returns the number of repaired counters.
// A food deleted between listing and reconciling is skipped.
func (r *Reconciler) ReconcileAll(ctx context.Context, batch int64) (int, error) {
	if batch <= 0 {
		return 0, fmt.Errorf("reconcile batch %d: %w", batch, domain.ErrBadParamInput)
	}

	repaired, checked := 0, 0
	cursor := ""
	for {
		if err := ctx.Err(); err != nil {
			return repaired, err
		}

		ids, err := r.ids.FetchIDs(ctx, cursor, batch)
		if err != nil {
			return repaired, err
		}

		for _, id := range ids {
			reports, err := r.ReconcileFood(ctx, id)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					continue
				}
				return repaired, err
			}
			checked++
			for _, rep := range reports {
				if rep.Repaired {
					repaired++
				}
			}
		}

		if int64(len(ids)) < batch {
			break
		}
		cursor = ids[len(ids)-1]
	}

	logrus.WithFields(logrus.Fields{
		"checked":  checked,
		"repaired": repaired,
	}).Info("reconcile sweep finished")
	return repaired, nil
}
