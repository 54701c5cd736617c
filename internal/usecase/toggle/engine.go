// Package toggle flips like and save edges and keeps the food counters in step.
package toggle

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/food-reels/domain"
	"github.com/Guyuepp/food-reels/internal/metrics"
)

// maxAttempts bounds the store calls per toggle: the first try plus one retry on conflict.
const maxAttempts = 2

type Engine struct {
	store  domain.MembershipStore
	locker domain.KeyLocker
	queue  domain.ReconcileQueue
}

var _ domain.ToggleEngine = (*Engine)(nil)

// NewEngine builds the engine. locker and queue may be nil.
func NewEngine(store domain.MembershipStore, locker domain.KeyLocker, queue domain.ReconcileQueue) *Engine {
	return &Engine{
		store:  store,
		locker: locker,
		queue:  queue,
	}
}

// LockKey is the mutual exclusion key of one (kind, user, food) triple.
func LockKey(kind domain.EdgeKind, userID, foodID string) string {
	return fmt.Sprintf("toggle:%s:%s:%s", kind, userID, foodID)
}

// Toggle flips the edge of kind between p and foodID and returns the state it ends in.
func (e *Engine) Toggle(ctx context.Context, p domain.Principal, foodID string, kind domain.EdgeKind) (res domain.ToggleResult, err error) {
	if p.IsZero() || p.Kind != domain.PrincipalUser {
		return domain.ToggleResult{}, domain.ErrUnauthenticated
	}
	if !kind.Valid() {
		return domain.ToggleResult{}, fmt.Errorf("toggle kind %q: %w", kind, domain.ErrBadParamInput)
	}
	if foodID == "" {
		return domain.ToggleResult{}, domain.ErrNotFound
	}

	defer func() {
		e.observe(kind, res, err)
	}()

	unlock := e.lock(ctx, LockKey(kind, p.ID, foodID))
	defer unlock()

	edge := domain.Edge{UserID: p.ID, FoodID: foodID, Kind: kind}
	for attempt := 1; ; attempt++ {
		res, err = e.store.Toggle(ctx, edge)
		if err == nil || !errors.Is(err, domain.ErrConflict) || attempt >= maxAttempts {
			break
		}
		metrics.ToggleRetryTotal.Inc()
		logrus.WithFields(logrus.Fields{
			"user_id": p.ID,
			"food_id": foodID,
			"kind":    kind,
		}).Debugf("toggle conflict, retrying: %v", err)
	}
	if err != nil {
		return domain.ToggleResult{}, err
	}

	if res.Clamped {
		logrus.WithFields(logrus.Fields{
			"user_id": p.ID,
			"food_id": foodID,
			"kind":    kind,
		}).Warn("counter already at zero on removal, queued for reconciliation")
		if e.queue != nil {
			e.queue.Send(foodID)
		}
	}
	return res, nil
}

// lock takes the per-key lock. When the locker is down the toggle proceeds unlocked,
// the storage transaction alone keeps edges and counters consistent.
func (e *Engine) lock(ctx context.Context, key string) func() {
	if e.locker == nil {
		return func() {}
	}
	unlock, err := e.locker.Lock(ctx, key)
	if err != nil {
		logrus.Warnf("toggle lock %s unavailable, continuing without it: %v", key, err)
		return func() {}
	}
	if unlock == nil {
		return func() {}
	}
	return unlock
}

func (e *Engine) observe(kind domain.EdgeKind, res domain.ToggleResult, err error) {
	result := "off"
	switch {
	case err != nil:
		result = "error"
	case res.Active:
		result = "on"
	}
	metrics.ToggleTotal.WithLabelValues(kind.String(), result).Inc()
	if err == nil && res.Clamped {
		metrics.CounterClampTotal.WithLabelValues(kind.String()).Inc()
	}
}
