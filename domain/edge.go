package domain

import (
	"context"
	"time"
)

// EdgeKind is the kind of membership a user can toggle on a food
type EdgeKind string

const (
	EdgeLike EdgeKind = "like"
	EdgeSave EdgeKind = "save"
)

// EdgeKinds lists every kind that owns a counter on Food.
var EdgeKinds = []EdgeKind{EdgeLike, EdgeSave}

func (k EdgeKind) Valid() bool {
	return k == EdgeLike || k == EdgeSave
}

// CounterColumn is the denormalized counter kept in sync with edges of this kind.
func (k EdgeKind) CounterColumn() string {
	switch k {
	case EdgeLike:
		return "like_count"
	case EdgeSave:
		return "save_count"
	default:
		return ""
	}
}

func (k EdgeKind) String() string {
	return string(k)
}

// Edge is representing a like or save record.
// At most one edge exists per (UserID, FoodID, Kind).
type Edge struct {
	UserID    string
	FoodID    string
	Kind      EdgeKind
	CreatedAt time.Time
}

// ToggleResult is the state after a completed toggle.
type ToggleResult struct {
	Active   bool
	NewCount int64
	// Clamped is set when an "off" toggle found the counter already at zero.
	Clamped bool
}

// ReconcileReport describes one counter checked against its edge set.
type ReconcileReport struct {
	FoodID   string
	Kind     EdgeKind
	Stored   int64
	Actual   int64
	Repaired bool
}

// MembershipStore flips edges and counters atomically.
type MembershipStore interface {
	// Toggle removes the edge if present, creates it otherwise, and moves the
	// counter by exactly one in the same transaction.
	// Returns ErrNotFound for an unknown food, ErrUnauthenticated for an unknown user,
	// ErrConflict when a concurrent toggle won the race, ErrStorage otherwise.
	Toggle(ctx context.Context, e Edge) (ToggleResult, error)

	// Reconcile recomputes every counter of a food from its edges and overwrites
	// the ones that disagree.
	Reconcile(ctx context.Context, foodID string) ([]ReconcileReport, error)
}

// KeyLocker hands out mutual exclusion scoped to a single key.
type KeyLocker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// ToggleEngine is the core toggle-and-counter operation.
type ToggleEngine interface {
	Toggle(ctx context.Context, p Principal, foodID string, kind EdgeKind) (ToggleResult, error)
}

// Reconciler is the out-of-band repair path for counters.
type Reconciler interface {
	ReconcileFood(ctx context.Context, foodID string) ([]ReconcileReport, error)
	ReconcileAll(ctx context.Context, batch int64) (int, error)
}
