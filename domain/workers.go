package domain

import "context"

// ReconcileQueue accepts food ids whose counters look suspicious.
type ReconcileQueue interface {
	Send(foodID string)
}

type ReconcileWorker interface {
	ReconcileQueue
	Start(ctx context.Context)
}
