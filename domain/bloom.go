package domain

import "context"

type BloomRepository interface {
	// Add puts an ID into the filter
	Add(ctx context.Context, id string) error

	// Exists checks whether the ID may exist.
	// true: may exist, the store has to be asked.
	// false: definitely absent.
	Exists(ctx context.Context, id string) (bool, error)

	// BulkAdd adds many IDs in one round trip
	BulkAdd(ctx context.Context, ids []string) error
}
