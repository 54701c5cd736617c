package domain

import "context"

// ContentStore forwards binary payloads to an external object store.
type ContentStore interface {
	// Store uploads data under name and returns the public reference url.
	// Failures wrap ErrStorage.
	Store(ctx context.Context, data []byte, name string) (string, error)
}
