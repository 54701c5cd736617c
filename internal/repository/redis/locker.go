package redis

import (
	"context"
	"time"

	"github.com/go-redsync/redsync/v4"
	gors "github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/food-reels/domain"
)

const KeyLockPrefix = "lock:"

// LockOptions tunes how long a key lock lives and how hard Lock tries.
type LockOptions struct {
	Expiry     time.Duration
	Tries      int
	RetryDelay time.Duration
}

type keyLocker struct {
	rs   *redsync.Redsync
	opts LockOptions
}

var _ domain.KeyLocker = (*keyLocker)(nil)

// NewKeyLocker returns a distributed per-key mutex backed by redsync.
func NewKeyLocker(client redis.UniversalClient, opts LockOptions) *keyLocker {
	if opts.Expiry <= 0 {
		opts.Expiry = 5 * time.Second
	}
	if opts.Tries <= 0 {
		opts.Tries = 32
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = 20 * time.Millisecond
	}
	return &keyLocker{
		rs:   redsync.New(gors.NewPool(client)),
		opts: opts,
	}
}

func (l *keyLocker) Lock(ctx context.Context, key string) (func(), error) {
	mutex := l.rs.NewMutex(KeyLockPrefix+key,
		redsync.WithExpiry(l.opts.Expiry),
		redsync.WithTries(l.opts.Tries),
		redsync.WithRetryDelay(l.opts.RetryDelay),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}

	return func() {
		// the caller's ctx may already be done; release must still reach redis
		if _, err := mutex.UnlockContext(context.Background()); err != nil {
			logrus.Warnf("failed to release lock %s: %v", key, err)
		}
	}, nil
}
