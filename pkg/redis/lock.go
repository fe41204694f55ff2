package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const unlockScript = `
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	else
		return 0
	end
`

var ErrLockNotHeld = errors.New("lock was not held by this client")

// Lock is a single attempt SET NX lock shared between instances, the value identifies the holder
type Lock struct {
	client *Client
	key    string
	value  string
	ttl    time.Duration
}

// NewLock creates a lock on namespace::key that expires after ttl when not released
func NewLock(client *Client, namespace, key string, ttl time.Duration) *Lock {
	if namespace != "" {
		key = namespace + "::" + key
	}
	return &Lock{client: client, key: key, value: uuid.NewString(), ttl: ttl}
}

// TryLock acquires the lock without retrying, false means another holder has it
func (l *Lock) TryLock(ctx context.Context) (bool, error) {
	acquired, err := l.client.GetClient().SetNX(ctx, l.key, l.value, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock %s: %w", l.key, err)
	}
	return acquired, nil
}

// Unlock releases the lock only when this holder still owns it
func (l *Lock) Unlock(ctx context.Context) error {
	result, err := l.client.GetClient().Eval(ctx, unlockScript, []string{l.key}, l.value).Int64()
	if err != nil {
		return fmt.Errorf("failed to release lock %s: %w", l.key, err)
	}
	if result == 0 {
		return ErrLockNotHeld
	}
	return nil
}
