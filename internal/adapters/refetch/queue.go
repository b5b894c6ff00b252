// Package refetch provides the deferred pushlog re-fetch facility: a
// Redis-backed task queue, a scheduler that enqueues missing-revision
// tasks at the end of an ingestion batch, and a worker that retries the
// lookups and persists what it recovers.
package refetch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisTaskQueue implements the TaskQueue port over a Redis list. Enqueue
// pushes to the head; Dequeue blocks on the tail, so tasks are delivered
// in FIFO order across any number of workers.
type RedisTaskQueue struct {
	client redis.UniversalClient
	key    string
}

// NewRedisTaskQueue creates a RedisTaskQueue on the given list key.
func NewRedisTaskQueue(client redis.UniversalClient, key string) *RedisTaskQueue {
	return &RedisTaskQueue{client: client, key: key}
}

// Enqueue appends a task payload to the queue.
func (q *RedisTaskQueue) Enqueue(ctx context.Context, payload []byte) error {
	if len(payload) == 0 {
		return errors.New("payload cannot be empty")
	}
	if err := q.client.LPush(ctx, q.key, payload).Err(); err != nil {
		return fmt.Errorf("enqueue task: %w", err)
	}
	return nil
}

// Dequeue blocks up to timeout for the next task. A timeout with no task
// available returns (nil, nil).
func (q *RedisTaskQueue) Dequeue(ctx context.Context, timeout time.Duration) ([]byte, error) {
	result, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("dequeue task: %w", err)
	}
	// BRPop returns [key, value].
	if len(result) != 2 {
		return nil, fmt.Errorf("dequeue task: unexpected reply length %d", len(result))
	}
	return []byte(result[1]), nil
}
