package reconcile

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

// AckStore persists which detection events have already been shown and
// handled (or dismissed), so the same event is never re-prompted.
type AckStore interface {
	Acknowledge(ctx context.Context, eventID string) error
	Acknowledged(ctx context.Context, eventID string) (bool, error)
}

const ackKeyPrefix = "droidsweep:reconcile:ack:"

// RedisAckStore keeps acknowledgments in redis with no expiry; suppression
// is sticky per event, not per process lifetime.
type RedisAckStore struct{ rdb *redis.Client }

func NewRedisAckStore(rdb *redis.Client) *RedisAckStore { return &RedisAckStore{rdb: rdb} }

func (s *RedisAckStore) Acknowledge(ctx context.Context, eventID string) error {
	return s.rdb.SetNX(ctx, ackKeyPrefix+eventID, "1", 0).Err()
}

func (s *RedisAckStore) Acknowledged(ctx context.Context, eventID string) (bool, error) {
	n, err := s.rdb.Exists(ctx, ackKeyPrefix+eventID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MemoryAckStore is the fallback when no redis is configured, and the fake
// used in tests. Suppression then lasts for the process lifetime only.
type MemoryAckStore struct {
	mu   sync.Mutex
	seen map[string]bool
}

func NewMemoryAckStore() *MemoryAckStore { return &MemoryAckStore{seen: map[string]bool{}} }

func (s *MemoryAckStore) Acknowledge(_ context.Context, eventID string) error {
	s.mu.Lock()
	s.seen[eventID] = true
	s.mu.Unlock()
	return nil
}

func (s *MemoryAckStore) Acknowledged(_ context.Context, eventID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seen[eventID], nil
}
