package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gdcworld/clinic-backoffice/internal/core/domain"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyStore remembers created accounts by client-supplied
// Idempotency-Key so a retried create (double-click, retried network call)
// replays the original result instead of hitting the unique-email constraint.
// Key format: idem:account:<key>
type IdempotencyStore struct {
	client *redis.Client
}

// NewIdempotencyStore wraps the given Redis client.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// Lookup returns the remembered account for key, or (nil, nil) on a miss.
func (s *IdempotencyStore) Lookup(ctx context.Context, key string) (*domain.Account, error) {
	raw, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("idempotency lookup: %w", err)
	}
	var account domain.Account
	if err := json.Unmarshal(raw, &account); err != nil {
		return nil, fmt.Errorf("idempotency decode: %w", err)
	}
	return &account, nil
}

// Remember records the create outcome for key (expires after idempotencyTTL).
func (s *IdempotencyStore) Remember(ctx context.Context, key string, account *domain.Account) error {
	raw, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("idempotency encode: %w", err)
	}
	return s.client.Set(ctx, s.key(key), raw, idempotencyTTL).Err()
}

func (s *IdempotencyStore) key(key string) string {
	return "idem:account:" + key
}
