// Package draft stores pending registration drafts in Redis.
//
// A draft is keyed by the user that requested it, so a token leaked to
// another account resolves to nothing.
package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/wordassist-backend/internal/config"
	"github.com/heartmarshall/wordassist-backend/internal/domain"
)

const keyPrefix = "draft"

// NewClient builds a Redis client from configuration and verifies the
// connection.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// Store persists drafts with a fixed time-to-live.
type Store struct {
	client redis.Cmdable
	ttl    time.Duration
}

// New creates a draft store.
func New(client redis.Cmdable, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func key(userID uuid.UUID, token string) string {
	return keyPrefix + ":" + userID.String() + ":" + token
}

// Save writes the draft, replacing any draft under the same token, and
// resets its expiry.
func (s *Store) Save(ctx context.Context, d domain.Draft) error {
	if d.Token == "" {
		return fmt.Errorf("save draft: empty token")
	}

	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}

	if err := s.client.Set(ctx, key(d.UserID, d.Token), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("save draft %s: %w", d.Token, err)
	}
	return nil
}

// Get returns the draft for the given user and token. Expired, unknown
// and foreign tokens all yield ErrNotFound.
func (s *Store) Get(ctx context.Context, userID uuid.UUID, token string) (*domain.Draft, error) {
	raw, err := s.client.Get(ctx, key(userID, token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("draft %s: %w", token, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get draft %s: %w", token, err)
	}

	var d domain.Draft
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode draft %s: %w", token, err)
	}
	return &d, nil
}

// Delete removes the draft. Deleting a missing draft is not an error.
func (s *Store) Delete(ctx context.Context, userID uuid.UUID, token string) error {
	if err := s.client.Del(ctx, key(userID, token)).Err(); err != nil {
		return fmt.Errorf("delete draft %s: %w", token, err)
	}
	return nil
}

// TTL reports how long a saved draft stays resolvable.
func (s *Store) TTL() time.Duration {
	return s.ttl
}
