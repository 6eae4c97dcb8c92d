package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cloudprep/ccpquiz/internal/quiz"
)

// RedisStore keeps snapshots under quiz:session:<id> with a sliding TTL, for
// deployments that want sessions shared across instances.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func key(id string) string { return fmt.Sprintf("quiz:session:%s", id) }

func (r *RedisStore) Save(ctx context.Context, id string, s *quiz.Session) error {
	buf, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key(id), buf, r.ttl).Err()
}

func (r *RedisStore) Load(ctx context.Context, id string) (*quiz.Session, error) {
	buf, err := r.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var s quiz.Session
	if err := json.Unmarshal(buf, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, key(id)).Err()
}
