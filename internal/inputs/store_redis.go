package inputs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	redisLatestKey    = "renteregner:inputs:latest"
	redisChangedTopic = "renteregner:inputs:changed"
)

// RedisStore shares the latest inputs across instances through Redis,
// with change notifications on a pub/sub channel.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to the Redis instance at url and verifies the
// connection with a ping.
func NewRedisStore(ctx context.Context, url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

// Current implements Store.
func (s *RedisStore) Current(ctx context.Context) (Inputs, bool, error) {
	payload, err := s.client.Get(ctx, redisLatestKey).Result()
	if err == redis.Nil {
		return Inputs{}, false, nil
	}
	if err != nil {
		return Inputs{}, false, fmt.Errorf("get inputs: %w", err)
	}
	var in Inputs
	if err := json.Unmarshal([]byte(payload), &in); err != nil {
		return Inputs{}, false, fmt.Errorf("decode inputs: %w", err)
	}
	return in, true, nil
}

// Put implements Store.
func (s *RedisStore) Put(ctx context.Context, in Inputs) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode inputs: %w", err)
	}
	if err := s.client.Set(ctx, redisLatestKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("set inputs: %w", err)
	}
	if err := s.client.Publish(ctx, redisChangedTopic, payload).Err(); err != nil {
		return fmt.Errorf("publish inputs: %w", err)
	}
	return nil
}

// Subscribe implements Store. Malformed payloads on the channel are
// skipped.
func (s *RedisStore) Subscribe(fn func(Inputs)) (func(), error) {
	pubsub := s.client.Subscribe(context.Background(), redisChangedTopic)
	go func() {
		for msg := range pubsub.Channel() {
			var in Inputs
			if err := json.Unmarshal([]byte(msg.Payload), &in); err != nil {
				continue
			}
			fn(in)
		}
	}()
	return func() { pubsub.Close() }, nil
}

// Close releases the underlying Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
