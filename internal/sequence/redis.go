package sequence

import (
	"context"

	"github.com/go-redis/redis/v8"

	"github.com/VimashaVishvani/MediWise-Healthcare-System-sub001/internal/httperr"
)

// NewRedisClient parses a redis URL and verifies the connection before
// the allocator is put in front of bookings.
func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return client, nil
}

// RedisAllocator allocates codes with a single INCR, which is atomic on
// the redis side, so no two callers can observe the same value.
type RedisAllocator struct {
	client *redis.Client
	key    string
}

func NewRedisAllocator(client *redis.Client) *RedisAllocator {
	return &RedisAllocator{
		client: client,
		key:    "mediwise:" + CounterName,
	}
}

func (a *RedisAllocator) Next(ctx context.Context) (string, error) {
	n, err := a.client.Incr(ctx, a.key).Result()
	if err != nil {
		return "", httperr.ErrBusiness(httperr.CodeAllocationUnavailable)
	}
	return Format(n), nil
}

var _ Allocator = (*RedisAllocator)(nil)
