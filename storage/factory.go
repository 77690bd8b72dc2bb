package storage

import (
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the Redis key used when none is configured.
const DefaultRedisKey = "3d-keychain-store"

// New constructs a Backend by kind: "memory", "file" or "redis".
// File backends read path; redis backends read addr; memory ignores
// both.
func New(kind, path, addr string) (Backend, error) {
	switch kind {
	case "memory", "mem":
		return NewMemoryBackend(), nil
	case "file":
		if path == "" {
			return nil, fmt.Errorf("file path required for file backend")
		}
		return NewFileBackend(path), nil
	case "redis":
		if addr == "" {
			return nil, fmt.Errorf("redis address required for redis backend")
		}
		client := redis.NewClient(&redis.Options{Addr: addr})
		return NewRedisBackend(client, DefaultRedisKey), nil
	default:
		return nil, fmt.Errorf("unknown backend kind: %s", kind)
	}
}
