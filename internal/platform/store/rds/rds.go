// Package rds provides a byte oriented redis client
package rds

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config configures redis connectivity
type Config struct {
	Addr     string
	Password string
	DB       int
}

// RDS wraps a go-redis client behind a small kv surface
type RDS struct {
	c *redis.Client
}

// Open builds a client; connectivity is lazy, call Ping to verify
func Open(_ context.Context, cfg Config) (*RDS, error) {
	if cfg.Addr == "" {
		return nil, errors.New("rds: empty addr")
	}
	c := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &RDS{c: c}, nil
}

// Get returns the raw value for key; a miss is (nil, false, nil)
func (r *RDS) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := r.c.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// Set writes val under key with ttl; ttl <= 0 means no expiry
func (r *RDS) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	return r.c.Set(ctx, key, val, ttl).Err()
}

// Ping verifies connectivity
func (r *RDS) Ping(ctx context.Context) error {
	return r.c.Ping(ctx).Err()
}

// Close releases the underlying pool
func (r *RDS) Close() error {
	return r.c.Close()
}
