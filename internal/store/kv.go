/**
 * @description
 * This file provides a typed key-value store over Redis. The store is generic
 * over the value type: each stored entity kind gets its own `KV[T]` instance,
 * so callers always read and write fully-typed values and the serialization
 * format is owned in one place.
 *
 * Values are serialized to JSON before storage and deserialized back on read.
 * Field names follow the camelCase tags on the value type; optional fields are
 * omitted from the encoded form when empty and decode back to their zero
 * values. Connectivity and timeout failures from the Redis client are returned
 * to the caller unmodified; this layer performs no retries.
 *
 * @dependencies
 * - context, encoding/json, time: Standard Go libraries.
 * - github.com/redis/go-redis/v9: The Redis client.
 */

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// KV is a typed key-value store for values of type T, backed by Redis.
// The zero expiry means the entry never times out.
type KV[T any] struct {
	client redis.UniversalClient
}

// NewKV creates a typed store over the given Redis client. The client is a
// long-lived shared handle, safe for concurrent use across requests.
func NewKV[T any](client redis.UniversalClient) *KV[T] {
	return &KV[T]{client: client}
}

// Save serializes the value and stores it under the given key, overwriting
// any existing entry. It reports whether the write was acknowledged.
func (s *KV[T]) Save(ctx context.Context, key string, value T, expiry time.Duration) (bool, error) {
	encoded, err := encodeValue(value)
	if err != nil {
		return false, err
	}
	if err := s.client.Set(ctx, key, encoded, expiry).Err(); err != nil {
		return false, err
	}
	return true, nil
}

// Get retrieves and deserializes the value stored under the given key.
// It returns (nil, nil) when no entry exists.
func (s *KV[T]) Get(ctx context.Context, key string) (*T, error) {
	encoded, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	return decodeValue[T](encoded)
}

// Delete removes the entry stored under the given key. It reports whether an
// entry existed and was removed.
func (s *KV[T]) Delete(ctx context.Context, key string) (bool, error) {
	removed, err := s.client.Del(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return removed > 0, nil
}

func encodeValue[T any](value T) ([]byte, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode value: %w", err)
	}
	return encoded, nil
}

func decodeValue[T any](encoded []byte) (*T, error) {
	var value T
	if err := json.Unmarshal(encoded, &value); err != nil {
		return nil, fmt.Errorf("failed to decode stored value: %w", err)
	}
	return &value, nil
}
