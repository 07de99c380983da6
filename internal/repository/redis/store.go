// Package redis provides a domain.KVStore on top of a Redis server.
package redis

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"
)

const scanBatch = 200

// Store keeps every value as a plain Redis string under namespace+key.
type Store struct {
	rdb       redis.UniversalClient
	namespace string
}

// Open parses a redis:// URL, connects and pings the server.
func Open(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

// NewStore returns a Store that prefixes all keys with namespace, e.g. "conference:".
func NewStore(rdb redis.UniversalClient, namespace string) *Store {
	return &Store{rdb: rdb, namespace: namespace}
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.rdb.Get(ctx, s.namespace+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) Put(ctx context.Context, key, value string) error {
	if err := s.rdb.Set(ctx, s.namespace+key, value, 0).Err(); err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

// List walks the keyspace with SCAN. SCAN may return a key more than once, so
// results are deduplicated before sorting.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	seen := make(map[string]struct{})
	iter := s.rdb.Scan(ctx, 0, MatchPattern(s.namespace+prefix), scanBatch).Iterator()
	for iter.Next(ctx) {
		key := strings.TrimPrefix(iter.Val(), s.namespace)
		seen[key] = struct{}{}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan %q: %w", prefix, err)
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

// MatchPattern escapes glob metacharacters in prefix and appends "*".
func MatchPattern(prefix string) string {
	var b strings.Builder
	for _, r := range prefix {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('*')
	return b.String()
}
