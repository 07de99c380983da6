package domain

import "context"

// KVStore is the key-value persistence port. It gives no transactions and no secondary
// indexes: a read-modify-write sequence is last-writer-wins.
type KVStore interface {
	// Get returns the value stored under key and whether it exists.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Put(ctx context.Context, key, value string) error
	// List returns every key that starts with prefix, sorted ascending.
	List(ctx context.Context, prefix string) ([]string, error)
}
