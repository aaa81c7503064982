package datasources

import "context"

// KeyValueStore persists raw string values under string keys.
type KeyValueStore interface {
	KeyValueGetter
	KeyValueSetter
}

type KeyValueGetter interface {
	// Get returns found=false with no error when the key has never been set.
	Get(ctx context.Context, key string) (value string, found bool, err error)
}

type KeyValueSetter interface {
	Set(ctx context.Context, key, value string) error
}
