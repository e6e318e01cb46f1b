package i

import "context"

// SolutionCache keeps encoded solutions for a limited time.
type SolutionCache interface {
	// Get returns the cached value and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key with the cache TTL.
	Set(ctx context.Context, key string, value []byte) error

	// Lock acquires a mutex for key shared by every service instance.
	// The returned function releases it.
	Lock(ctx context.Context, key string) (func(), error)
}
