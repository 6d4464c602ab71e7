package league

import (
	"context"
	"errors"
)

var (
	// ErrSnapshotNotFound marks a snapshot source that does not exist.
	ErrSnapshotNotFound = errors.New("league snapshot not found")
	// ErrMalformedSnapshot marks content that cannot be decoded into a League.
	ErrMalformedSnapshot = errors.New("malformed league snapshot")
)

// Loader reads a league snapshot from a source such as a file path. The
// returned league is not validated.
type Loader interface {
	Load(ctx context.Context, source string) (League, error)
}
