package bundle

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/BrandonKowalski/fragnav/pkg/fragnav/constants"
)

// ErrNotFound is returned by Load when nothing is stored under the key.
var ErrNotFound = errors.New("bundle: key not found")

// Bundle is a key-value container for saved navigation state.
type Bundle interface {
	// Save stores blob under key, overwriting any previous value.
	Save(ctx context.Context, key string, blob []byte) error

	// Load returns the blob stored under key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying connection.
	Close() error
}

// NewSessionKey returns a unique key for one navigation session.
func NewSessionKey() string {
	return constants.SessionKeyPrefix + uuid.NewString()
}

// LoadOrNil returns the blob stored under key, or nil if there is none.
// It is meant for feeding fragnav.Options.SavedState directly.
func LoadOrNil(ctx context.Context, b Bundle, key string) ([]byte, error) {
	blob, err := b.Load(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return blob, err
}
