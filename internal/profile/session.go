package profile

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

// Resolver derives the pseudo-anonymous cart session for this profile. The
// identifier is generated once, persisted, and stable across invocations. It
// is not tied to any authenticated identity.
type Resolver struct {
	store *Store
}

// NewResolver creates a Resolver over the given profile store.
func NewResolver(store *Store) *Resolver {
	return &Resolver{store: store}
}

// Session returns the stored session identifier, creating and persisting a
// new one on first use.
func (r *Resolver) Session(ctx context.Context) (string, error) {
	id, err := r.store.Get(ctx, KeySession)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return "", err
	}

	id = NewSessionID()
	if err := r.store.Set(ctx, KeySession, id); err != nil {
		return "", err
	}
	return id, nil
}

// NewSessionID generates an opaque session token. Collisions are not
// addressed beyond the randomness of the underlying UUID.
func NewSessionID() string {
	return "sess_" + strings.ReplaceAll(uuid.New().String(), "-", "")
}
