package domain

import "context"

// Keys used in the key-value store.
const (
	KeyUsers       = "users"
	KeyPosts       = "posts"
	KeyComments    = "comments"
	KeyCurrentUser = "currentUser"
	KeyTheme       = "theme"
)

// KVStore is the port for the flat string-keyed persistence store.
// Get reports ok == false for a missing key. Remove of a missing key is not
// an error.
type KVStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
