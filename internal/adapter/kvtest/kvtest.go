// Package kvtest provides a shared behaviour suite for domain.KVStore adapters.
package kvtest

import (
	"context"
	"testing"

	"blogsphere/internal/domain"
)

// Run exercises the get/set/remove contract against kv. The store must be
// empty when Run starts.
func Run(t *testing.T, kv domain.KVStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		v, ok, err := kv.Get(ctx, "missing")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if ok || v != "" {
			t.Fatalf("expected missing key, got %q (ok=%v)", v, ok)
		}
	})

	t.Run("set and get", func(t *testing.T) {
		if err := kv.Set(ctx, domain.KeyTheme, "dark"); err != nil {
			t.Fatalf("Set: %v", err)
		}
		v, ok, err := kv.Get(ctx, domain.KeyTheme)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if !ok || v != "dark" {
			t.Fatalf("expected dark, got %q (ok=%v)", v, ok)
		}
	})

	t.Run("overwrite", func(t *testing.T) {
		payload := `[{"id":1,"title":"Hi"}]`
		if err := kv.Set(ctx, domain.KeyPosts, "[]"); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if err := kv.Set(ctx, domain.KeyPosts, payload); err != nil {
			t.Fatalf("Set: %v", err)
		}
		v, _, err := kv.Get(ctx, domain.KeyPosts)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if v != payload {
			t.Fatalf("expected %q, got %q", payload, v)
		}
	})

	t.Run("remove", func(t *testing.T) {
		if err := kv.Set(ctx, domain.KeyCurrentUser, `{"id":7}`); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if err := kv.Remove(ctx, domain.KeyCurrentUser); err != nil {
			t.Fatalf("Remove: %v", err)
		}
		if _, ok, _ := kv.Get(ctx, domain.KeyCurrentUser); ok {
			t.Fatal("expected key removed")
		}
		if err := kv.Remove(ctx, domain.KeyCurrentUser); err != nil {
			t.Fatalf("Remove missing key: %v", err)
		}
	})
}
