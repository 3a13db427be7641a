package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"blogsphere/internal/adapter/memory"
	"blogsphere/internal/domain"
	"blogsphere/internal/store"

	"github.com/rs/zerolog"
)

type mockHasher struct {
	hashFn   func(plaintext string) (string, error)
	verifyFn func(digest, plaintext string) bool
}

func (m *mockHasher) Hash(plaintext string) (string, error) {
	if m.hashFn != nil {
		return m.hashFn(plaintext)
	}
	return "h:" + plaintext, nil
}

func (m *mockHasher) Verify(digest, plaintext string) bool {
	if m.verifyFn != nil {
		return m.verifyFn(digest, plaintext)
	}
	return digest == "h:"+plaintext
}

type mockKV struct {
	*memory.DB
	setFn    func(ctx context.Context, key, value string) error
	removeFn func(ctx context.Context, key string) error
}

func (m *mockKV) Set(ctx context.Context, key, value string) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value)
	}
	return m.DB.Set(ctx, key, value)
}

func (m *mockKV) Remove(ctx context.Context, key string) error {
	if m.removeFn != nil {
		return m.removeFn(ctx, key)
	}
	return m.DB.Remove(ctx, key)
}

var errDiskFull = errors.New("disk full")

// stepClock advances one second per reading.
type stepClock struct {
	t time.Time
}

func newStepClock() *stepClock {
	return &stepClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func newTestStore() (*store.Store, *memory.DB) {
	kv := memory.New()
	return store.New(kv), kv
}

func newTestApp(t *testing.T) (*App, *memory.DB) {
	t.Helper()
	st, kv := newTestStore()
	return New(st, &mockHasher{}, zerolog.Nop(), newStepClock().Now), kv
}

func mustRegisterLogin(t *testing.T, a *App, name, email string) domain.User {
	t.Helper()
	ctx := context.Background()
	if _, _, err := a.Register(ctx, name, email, "secret1"); err != nil {
		t.Fatalf("Register(%s): %v", email, err)
	}
	u, _, err := a.Login(ctx, email, "secret1")
	if err != nil {
		t.Fatalf("Login(%s): %v", email, err)
	}
	return u
}

func fieldMessage(t *testing.T, err error, field string) string {
	t.Helper()
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	return verr.Message(field)
}
