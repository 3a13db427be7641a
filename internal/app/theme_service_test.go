package app

import (
	"context"
	"errors"
	"testing"

	"blogsphere/internal/adapter/memory"
	"blogsphere/internal/domain"
)

func TestThemeDefaultsToLight(t *testing.T) {
	svc := NewThemeService(memory.New())
	got, err := svc.Current(context.Background())
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if got != domain.ThemeLight {
		t.Errorf("Current = %q; want light", got)
	}
}

func TestThemeTogglePersists(t *testing.T) {
	kv := memory.New()
	svc := NewThemeService(kv)
	ctx := context.Background()

	got, err := svc.Toggle(ctx)
	if err != nil || got != domain.ThemeDark {
		t.Fatalf("Toggle = (%q, %v); want dark", got, err)
	}
	if v, _, _ := kv.Get(ctx, domain.KeyTheme); v != "dark" {
		t.Errorf("stored theme %q", v)
	}

	// A fresh service sees the stored value.
	if cur, _ := NewThemeService(kv).Current(ctx); cur != domain.ThemeDark {
		t.Errorf("reloaded theme %q", cur)
	}

	if got, _ := svc.Toggle(ctx); got != domain.ThemeLight {
		t.Errorf("second Toggle = %q; want light", got)
	}
}

func TestThemeUnknownValueReadsLight(t *testing.T) {
	kv := memory.New()
	_ = kv.Set(context.Background(), domain.KeyTheme, "solarized")

	got, _ := NewThemeService(kv).Current(context.Background())
	if got != domain.ThemeLight {
		t.Errorf("Current = %q; want light", got)
	}
}

func TestThemeToggleSetError(t *testing.T) {
	kv := &mockKV{DB: memory.New(), setFn: func(context.Context, string, string) error { return errDiskFull }}
	got, err := NewThemeService(kv).Toggle(context.Background())
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("expected set error, got %v", err)
	}
	if got != domain.ThemeLight {
		t.Errorf("expected unchanged theme on failure, got %q", got)
	}
}
