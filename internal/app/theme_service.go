package app

import (
	"context"

	"blogsphere/internal/domain"
)

// ThemeService reads and flips the stored colour theme.
type ThemeService struct {
	kv domain.KVStore
}

// NewThemeService creates a ThemeService over kv.
func NewThemeService(kv domain.KVStore) *ThemeService {
	return &ThemeService{kv: kv}
}

// Current returns the stored theme, light when unset.
func (s *ThemeService) Current(ctx context.Context) (domain.Theme, error) {
	v, _, err := s.kv.Get(ctx, domain.KeyTheme)
	if err != nil {
		return domain.ThemeLight, err
	}
	return domain.ParseTheme(v), nil
}

// Toggle flips and stores the theme, returning the new value.
func (s *ThemeService) Toggle(ctx context.Context) (domain.Theme, error) {
	cur, err := s.Current(ctx)
	if err != nil {
		return cur, err
	}
	next := cur.Toggle()
	if err := s.kv.Set(ctx, domain.KeyTheme, string(next)); err != nil {
		return cur, err
	}
	return next, nil
}
