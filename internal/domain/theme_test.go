package domain_test

import (
	"testing"

	"blogsphere/internal/domain"
)

func TestParseTheme(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  domain.Theme
	}{
		{"dark", "dark", domain.ThemeDark},
		{"light", "light", domain.ThemeLight},
		{"empty", "", domain.ThemeLight},
		{"unknown", "sepia", domain.ThemeLight},
		{"case sensitive", "Dark", domain.ThemeLight},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.ParseTheme(tc.value)
			if got != tc.want {
				t.Errorf("ParseTheme(%q) = %q; want %q", tc.value, got, tc.want)
			}
		})
	}
}

func TestThemeToggle(t *testing.T) {
	if got := domain.ThemeLight.Toggle(); got != domain.ThemeDark {
		t.Errorf("light.Toggle() = %q; want dark", got)
	}
	if got := domain.ThemeDark.Toggle(); got != domain.ThemeLight {
		t.Errorf("dark.Toggle() = %q; want light", got)
	}
}
