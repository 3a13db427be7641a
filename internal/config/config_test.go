package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Store.Backend != BackendBolt {
		t.Errorf("backend = %q; want bolt", cfg.Store.Backend)
	}
	if cfg.Store.BoltPath != "blogsphere.db" || cfg.Store.SQLitePath != "blogsphere.sqlite" {
		t.Errorf("unexpected paths %+v", cfg.Store)
	}
	if cfg.BcryptCost != 10 {
		t.Errorf("bcrypt cost = %d; want 10", cfg.BcryptCost)
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != FormatJSON {
		t.Errorf("unexpected log config %+v", cfg.Log)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BLOGSPHERE_STORE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://blog@localhost/blog?sslmode=disable")
	t.Setenv("BLOGSPHERE_BCRYPT_COST", "4")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "pretty")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Store.Backend != BackendPostgres || cfg.Store.DatabaseURL == "" {
		t.Errorf("unexpected store config %+v", cfg.Store)
	}
	if cfg.BcryptCost != 4 || cfg.Log.Level != "debug" || cfg.Log.Format != FormatPretty {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("BLOGSPHERE_BCRYPT_COST", "ten")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		Store:      StoreConfig{Backend: BackendMemory},
		Log:        LogConfig{Level: "info", Format: FormatJSON},
		BcryptCost: 10,
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"unknown backend", func(c *Config) { c.Store.Backend = "redis" }, `unknown store "redis"`},
		{"postgres without url", func(c *Config) { c.Store.Backend = BackendPostgres }, "DATABASE_URL is required"},
		{"cost too low", func(c *Config) { c.BcryptCost = 3 }, "out of range"},
		{"cost too high", func(c *Config) { c.BcryptCost = 32 }, "out of range"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "LOG_LEVEL"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "LOG_FORMAT"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestValidateReportsAllErrors(t *testing.T) {
	cfg := Config{Store: StoreConfig{Backend: "x"}, Log: LogConfig{Level: "x", Format: "x"}}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"unknown store", "BLOGSPHERE_BCRYPT_COST", "LOG_LEVEL", "LOG_FORMAT"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in %v", want, err)
		}
	}
}
