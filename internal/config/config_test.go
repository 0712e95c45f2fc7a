package config

import (
	"testing"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:8080" {
		t.Errorf("APIBaseURL = %q, want default", cfg.APIBaseURL)
	}
	if cfg.DefaultDueFilter != "" {
		t.Errorf("DefaultDueFilter = %q, want empty", cfg.DefaultDueFilter)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	want := &Config{
		APIBaseURL:       "http://example.local:9090",
		DefaultDueFilter: "week",
	}
	if err := Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.APIBaseURL != want.APIBaseURL || got.DefaultDueFilter != want.DefaultDueFilter {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}
