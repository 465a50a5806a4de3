package config

import (
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.IntervalMS != 1000 {
		t.Errorf("IntervalMS = %d, want 1000", cfg.IntervalMS)
	}
	if cfg.ProcessLimit != 12 {
		t.Errorf("ProcessLimit = %d, want 12", cfg.ProcessLimit)
	}
}

func TestInterval(t *testing.T) {
	tests := []struct {
		name string
		ms   int
		want time.Duration
	}{
		{"default", 1000, time.Second},
		{"custom", 250, 250 * time.Millisecond},
		{"zero falls back", 0, time.Second},
		{"negative falls back", -5, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{IntervalMS: tt.ms}
			if got := cfg.Interval(); got != tt.want {
				t.Errorf("Interval() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	want := Config{IntervalMS: 2000, ProcessLimit: 20, BarWidth: 30}
	if err := Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got := Load()
	if got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if got := Load(); got != Default() {
		t.Errorf("Load() = %+v, want defaults", got)
	}
}
