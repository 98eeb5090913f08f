package config

import (
	"os"
	"testing"
)

func TestGetIntBool(t *testing.T) {
	os.Setenv("X_INT", "42")
	t.Cleanup(func() { os.Unsetenv("X_INT") })
	if v := getInt("X_INT", 1); v != 42 {
		t.Fatalf("want 42, got %d", v)
	}

	os.Setenv("X_BOOL_T", "true")
	os.Setenv("X_BOOL_F", "false")
	t.Cleanup(func() { os.Unsetenv("X_BOOL_T"); os.Unsetenv("X_BOOL_F") })
	if !getBool("X_BOOL_T", false) {
		t.Fatalf("want true")
	}
	if getBool("X_BOOL_F", true) {
		t.Fatalf("want false")
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, store, closer, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if closer != nil {
		t.Cleanup(closer)
	}
	if cfg.Server.Addr == "" {
		t.Fatalf("server addr default missing")
	}
	if cfg.JWT.AccessMin <= 0 || cfg.JWT.RefreshDays <= 0 {
		t.Fatalf("jwt lifetime defaults missing: %+v", cfg.JWT)
	}
	if cfg.ES.ProblemIndex == "" {
		t.Fatalf("problem index default missing")
	}
	if store.Get() != cfg {
		t.Fatalf("store should hold loaded config")
	}
}

func TestStoreWatchAndValidate(t *testing.T) {
	cfg := &Config{}
	s := NewStore(cfg)

	var seen map[string]bool
	unwatch := s.Watch(func(_ *Config, changed map[string]bool) { seen = changed })
	defer unwatch()

	next := cloneConfig(cfg)
	next.Log.Level = "debug"
	if !s.UpdateValidated(next, map[string]bool{"log.level": true}) {
		t.Fatalf("update should pass without validators")
	}
	if !seen["log.level"] {
		t.Fatalf("watcher not notified")
	}
	if s.Get().Log.Level != "debug" {
		t.Fatalf("config not committed")
	}

	unval := s.AddValidator(func(_ *Config, _ map[string]bool) error {
		return os.ErrInvalid
	})
	defer unval()
	bad := cloneConfig(s.Get())
	bad.Log.Level = "error"
	if s.UpdateValidated(bad, map[string]bool{"log.level": true}) {
		t.Fatalf("update should be rejected by validator")
	}
	if s.Get().Log.Level != "debug" {
		t.Fatalf("rejected update must not be applied")
	}
}
