package logger

import (
	"errors"
	"testing"
	"time"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("expected level 'info', got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format 'console', got %q", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected output 'stdout', got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected Timestamp to default to true")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{Level: "info", Format: "json", Output: "stdout"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}

	cfg.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}

	cfg.Level = "info"
	cfg.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestNew_InvalidLevelFallsBack(t *testing.T) {
	l := New(&Config{Level: "bogus", Format: "json", Output: "stdout"}, "test")
	if l == nil {
		t.Fatal("expected logger despite invalid level")
	}
}

func TestFields_Builder(t *testing.T) {
	m := Fields("op", "infer", "model", "mock-general", "tokens", 42)
	if m["op"] != "infer" || m["model"] != "mock-general" || m["tokens"] != 42 {
		t.Errorf("unexpected fields map: %v", m)
	}
}

func TestFields_OddPairs(t *testing.T) {
	m := Fields("op", "infer", "dangling")
	if len(m) != 1 {
		t.Errorf("expected dangling key dropped, got %v", m)
	}
}

func TestErrorFields(t *testing.T) {
	m := ErrorFields("infer", errors.New("boom"))
	if m[FieldOperation] != "infer" {
		t.Errorf("expected operation field, got %v", m)
	}
	if m[FieldError] != "boom" {
		t.Errorf("expected error field, got %v", m)
	}
}

func TestDurationFields(t *testing.T) {
	m := DurationFields("infer", 1500*time.Millisecond)
	if m[FieldDuration] != int64(1500) {
		t.Errorf("expected 1500ms, got %v", m[FieldDuration])
	}
}

func TestRegistry_GetFallsBackToComponent(t *testing.T) {
	l := Get("nonexistent-component")
	if l == nil {
		t.Fatal("expected component-tagged fallback logger")
	}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	custom := NewDefault("custom-service")
	Register("custom", custom)
	if got := Get("custom"); got != custom {
		t.Error("expected registered logger back from Get")
	}
}
