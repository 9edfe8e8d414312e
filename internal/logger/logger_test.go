package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	for _, scenario := range []struct {
		name  string
		json  bool
		debug bool
	}{
		{name: "console info", json: false, debug: false},
		{name: "json debug", json: true, debug: true},
	} {
		t.Run(scenario.name, func(t *testing.T) {
			logger, err := New(scenario.json, scenario.debug)
			if err != nil {
				t.Fatalf("creating logger: %s", err)
			}
			if logger == nil {
				t.Fatal("expected a logger")
			}
		})
	}
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	enriched := WithFields(logger, zap.String(FieldMatchID, "abc-123"))
	enriched.Info("scored")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].ContextMap()[FieldMatchID] != "abc-123" {
		t.Fatalf("unexpected match_id field: %+v", entries[0].ContextMap())
	}

	enriched = WithFields(nil, zap.String("k", "v"))
	if enriched == nil {
		t.Fatal("expected fallback logger when nil provided")
	}
	enriched.Info("no panic")
}

func TestTruncateForLog(t *testing.T) {
	if got := TruncateForLog("  hello world  ", 5); got != "hello..." {
		t.Fatalf("unexpected truncation: %q", got)
	}
	if got := TruncateForLog("short", 10); got != "short" {
		t.Fatalf("expected passthrough, got %q", got)
	}
	if got := TruncateForLog("anything", 0); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
