package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLoggerInit(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize default logger: %v", err)
	}
	defer func() {
		if err := Sync(); err != nil {
			t.Errorf("failed to sync logger: %v", err)
		}
	}()

	if Get() == nil {
		t.Fatal("logger is nil after initialization")
	}

	if err := Init(WithFormat("xml")); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if err := Init(WithLevel("loud")); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(WithFormat(FormatJSON), WithWriter(&buf)); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	ctx := context.Background()
	Get().Info(ctx, "draft finished",
		String("strategy", "balanced"),
		Int("size", 15),
		Bool("complete", true),
		Duration("took", time.Millisecond),
		Error(errors.New("boom")),
	)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not json: %v: %s", err, buf.String())
	}
	if entry["msg"] != "draft finished" {
		t.Errorf("unexpected msg: %v", entry["msg"])
	}
	if entry["strategy"] != "balanced" || entry["size"] != float64(15) || entry["complete"] != true {
		t.Errorf("fields missing: %v", entry)
	}
	if src, _ := entry["source"].(string); !strings.Contains(src, "logger_test.go") {
		t.Errorf("source should point at the caller, got %q", src)
	}
}

func TestLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(WithWriter(&buf), WithLevel("warn")); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	ctx := context.Background()
	Get().Info(ctx, "hidden")
	Get().Debug(ctx, "hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}

	Get().Warn(ctx, "visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Fatalf("expected warn output, got %q", buf.String())
	}

	if err := SetLevelString("debug"); err != nil {
		t.Fatalf("set level: %v", err)
	}
	Get().Debug(ctx, "now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Fatalf("expected debug output after level change, got %q", buf.String())
	}
}

func TestLoggerNamed(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(WithWriter(&buf)); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	ctx := context.Background()
	Named("engine").With(String("run_id", "r1")).Info(ctx, "test message", String("k", "v"))

	out := buf.String()
	if !strings.Contains(out, "run_id=r1") || !strings.Contains(out, "engine.k=v") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestNop(t *testing.T) {
	Nop().Error(context.Background(), "discarded", Error(errors.New("x")))
}
