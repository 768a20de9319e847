package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestConfig_Finalize_Defaults(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}
	if cfg.Level != LevelInfo {
		t.Errorf("Level = %s, want %s", cfg.Level, LevelInfo)
	}
	if cfg.Format != FormatText {
		t.Errorf("Format = %s, want %s", cfg.Format, FormatText)
	}
}

func TestConfig_Finalize_EnvOverrides(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL", "error")
	t.Setenv("TEST_LOG_FORMAT", "json")

	cfg := &Config{Level: LevelDebug}
	if err := cfg.Finalize(&Env{Level: "TEST_LOG_LEVEL", Format: "TEST_LOG_FORMAT"}); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}
	if cfg.Level != LevelError {
		t.Errorf("Level = %s, want %s (env override)", cfg.Level, LevelError)
	}
	if cfg.Format != FormatJSON {
		t.Errorf("Format = %s, want %s (env override)", cfg.Format, FormatJSON)
	}
}

func TestConfig_Finalize_ValidationErrors(t *testing.T) {
	for _, cfg := range []Config{{Level: "verbose"}, {Format: "xml"}} {
		if err := cfg.Finalize(nil); err == nil {
			t.Errorf("Finalize(%+v) succeeded, want error", cfg)
		}
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := &Config{Level: LevelInfo, Format: FormatText}
	cfg.Merge(&Config{Format: FormatJSON})
	if cfg.Level != LevelInfo || cfg.Format != FormatJSON {
		t.Errorf("Merge() = %+v", cfg)
	}
}

func TestLevel_ToSlogLevel(t *testing.T) {
	tests := map[Level]slog.Level{
		LevelDebug: slog.LevelDebug,
		LevelInfo:  slog.LevelInfo,
		LevelWarn:  slog.LevelWarn,
		LevelError: slog.LevelError,
		"unknown":  slog.LevelInfo,
	}
	for in, want := range tests {
		if got := in.ToSlogLevel(); got != want {
			t.Errorf("%s.ToSlogLevel() = %v, want %v", in, got, want)
		}
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, &Config{Level: LevelWarn, Format: FormatJSON}).Info("hidden")
	New(&buf, &Config{Level: LevelWarn, Format: FormatJSON}).Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record written at warn level: %s", out)
	}
	if !strings.Contains(out, `"msg":"shown"`) {
		t.Errorf("expected JSON record, got %s", out)
	}

	buf.Reset()
	New(&buf, &Config{Level: LevelInfo, Format: FormatText}).Info("plain")
	if !strings.Contains(buf.String(), "msg=plain") {
		t.Errorf("expected text record, got %s", buf.String())
	}
}
