package logger

import (
	"testing"

	"github.com/astrasync/astrasync-client/internal/config"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInitSetsPackageLogger(t *testing.T) {
	prev := S
	defer func() { S = prev }()

	sugar, err := Init(&config.Config{LogLevel: "error"})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if S != sugar {
		t.Fatalf("expected package logger to be set")
	}
	if !sugar.Desugar().Core().Enabled(zapcore.ErrorLevel) || sugar.Desugar().Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("unexpected level configuration")
	}
}

func TestHelpersNoopWithoutInit(t *testing.T) {
	prev := S
	S = nil
	defer func() { S = prev }()

	InfoObj("msg", "k", 1)
	Sugared{}.DebugObj("msg", "k", 1)
	if err := Close(); err != nil {
		t.Fatalf("Close without init: %v", err)
	}
}
