package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestToZapLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		DebugLevel: zapcore.DebugLevel,
		InfoLevel:  zapcore.InfoLevel,
		WarnLevel:  zapcore.WarnLevel,
		ErrorLevel: zapcore.ErrorLevel,
		"bogus":    zapcore.DebugLevel,
	}
	for in, want := range cases {
		if got := toZapLevel(in); got != want {
			t.Fatalf("toZapLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestGet_ReturnsSingleton(t *testing.T) {
	a := Get(InfoLevel, FormatConsole)
	b := Get(DebugLevel, FormatJSON)
	if a != b {
		t.Fatal("expected the same logger instance")
	}
}

func TestNew_LevelEnabled(t *testing.T) {
	l := New(WarnLevel, FormatJSON)
	if l.Desugar().Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("info must be disabled at warn level")
	}
	if !l.Desugar().Core().Enabled(zapcore.ErrorLevel) {
		t.Fatal("error must be enabled at warn level")
	}
	child := l.With("component", "test")
	if child.SugaredLogger == nil {
		t.Fatal("With must return a usable logger")
	}
}
