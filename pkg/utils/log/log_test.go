package log

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/yeisme/fsummary/pkg/configs"
)

func withConsole(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev, prevLevel := consoleOut, zerolog.GlobalLevel()
	consoleOut = &buf
	t.Cleanup(func() {
		consoleOut = prev
		zerolog.SetGlobalLevel(prevLevel)
		globalLogger = nil
	})
	return &buf
}

func TestInitLogger_JSONConsole(t *testing.T) {
	buf := withConsole(t)
	logger := InitLogger(context.Background(), &configs.LogConfig{Level: "info", JSON: true, Mode: "console"}, &configs.AppConfig{Name: "fsummary"})

	logger.Debug().Msg("hidden")
	logger.Info().Str("path", "a.txt").Msg("analyzed")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line should be filtered at info level: %s", out)
	}
	if !strings.Contains(out, `"path":"a.txt"`) {
		t.Fatalf("expected json field in output, got: %s", out)
	}
	if GetLogger() != logger {
		t.Fatalf("GetLogger should return the initialized logger")
	}
}

func TestInitLogger_Quiet(t *testing.T) {
	buf := withConsole(t)
	logger := InitLogger(context.Background(), &configs.LogConfig{Level: "trace", JSON: true}, &configs.AppConfig{Quiet: true, Debug: true})

	logger.Error().Msg("nothing")
	if buf.Len() != 0 {
		t.Fatalf("quiet mode should discard logs, got: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"bogus":   zerolog.WarnLevel,
		"":        zerolog.WarnLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLevelFor(t *testing.T) {
	cfg := &configs.LogConfig{Level: "error"}
	tests := []struct {
		name string
		app  configs.AppConfig
		want zerolog.Level
	}{
		{"config", configs.AppConfig{}, zerolog.ErrorLevel},
		{"verbose", configs.AppConfig{Verbose: true}, zerolog.InfoLevel},
		{"debug over verbose", configs.AppConfig{Debug: true, Verbose: true}, zerolog.DebugLevel},
		{"quiet over debug", configs.AppConfig{Quiet: true, Debug: true}, zerolog.Disabled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := levelFor(cfg, &tt.app); got != tt.want {
				t.Fatalf("levelFor = %v, want %v", got, tt.want)
			}
		})
	}
}
