package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initFile routes all logging to a file in a temp dir and restores the
// no-op logger when the test ends.
func initFile(t *testing.T, lvl string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stickman.log")
	if err := InitWithFileConfig(lvl, FileConfig{Path: path, MaxSizeMB: 10}, false); err != nil {
		t.Fatalf("InitWithFileConfig() error = %v", err)
	}
	t.Cleanup(func() {
		Sync()
		Log = zap.NewNop()
		Sugar = Log.Sugar()
		SetLevel("info")
	})
	return path
}

func readLog(t *testing.T, path string) []string {
	t.Helper()
	Sync()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestNopBeforeInit(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	Debug("pointer down", zap.Float64("x", 1))
	Named("picking").Warn("miss")
	Sugar.Infof("stick %d grabbed", 3)
	Sync()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("nop logger wrote %d files", len(entries))
	}
}

func TestCallerPointsAtCallSite(t *testing.T) {
	path := initFile(t, "debug")

	Info("helper")
	Sugar.Infof("sugar %d", 1)
	Named("config").Info("named")

	lines := readLog(t, path)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	for _, l := range lines {
		if !strings.Contains(l, "logger/logger_test.go:") {
			t.Errorf("caller is not the test file: %s", l)
		}
	}
	if !strings.Contains(lines[2], "config") {
		t.Errorf("named logger missing its name: %s", lines[2])
	}
}

func TestSetLevel(t *testing.T) {
	path := initFile(t, "warn")

	Info("hidden")
	Warn("shown")
	SetLevel("debug")
	Debug("after reload")
	SetLevel("error")
	Warn("hidden again")
	Error("still shown")

	lines := readLog(t, path)
	want := []string{"shown", "after reload", "still shown"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), strings.Join(lines, "\n"))
	}
	for i, w := range want {
		if !strings.HasSuffix(lines[i], w) {
			t.Errorf("line %d = %q, want suffix %q", i, lines[i], w)
		}
	}
	if Level() != zapcore.ErrorLevel {
		t.Errorf("Level() = %v, want error", Level())
	}
}

func TestLevelsPerInit(t *testing.T) {
	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warn", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"info", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			path := initFile(t, tt.level)
			Debug("d")
			Info("i")
			Warn("w")
			Error("e")

			content := strings.Join(readLog(t, path), "\n")
			for _, exp := range tt.expected {
				if !strings.Contains(content, exp) {
					t.Errorf("expected %s in log output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(content, exc) {
					t.Errorf("unexpected %s in log output", exc)
				}
			}
		})
	}
}

func TestLogRotation(t *testing.T) {
	dir := t.TempDir()
	cfg := FileConfig{
		Path:       filepath.Join(dir, "stickman.log"),
		MaxSizeMB:  1, // smallest lumberjack allows
		MaxBackups: 2,
	}
	if err := InitWithFileConfig("info", cfg, false); err != nil {
		t.Fatalf("InitWithFileConfig() error = %v", err)
	}
	t.Cleanup(func() {
		Log = zap.NewNop()
		Sugar = Log.Sugar()
	})

	pose := strings.Repeat("0.125,", 40)
	for i := 0; i < 6000; i++ {
		Info("stick moved", zap.Int("tick", i), zap.String("pose", pose))
	}
	Sync()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	rotated := 0
	for _, e := range entries {
		name := e.Name()
		if name != "stickman.log" && strings.HasPrefix(name, "stickman-20") {
			rotated++
		}
	}
	if rotated == 0 {
		t.Errorf("no rotated files in %v", entries)
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/stickman.log")
	want := FileConfig{Path: "/tmp/stickman.log", MaxSizeMB: 20, MaxBackups: 3, MaxAgeDays: 14, Compress: true}
	if cfg != want {
		t.Errorf("DefaultFileConfig() = %+v, want %+v", cfg, want)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"info":    zapcore.InfoLevel,
		"fatal":   zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent to testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
