package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/wippyai/archive/codec"
	"github.com/wippyai/archive/errors"
	"github.com/wippyai/archive/frame"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.Limits.MaxLength != 0 {
		t.Errorf("MaxLength: got %d, want 0", c.Limits.MaxLength)
	}
	if opts := c.CodecOptions(); len(opts) != 0 {
		t.Errorf("CodecOptions: got %d options, want none", len(opts))
	}
	if got := c.FrameLimit(); got != frame.DefaultMaxLength {
		t.Errorf("FrameLimit: got %d, want %d", got, frame.DefaultMaxLength)
	}
	if !c.Frame {
		t.Error("Frame: got false, want true")
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	c, err := Load(strings.NewReader(`
limits:
  max_length: 4
log:
  level: debug
  encoding: json
frame: false
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Limits.MaxLength != 4 || c.FrameLimit() != 4 {
		t.Errorf("MaxLength: got %d, want 4", c.Limits.MaxLength)
	}
	if c.Log.Level != "debug" || c.Log.Encoding != "json" {
		t.Errorf("Log: got %+v", c.Log)
	}
	if c.Frame {
		t.Error("Frame: got true, want false")
	}
}

func TestLoad_KeepsDefaults(t *testing.T) {
	for _, input := range []string{"", "log:\n  development: true\n"} {
		c, err := Load(strings.NewReader(input))
		if err != nil {
			t.Fatalf("Load(%q): %v", input, err)
		}
		if c.Limits.MaxLength != 0 || c.Log.Level != "info" || !c.Frame {
			t.Errorf("Load(%q): defaults lost: %+v", input, c)
		}
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown key", "limits:\n  max_len: 3\n"},
		{"malformed", "limits: [\n"},
		{"bad level", "log:\n  level: loud\n"},
		{"bad encoding", "log:\n  encoding: xml\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input))
			var e *errors.Error
			if !errors.As(err, &e) {
				t.Fatalf("got %v, want *errors.Error", err)
			}
			if e.Phase != errors.PhaseLoad {
				t.Errorf("phase: got %s, want load", e.Phase)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.yaml")
	if err := os.WriteFile(path, []byte("limits:\n  max_length: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	data, _ := codec.Marshal(codec.SliceOf(codec.Uint8), []uint8{1, 2, 3})
	var out []uint8
	err = codec.Unmarshal(codec.SliceOf(codec.Uint8, c.CodecOptions()...), data, &out)
	if got := errors.Status(err); got != errors.StatusOverflow {
		t.Errorf("status: got %d, want %d", got, errors.StatusOverflow)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file: expected error")
	}
}

func TestLogger(t *testing.T) {
	c := Default()
	c.Log.Development = true
	c.Log.Level = "warn"

	l, err := c.Logger()
	if err != nil {
		t.Fatalf("Logger: %v", err)
	}
	if l.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug enabled at warn level")
	}
}
