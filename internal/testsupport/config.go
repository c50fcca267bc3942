package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"reelprep/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a default config whose ffprobe binary points at a path
// that does not exist, so tests never reach a real ffprobe by accident.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Media.FFprobeBinary = filepath.Join(base, "bin", "ffprobe-missing")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithMaxWords overrides the subtitle cue word limit.
func WithMaxWords(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Subtitles.MaxWords = n
	}
}

// WithImageFormat overrides the image file extension.
func WithImageFormat(format string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Images.Format = format
	}
}

// WithAudioExtensions overrides which audio extensions count as scene clips.
func WithAudioExtensions(exts ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Audio.Extensions = exts
	}
}

// WithFFprobeStub writes a shell script that answers every probe with the
// given container duration in seconds and points the config at it.
func WithFFprobeStub(seconds float64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Media.FFprobeBinary = WriteFFprobeStub(b.t, filepath.Join(b.baseDir, "bin"), seconds)
	}
}

// WriteFFprobeStub creates an executable ffprobe replacement in dir and
// returns its path.
func WriteFFprobeStub(t testing.TB, dir string, seconds float64) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir bin dir: %v", err)
	}
	script := fmt.Sprintf("#!/bin/sh\necho '{\"streams\":[{\"index\":0,\"codec_type\":\"audio\"}],\"format\":{\"duration\":\"%.3f\"}}'\n", seconds)
	target := filepath.Join(dir, "ffprobe")
	if err := os.WriteFile(target, []byte(script), 0o755); err != nil {
		t.Fatalf("write ffprobe stub: %v", err)
	}
	return target
}
