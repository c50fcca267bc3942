package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeSubtitles()
	c.normalizeImages()
	c.normalizeAudio()
	c.normalizeMedia()
	return c.normalizeLogging()
}

func (c *Config) normalizeSubtitles() {
	c.Subtitles.OutputName = strings.TrimSpace(c.Subtitles.OutputName)
	if c.Subtitles.OutputName == "" {
		c.Subtitles.OutputName = defaultSubtitleName
	}
}

func (c *Config) normalizeImages() {
	format := strings.ToLower(strings.TrimSpace(c.Images.Format))
	c.Images.Format = strings.TrimPrefix(format, ".")
	if c.Images.Format == "" {
		c.Images.Format = defaultImageFormat
	}
}

func (c *Config) normalizeAudio() {
	if c.Audio.Prefix == "" {
		c.Audio.Prefix = defaultAudioPrefix
	}
	exts := make([]string, 0, len(c.Audio.Extensions))
	seen := make(map[string]struct{}, len(c.Audio.Extensions))
	for _, ext := range c.Audio.Extensions {
		normalized := strings.ToLower(strings.TrimSpace(ext))
		if normalized == "" {
			continue
		}
		if !strings.HasPrefix(normalized, ".") {
			normalized = "." + normalized
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		exts = append(exts, normalized)
	}
	if len(exts) == 0 {
		exts = []string{defaultAudioExtension}
	}
	c.Audio.Extensions = exts
}

func (c *Config) normalizeMedia() {
	if value, ok := os.LookupEnv(envFFprobeBinary); ok && strings.TrimSpace(value) != "" {
		c.Media.FFprobeBinary = strings.TrimSpace(value)
	}
	c.Media.FFprobeBinary = strings.TrimSpace(c.Media.FFprobeBinary)
	if c.Media.FFprobeBinary == "" {
		c.Media.FFprobeBinary = defaultFFprobeBinary
	}
}

func (c *Config) normalizeLogging() error {
	if value, ok := os.LookupEnv(envLogFormat); ok && strings.TrimSpace(value) != "" {
		c.Logging.Format = value
	}
	if value, ok := os.LookupEnv(envLogLevel); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.File) != "" {
		path, err := expandPath(c.Logging.File)
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = filepath.Clean(path)
	}
	return nil
}
