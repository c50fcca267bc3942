package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSubtitles(); err != nil {
		return err
	}
	if err := c.validateImages(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSubtitles() error {
	if c.Subtitles.MaxWords <= 0 {
		return errors.New("subtitles.max_words must be positive")
	}
	if strings.ContainsAny(c.Subtitles.OutputName, `/\`) {
		return fmt.Errorf("subtitles.output_name must be a file name, got %q", c.Subtitles.OutputName)
	}
	return nil
}

func (c *Config) validateImages() error {
	if strings.ContainsAny(c.Images.Format, `/\ .`) {
		return fmt.Errorf("images.format must be a bare extension such as \"png\", got %q", c.Images.Format)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}
