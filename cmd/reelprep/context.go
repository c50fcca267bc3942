package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"reelprep/internal/config"
	"reelprep/internal/logging"
	"reelprep/internal/media/audio"
	"reelprep/internal/project"
)

type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.LoadWithOverrides(path, c.overrides())
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) overrides() config.Overrides {
	return config.Overrides{
		LogLevel:  flagValue(c.logLevelFlag),
		LogFormat: flagValue(c.logFormatFlag),
	}
}

// session bundles what a project command needs for one invocation.
type session struct {
	cfg      *config.Config
	logger   *slog.Logger
	ctx      context.Context
	closeLog func() error
}

// newSession loads configuration and builds a logger tagged with a fresh
// run id. Logs go to the command's stderr so stdout stays parseable. Callers
// must defer close.
func (c *commandContext) newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	var paths []string
	if cfg.Logging.File != "" {
		paths = append(paths, cfg.Logging.File)
	}
	logger, closeLog, err := logging.New(logging.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Writer:    cmd.ErrOrStderr(),
		JSONPaths: paths,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	runID := uuid.NewString()
	ctx := logging.WithRunID(cmd.Context(), runID)
	logger = logging.WithContext(ctx, logger)
	return &session{cfg: cfg, logger: logger, ctx: ctx, closeLog: closeLog}, nil
}

// close releases the session's log file, if any.
func (s *session) close() error {
	if s == nil || s.closeLog == nil {
		return nil
	}
	return s.closeLog()
}

func (s *session) prober() *audio.Prober {
	return audio.NewProber(s.cfg.Media.FFprobeBinary, s.logger)
}

// withProjectLock opens the project folder and runs fn while holding its
// output lock.
func withProjectLock(folder string, fn func(*project.Project) error) error {
	p, err := project.Open(folder)
	if err != nil {
		return err
	}
	release, err := p.Lock()
	if err != nil {
		return err
	}
	defer func() { _ = release() }()
	return fn(p)
}

func flagValue(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
