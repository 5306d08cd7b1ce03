package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"assetkit/internal/config"
	"assetkit/internal/history"
	"assetkit/internal/logging"
)

type globalFlags struct {
	configPath string
	logLevel   string
	logFormat  string
	verbose    bool
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(strings.TrimSpace(c.flags.configPath))
		if err != nil {
			c.configErr = err
			return
		}
		if level := strings.ToLower(strings.TrimSpace(c.flags.logLevel)); level != "" {
			cfg.Logging.Level = level
		}
		if format := strings.ToLower(strings.TrimSpace(c.flags.logFormat)); format != "" {
			cfg.Logging.Format = format
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
		c.configSeen = exists
	})
	return c.config, c.configErr
}

// runSession ties one tool invocation to its history record and logger.
type runSession struct {
	cfg    *config.Config
	store  *history.Store
	run    *history.Run
	logger *slog.Logger
	ctx    context.Context

	closeLog logging.CloseFunc
}

func (c *commandContext) beginRun(ctx context.Context, cfg *config.Config, tool history.Tool) (*runSession, error) {
	store, err := history.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	run, err := store.Begin(ctx, tool)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("record run: %w", err)
	}
	logger, closeLog, err := logging.NewFromConfig(cfg, run.ID, c.flags.verbose)
	if err != nil {
		_ = store.Finish(ctx, run.ID, history.RunFailed, err.Error())
		store.Close()
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return &runSession{
		cfg:    cfg,
		store:  store,
		run:    run,
		logger: logger,
		ctx:    logging.WithTool(ctx, string(tool)),

		closeLog: closeLog,
	}, nil
}

// finish records the terminal status. Cancellation of the command context
// must not prevent the record from being written.
func (s *runSession) finish(status history.RunStatus, summary string) {
	ctx := context.WithoutCancel(s.ctx)
	if err := s.store.Finish(ctx, s.run.ID, status, summary); err != nil {
		s.logger.Warn("failed to record run result", logging.Error(err))
	}
	s.logger.Info("run finished",
		logging.String("status", string(status)),
		logging.String("summary", summary),
	)
}

func (s *runSession) close() {
	if err := s.store.Close(); err != nil {
		s.logger.Warn("failed to close history store", logging.Error(err))
	}
	if s.closeLog != nil {
		if err := s.closeLog(); err != nil {
			fmt.Fprintf(os.Stderr, "assetkit: close log file: %v\n", err)
		}
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func commandContextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
