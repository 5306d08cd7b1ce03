package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeStripper(); err != nil {
		return err
	}
	if err := c.normalizeVocab(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir()
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeStripper() error {
	c.Stripper.Dir = fallback(c.Stripper.Dir, "ASSETKIT_STRIP_DIR", defaultStripperDir)
	var err error
	if c.Stripper.Dir, err = expandPath(strings.TrimSpace(c.Stripper.Dir)); err != nil {
		return fmt.Errorf("stripper.dir: %w", err)
	}
	if c.Stripper.OutputDir, err = expandPath(strings.TrimSpace(c.Stripper.OutputDir)); err != nil {
		return fmt.Errorf("stripper.output_dir: %w", err)
	}

	files := make([]string, 0, len(c.Stripper.Files))
	seen := make(map[string]struct{}, len(c.Stripper.Files))
	for _, name := range c.Stripper.Files {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		files = append(files, trimmed)
	}
	c.Stripper.Files = files
	return nil
}

func (c *Config) normalizeVocab() error {
	c.Vocab.Input = fallback(c.Vocab.Input, "ASSETKIT_VOCAB_INPUT", defaultVocabInput)
	var err error
	if c.Vocab.Input, err = expandPath(strings.TrimSpace(c.Vocab.Input)); err != nil {
		return fmt.Errorf("vocab.input: %w", err)
	}
	if c.Vocab.Output, err = expandPath(strings.TrimSpace(c.Vocab.Output)); err != nil {
		return fmt.Errorf("vocab.output: %w", err)
	}
	if strings.TrimSpace(c.Vocab.Marker) == "" {
		c.Vocab.Marker = defaultVocabMarker
	}
	c.Vocab.SentinelCategory = strings.TrimSpace(c.Vocab.SentinelCategory)
	if c.Vocab.SentinelCategory == "" {
		c.Vocab.SentinelCategory = defaultSentinelCategory
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// fallback keeps an explicit value, then tries the environment variable, then def.
func fallback(value, envKey, def string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	if env, ok := os.LookupEnv(envKey); ok && strings.TrimSpace(env) != "" {
		return strings.TrimSpace(env)
	}
	return def
}
