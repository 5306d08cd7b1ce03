package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateStripper(); err != nil {
		return err
	}
	if err := c.validateVocab(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateStripper() error {
	if c.Stripper.Threshold < 0 || c.Stripper.Threshold > 255 {
		return fmt.Errorf("stripper.threshold must be between 0 and 255, got %d", c.Stripper.Threshold)
	}
	if strings.TrimSpace(c.Stripper.Dir) == "" {
		return errors.New("stripper.dir must be set")
	}
	if len(c.Stripper.Files) == 0 {
		return errors.New("stripper.files must list at least one image")
	}
	for _, name := range c.Stripper.Files {
		if filepath.Base(name) != name {
			return fmt.Errorf("stripper.files entry %q must be a bare file name", name)
		}
	}
	return nil
}

func (c *Config) validateVocab() error {
	if strings.TrimSpace(c.Vocab.Input) == "" {
		return errors.New("vocab.input must be set")
	}
	if filepath.Clean(c.VocabOutput()) == filepath.Clean(c.Vocab.Input) {
		return fmt.Errorf("vocab.output must differ from vocab.input (%s)", c.Vocab.Input)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
