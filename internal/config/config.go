package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directories owned by assetkit itself.
type Paths struct {
	StateDir string `toml:"state_dir"`
}

// Stripper contains configuration for the sprite background stripper.
type Stripper struct {
	// Dir is the directory holding the sprite images.
	Dir string `toml:"dir"`
	// Files lists the image names inside Dir that are processed, in order.
	Files []string `toml:"files"`
	// Threshold is the minimum value every color channel must reach for a
	// pixel to be erased. Default: 240
	Threshold int `toml:"threshold"`
	// OutputDir receives the processed images. Empty rewrites the sources in place.
	OutputDir string `toml:"output_dir"`
}

// Vocab contains configuration for the vocabulary sorter.
type Vocab struct {
	Input            string `toml:"input"`
	Output           string `toml:"output"`
	Marker           string `toml:"marker"`
	SentinelCategory string `toml:"sentinel_category"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for assetkit.
//
// Configuration sections by subsystem:
//   - Paths: state directory for the run history database and log file
//   - Stripper: sprite directory, file list, and brightness threshold
//   - Vocab: vocabulary source file, output path, and parsing markers
//   - Logging: log format and level
type Config struct {
	Paths    Paths    `toml:"paths"`
	Stripper Stripper `toml:"stripper"`
	Vocab    Vocab    `toml:"vocab"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/assetkit/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath("~/.config/assetkit/config.toml")
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("assetkit.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the state directory used for history and logs.
func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(c.Paths.StateDir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", c.Paths.StateDir, err)
	}
	return nil
}

// HistoryPath returns the SQLite database that records past runs.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.Paths.StateDir, "history.db")
}

// LogPath returns the file every run appends its log lines to.
func (c *Config) LogPath() string {
	return filepath.Join(c.Paths.StateDir, "assetkit.log")
}

// VocabOutput returns the configured sorter output, falling back to the
// _sorted sibling of the input.
func (c *Config) VocabOutput() string {
	if strings.TrimSpace(c.Vocab.Output) != "" {
		return c.Vocab.Output
	}
	return SortedSibling(c.Vocab.Input)
}

// SortedSibling inserts "_sorted" ahead of the extension: vocab.ts becomes vocab_sorted.ts.
func SortedSibling(input string) string {
	if input == "" {
		return ""
	}
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_sorted" + ext
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

func defaultStateDir() string {
	if base, ok := os.LookupEnv("XDG_STATE_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "assetkit")
	}
	return defaultStateDirFallback
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Encode renders the effective configuration as TOML.
func (c *Config) Encode() (string, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return string(data), nil
}
