package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"office97/internal/logger"
	"office97/internal/window"
)

//go:embed sample_config.toml
var sampleConfig string

const (
	AppDirName     = "office97"
	UserDataName   = "Office97"
	ConfigFileName = "office97.toml"
)

type Paths struct {
	UserDataDir string `toml:"user_data_dir"`
}

type Logging struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}

// Shell holds window orchestration settings.
type Shell struct {
	LegacyLauncher   bool     `toml:"legacy_launcher"`
	Persistent       *bool    `toml:"persistent"`
	ComposeDelayMS   int      `toml:"compose_delay_ms"`
	SplashDurationMS int      `toml:"splash_duration_ms"`
	BridgedApps      []string `toml:"bridged_apps"`
}

type Server struct {
	Bind    string `toml:"bind"`
	DistDir string `toml:"dist_dir"`
}

type Config struct {
	Paths   Paths   `toml:"paths"`
	Logging Logging `toml:"logging"`
	Shell   Shell   `toml:"shell"`
	Server  Server  `toml:"server"`
}

func Default() Config {
	return Config{
		Logging: Logging{Level: "info"},
		Shell: Shell{
			SplashDurationMS: 3000,
			BridgedApps:      []string{"word", "excel", "powerpoint", "access", "outlook"},
		},
		Server: Server{
			Bind:    "0.0.0.0:8096",
			DistDir: "dist",
		},
	}
}

// DefaultPath returns <user config dir>/office97/office97.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, AppDirName, ConfigFileName), nil
}

// Load reads the config at path. A missing file yields the defaults. When
// path is empty the default location is used.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(&cfg)
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("OFFICE97_USER_DATA"); v != "" {
		cfg.Paths.UserDataDir = v
	}
	if v := os.Getenv("OFFICE97_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if os.Getenv("OFFICE97_DEBUG") == "1" {
		cfg.Logging.Level = "debug"
	}
	if os.Getenv("OFFICE97_JSON_LOGS") == "true" {
		cfg.Logging.JSON = true
	}
}

func (c *Config) normalize() error {
	if c.Paths.UserDataDir == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("resolve user data dir: %w", err)
		}
		c.Paths.UserDataDir = filepath.Join(dir, UserDataName)
	}
	c.Paths.UserDataDir = expandHome(c.Paths.UserDataDir)
	c.Server.DistDir = expandHome(c.Server.DistDir)
	if c.Shell.SplashDurationMS <= 0 {
		c.Shell.SplashDurationMS = Default().Shell.SplashDurationMS
	}
	return nil
}

func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if c.Shell.ComposeDelayMS < 0 {
		return fmt.Errorf("shell.compose_delay_ms must not be negative")
	}
	for _, name := range c.Shell.BridgedApps {
		if _, ok := window.ParseApp(name); !ok {
			return fmt.Errorf("shell.bridged_apps: unknown app %q", name)
		}
	}
	if strings.TrimSpace(c.Server.Bind) == "" {
		return fmt.Errorf("server.bind must be set")
	}
	return nil
}

// PersistentProcess reports whether the process outlives its last window.
func (c *Config) PersistentProcess() bool {
	if c.Shell.Persistent != nil {
		return *c.Shell.Persistent
	}
	return runtime.GOOS == "darwin"
}

func (c *Config) ComposeDelay() time.Duration {
	return time.Duration(c.Shell.ComposeDelayMS) * time.Millisecond
}

func (c *Config) SplashDuration() time.Duration {
	return time.Duration(c.Shell.SplashDurationMS) * time.Millisecond
}

// BridgedKinds resolves bridged_apps into window kinds.
func (c *Config) BridgedKinds() []window.Kind {
	kinds := make([]window.Kind, 0, len(c.Shell.BridgedApps))
	for _, name := range c.Shell.BridgedApps {
		if k, ok := window.ParseApp(name); ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// CreateSample writes the sample config to path. Existing files are left alone.
func CreateSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(path, []byte(sampleConfig), 0o644)
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
