// Package config loads cardport settings from YAML with environment overrides
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/cardport/internal/config/colors"
	"github.com/thenoetrevino/cardport/internal/models"
)

// Supported database drivers and blob storage backends
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	BackendDisk = "disk"
	BackendS3   = "s3"
)

// Config represents the application configuration
type Config struct {
	Database Database       `yaml:"database"`
	Storage  Storage        `yaml:"storage"`
	Import   Import         `yaml:"import"`
	Log      Log            `yaml:"log"`
	Colors   colors.Palette `yaml:"colors"`
}

// Database selects the relational store
type Database struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// Storage selects where attachment payloads are written
type Storage struct {
	Backend string      `yaml:"backend"`
	Disk    DiskStorage `yaml:"disk"`
	S3      S3Storage   `yaml:"s3"`
}

// DiskStorage keeps blobs in a local directory tree
type DiskStorage struct {
	Root string `yaml:"root"`
}

// S3Storage keeps blobs in an S3-compatible bucket (AWS, MinIO, ...)
type S3Storage struct {
	Endpoint     string `yaml:"endpoint"`
	Region       string `yaml:"region"`
	Bucket       string `yaml:"bucket"`
	AccessKey    string `yaml:"access_key"`
	SecretKey    string `yaml:"secret_key"`
	UsePathStyle bool   `yaml:"use_path_style"`
}

// Import tunes how source statuses are interpreted
type Import struct {
	TerminalStatuses []string `yaml:"terminal_statuses"`
	ClosedStatus     string   `yaml:"closed_status"`
	PostponedStatus  string   `yaml:"postponed_status"`
	TempDir          string   `yaml:"temp_dir"`
}

// Log configures the slog sink
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"` // "stderr" logs to the terminal
}

var (
	ErrUnknownDriver  = errors.New("unknown database driver")
	ErrUnknownBackend = errors.New("unknown storage backend")
	ErrMissingBucket  = errors.New("s3 storage requires a bucket")
)

// Default returns the configuration used when no file is present
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads the config file at path. An empty path falls back to
// $CARDPORT_CONFIG and then to the user's config directory; only the
// last fallback may be absent, in which case defaults are returned.
// Environment overrides are applied after the file is parsed.
func Load(path string) (*Config, error) {
	explicit := true
	if path == "" {
		path = os.Getenv("CARDPORT_CONFIG")
	}
	if path == "" {
		explicit = false
		p, err := getConfigPath()
		if err != nil {
			c := Default()
			c.applyEnv()
			return c, c.Validate()
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			c := Default()
			c.applyEnv()
			return c, c.Validate()
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	config.applyDefaults()
	config.applyEnv()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate rejects settings no component can serve
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.Database.Driver)
	}

	switch c.Storage.Backend {
	case BackendDisk:
	case BackendS3:
		if c.Storage.S3.Bucket == "" {
			return ErrMissingBucket
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Storage.Backend)
	}
	return nil
}

// IsTerminal reports whether status never materializes as a column
func (i Import) IsTerminal(status string) bool {
	for _, s := range i.TerminalStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// DataDir is where the default database, blobs and logs live (~/.cardport)
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cardport"
	}
	return filepath.Join(home, ".cardport")
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "cardport", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "cardport", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	dataDir := DataDir()

	if c.Database.Driver == "" {
		c.Database.Driver = DriverSQLite
	}
	if c.Database.DSN == "" && c.Database.Driver == DriverSQLite {
		c.Database.DSN = filepath.Join(dataDir, "cardport.db")
	}

	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendDisk
	}
	if c.Storage.Disk.Root == "" {
		c.Storage.Disk.Root = filepath.Join(dataDir, "blobs")
	}
	if c.Storage.S3.Region == "" {
		c.Storage.S3.Region = "us-east-1"
	}

	if len(c.Import.TerminalStatuses) == 0 {
		c.Import.TerminalStatuses = append([]string(nil), models.DefaultTerminalStatuses...)
	}
	if c.Import.ClosedStatus == "" {
		c.Import.ClosedStatus = models.StatusDone
	}
	if c.Import.PostponedStatus == "" {
		c.Import.PostponedStatus = models.StatusNotNow
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Log.File == "" {
		c.Log.File = filepath.Join(dataDir, "logs", "cardport.log")
	}

	c.Colors.ApplyDefaults()
}

// applyEnv lets the environment (or a .env file) override the file
func (c *Config) applyEnv() {
	if v := os.Getenv("CARDPORT_DB_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("CARDPORT_DB_DSN"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("CARDPORT_STORAGE_BACKEND"); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv("CARDPORT_S3_BUCKET"); v != "" {
		c.Storage.S3.Bucket = v
	}
	if v := os.Getenv("CARDPORT_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}
