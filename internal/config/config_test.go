package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CARDPORT_CONFIG", "CARDPORT_DB_DRIVER", "CARDPORT_DB_DSN",
		"CARDPORT_STORAGE_BACKEND", "CARDPORT_S3_BUCKET", "CARDPORT_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestLoadConfigWithoutFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.NotEmpty(t, cfg.Database.DSN)
	assert.Equal(t, BackendDisk, cfg.Storage.Backend)
	assert.Equal(t, []string{"Done", "Not now", "Maybe?"}, cfg.Import.TerminalStatuses)
	assert.Equal(t, "Done", cfg.Import.ClosedStatus)
	assert.Equal(t, "Not now", cfg.Import.PostponedStatus)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfigWithFile(t *testing.T) {
	clearEnv(t)

	configContent := `database:
  driver: sqlite
  dsn: /tmp/custom.db
storage:
  backend: s3
  s3:
    endpoint: http://localhost:9000
    bucket: attachments
    use_path_style: true
import:
  terminal_statuses: ["Shipped"]
  closed_status: Shipped
log:
  level: debug
colors:
  preset: monochrome
  accent: "#00FF00"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(configContent), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom.db", cfg.Database.DSN)
	assert.Equal(t, BackendS3, cfg.Storage.Backend)
	assert.Equal(t, "attachments", cfg.Storage.S3.Bucket)
	assert.True(t, cfg.Storage.S3.UsePathStyle)
	assert.Equal(t, "us-east-1", cfg.Storage.S3.Region, "region should default")
	assert.Equal(t, []string{"Shipped"}, cfg.Import.TerminalStatuses)
	assert.Equal(t, "Shipped", cfg.Import.ClosedStatus)
	assert.Equal(t, "Not now", cfg.Import.PostponedStatus, "unset fields keep defaults")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "#00FF00", cfg.Colors.Accent)
	assert.Equal(t, "#808080", cfg.Colors.Subtle, "palette gaps come from the preset")
}

func TestLoadConfigFromXDG(t *testing.T) {
	clearEnv(t)
	xdg := os.Getenv("XDG_CONFIG_HOME")

	dir := filepath.Join(xdg, "cardport")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log:\n  level: warn\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfigExplicitPathMissing(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("CARDPORT_DB_DRIVER", "postgres")
	t.Setenv("CARDPORT_DB_DSN", "postgres://localhost/cardport")
	t.Setenv("CARDPORT_LOG_LEVEL", "error")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "postgres://localhost/cardport", cfg.Database.DSN)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		cfg := Default()
		cfg.Database.Driver = "oracle"
		assert.True(t, errors.Is(cfg.Validate(), ErrUnknownDriver))
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := Default()
		cfg.Storage.Backend = "ftp"
		assert.True(t, errors.Is(cfg.Validate(), ErrUnknownBackend))
	})

	t.Run("s3 without bucket", func(t *testing.T) {
		cfg := Default()
		cfg.Storage.Backend = BackendS3
		assert.ErrorIs(t, cfg.Validate(), ErrMissingBucket)
	})

	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, Default().Validate())
	})
}

func TestImportIsTerminal(t *testing.T) {
	imp := Default().Import

	assert.True(t, imp.IsTerminal("Done"))
	assert.True(t, imp.IsTerminal("Not now"))
	assert.True(t, imp.IsTerminal("Maybe?"))
	assert.False(t, imp.IsTerminal("Backlog"))
	assert.False(t, imp.IsTerminal("done"), "status matching is case-sensitive")
}
