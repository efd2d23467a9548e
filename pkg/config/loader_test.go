package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/walletdesk/pkg/config"
)

type basicConfig struct {
	Name    string        `env:"CFG_TEST_NAME" envDefault:"desk"`
	Port    int           `env:"CFG_TEST_PORT" envDefault:"8080"`
	Timeout time.Duration `env:"CFG_TEST_TIMEOUT" envDefault:"5s"`
}

type requiredConfig struct {
	URL string `env:"CFG_TEST_REQUIRED_URL,required"`
}

type cachedConfig struct {
	Value string `env:"CFG_TEST_CACHED"`
}

type fileConfig struct {
	FromFile string `env:"CFG_TEST_FROM_FILE"`
}

func TestLoad_Defaults(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	cfg, err := config.Load[basicConfig]()
	require.NoError(t, err)
	assert.Equal(t, "desk", cfg.Name)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoad_FromEnv(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)
	t.Setenv("CFG_TEST_NAME", "wallet")
	t.Setenv("CFG_TEST_PORT", "9000")

	cfg, err := config.Load[basicConfig]()
	require.NoError(t, err)
	assert.Equal(t, "wallet", cfg.Name)
	assert.Equal(t, 9000, cfg.Port)
}

func TestLoad_MissingRequired(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	_, err := config.Load[requiredConfig]()
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	assert.Panics(t, func() { config.MustLoad[requiredConfig]() })
}

func TestLoad_Cached(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	t.Setenv("CFG_TEST_CACHED", "first")
	first, err := config.Load[cachedConfig]()
	require.NoError(t, err)

	t.Setenv("CFG_TEST_CACHED", "second")
	again, err := config.Load[cachedConfig]()
	require.NoError(t, err)
	assert.Equal(t, "first", again.Value)
	assert.Equal(t, first, again)

	config.Reset()
	reloaded := config.MustLoad[cachedConfig]()
	assert.Equal(t, "second", reloaded.Value)
}

func TestLoad_EnvFile(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)
	t.Cleanup(func() { _ = os.Unsetenv("CFG_TEST_FROM_FILE") })

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CFG_TEST_FROM_FILE=hello\n"), 0o600))

	cfg, err := config.Load[fileConfig](path)
	require.NoError(t, err)
	assert.Equal(t, "hello", cfg.FromFile)
}

func TestLoad_MissingEnvFileIgnored(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	_, err := config.Load[basicConfig](filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
}

func TestLoad_NonStruct(t *testing.T) {
	_, err := config.Load[string]()
	assert.ErrorIs(t, err, config.ErrInvalidConfigType)
}
