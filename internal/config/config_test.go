package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "subdays.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestNewConfig_Valid(t *testing.T) {
	assert.NoError(t, Validate(NewConfig()))
}

func TestParseConfig(t *testing.T) {
	path := writeConfig(t, `
[bench]
benchtime = "20000x"
count = 3
setup-mode = "per-iteration"
cases = ["date-fns"]

[run]
timeout = "2m"

[output]
format = "json"

[logging]
level = "debug"
`)

	cfg := NewConfig()
	require.NoError(t, ParseConfig(path, cfg))

	assert.Equal(t, "20000x", cfg.Bench.Benchtime)
	assert.Equal(t, 3, cfg.Bench.Count)
	assert.Equal(t, "per-iteration", cfg.Bench.SetupMode)
	assert.Equal(t, []string{"date-fns"}, cfg.Bench.Cases)
	assert.Equal(t, 2*time.Minute, cfg.Run.Timeout.Duration)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// untouched keys keep defaults
	assert.Equal(t, "stderr", cfg.Logging.File)
}

func TestParseConfig_EmptyFilename(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, ParseConfig("", cfg))
	assert.Equal(t, NewConfig(), cfg)
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"benchtime":   "[bench]\nbenchtime = \"soon\"\n",
		"count":       "[bench]\ncount = 0\n",
		"setup mode":  "[bench]\nsetup-mode = \"per-cycle\"\n",
		"empty case":  "[bench]\ncases = [\"\"]\n",
		"format":      "[output]\nformat = \"xml\"\n",
		"level":       "[logging]\nlevel = \"loud\"\n",
		"unknown key": "[bench]\niterations = 5\n",
		"duration":    "[run]\ntimeout = \"later\"\n",
		"syntax":      "[bench\n",
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			err := ParseConfig(writeConfig(t, body), NewConfig())
			assert.Error(t, err)
		})
	}
}

func TestParseConfig_MissingFile(t *testing.T) {
	err := ParseConfig(filepath.Join(t.TempDir(), "missing.toml"), NewConfig())
	assert.Error(t, err)
}

func TestPrintConfig(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintConfig(&buf, NewConfig()))

	assert.Contains(t, buf.String(), "[bench]")
	assert.Contains(t, buf.String(), `setup-mode = "per-batch"`)

	cfg := &Config{}
	_, err := toml.Decode(buf.String(), cfg)
	require.NoError(t, err)
	assert.Equal(t, NewConfig().Bench, cfg.Bench)
	assert.NoError(t, Validate(cfg))
}

func TestNewLogger(t *testing.T) {
	cfg := NewConfig()
	cfg.Logging.File = filepath.Join(t.TempDir(), "subdays.log")
	cfg.Logging.Level = "info"

	logger, err := NewLogger(cfg)
	require.NoError(t, err)
	logger.Info("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(cfg.Logging.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestNewLogger_BadLevel(t *testing.T) {
	cfg := NewConfig()
	cfg.Logging.Level = "loud"

	_, err := NewLogger(cfg)
	assert.Error(t, err)
}
