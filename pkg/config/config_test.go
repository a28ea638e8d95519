package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := NewConfig()

	assert.Equal(t, Paths{
		DownloadDir: filepath.Join("data", "downloaded"),
		InputDir:    filepath.Join("data", "inputs"),
		TimesDir:    filepath.Join("data", "times"),
		SizesFile:   filepath.Join("data", "graph_sizes.bin"),
		ImageDir:    "images",
	}, c.Paths())
	assert.Equal(t, "info", c.LogLevel())
}

func TestDataDirMovesDerivedPaths(t *testing.T) {
	c := NewConfig()
	c.Set("paths.data_dir", "/srv/graphs")
	c.Set("paths.times_dir", "/tmp/times")

	assert.Equal(t, filepath.Join("/srv/graphs", "inputs"), c.InputDir())
	assert.Equal(t, filepath.Join("/srv/graphs", "graph_sizes.bin"), c.SizesFile())
	assert.Equal(t, "/tmp/times", c.TimesDir())
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("GRAPHDATA_PATHS_INPUT_DIR", "/env/inputs")
	t.Setenv("GRAPHDATA_LOGGING_LEVEL", "debug")

	c := NewConfig()
	assert.Equal(t, "/env/inputs", c.InputDir())
	assert.Equal(t, zerolog.DebugLevel, c.CreateLogger("test").GetLevel())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graphdata.yaml")
	require.NoError(t, os.WriteFile(path, []byte("paths:\n  data_dir: other\n  image_dir: out/img\nlogging:\n  level: warn\n"), 0644))

	c := NewConfig()
	require.NoError(t, c.LoadFromFile(path))

	assert.Equal(t, filepath.Join("other", "downloaded"), c.DownloadDir())
	assert.Equal(t, "out/img", c.ImageDir())
	assert.Equal(t, zerolog.WarnLevel, c.CreateLogger("test").GetLevel())
}

func TestCreateLoggerBadLevel(t *testing.T) {
	c := NewConfig()
	c.Set("logging.level", "loud")
	assert.Equal(t, zerolog.InfoLevel, c.CreateLogger("test").GetLevel())
}
