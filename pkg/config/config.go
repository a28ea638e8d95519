package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config manages directory layout and logging using Viper
type Config struct {
	v *viper.Viper
}

// Paths is the file layout shared by the converter and the report
type Paths struct {
	DownloadDir string
	InputDir    string
	TimesDir    string
	SizesFile   string
	ImageDir    string
}

// NewConfig creates a new configuration with defaults. Every key can be
// overridden through GRAPHDATA_<SECTION>_<KEY> environment variables.
func NewConfig() *Config {
	v := viper.New()

	v.SetDefault("paths.data_dir", "data")
	// Empty means "derive from data_dir"
	v.SetDefault("paths.download_dir", "")
	v.SetDefault("paths.input_dir", "")
	v.SetDefault("paths.times_dir", "")
	v.SetDefault("paths.sizes_file", "")
	v.SetDefault("paths.image_dir", "images")

	v.SetDefault("logging.level", "info")

	v.SetEnvPrefix("GRAPHDATA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile loads configuration from file
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

// Set allows dynamic configuration changes
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

func (c *Config) DataDir() string { return c.v.GetString("paths.data_dir") }

func (c *Config) DownloadDir() string { return c.dataPath("paths.download_dir", "downloaded") }
func (c *Config) InputDir() string    { return c.dataPath("paths.input_dir", "inputs") }
func (c *Config) TimesDir() string    { return c.dataPath("paths.times_dir", "times") }
func (c *Config) SizesFile() string   { return c.dataPath("paths.sizes_file", "graph_sizes.bin") }
func (c *Config) ImageDir() string    { return c.v.GetString("paths.image_dir") }

func (c *Config) LogLevel() string { return c.v.GetString("logging.level") }

// Paths returns the resolved file layout
func (c *Config) Paths() Paths {
	return Paths{
		DownloadDir: c.DownloadDir(),
		InputDir:    c.InputDir(),
		TimesDir:    c.TimesDir(),
		SizesFile:   c.SizesFile(),
		ImageDir:    c.ImageDir(),
	}
}

func (c *Config) dataPath(key, fallback string) string {
	if p := c.v.GetString(key); p != "" {
		return p
	}
	return filepath.Join(c.DataDir(), fallback)
}

// CreateLogger creates a zerolog logger based on config
func (c *Config) CreateLogger(service string) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", service).Logger()
}
