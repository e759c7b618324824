package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"hstin/wxcmap/internal/filesystem"
)

type Config struct {
	Palettes    []string // empty means every registered palette
	OutputFile  string
	PaletteDir  string
	NumWorkers  int
	Quality     int
	Lossless    bool
	StripHeight int
	Verbose     bool
	LogLevel    string
	LogJSON     bool
}

const (
	EnvPrefix   = "WXCMAP"
	ConfigName  = "wxcmap"
	StripFormat = "webp"
)

const (
	KeyWorkers     = "export.workers"
	KeyQuality     = "export.quality"
	KeyLossless    = "export.lossless"
	KeyStripHeight = "export.strip_height"
	KeyPaletteDir  = "palettes.dir"
	KeyLogLevel    = "log.level"
	KeyLogJSON     = "log.json"
	KeyVerbose     = "verbose"
)

var Default = map[string]any{
	KeyWorkers:     runtime.NumCPU(),
	KeyQuality:     90,
	KeyLossless:    true,
	KeyStripHeight: 1,
	KeyPaletteDir:  "",
	KeyLogLevel:    "info",
	KeyLogJSON:     false,
	KeyVerbose:     false,
}

// Setup loads .env, binds WXCMAP_* environment variables and reads the
// config file. Without an explicit file a missing wxcmap.toml is fine.
func Setup(v *viper.Viper, configFile string) error {
	// .env is optional
	_ = godotenv.Load()

	v.SetFs(filesystem.API())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range Default {
		v.SetDefault(key, value)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("toml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// Load builds a Config from v and checks its ranges.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		PaletteDir:  v.GetString(KeyPaletteDir),
		NumWorkers:  v.GetInt(KeyWorkers),
		Quality:     v.GetInt(KeyQuality),
		Lossless:    v.GetBool(KeyLossless),
		StripHeight: v.GetInt(KeyStripHeight),
		Verbose:     v.GetBool(KeyVerbose),
		LogLevel:    v.GetString(KeyLogLevel),
		LogJSON:     v.GetBool(KeyLogJSON),
	}
	if cfg.Verbose {
		cfg.LogLevel = "debug"
	}

	if cfg.NumWorkers < 1 {
		return nil, fmt.Errorf("%s must be at least 1, got %d", KeyWorkers, cfg.NumWorkers)
	}
	if cfg.Quality < 1 || cfg.Quality > 100 {
		return nil, fmt.Errorf("%s must be between 1 and 100, got %d", KeyQuality, cfg.Quality)
	}
	if cfg.StripHeight < 1 {
		return nil, fmt.Errorf("%s must be at least 1, got %d", KeyStripHeight, cfg.StripHeight)
	}
	return cfg, nil
}
