package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix scopes every diagnostics setting, e.g. ROUTEGRAPH_LOG_LEVEL.
const envPrefix = "ROUTEGRAPH"

// Config holds diagnostics settings. None of them change what is printed on
// stdout.
type Config struct {
	LogLevel  slog.Level
	LogFormat string // "text" or "json"
	Metrics   bool   // log collected metrics before exiting
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("metrics", false)

	var cfg Config
	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("log.level"))); err != nil {
		return Config{}, fmt.Errorf("config: %s_LOG_LEVEL: %w", envPrefix, err)
	}

	cfg.LogFormat = strings.ToLower(v.GetString("log.format"))
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("config: %s_LOG_FORMAT: unsupported format %q", envPrefix, cfg.LogFormat)
	}

	cfg.Metrics = v.GetBool("metrics")

	return cfg, nil
}

// NewLogger builds the process logger. Diagnostics go to w (stderr) so stdout
// stays reserved for rendered output.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
