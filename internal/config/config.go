package config

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "./.quill.yaml"

type Config struct {
	Logger LoggerConfig `yaml:"logger"`
	Color  string       `yaml:"color"`
}

type LoggerConfig struct {
	Level string `yaml:"level"`
	Type  string `yaml:"type"`
}

func Default() Config {
	return Config{
		Logger: LoggerConfig{
			Level: "info",
			Type:  "colored-text",
		},
		Color: "auto",
	}
}

// Load reads the YAML file at path over the defaults. A missing file yields
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	fileContent, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return cfg, errors.Wrapf(err, "cannot read config file %s", path)
	}

	if err := yaml.Unmarshal(fileContent, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "cannot parse config file %s", path)
	}

	if err := ValidateColor(cfg.Color); err != nil {
		return cfg, errors.Wrapf(err, "cannot parse config file %s", path)
	}

	return cfg, nil
}

// ValidateColor accepts the color modes understood by the CLI: auto, on and off.
func ValidateColor(mode string) error {
	switch mode {
	case "auto", "on", "off":
		return nil
	default:
		return errors.Errorf("invalid color mode: %s", mode)
	}
}

func (cfg Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	return parseLoggerConfig(cfg.Logger, w)
}

func parseLoggerConfig(cfg LoggerConfig, w io.Writer) (*slog.Logger, error) {
	var handler slog.Handler

	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, errors.Errorf("invalid log level: %s", cfg.Level)
	}

	switch cfg.Type {
	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	case "text":
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	case "colored-text":
		handler = tint.NewHandler(w, &tint.Options{Level: level})
	default:
		return nil, errors.Errorf("invalid log type: %s", cfg.Type)
	}

	return slog.New(handler), nil
}
