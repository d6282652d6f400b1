package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.quill.dev/internal/config"
	"go.quill.dev/pkg"
)

var rootCmd = &cobra.Command{
	Use:           "quill",
	Short:         "Quill language front end",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(irCmd)

	rootCmd.PersistentFlags().String("config", config.DefaultPath, "path to config file")
	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|on|off), overrides the config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

// setup loads the configuration and builds the logger shared by subcommands.
func setup(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Config{}, nil, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, nil, err
	}

	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return cfg, nil, err
	}

	if mode != "" {
		if err := config.ValidateColor(mode); err != nil {
			return cfg, nil, errors.Wrap(err, "--color")
		}

		cfg.Color = mode
	}

	logger, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		return cfg, nil, err
	}

	logger.Debug("loaded config", "path", path, "color", cfg.Color)
	return cfg, logger, nil
}

func useColor(cfg config.Config, f *os.File) bool {
	return cfg.Color == "on" || (cfg.Color == "auto" && term.IsTerminal(int(f.Fd())))
}

func printError(err error) {
	switch e := errors.Cause(err).(type) {
	case quill.LexError:
		fmt.Fprintln(os.Stderr, "Lex error:", e.Message, "at", e.Loc)
	case quill.ExprError:
		fmt.Fprintln(os.Stderr, "Bad expression:", e.Message)
	case quill.LoweringError:
		fmt.Fprintln(os.Stderr, "Cannot lower", e.Expr, "-", e.Message)
	case quill.ConsistentScopeError:
		fmt.Fprintln(os.Stderr, "Scope error:", e.Message)
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
}
