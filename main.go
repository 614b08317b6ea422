package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	app "github.com/rocketscienceinc/tictactoe-solver/internal"
	"github.com/rocketscienceinc/tictactoe-solver/internal/config"
)

const (
	configPathEnv     = "TICTACTOE_CONFIG"
	defaultConfigPath = "config.yml"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	path, err := configPath(os.Args[1:], os.Getenv(configPathEnv))
	if err != nil {
		os.Exit(2)
	}

	conf := config.MustLoad(path)
	logger := initLogger(conf, os.Stderr)

	logger.Debug("config loaded", "path", path)

	if err = app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// configPath - the -config flag wins over TICTACTOE_CONFIG, which wins over ./config.yml.
func configPath(args []string, fromEnv string) (string, error) {
	fallback := defaultConfigPath
	if fromEnv != "" {
		fallback = fromEnv
	}

	flags := flag.NewFlagSet("tictactoe-solver", flag.ContinueOnError)
	path := flags.String("config", fallback, "path to the YAML config file (env "+configPathEnv+")")

	if err := flags.Parse(args); err != nil {
		return "", fmt.Errorf("failed to parse flags: %w", err)
	}

	return *path, nil
}

// initLogger - JSON logs on w; an unknown log-level falls back to info and says so.
func initLogger(conf *config.Config, w io.Writer) *slog.Logger {
	var level slog.Level

	levelErr := level.UnmarshalText([]byte(conf.LogLevel))
	if levelErr != nil {
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	if levelErr != nil {
		logger.Warn("unknown log level, using info", "log-level", conf.LogLevel)
	}

	return logger
}
