package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"quizview/internal/config"
	"quizview/internal/question"
)

// sourceFlags holds the flags shared by commands that read a bank.
type sourceFlags struct {
	configPath *string
	dataSource *string
}

func registerSourceFlags(fs *flag.FlagSet) sourceFlags {
	return sourceFlags{
		configPath: fs.String("config", "", "Path to config file (default: search for "+config.ConfigFileName+")"),
		dataSource: fs.String("data", "", "Question bank file or http(s) URL (overrides data.source)"),
	}
}

// parseArgs parses flags and rejects positional arguments. A non-negative
// exit code means the command should stop with it.
func parseArgs(cmd *Command, fs *flag.FlagSet, args []string, stdout, stderr io.Writer) int {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		printCommandUsage(cmd, stderr)
		return ExitUsage
	}
	return -1
}

// resolveSettings loads the config and applies flag overrides.
func resolveSettings(flags sourceFlags) (config.Config, error) {
	path := strings.TrimSpace(*flags.configPath)
	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return config.Config{}, fmt.Errorf("resolve config path: %w", err)
		}
		path = abs
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if source := strings.TrimSpace(*flags.dataSource); source != "" {
		cfg.Data.Source = source
	}
	return cfg, nil
}

// bankLoader returns a loader bound to the configured source and timeout.
func bankLoader(cfg config.Config) func(ctx context.Context) ([]question.Record, error) {
	client := &http.Client{Timeout: cfg.Data.Timeout}
	return func(ctx context.Context) ([]question.Record, error) {
		ctx, cancel := context.WithTimeout(ctx, cfg.Data.Timeout)
		defer cancel()
		return question.Load(ctx, client, cfg.Data.Source)
	}
}
