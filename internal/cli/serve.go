package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"quizview/internal/logging"
	"quizview/internal/webserver"
)

// serveViewer is a test seam for running the web surface.
var serveViewer = webserver.Serve

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		source := registerSourceFlags(fs)
		addr := fs.String("addr", "", "Address to listen on (default from config)")
		assetsBaseURL := fs.String("assets-base-url", "", "Base URL for viewer assets")
		if code := parseArgs(cmd, fs, args, stdout, stderr); code >= 0 {
			return code
		}

		settings, err := resolveSettings(source)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		if *addr != "" {
			settings.Server.Addr = *addr
		}
		if *assetsBaseURL != "" {
			settings.Server.AssetsBaseURL = *assetsBaseURL
		}

		logger := logging.New(settings.Env, stderr)
		defer func() { _ = logger.Sync() }()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// The bank is loaded once; a failure is served as the error page.
		var bank webserver.Bank
		bank.Records, bank.Err = bankLoader(settings)(ctx)
		if bank.Err != nil {
			logger.Error("load question bank", zap.String("source", settings.Data.Source), zap.Error(bank.Err))
		} else {
			logger.Info("loaded question bank", zap.String("source", settings.Data.Source), zap.Int("questions", len(bank.Records)))
		}

		cfg := webserver.Config{
			Addr:          settings.Server.Addr,
			Title:         settings.Server.Title,
			AssetsBaseURL: settings.Server.AssetsBaseURL,
			ChoiceTypes:   settings.Quiz.ChoiceTypes,
		}
		fmt.Fprintf(stdout, "Serving question bank at http://%s\n", cfg.Addr)
		if err := serveViewer(ctx, cfg, bank, logger); err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
