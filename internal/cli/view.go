package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"quizview/internal/filter"
	"quizview/internal/format"
	"quizview/internal/render"
	"quizview/internal/ui/browse"
)

// Test seams for the interactive viewer and its input.
var (
	runBrowser = browse.Run
	viewInput  io.Reader
)

// runView builds the handler for the view command.
func runView(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		source := registerSourceFlags(fs)
		search := fs.String("search", "", "Initial search text")
		questionType := fs.String("type", filter.AllTypes, "Question type to show")
		uiMode := fs.String("ui", "", "Output mode: auto|live|plain (default from config)")
		noColor := fs.Bool("no-color", false, "Disable colors")
		answers := fs.Bool("answers", false, "Include answers in plain output")
		jump := fs.Int("jump", 0, "Question number to focus in the live viewer")
		if code := parseArgs(cmd, fs, args, stdout, stderr); code >= 0 {
			return code
		}

		cfg, err := resolveSettings(source)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		mode := cfg.UI.Mode
		if *uiMode != "" {
			mode = *uiMode
		}
		decision, err := resolveUIMode(mode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		load := bankLoader(cfg)

		if decision.useLive {
			opts := browse.Options{
				NoColor:     *noColor || cfg.UI.NoColor,
				ChoiceTypes: cfg.Quiz.ChoiceTypes,
				Title:       cfg.Server.Title,
				Search:      *search,
				Type:        *questionType,
				Jump:        *jump,
			}
			if err := runBrowser(ctx, viewInput, stdout, load, opts); err != nil {
				fmt.Fprintf(stderr, "Viewer error: %v\n", err)
				return ExitError
			}
			return ExitOK
		}

		records, err := load(ctx)
		if err != nil {
			fmt.Fprintln(stdout, render.LoadErrorMessage)
			fmt.Fprintf(stderr, "Failed to load question bank: %v\n", err)
			return ExitError
		}
		visible := filter.Apply(records, filter.Criteria{Search: *search, Type: *questionType})
		reflower := format.NewReflower(cfg.Quiz.ChoiceTypes, "\n")
		if err := browse.WritePlain(stdout, visible, reflower, *answers); err != nil {
			fmt.Fprintf(stderr, "Failed to write output: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
