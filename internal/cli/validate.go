package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"quizview/internal/question"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		source := registerSourceFlags(flags)
		if code := parseArgs(cmd, flags, args, stdout, stderr); code >= 0 {
			return code
		}

		cfg, err := resolveSettings(source)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		records, err := bankLoader(cfg)(context.Background())
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		if err := question.Validate(records); err != nil {
			var validationErr *question.ValidationError
			if errors.As(err, &validationErr) {
				fmt.Fprintln(stderr, "Validation failed:")
				for _, issue := range validationErr.Issues {
					fmt.Fprintf(stderr, "  %s: %s\n", issue.Field, issue.Message)
				}
				return ExitError
			}
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Question bank OK (%d questions)\n", len(records))
		return ExitOK
	}
}
