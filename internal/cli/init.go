package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"quizview/internal/config"
)

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		dir := flags.String("dir", "", "Directory to write "+config.ConfigFileName+" into (default: current directory)")
		force := flags.Bool("force", false, "Overwrite an existing config file")
		if code := parseArgs(cmd, flags, args, stdout, stderr); code >= 0 {
			return code
		}

		target := *dir
		if target == "" {
			wd, err := os.Getwd()
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			target = wd
		}
		path, err := config.Scaffold(target, *force)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", path)
		return ExitOK
	}
}
