package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Viewer output modes accepted by --ui and ui.mode.
const (
	uiAuto  = "auto"
	uiLive  = "live"
	uiPlain = "plain"
)

// uiModeDecision says whether view runs the interactive viewer, plus an
// optional notice for stderr.
type uiModeDecision struct {
	useLive bool
	warning string
}

// isTerminal is swapped in tests to fake a TTY.
var isTerminal = writerIsTerminal

// resolveUIMode maps a mode name to a decision. The interactive viewer
// needs a terminal; plain text is printed otherwise.
func resolveUIMode(mode string, stdout io.Writer) (uiModeDecision, error) {
	switch normalized := strings.ToLower(strings.TrimSpace(mode)); normalized {
	case "", uiAuto:
		return uiModeDecision{useLive: isTerminal(stdout)}, nil
	case uiLive:
		if !isTerminal(stdout) {
			return uiModeDecision{warning: "Live viewer requested but stdout is not a TTY; printing plain text instead."}, nil
		}
		return uiModeDecision{useLive: true}, nil
	case uiPlain:
		return uiModeDecision{}, nil
	default:
		return uiModeDecision{}, fmt.Errorf("invalid ui mode %q (expected %s|%s|%s)", mode, uiAuto, uiLive, uiPlain)
	}
}

func writerIsTerminal(w io.Writer) bool {
	fd, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	if file, isFile := w.(*os.File); isFile && file == nil {
		return false
	}
	return term.IsTerminal(int(fd.Fd()))
}
