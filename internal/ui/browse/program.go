package browse

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive viewer on the alternate screen and blocks
// until the user quits or ctx is cancelled.
func Run(ctx context.Context, stdin io.Reader, stdout io.Writer, load LoadFunc, opts Options) error {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stdin == nil {
		stdin = os.Stdin
	}
	model := NewModel(ctx, load, opts)
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(stdin),
		tea.WithOutput(stdout),
		tea.WithAltScreen(),
	)
	_, err := program.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
