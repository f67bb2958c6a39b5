package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"golang.org/x/term"

	"github.com/towelWet/TowelHost/internal/color"
)

// IsTerminal checks if stdin and stdout are connected to a terminal.
func IsTerminal() bool {
	//nolint:gosec // G115: file descriptors are always small positive integers; uintptr→int is safe
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Run shows the status of src until the user quits or ctx is done. Without
// a terminal the status is printed once to w and Run waits for ctx.
func Run(ctx context.Context, src Source, theme color.Theme, w io.Writer) error {
	if !IsTerminal() {
		return RunStatic(ctx, src, theme, w)
	}

	model := newStatusModel(src, theme, time.Now())
	p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithOutput(w))

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}

		fmt.Fprintf(os.Stderr, "interactive UI failed: %v, falling back to static output\n", err)

		return RunStatic(ctx, src, theme, w)
	}

	return nil
}

// RunStatic prints the status once and blocks until ctx is done.
func RunStatic(ctx context.Context, src Source, theme color.Theme, w io.Writer) error {
	if _, err := fmt.Fprint(w, Render(src.Snapshot(), theme, 0)); err != nil {
		return errors.Wrap(err, "failed to write status")
	}

	<-ctx.Done()

	return nil
}
