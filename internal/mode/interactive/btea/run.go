// ABOUTME: Entry point for the Bubble Tea visualizer TUI
// ABOUTME: Runs the program on the alternate screen until quit or context cancellation

package btea

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the visualizer app and blocks until the user quits or ctx
// is cancelled. Cancellation is not an error.
func Run(ctx context.Context, deps AppDeps) error {
	m, err := NewAppModel(deps)
	if err != nil {
		return err
	}
	defer m.Close()

	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithOutput(os.Stderr),
	)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("visualizer: %w", err)
	}
	return nil
}
