// ABOUTME: Entry point for the interactive inspector
// ABOUTME: Renders on stderr so stdout stays clean; Send delivers ConfigMsg from other goroutines

package inspect

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram wraps m in a tea.Program bound to ctx.
func NewProgram(ctx context.Context, m Model, opts ...tea.ProgramOption) *tea.Program {
	base := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
	}
	return tea.NewProgram(m, append(base, opts...)...)
}

// Run blocks until the user quits or ctx is done.
func Run(p *tea.Program) error {
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("bubble tea: %w", err)
	}
	return nil
}
