package tui

import (
	"context"

	"catwallpaper/studio/workflow"

	tea "github.com/charmbracelet/bubbletea"
)

// runEffect creates a command that performs one backend call off the UI loop
func runEffect(ctx context.Context, b workflow.Backend, eff workflow.Effect) tea.Cmd {
	return func() tea.Msg {
		return CompletionMsg{Action: workflow.Run(ctx, b, eff)}
	}
}
