package tui

import "catwallpaper/studio/workflow"

// CompletionMsg carries the outcome of a backend call back into Update
type CompletionMsg struct {
	Action workflow.Action
}
