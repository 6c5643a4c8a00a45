package tui

import (
	"slices"
	"strconv"
	"strings"

	"catwallpaper/config"
	"catwallpaper/studio/workflow"
	"catwallpaper/validation"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode != modeNormal {
			return m.handleInput(msg)
		}
		return m.handleKeyPress(msg)
	case CompletionMsg:
		return m.dispatch(msg.Action)
	}
	return m, nil
}

// handleKeyPress processes keyboard input outside of text entry
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c", "q":
		m.cancel()
		return m, tea.Quit
	case "esc":
		m.InputErr = nil
		return m.dispatch(workflow.DismissError{})
	case "f":
		m.mode = modeFiles
		m.input = strings.Join(uploadPaths(m.Workflow.Form.Uploads), ", ")
		return m, nil
	case "p":
		m.mode = modePrompt
		m.input = m.Workflow.Form.Prompt
		return m, nil
	case "g", "enter":
		m.InputErr = nil
		return m.dispatch(workflow.Submit{})
	case "v":
		return m.dispatch(workflow.RequestVideo{})
	case "a":
		return m.dispatch(workflow.SetAspectRatio{Ratio: nextAspectRatio(m.Workflow.Form.AspectRatio)})
	case "+", "=":
		return m.dispatch(workflow.SetImageCount{Count: m.Workflow.Form.ImageCount + 1})
	case "-":
		return m.dispatch(workflow.SetImageCount{Count: m.Workflow.Form.ImageCount - 1})
	}

	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= 9 {
		return m.dispatch(workflow.SelectImage{URL: m.imageAt(n - 1)})
	}
	return m, nil
}

// handleInput edits the active text field
func (m Model) handleInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.cancel()
		return m, tea.Quit
	case tea.KeyEsc:
		m.mode = modeNormal
		m.input = ""
		return m, nil
	case tea.KeyEnter:
		return m.commitInput()
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}
	return m, nil
}

// commitInput applies the edited field and leaves text entry
func (m Model) commitInput() (tea.Model, tea.Cmd) {
	mode, input := m.mode, m.input
	m.mode = modeNormal
	m.input = ""

	switch mode {
	case modePrompt:
		m = m.AddLog("Prompt updated")
		return m.dispatch(workflow.SetPrompt{Prompt: strings.TrimSpace(input)})
	case modeFiles:
		set, err := validation.NewUploadSet(strings.Split(input, ","))
		if err != nil {
			m.InputErr = err
			return m, nil
		}
		m.InputErr = nil
		next, cmd := m.dispatch(workflow.SelectFiles{Files: set})
		if nm := next.(Model); nm.Workflow.Err == nil {
			return nm.AddLog("Selected " + strings.Join(set.Names(), ", ")), cmd
		}
		return next, cmd
	}
	return m, nil
}

// dispatch applies an action to the workflow and schedules its backend call
func (m Model) dispatch(a workflow.Action) (tea.Model, tea.Cmd) {
	before := m.Workflow.PhaseName()
	s, eff := m.Workflow.Dispatch(a)
	workflow.LogTransition(m.logger, before, s)

	m.Workflow = s
	if before != s.PhaseName() {
		m = m.AddLog(transitionLog(s))
	}
	if eff == nil {
		return m, nil
	}
	return m, runEffect(m.ctx, m.backend, eff)
}

// imageAt returns the i-th generated image, or "" when out of range
func (m Model) imageAt(i int) string {
	result, ok := m.Workflow.Result()
	if !ok || i < 0 || i >= len(result.Images) {
		return ""
	}
	return result.Images[i]
}

func nextAspectRatio(current string) string {
	i := slices.Index(config.AspectRatios, current)
	return config.AspectRatios[(i+1)%len(config.AspectRatios)]
}

func uploadPaths(set validation.UploadSet) []string {
	paths := make([]string, len(set))
	for i, f := range set {
		paths[i] = f.Path
	}
	return paths
}
