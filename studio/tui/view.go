package tui

import (
	"fmt"
	"strings"

	"catwallpaper/studio/workflow"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	// Title
	b.WriteString(TitleStyle.Render(TextTitle))
	b.WriteString("\n\n")

	// Current phase
	b.WriteString(m.getStateText())
	b.WriteString("\n\n")

	// Form
	b.WriteString(BoxStyle.Render(m.formatForm()))
	b.WriteString("\n\n")

	// Text entry
	switch m.mode {
	case modeFiles:
		b.WriteString(InfoStyle.Render(TextFilesInput))
		b.WriteString("\n> " + m.input + "█\n\n")
	case modePrompt:
		b.WriteString(InfoStyle.Render(TextPromptInput))
		b.WriteString("\n> " + m.input + "█\n\n")
	}

	// Results
	if result, ok := m.Workflow.Result(); ok {
		b.WriteString(m.formatImages(result))
		b.WriteString("\n")
	}
	if video, ok := m.Workflow.Video(); ok {
		b.WriteString(BoxStyle.Render(fmt.Sprintf("🎬 Video\n\n%s\n\nfrom %s",
			StatusStyle.Render(m.resolve(video.VideoURL)),
			InfoStyle.Render(m.resolve(video.SourceImage)))))
		b.WriteString("\n\n")
	}

	// Error overlay
	if err := m.currentError(); err != nil {
		b.WriteString(ErrorBoxStyle.Render(ErrorStyle.Render("❌ " + err.Error())))
		b.WriteString("\n")
		b.WriteString(InfoStyle.Render(TextFooterError))
		b.WriteString("\n\n")
	}

	// Logs
	if len(m.Logs) > 0 {
		b.WriteString(InfoStyle.Render("📝 Recent Activity:"))
		b.WriteString("\n")
		for _, line := range m.Logs {
			b.WriteString(InfoStyle.Render("   " + line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Help text
	b.WriteString(InfoStyle.Render(m.footer()))
	return b.String()
}

// formatForm renders the current inputs
func (m Model) formatForm() string {
	form := m.Workflow.Form
	var b strings.Builder

	files := "none"
	if len(form.Uploads) > 0 {
		files = strings.Join(form.Uploads.Names(), ", ")
	}
	prompt := form.Prompt
	if prompt == "" {
		prompt = InfoStyle.Render("(backend default)")
	}

	b.WriteString(LabelStyle.Render("Photos") + files + "\n")
	b.WriteString(LabelStyle.Render("Prompt") + prompt + "\n")
	b.WriteString(LabelStyle.Render("Count") + fmt.Sprintf("%d", form.ImageCount) + "\n")
	b.WriteString(LabelStyle.Render("Aspect") + form.AspectRatio)
	return b.String()
}

// formatImages renders the numbered image list with the selection marked
func (m Model) formatImages(result workflow.GenerationResult) string {
	var b strings.Builder

	header := fmt.Sprintf("🖼  Job %s: %d image(s)", result.JobID, len(result.Images))
	b.WriteString(HighlightStyle.Render(header))
	b.WriteString("\n")
	if result.PromptUsed != "" {
		b.WriteString(InfoStyle.Render("   prompt: " + result.PromptUsed))
		b.WriteString("\n")
	}

	selected := m.Workflow.Selected()
	for i, img := range result.Images {
		line := fmt.Sprintf("  %d) %s", i+1, m.resolve(img))
		if img == selected {
			b.WriteString(SelectedStyle.Render("▶" + line[1:]))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) footer() string {
	if m.Workflow.Busy() {
		return TextFooterBusy
	}
	if _, ok := m.Workflow.Result(); ok {
		return TextFooterPicking
	}
	return TextFooterForm
}
