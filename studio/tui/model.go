package tui

import (
	"context"
	"fmt"
	"time"

	"catwallpaper/studio/workflow"
	"catwallpaper/validation"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

const maxLogs = 5

type inputMode int

const (
	modeNormal inputMode = iota
	modeFiles
	modePrompt
)

// URLResolver turns backend locators into displayable URLs
type URLResolver interface {
	ResolveURL(locator string) string
}

// Options configures a new Model
type Options struct {
	Backend  workflow.Backend
	Resolver URLResolver
	Logger   zerolog.Logger

	// Initial form values
	Files       validation.UploadSet
	Prompt      string
	ImageCount  int
	AspectRatio string
}

// Model is the bubbletea model. All workflow rules live in Workflow; the
// model only adds text input and presentation.
type Model struct {
	Workflow workflow.State

	// Local errors that never reached the workflow (unreadable paths)
	InputErr error

	// Recent activity, newest last
	Logs []string

	backend  workflow.Backend
	resolver URLResolver
	logger   zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mode  inputMode
	input string
}

// NewModel creates a studio model. Cancelling ctx aborts in-flight requests.
func NewModel(ctx context.Context, opts Options) Model {
	ctx, cancel := context.WithCancel(ctx)

	s := workflow.New()
	if len(opts.Files) > 0 {
		s, _ = s.Dispatch(workflow.SelectFiles{Files: opts.Files})
	}
	s, _ = s.Dispatch(workflow.SetPrompt{Prompt: opts.Prompt})
	if opts.ImageCount > 0 {
		s, _ = s.Dispatch(workflow.SetImageCount{Count: opts.ImageCount})
	}
	if opts.AspectRatio != "" {
		s, _ = s.Dispatch(workflow.SetAspectRatio{Ratio: opts.AspectRatio})
	}

	return Model{
		Workflow: s,
		Logs:     make([]string, 0, maxLogs),
		backend:  opts.Backend,
		resolver: opts.Resolver,
		logger:   opts.Logger,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// AddLog appends a timestamped activity line
func (m Model) AddLog(msg string) Model {
	line := fmt.Sprintf("[%s] %s", time.Now().Format("15:04:05"), msg)
	logs := append(m.Logs, line)
	if len(logs) > maxLogs {
		logs = logs[len(logs)-maxLogs:]
	}
	m.Logs = logs
	return m
}

// resolve returns the displayable URL for a locator
func (m Model) resolve(locator string) string {
	if m.resolver == nil {
		return locator
	}
	return m.resolver.ResolveURL(locator)
}

// currentError returns the error overlay, workflow errors first
func (m Model) currentError() error {
	if m.Workflow.Err != nil {
		return m.Workflow.Err
	}
	return m.InputErr
}

// getStateText returns the headline for the current phase
func (m Model) getStateText() string {
	switch m.Workflow.Phase.(type) {
	case workflow.ImagesPending:
		return StatusStyle.Render(TextImagesPending)
	case workflow.ImagesReady:
		return HighlightStyle.Render(TextImagesReady)
	case workflow.VideoPending:
		return StatusStyle.Render(TextVideoPending)
	case workflow.VideoReady:
		return HighlightStyle.Render(TextVideoReady)
	default:
		return HighlightStyle.Render(TextIdle)
	}
}

// transitionLog describes the phase just entered
func transitionLog(s workflow.State) string {
	if s.Err != nil {
		return "Generation failed: " + s.Err.Error()
	}
	switch p := s.Phase.(type) {
	case workflow.ImagesPending:
		return fmt.Sprintf("Requested %d image(s) from %d photo(s)", p.Request.ImageCount, len(p.Request.Uploads))
	case workflow.ImagesReady:
		return fmt.Sprintf("Received %d image(s) for job %s", len(p.Result.Images), p.Result.JobID)
	case workflow.VideoPending:
		return fmt.Sprintf("Requested video from %s", p.Request.ImageURL)
	case workflow.VideoReady:
		return "Video generated"
	default:
		return "Ready"
	}
}
