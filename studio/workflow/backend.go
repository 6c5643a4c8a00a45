package workflow

import (
	"context"
	"errors"

	"catwallpaper/studio/client"
	"catwallpaper/types"

	"github.com/rs/zerolog"
)

// Backend performs the two generation calls
type Backend interface {
	GenerateImages(ctx context.Context, req GenerationRequest) (GenerationResult, error)
	GenerateVideo(ctx context.Context, req VideoRequest) (VideoResult, error)
}

// ClientBackend adapts the HTTP client to Backend
type ClientBackend struct {
	Client *client.Client
}

// NewClientBackend wraps c as a Backend
func NewClientBackend(c *client.Client) *ClientBackend {
	return &ClientBackend{Client: c}
}

// GenerateImages implements Backend
func (b *ClientBackend) GenerateImages(ctx context.Context, req GenerationRequest) (GenerationResult, error) {
	resp, err := b.Client.GenerateImages(ctx, client.ImageRequest{
		Files:       req.Uploads,
		Prompt:      req.Prompt,
		ImageCount:  req.ImageCount,
		AspectRatio: req.AspectRatio,
	})
	if err != nil {
		return GenerationResult{}, err
	}
	return GenerationResult{
		Images:     resp.Images,
		JobID:      resp.JobID,
		PromptUsed: resp.PromptUsed,
	}, nil
}

// GenerateVideo implements Backend
func (b *ClientBackend) GenerateVideo(ctx context.Context, req VideoRequest) (VideoResult, error) {
	resp, err := b.Client.GenerateVideo(ctx, types.GenerateVideoRequest{
		JobID:       req.JobID,
		ImageURL:    req.ImageURL,
		AspectRatio: req.AspectRatio,
	})
	if err != nil {
		return VideoResult{}, err
	}
	return VideoResult{VideoURL: resp.VideoURL}, nil
}

// Run executes one effect and returns the completion action to dispatch.
// The call runs to completion unless ctx is cancelled.
func Run(ctx context.Context, b Backend, eff Effect) Action {
	switch e := eff.(type) {
	case GenerateImages:
		res, err := b.GenerateImages(ctx, e.Request)
		return ImagesGenerated{Result: res, Err: err}
	case GenerateVideo:
		res, err := b.GenerateVideo(ctx, e.Request)
		return VideoGenerated{Result: res, Err: err}
	}
	return nil
}

// Drive dispatches a, runs the resulting effect and feeds its completion back
// until no effect is left. It is the sequential form of the TUI event loop.
func Drive(ctx context.Context, b Backend, logger zerolog.Logger, s State, a Action) State {
	for a != nil {
		before := s.PhaseName()
		var eff Effect
		s, eff = s.Dispatch(a)
		LogTransition(logger, before, s)

		a = nil
		if eff != nil {
			a = Run(ctx, b, eff)
		}
	}
	return s
}

// LogTransition records phase changes and error overlays
func LogTransition(logger zerolog.Logger, before PhaseName, after State) {
	if after.Err != nil {
		logger.Warn().
			Str("phase", string(after.PhaseName())).
			Err(after.Err).
			Msg("workflow error")
	}
	if before != after.PhaseName() {
		logger.Info().
			Str("from", string(before)).
			Str("to", string(after.PhaseName())).
			Msg("workflow transition")
	}
}

// newGenerationError picks the backend detail when present, otherwise fallback
func newGenerationError(phase PhaseName, err error, fallback string) *GenerationError {
	var gerr *GenerationError
	if errors.As(err, &gerr) {
		return gerr
	}

	msg := fallback
	var berr *client.BackendError
	if errors.As(err, &berr) && berr.Detail != "" {
		msg = berr.Detail
	}
	return &GenerationError{Phase: phase, Message: msg, Cause: err}
}
