// Package workflow is the upload → generate images → select → generate video
// state machine. State is a value: every transition goes through Dispatch,
// which returns the next State plus at most one Effect for the caller to run.
package workflow

import "catwallpaper/validation"

// PhaseName identifies a workflow phase
type PhaseName string

const (
	PhaseIdle          PhaseName = "idle"
	PhaseImagesPending PhaseName = "images_pending"
	PhaseImagesReady   PhaseName = "images_ready"
	PhaseVideoPending  PhaseName = "video_pending"
	PhaseVideoReady    PhaseName = "video_ready"
)

// Phase is the sealed set of workflow phases. Each variant carries exactly the
// results that are valid in it, so a video can never exist without the
// generation result it was derived from.
type Phase interface {
	Name() PhaseName
	isPhase()
}

// Idle: nothing generated yet, or the last image generation failed
type Idle struct{}

// ImagesPending: one image generation request is in flight
type ImagesPending struct {
	Request GenerationRequest
}

// ImagesReady: images are available for selection
type ImagesReady struct {
	Result   GenerationResult
	Selected string
}

// VideoPending: one video generation request is in flight
type VideoPending struct {
	Result   GenerationResult
	Selected string
	Request  VideoRequest
}

// VideoReady: a video was generated from Selected
type VideoReady struct {
	Result   GenerationResult
	Selected string
	Video    VideoResult
}

func (Idle) Name() PhaseName          { return PhaseIdle }
func (ImagesPending) Name() PhaseName { return PhaseImagesPending }
func (ImagesReady) Name() PhaseName   { return PhaseImagesReady }
func (VideoPending) Name() PhaseName  { return PhaseVideoPending }
func (VideoReady) Name() PhaseName    { return PhaseVideoReady }

func (Idle) isPhase()          {}
func (ImagesPending) isPhase() {}
func (ImagesReady) isPhase()   {}
func (VideoPending) isPhase()  {}
func (VideoReady) isPhase()    {}

// GenerationRequest is what the user submits to start image generation
type GenerationRequest struct {
	Uploads     validation.UploadSet
	Prompt      string
	ImageCount  int
	AspectRatio string
}

// GenerationResult is the backend's answer to a GenerationRequest
type GenerationResult struct {
	Images     []string
	JobID      string
	PromptUsed string
}

// Contains reports whether locator is one of the generated images
func (r GenerationResult) Contains(locator string) bool {
	for _, img := range r.Images {
		if img == locator {
			return true
		}
	}
	return false
}

// VideoRequest asks for a video derived from one generated image
type VideoRequest struct {
	JobID       string
	ImageURL    string
	AspectRatio string
}

// VideoResult is the backend's answer to a VideoRequest
type VideoResult struct {
	VideoURL    string
	SourceImage string
}
