package workflow

import "catwallpaper/validation"

// Action is anything that can be dispatched to the workflow
type Action interface {
	isAction()
}

// SelectFiles replaces the upload set when the new selection is valid
type SelectFiles struct{ Files validation.UploadSet }

// SetPrompt updates the optional prompt text
type SetPrompt struct{ Prompt string }

// SetImageCount updates the requested image count, clamped to the allowed range
type SetImageCount struct{ Count int }

// SetAspectRatio updates the aspect ratio used by both requests
type SetAspectRatio struct{ Ratio string }

// Submit starts image generation from the current form
type Submit struct{}

// ImagesGenerated completes an image generation request
type ImagesGenerated struct {
	Result GenerationResult
	Err    error
}

// SelectImage picks one generated image
type SelectImage struct{ URL string }

// RequestVideo starts video generation from the selected image
type RequestVideo struct{}

// VideoGenerated completes a video generation request
type VideoGenerated struct {
	Result VideoResult
	Err    error
}

// DismissError clears the error overlay
type DismissError struct{}

func (SelectFiles) isAction()     {}
func (SetPrompt) isAction()       {}
func (SetImageCount) isAction()   {}
func (SetAspectRatio) isAction()  {}
func (Submit) isAction()          {}
func (ImagesGenerated) isAction() {}
func (SelectImage) isAction()     {}
func (RequestVideo) isAction()    {}
func (VideoGenerated) isAction()  {}
func (DismissError) isAction()    {}

// Effect is a backend call requested by a transition
type Effect interface {
	isEffect()
}

// GenerateImages asks the backend for still images
type GenerateImages struct{ Request GenerationRequest }

// GenerateVideo asks the backend for a video
type GenerateVideo struct{ Request VideoRequest }

func (GenerateImages) isEffect() {}
func (GenerateVideo) isEffect()  {}
