package workflow

import (
	"slices"

	"catwallpaper/config"
	"catwallpaper/validation"
)

// Form holds the user inputs. It survives every phase change.
type Form struct {
	Uploads     validation.UploadSet
	Prompt      string
	ImageCount  int
	AspectRatio string
}

// State is the complete workflow state. Err is the single user-visible error
// overlay; it never replaces the phase.
type State struct {
	Phase Phase
	Form  Form
	Err   error
}

// New returns an Idle workflow with default form values
func New() State {
	return State{
		Phase: Idle{},
		Form: Form{
			ImageCount:  config.DefaultImageCount,
			AspectRatio: config.AspectRatios[0],
		},
	}
}

// Dispatch applies one action and returns the next state and the backend
// call to run, if any. It never performs I/O.
func (s State) Dispatch(a Action) (State, Effect) {
	if s.Phase == nil {
		s.Phase = Idle{}
	}

	switch a := a.(type) {
	case SelectFiles:
		return s.selectFiles(a), nil
	case SetPrompt:
		s.Form.Prompt = a.Prompt
		return s, nil
	case SetImageCount:
		s.Form.ImageCount = validation.ClampImageCount(a.Count)
		return s, nil
	case SetAspectRatio:
		return s.setAspectRatio(a), nil
	case Submit:
		return s.submit()
	case ImagesGenerated:
		return s.imagesGenerated(a), nil
	case SelectImage:
		return s.selectImage(a), nil
	case RequestVideo:
		return s.requestVideo()
	case VideoGenerated:
		return s.videoGenerated(a), nil
	case DismissError:
		s.Err = nil
		return s, nil
	}
	return s, nil
}

func (s State) selectFiles(a SelectFiles) State {
	if err := validation.ValidateUploadSet(a.Files); err != nil {
		// The previous valid selection stays in place
		s.Err = err
		return s
	}
	s.Form.Uploads = slices.Clone(a.Files)
	s.Err = nil
	return s
}

func (s State) setAspectRatio(a SetAspectRatio) State {
	if err := validation.ValidateAspectRatio(a.Ratio); err != nil {
		s.Err = err
		return s
	}
	s.Form.AspectRatio = a.Ratio
	return s
}

func (s State) submit() (State, Effect) {
	if s.Busy() {
		return s, nil
	}

	s.Err = nil
	if err := validation.ValidateUploadSet(s.Form.Uploads); err != nil {
		s.Err = err
		return s, nil
	}
	if err := validation.ValidateImageCount(s.Form.ImageCount); err != nil {
		s.Err = err
		return s, nil
	}
	if err := validation.ValidateAspectRatio(s.Form.AspectRatio); err != nil {
		s.Err = err
		return s, nil
	}

	req := GenerationRequest{
		Uploads:     slices.Clone(s.Form.Uploads),
		Prompt:      s.Form.Prompt,
		ImageCount:  s.Form.ImageCount,
		AspectRatio: s.Form.AspectRatio,
	}
	// Entering ImagesPending drops any previous images, selection and video
	s.Phase = ImagesPending{Request: req}
	return s, GenerateImages{Request: req}
}

func (s State) imagesGenerated(a ImagesGenerated) State {
	if _, ok := s.Phase.(ImagesPending); !ok {
		return s
	}

	if a.Err != nil {
		s.Phase = Idle{}
		s.Err = newGenerationError(PhaseImagesPending, a.Err, MsgImageGenerationFailed)
		return s
	}

	result := a.Result
	result.Images = slices.Clone(result.Images)
	if result.Images == nil {
		result.Images = []string{}
	}
	s.Phase = ImagesReady{Result: result}
	return s
}

func (s State) selectImage(a SelectImage) State {
	switch p := s.Phase.(type) {
	case ImagesReady:
		if !p.Result.Contains(a.URL) {
			s.Err = &GuardError{Message: MsgUnknownImage}
			return s
		}
		p.Selected = a.URL
		s.Phase = p
	case VideoReady:
		if !p.Result.Contains(a.URL) {
			s.Err = &GuardError{Message: MsgUnknownImage}
			return s
		}
		p.Selected = a.URL
		s.Phase = p
	case VideoPending:
		// The in-flight request already names its image
	default:
		s.Err = &GuardError{Message: MsgNoImagesYet}
	}
	return s
}

func (s State) requestVideo() (State, Effect) {
	var result GenerationResult
	var selected string

	switch p := s.Phase.(type) {
	case VideoPending:
		return s, nil
	case ImagesReady:
		result, selected = p.Result, p.Selected
	case VideoReady:
		result, selected = p.Result, p.Selected
	}

	if selected == "" || result.JobID == "" {
		s.Err = &GuardError{Message: MsgSelectImageFirst}
		return s, nil
	}

	s.Err = nil
	req := VideoRequest{
		JobID:       result.JobID,
		ImageURL:    selected,
		AspectRatio: s.Form.AspectRatio,
	}
	s.Phase = VideoPending{Result: result, Selected: selected, Request: req}
	return s, GenerateVideo{Request: req}
}

func (s State) videoGenerated(a VideoGenerated) State {
	p, ok := s.Phase.(VideoPending)
	if !ok {
		return s
	}

	err := a.Err
	if err == nil && a.Result.VideoURL == "" {
		err = &GenerationError{Phase: PhaseVideoPending, Message: MsgVideoGenerationFailed}
	}
	if err != nil {
		// Images and selection stay so the user can retry
		s.Phase = ImagesReady{Result: p.Result, Selected: p.Selected}
		s.Err = newGenerationError(PhaseVideoPending, err, MsgVideoGenerationFailed)
		return s
	}

	video := a.Result
	video.SourceImage = p.Selected
	s.Phase = VideoReady{Result: p.Result, Selected: p.Selected, Video: video}
	return s
}

// Busy reports whether a backend request is in flight
func (s State) Busy() bool {
	switch s.Phase.(type) {
	case ImagesPending, VideoPending:
		return true
	}
	return false
}

// Result returns the current generation result, if any
func (s State) Result() (GenerationResult, bool) {
	switch p := s.Phase.(type) {
	case ImagesReady:
		return p.Result, true
	case VideoPending:
		return p.Result, true
	case VideoReady:
		return p.Result, true
	}
	return GenerationResult{}, false
}

// Selected returns the selected image locator, or ""
func (s State) Selected() string {
	switch p := s.Phase.(type) {
	case ImagesReady:
		return p.Selected
	case VideoPending:
		return p.Selected
	case VideoReady:
		return p.Selected
	}
	return ""
}

// Video returns the generated video, if any
func (s State) Video() (VideoResult, bool) {
	if p, ok := s.Phase.(VideoReady); ok {
		return p.Video, true
	}
	return VideoResult{}, false
}

// PhaseName returns the name of the current phase
func (s State) PhaseName() PhaseName {
	if s.Phase == nil {
		return PhaseIdle
	}
	return s.Phase.Name()
}
