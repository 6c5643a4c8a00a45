package workflow

// User-visible messages
const (
	MsgSelectImageFirst      = "select an image first"
	MsgNoImagesYet           = "no generated images to select from"
	MsgUnknownImage          = "unknown image"
	MsgImageGenerationFailed = "image generation failed"
	MsgVideoGenerationFailed = "video generation failed"
)

// GuardError is a local precondition failure. The action never reached the backend.
type GuardError struct {
	Message string
}

func (e *GuardError) Error() string { return e.Message }

// GenerationError is a failed backend call. Message is the backend-provided
// detail when there was one, otherwise the phase fallback message.
type GenerationError struct {
	Phase   PhaseName
	Message string
	Cause   error
}

func (e *GenerationError) Error() string { return e.Message }

func (e *GenerationError) Unwrap() error { return e.Cause }
