package types

// Multipart field names of the image generation request
const (
	FieldFiles       = "files"
	FieldPrompt      = "prompt"
	FieldImageCount  = "image_count"
	FieldAspectRatio = "aspect_ratio"
)

// GenerateImageResponse is the success body of POST /api/generate-image
type GenerateImageResponse struct {
	Images     []string `json:"images"`
	JobID      string   `json:"job_id"`
	PromptUsed string   `json:"prompt_used,omitempty"`
}

// GenerateVideoRequest is the JSON body of POST /api/generate-video
type GenerateVideoRequest struct {
	JobID       string `json:"job_id" binding:"required"`
	ImageURL    string `json:"image_url" binding:"required"`
	AspectRatio string `json:"aspect_ratio" binding:"required"`
}

// GenerateVideoResponse is the success body of POST /api/generate-video
type GenerateVideoResponse struct {
	VideoURL string `json:"video_url"`
}

// ErrorResponse is the optional body of a non-2xx backend response
type ErrorResponse struct {
	Detail string `json:"detail"`
}
