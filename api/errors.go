package api

// Error details returned in {"detail": ...} bodies
const (
	DetailInvalidForm        = "Invalid form data."
	DetailInvalidFileCount   = "Invalid file count."
	DetailInvalidFileType    = "Invalid file type."
	DetailFileTooLarge       = "File too large."
	DetailInvalidImageCount  = "Invalid image count."
	DetailInvalidAspectRatio = "Invalid aspect ratio."
	DetailInvalidRequest     = "Invalid request."
	DetailImageNotFound      = "Image not found."
	DetailImageFailed        = "Image generation failed."
	DetailVideoFailed        = "Video generation failed."
	DetailStorageFailed      = "Storage error."
)
