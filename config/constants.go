package config

import (
	"slices"
	"time"
)

// Upload Constants
const (
	// MaxUploadCount is the maximum number of photos in one upload set
	MaxUploadCount = 5

	// MaxFileSizeMB is the per-file size limit in mebibytes
	MaxFileSizeMB = 20

	// MaxFileSizeBytes is MaxFileSizeMB expressed in bytes
	MaxFileSizeBytes = MaxFileSizeMB * 1024 * 1024
)

// AllowedExtensions lists the accepted photo extensions (lower case, no dot)
var AllowedExtensions = []string{"jpg", "jpeg", "png", "webp"}

// Generation Constants
const (
	// DefaultImageCount is the number of still images requested by default
	DefaultImageCount = 4

	// MinImageCount is the smallest image count the form accepts
	MinImageCount = 1

	// MaxImageCount is the largest image count the form accepts
	MaxImageCount = 8
)

// Aspect ratios supported by the generation backend
const (
	AspectLandscape = "16:9"
	AspectPortrait  = "9:16"
)

// AspectRatios lists the supported aspect ratios; the first one is the default
var AspectRatios = []string{AspectLandscape, AspectPortrait}

// Backend Constants
const (
	// DefaultAPIBase is used when no backend base URL is configured
	DefaultAPIBase = "http://localhost:8000"

	// GenerateImagePath is the image generation endpoint
	GenerateImagePath = "/api/generate-image"

	// GenerateVideoPath is the video generation endpoint
	GenerateVideoPath = "/api/generate-video"

	// HealthPath is the dev backend health endpoint
	HealthPath = "/api/health"

	// StaticPrefix is where the dev backend serves stored assets
	StaticPrefix = "/static"
)

// Dev backend Constants
const (
	// DefaultPrompt is used by the dev backend when the request prompt is empty
	DefaultPrompt = "Use these photos as reference to generate a cinematic wallpaper."

	// DefaultStorageRoot is the dev backend asset directory
	DefaultStorageRoot = "storage"

	// DefaultPort is the dev backend listen port
	DefaultPort = "8000"

	// ShutdownTimeout bounds graceful shutdown of the dev backend
	ShutdownTimeout = 10 * time.Second
)

// IsAllowedExtension reports whether ext (lower case, no dot) is accepted
func IsAllowedExtension(ext string) bool {
	return slices.Contains(AllowedExtensions, ext)
}

// IsSupportedAspectRatio reports whether ratio is one of AspectRatios
func IsSupportedAspectRatio(ratio string) bool {
	return slices.Contains(AspectRatios, ratio)
}
