package validation

import (
	"fmt"

	"catwallpaper/config"
)

// ValidateAspectRatio rejects ratios the backend does not support
func ValidateAspectRatio(ratio string) error {
	if !config.IsSupportedAspectRatio(ratio) {
		return &ValidationError{Message: fmt.Sprintf("%s %q", MsgUnsupportedAspect, ratio)}
	}
	return nil
}

// ValidateImageCount rejects counts outside [MinImageCount, MaxImageCount]
func ValidateImageCount(n int) error {
	if n < config.MinImageCount || n > config.MaxImageCount {
		return &ValidationError{Message: fmt.Sprintf("%s: %d (allowed %d-%d)",
			MsgImageCountOutRange, n, config.MinImageCount, config.MaxImageCount)}
	}
	return nil
}

// ClampImageCount pulls n into [MinImageCount, MaxImageCount]
func ClampImageCount(n int) int {
	return min(max(n, config.MinImageCount), config.MaxImageCount)
}
