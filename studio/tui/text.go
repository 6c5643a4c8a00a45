package tui

// UI Text Constants
const (
	TextTitle = "🐱 Cat Wallpaper Studio"

	// Phase headlines
	TextIdle          = "👋 Pick up to 5 cat photos, then press 'g' to generate"
	TextImagesPending = "⏳ Generating wallpapers..."
	TextImagesReady   = "🖼  Pick a wallpaper with 1-8, then press 'v' for a video"
	TextVideoPending  = "🎬 Generating video..."
	TextVideoReady    = "✅ Video ready"

	// Input prompts
	TextFilesInput  = "Photo paths (comma separated), enter to confirm, esc to cancel:"
	TextPromptInput = "Prompt (optional), enter to confirm, esc to cancel:"

	// Footer
	TextFooterForm    = "f files | p prompt | +/- count | a aspect | g generate | q quit"
	TextFooterPicking = "1-8 select | v video | g regenerate | f files | p prompt | q quit"
	TextFooterBusy    = "Waiting for the backend | q quit"
	TextFooterError   = "esc dismiss"
)
