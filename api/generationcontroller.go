package api

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"catwallpaper/config"
	"catwallpaper/generation"
	"catwallpaper/storage"
	"catwallpaper/types"
	"catwallpaper/validation"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// generationController serves the image and video generation endpoints
type generationController struct {
	assets        *storage.Assets
	generator     generation.Generator
	defaultPrompt string
	logger        zerolog.Logger
}

// RegisterGenerationRoutes registers the generation endpoints.
func RegisterGenerationRoutes(r *gin.Engine, deps Deps) {
	gc := &generationController{
		assets:        deps.Assets,
		generator:     deps.Generator,
		defaultPrompt: deps.DefaultPrompt,
		logger:        deps.Logger.With().Str("component", "generation").Logger(),
	}
	r.POST(config.GenerateImagePath, gc.handleGenerateImage)
	r.POST(config.GenerateVideoPath, gc.handleGenerateVideo)
}

// handleGenerateImage accepts reference photos and returns generated image locators
func (gc *generationController) handleGenerateImage(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respondWithError(c, http.StatusBadRequest, DetailInvalidForm)
		return
	}

	files := form.File[types.FieldFiles]
	if len(files) < 1 || len(files) > config.MaxUploadCount {
		respondWithError(c, http.StatusBadRequest, DetailInvalidFileCount)
		return
	}
	for _, fh := range files {
		if !config.IsAllowedExtension(validation.Extension(fh.Filename)) {
			respondWithError(c, http.StatusBadRequest, DetailInvalidFileType)
			return
		}
	}
	for _, fh := range files {
		if fh.Size > config.MaxFileSizeBytes {
			respondWithError(c, http.StatusBadRequest, DetailFileTooLarge)
			return
		}
	}

	count, err := strconv.Atoi(c.DefaultPostForm(types.FieldImageCount, strconv.Itoa(config.DefaultImageCount)))
	if err != nil || validation.ValidateImageCount(count) != nil {
		respondWithError(c, http.StatusBadRequest, DetailInvalidImageCount)
		return
	}
	aspect := c.DefaultPostForm(types.FieldAspectRatio, config.AspectLandscape)
	if !config.IsSupportedAspectRatio(aspect) {
		respondWithError(c, http.StatusBadRequest, DetailInvalidAspectRatio)
		return
	}
	prompt := strings.TrimSpace(c.PostForm(types.FieldPrompt))
	if prompt == "" {
		prompt = gc.defaultPrompt
	}

	ctx := c.Request.Context()
	jobID := storage.NewJobID()
	refs := make([]generation.Asset, 0, len(files))
	for _, fh := range files {
		data, err := readUpload(fh)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, DetailInvalidForm)
			return
		}
		name := filepath.Base(fh.Filename)
		if _, err := gc.assets.Save(ctx, storage.KindUploads, jobID, name, data); err != nil {
			gc.logger.Error().Err(err).Str("job_id", jobID).Msg("failed to store upload")
			respondWithError(c, http.StatusInternalServerError, DetailStorageFailed)
			return
		}
		refs = append(refs, generation.Asset{Name: name, Data: data})
	}

	images, err := gc.generator.GenerateImages(ctx, generation.ImageJob{
		Prompt:      prompt,
		Count:       count,
		AspectRatio: aspect,
		References:  refs,
	})
	if err != nil {
		gc.logger.Error().Err(err).Str("job_id", jobID).Msg("image generation failed")
		respondWithError(c, http.StatusBadGateway, DetailImageFailed)
		return
	}

	locators := make([]string, 0, len(images))
	for _, img := range images {
		loc, err := gc.assets.Save(ctx, storage.KindImages, jobID, img.Name, img.Data)
		if err != nil {
			gc.logger.Error().Err(err).Str("job_id", jobID).Msg("failed to store image")
			respondWithError(c, http.StatusInternalServerError, DetailStorageFailed)
			return
		}
		locators = append(locators, loc)
	}

	gc.logger.Info().
		Str("job_id", jobID).
		Int("uploads", len(files)).
		Int("images", len(locators)).
		Str("aspect_ratio", aspect).
		Msg("images generated")

	c.JSON(http.StatusOK, types.GenerateImageResponse{
		Images:     locators,
		JobID:      jobID,
		PromptUsed: prompt,
	})
}

// handleGenerateVideo turns one generated image into a video
func (gc *generationController) handleGenerateVideo(c *gin.Context) {
	var req types.GenerateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, DetailInvalidRequest)
		return
	}
	if !config.IsSupportedAspectRatio(req.AspectRatio) {
		respondWithError(c, http.StatusBadRequest, DetailInvalidAspectRatio)
		return
	}

	kind, jobID, name, err := storage.ParseLocator(req.ImageURL)
	if err != nil || kind != storage.KindImages || jobID != req.JobID {
		respondWithError(c, http.StatusNotFound, DetailImageNotFound)
		return
	}

	ctx := c.Request.Context()
	data, err := gc.assets.Load(ctx, storage.KindImages, jobID, name)
	if errors.Is(err, os.ErrNotExist) {
		respondWithError(c, http.StatusNotFound, DetailImageNotFound)
		return
	}
	if err != nil {
		gc.logger.Error().Err(err).Str("job_id", jobID).Msg("failed to load image")
		respondWithError(c, http.StatusInternalServerError, DetailStorageFailed)
		return
	}

	video, err := gc.generator.GenerateVideo(ctx, generation.VideoJob{
		Image:       generation.Asset{Name: name, Data: data},
		AspectRatio: req.AspectRatio,
	})
	if err != nil {
		gc.logger.Error().Err(err).Str("job_id", jobID).Msg("video generation failed")
		respondWithError(c, http.StatusBadGateway, DetailVideoFailed)
		return
	}

	loc, err := gc.assets.Save(ctx, storage.KindVideos, jobID, generation.VideoName, video.Data)
	if err != nil {
		gc.logger.Error().Err(err).Str("job_id", jobID).Msg("failed to store video")
		respondWithError(c, http.StatusInternalServerError, DetailStorageFailed)
		return
	}

	gc.logger.Info().Str("job_id", jobID).Str("image", name).Msg("video generated")
	c.JSON(http.StatusOK, types.GenerateVideoResponse{VideoURL: loc})
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
