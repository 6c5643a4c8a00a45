package client

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"

	"catwallpaper/config"
	"catwallpaper/types"
	"catwallpaper/validation"
)

// ImageRequest carries the form fields of an image generation request
type ImageRequest struct {
	Files       validation.UploadSet
	Prompt      string
	ImageCount  int
	AspectRatio string
}

// GenerateImages uploads the photos and asks the backend for still images.
// The multipart body is streamed so photos are never held in memory at once.
func (c *Client) GenerateImages(ctx context.Context, req ImageRequest) (*types.GenerateImageResponse, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeImageForm(mw, req))
	}()

	var result types.GenerateImageResponse
	err := c.do(ctx, http.MethodPost, config.GenerateImagePath, mw.FormDataContentType(), pr, &result)
	// Unblock the writer if the request ended before the body was consumed
	pr.Close()
	if err != nil {
		return nil, err
	}

	if result.Images == nil {
		result.Images = []string{}
	}
	c.logger.Info().
		Str("job_id", result.JobID).
		Int("images", len(result.Images)).
		Msg("images generated")
	return &result, nil
}

// writeImageForm writes the files followed by the text fields, then closes the form
func writeImageForm(mw *multipart.Writer, req ImageRequest) error {
	for _, f := range req.Files {
		if err := copyFilePart(mw, f); err != nil {
			return err
		}
	}

	fields := [][2]string{
		{types.FieldPrompt, req.Prompt},
		{types.FieldImageCount, strconv.Itoa(req.ImageCount)},
		{types.FieldAspectRatio, req.AspectRatio},
	}
	for _, kv := range fields {
		if err := mw.WriteField(kv[0], kv[1]); err != nil {
			return fmt.Errorf("failed to write field %s: %w", kv[0], err)
		}
	}

	return mw.Close()
}

func copyFilePart(mw *multipart.Writer, f validation.UploadFile) error {
	src, err := os.Open(f.Path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", f.Name, err)
	}
	defer src.Close()

	part, err := mw.CreateFormFile(types.FieldFiles, f.Name)
	if err != nil {
		return fmt.Errorf("failed to create form file %s: %w", f.Name, err)
	}
	if _, err := io.Copy(part, src); err != nil {
		return fmt.Errorf("failed to copy %s: %w", f.Name, err)
	}
	return nil
}
