package client

import (
	"context"
	"net/http"

	"catwallpaper/config"
	"catwallpaper/types"
)

// GenerateVideo asks the backend for a short video derived from one generated image
func (c *Client) GenerateVideo(ctx context.Context, req types.GenerateVideoRequest) (*types.GenerateVideoResponse, error) {
	var result types.GenerateVideoResponse
	if err := c.doJSONRequest(ctx, http.MethodPost, config.GenerateVideoPath, req, &result); err != nil {
		return nil, err
	}

	c.logger.Info().
		Str("job_id", req.JobID).
		Str("video_url", result.VideoURL).
		Msg("video generated")
	return &result, nil
}
