// Package generation turns reference photos into wallpapers and wallpapers
// into videos for the dev backend.
package generation

import (
	"context"
	"errors"
	"fmt"
)

// VideoName is the file name of every generated video
const VideoName = "video.mp4"

// Asset is a named blob produced or consumed by a generator
type Asset struct {
	Name string
	Data []byte
}

// ImageJob is one image generation request
type ImageJob struct {
	Prompt      string
	Count       int
	AspectRatio string
	References  []Asset
}

// VideoJob is one video generation request
type VideoJob struct {
	Image       Asset
	AspectRatio string
}

// Generator produces images and videos
type Generator interface {
	GenerateImages(ctx context.Context, job ImageJob) ([]Asset, error)
	GenerateVideo(ctx context.Context, job VideoJob) (Asset, error)
}

// ImageName returns the file name of the i-th (0-based) generated image
func ImageName(i int) string {
	return fmt.Sprintf("image-%d.png", i+1)
}

// EchoGenerator returns the reference photos cycled to the requested count
// and a placeholder video. It performs no processing.
type EchoGenerator struct{}

// GenerateImages implements Generator
func (EchoGenerator) GenerateImages(ctx context.Context, job ImageJob) ([]Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(job.References) == 0 {
		return nil, errors.New("no reference images")
	}

	out := make([]Asset, job.Count)
	for i := range out {
		ref := job.References[i%len(job.References)]
		out[i] = Asset{Name: ImageName(i), Data: ref.Data}
	}
	return out, nil
}

// GenerateVideo implements Generator
func (EchoGenerator) GenerateVideo(ctx context.Context, job VideoJob) (Asset, error) {
	if err := ctx.Err(); err != nil {
		return Asset{}, err
	}
	if len(job.Image.Data) == 0 {
		return Asset{}, errors.New("empty source image")
	}

	header := fmt.Sprintf("placeholder video %s from %s\n", job.AspectRatio, job.Image.Name)
	data := append([]byte(header), job.Image.Data...)
	return Asset{Name: VideoName, Data: data}, nil
}
