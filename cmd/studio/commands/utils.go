package commands

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"catwallpaper/studio/client"
	"catwallpaper/studio/workflow"
	"catwallpaper/validation"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// formFlags are the generation inputs shared by tui and generate
type formFlags struct {
	files  []string
	prompt string
	count  int
	aspect string
}

func addFormFlags(cmd *cobra.Command, f *formFlags) {
	cmd.Flags().StringSliceVar(&f.files, "files", nil, "Reference photos (comma separated, up to 5)")
	cmd.Flags().StringVar(&f.prompt, "prompt", "", "Optional prompt (backend default when empty)")
	cmd.Flags().IntVar(&f.count, "count", 0, "Number of images to generate (1-8, default 4)")
	cmd.Flags().StringVar(&f.aspect, "aspect", "", "Aspect ratio (16:9 or 9:16)")
}

// newBackend builds the HTTP client and its workflow adapter from cfg
func newBackend(logger zerolog.Logger) (*client.Client, *workflow.ClientBackend) {
	c := client.NewClient(client.Options{
		BaseURL: cfg.APIBase,
		Timeout: cfg.Timeout,
		Logger:  &logger,
	})
	return c, workflow.NewClientBackend(c)
}

// formActions turns flag values into the workflow actions that fill the form
func (f formFlags) formActions() ([]workflow.Action, error) {
	var actions []workflow.Action
	if len(f.files) > 0 {
		set, err := validation.NewUploadSet(f.files)
		if err != nil {
			return nil, err
		}
		actions = append(actions, workflow.SelectFiles{Files: set})
	}
	actions = append(actions, workflow.SetPrompt{Prompt: f.prompt})
	if f.count > 0 {
		actions = append(actions, workflow.SetImageCount{Count: f.count})
	}
	if f.aspect != "" {
		actions = append(actions, workflow.SetAspectRatio{Ratio: f.aspect})
	}
	return actions, nil
}

// saveAsset downloads locator into dir as {job_id}-{name}
func saveAsset(ctx context.Context, c *client.Client, locator, dir string) (string, error) {
	u, err := url.Parse(locator)
	if err != nil {
		return "", fmt.Errorf("invalid locator %q: %w", locator, err)
	}
	name := path.Base(u.Path)
	if job := path.Base(path.Dir(u.Path)); job != "." && job != "/" {
		name = job + "-" + name
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	target := filepath.Join(dir, name)
	f, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", target, err)
	}
	defer f.Close()

	if err := c.Download(ctx, locator, f); err != nil {
		return "", err
	}
	return target, nil
}
