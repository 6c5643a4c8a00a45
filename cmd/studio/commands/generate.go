package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"catwallpaper/logger"
	"catwallpaper/studio/workflow"

	"github.com/spf13/cobra"
)

var (
	genFlags formFlags
	genPick  int
	genOut   string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate wallpapers (and optionally a video) without the terminal UI",
	Example: `  studio generate --files tabby.jpg,calico.png --count 2
  studio generate --files tabby.jpg --prompt "snowy window" --pick 1`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	addFormFlags(generateCmd, &genFlags)
	generateCmd.Flags().IntVar(&genPick, "pick", 0, "Turn the N-th generated image into a video (0 skips the video)")
	generateCmd.Flags().StringVar(&genOut, "out", "", "Download generated assets into this directory")
	_ = generateCmd.MarkFlagRequired("files")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := logger.New(cfg.LogLevel, cfg.IsDevelopment(), cmd.ErrOrStderr())
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, backend := newBackend(log)
	actions, err := genFlags.formActions()
	if err != nil {
		return err
	}

	s := workflow.New()
	for _, a := range actions {
		s = workflow.Drive(ctx, backend, log, s, a)
		if s.Err != nil {
			return s.Err
		}
	}

	s = workflow.Drive(ctx, backend, log, s, workflow.Submit{})
	if s.Err != nil {
		return s.Err
	}
	result, _ := s.Result()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "job:    %s\n", result.JobID)
	if result.PromptUsed != "" {
		fmt.Fprintf(out, "prompt: %s\n", result.PromptUsed)
	}
	for i, img := range result.Images {
		fmt.Fprintf(out, "%d) %s\n", i+1, c.ResolveURL(img))
	}
	if genOut != "" {
		for _, img := range result.Images {
			if _, err := saveAsset(ctx, c, img, genOut); err != nil {
				return err
			}
		}
	}

	if genPick == 0 {
		return nil
	}
	if genPick < 0 || genPick > len(result.Images) {
		return fmt.Errorf("--pick %d out of range (1-%d)", genPick, len(result.Images))
	}

	s = workflow.Drive(ctx, backend, log, s, workflow.SelectImage{URL: result.Images[genPick-1]})
	s = workflow.Drive(ctx, backend, log, s, workflow.RequestVideo{})
	if s.Err != nil {
		return s.Err
	}
	video, _ := s.Video()
	fmt.Fprintf(out, "video:  %s\n", c.ResolveURL(video.VideoURL))
	if genOut != "" {
		if _, err := saveAsset(ctx, c, video.VideoURL, genOut); err != nil {
			return err
		}
	}
	return nil
}
