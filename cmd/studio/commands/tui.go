package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"catwallpaper/logger"
	"catwallpaper/studio/tui"
	"catwallpaper/validation"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tuiFlags formFlags

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the interactive terminal studio",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	addFormFlags(tuiCmd, &tuiFlags)
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// The terminal belongs to the UI, so logs go to a file
	log, closer, err := logger.NewFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer closer.Close()

	var files validation.UploadSet
	if len(tuiFlags.files) > 0 {
		files, err = validation.NewUploadSet(tuiFlags.files)
		if err != nil {
			return err
		}
	}

	c, backend := newBackend(log)
	m := tui.NewModel(cmd.Context(), tui.Options{
		Backend:     backend,
		Resolver:    c,
		Logger:      log,
		Files:       files,
		Prompt:      tuiFlags.prompt,
		ImageCount:  tuiFlags.count,
		AspectRatio: tuiFlags.aspect,
	})

	// Create the tea program
	program := tea.NewProgram(m)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		<-sigChan
		program.Quit()
	}()

	log.Info().Str("api_base", c.BaseURL()).Msg("studio started")
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
