package commands

import (
	"fmt"
	"os"

	"catwallpaper/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	v   = viper.New()
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "studio",
	Short: "Cat wallpaper studio - turn cat photos into wallpapers and videos",
	Long:  `Uploads reference cat photos to a generation backend, lets you pick one of the generated wallpapers and turns it into a short video.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load environment
		_ = godotenv.Load()

		loaded, err := config.Load(v)
		if err != nil {
			return fmt.Errorf("config load failed: %w", err)
		}
		cfg = loaded
		return nil
	},
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("api-base", config.DefaultAPIBase, "Generation backend base URL")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Per-request timeout (0 waits indefinitely)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-file", "studio.log", "Log file for the terminal UI")
	rootCmd.PersistentFlags().String("env", "production", "Environment (development enables console logs)")

	v.BindPFlag("api-base", rootCmd.PersistentFlags().Lookup("api-base"))
	v.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	v.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	v.BindPFlag("log-file", rootCmd.PersistentFlags().Lookup("log-file"))
	v.BindPFlag("env", rootCmd.PersistentFlags().Lookup("env"))
}
