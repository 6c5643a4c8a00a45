package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catwallpaper/api"
	"catwallpaper/common"
	"catwallpaper/config"
	"catwallpaper/generation"
	"catwallpaper/logger"
	"catwallpaper/storage"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local development generation backend",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("port", config.DefaultPort, "Listen port")
	serveCmd.Flags().String("storage-root", config.DefaultStorageRoot, "Asset storage directory")
	serveCmd.Flags().String("default-prompt", config.DefaultPrompt, "Prompt used when a request has none")
	serveCmd.Flags().String("s3-bucket", "", "Mirror generated assets to this S3 bucket")
	serveCmd.Flags().String("s3-region", "", "S3 region")
	serveCmd.Flags().String("s3-prefix", "", "Key prefix inside the bucket")
	serveCmd.Flags().String("s3-endpoint", "", "S3-compatible endpoint URL")
	serveCmd.Flags().Bool("s3-use-path-style", false, "Use path-style S3 addressing")

	v.BindPFlag("port", serveCmd.Flags().Lookup("port"))
	v.BindPFlag("storage-root", serveCmd.Flags().Lookup("storage-root"))
	v.BindPFlag("default-prompt", serveCmd.Flags().Lookup("default-prompt"))
	v.BindPFlag("s3-bucket", serveCmd.Flags().Lookup("s3-bucket"))
	v.BindPFlag("s3-region", serveCmd.Flags().Lookup("s3-region"))
	v.BindPFlag("s3-prefix", serveCmd.Flags().Lookup("s3-prefix"))
	v.BindPFlag("s3-endpoint", serveCmd.Flags().Lookup("s3-endpoint"))
	v.BindPFlag("s3-use-path-style", serveCmd.Flags().Lookup("s3-use-path-style"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logger.New(cfg.LogLevel, cfg.IsDevelopment(), cmd.OutOrStdout())
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	files, err := storage.NewFileStore(cfg.StorageRoot)
	if err != nil {
		return err
	}
	mirror, err := newMirror(ctx, log)
	if err != nil {
		return err
	}
	assets, err := storage.NewAssets(files, mirror, log)
	if err != nil {
		return err
	}

	router := api.NewRouter(api.Deps{
		Assets:        assets,
		Generator:     generation.EchoGenerator{},
		DefaultPrompt: cfg.DefaultPrompt,
		Logger:        log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("storage_root", cfg.StorageRoot).Msg("dev backend listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newMirror returns the S3 mirror when a bucket is configured, otherwise nil
func newMirror(ctx context.Context, log zerolog.Logger) (storage.Mirror, error) {
	if cfg.S3Bucket == "" {
		return nil, nil
	}
	s3, err := common.NewS3(ctx, common.S3Config{
		Region:       cfg.S3Region,
		Profile:      cfg.S3Profile,
		Endpoint:     cfg.S3Endpoint,
		UsePathStyle: cfg.S3UsePathStyle,
	})
	if err != nil {
		return nil, fmt.Errorf("S3 client failed: %w", err)
	}
	log.Info().Str("bucket", cfg.S3Bucket).Str("prefix", cfg.S3Prefix).Msg("mirroring assets to S3")
	return common.NewS3Mirror(s3, cfg.S3Bucket, cfg.S3Prefix), nil
}
