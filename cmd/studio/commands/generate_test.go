package commands

import (
	"bytes"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"catwallpaper/api"
	"catwallpaper/storage"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newDevBackend(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	fs, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	assets, err := storage.NewAssets(fs, nil, zerolog.Nop())
	require.NoError(t, err)
	srv := httptest.NewServer(api.NewRouter(api.Deps{Assets: assets, Logger: zerolog.Nop()}))
	t.Cleanup(srv.Close)
	return srv
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	chdirForTest(t, t.TempDir())
	genFlags, genPick, genOut = formFlags{}, 0, ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	srv := newDevBackend(t)
	photo := filepath.Join(t.TempDir(), "tabby.jpg")
	require.NoError(t, os.WriteFile(photo, []byte("cat"), 0o644))

	out, err := runRoot(t, "generate",
		"--api-base", srv.URL,
		"--log-level", "error",
		"--files", photo,
		"--count", "2",
		"--aspect", "9:16",
		"--pick", "2",
	)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	require.True(t, strings.HasPrefix(lines[0], "job:"))
	require.Contains(t, lines[1], "cinematic wallpaper")
	require.True(t, strings.HasPrefix(lines[2], "1) "+srv.URL+"/static/images/"))
	require.True(t, strings.HasSuffix(lines[3], "/image-2.png"))
	require.True(t, strings.HasSuffix(lines[4], "/video.mp4"))
}

func TestGenerateCommandRejectsInvalidFiles(t *testing.T) {
	srv := newDevBackend(t)
	photo := filepath.Join(t.TempDir(), "tabby.gif")
	require.NoError(t, os.WriteFile(photo, []byte("cat"), 0o644))

	_, err := runRoot(t, "generate", "--api-base", srv.URL, "--files", photo)
	require.Error(t, err)
	require.Contains(t, err.Error(), "tabby.gif")
}

func TestGenerateCommandPickOutOfRange(t *testing.T) {
	srv := newDevBackend(t)
	photo := filepath.Join(t.TempDir(), "tabby.png")
	require.NoError(t, os.WriteFile(photo, []byte("cat"), 0o644))

	_, err := runRoot(t, "generate", "--api-base", srv.URL, "--files", photo, "--count", "1", "--pick", "3")
	require.EqualError(t, err, "--pick 3 out of range (1-1)")
}

func TestGenerateCommandDownloads(t *testing.T) {
	srv := newDevBackend(t)
	photo := filepath.Join(t.TempDir(), "tabby.webp")
	require.NoError(t, os.WriteFile(photo, []byte("cat"), 0o644))
	outDir := filepath.Join(t.TempDir(), "out")

	_, err := runRoot(t, "generate", "--api-base", srv.URL, "--files", photo, "--count", "2", "--pick", "1", "--out", outDir)
	require.NoError(t, err)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	require.True(t, slices.ContainsFunc(names, func(n string) bool { return strings.HasSuffix(n, "-video.mp4") }))

	data, err := os.ReadFile(filepath.Join(outDir, names[0]))
	require.NoError(t, err)
	require.Contains(t, string(data), "cat")
}
