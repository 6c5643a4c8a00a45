package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"catwallpaper/types"
	"catwallpaper/validation"

	"github.com/stretchr/testify/require"
)

func writePhotos(t *testing.T, names ...string) validation.UploadSet {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, len(names))
	for i, n := range names {
		paths[i] = filepath.Join(dir, n)
		require.NoError(t, os.WriteFile(paths[i], []byte("photo:"+n), 0o644))
	}
	set, err := validation.NewUploadSet(paths)
	require.NoError(t, err)
	return set
}

func TestGenerateImagesSendsMultipartForm(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/generate-image", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		files := r.MultipartForm.File["files"]
		require.Len(t, files, 3)
		require.Equal(t, "a.jpg", files[0].Filename)
		require.Equal(t, "c.webp", files[2].Filename)

		f, err := files[1].Open()
		require.NoError(t, err)
		body, err := io.ReadAll(f)
		require.NoError(t, err)
		require.Equal(t, "photo:b.png", string(body))

		require.Equal(t, "test", r.FormValue("prompt"))
		require.Equal(t, "4", r.FormValue("image_count"))
		require.Equal(t, "16:9", r.FormValue("aspect_ratio"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"images":["/a.png","/b.png"],"job_id":"j1","prompt_used":"test"}`))
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL + "/"})
	resp, err := c.GenerateImages(context.Background(), ImageRequest{
		Files:       writePhotos(t, "a.jpg", "b.png", "c.webp"),
		Prompt:      "test",
		ImageCount:  4,
		AspectRatio: "16:9",
	})
	require.NoError(t, err)
	require.Equal(t, int32(1), calls.Load())
	require.Equal(t, []string{"/a.png", "/b.png"}, resp.Images)
	require.Equal(t, "j1", resp.JobID)
	require.Equal(t, "test", resp.PromptUsed)
}

func TestGenerateImagesEmptyPromptIsSent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, ok := r.MultipartForm.Value["prompt"]
		require.True(t, ok, "prompt field must be present even when empty")
		require.Equal(t, "", r.FormValue("prompt"))
		_, _ = w.Write([]byte(`{"job_id":"j2"}`))
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL})
	resp, err := c.GenerateImages(context.Background(), ImageRequest{
		Files:       writePhotos(t, "a.jpg"),
		ImageCount:  1,
		AspectRatio: "9:16",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Images)
	require.Empty(t, resp.Images)
}

func TestGenerateImagesBackendDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"detail":"quota exceeded"}`))
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL})
	_, err := c.GenerateImages(context.Background(), ImageRequest{
		Files:       writePhotos(t, "a.jpg"),
		ImageCount:  4,
		AspectRatio: "16:9",
	})

	var berr *BackendError
	require.True(t, errors.As(err, &berr))
	require.Equal(t, http.StatusTooManyRequests, berr.StatusCode)
	require.Equal(t, "quota exceeded", berr.Detail)
	require.Equal(t, "quota exceeded", err.Error())
}

func TestGenerateImagesMissingFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		_, _ = w.Write([]byte(`{"images":[],"job_id":"x"}`))
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL})
	_, err := c.GenerateImages(context.Background(), ImageRequest{
		Files:       validation.UploadSet{{Name: "gone.jpg", Path: filepath.Join(t.TempDir(), "gone.jpg")}},
		ImageCount:  1,
		AspectRatio: "16:9",
	})
	require.Error(t, err)
}

func TestGenerateVideoSendsJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate-video", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, map[string]string{
			"job_id":       "j1",
			"image_url":    "/a.png",
			"aspect_ratio": "16:9",
		}, req)

		_, _ = w.Write([]byte(`{"video_url":"/v.mp4"}`))
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL})
	resp, err := c.GenerateVideo(context.Background(), types.GenerateVideoRequest{
		JobID:       "j1",
		ImageURL:    "/a.png",
		AspectRatio: "16:9",
	})
	require.NoError(t, err)
	require.Equal(t, "/v.mp4", resp.VideoURL)
}

func TestBackendErrorWithoutDetail(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"plain text", "Internal Server Error"},
		{"empty", ""},
		{"structured detail", `{"detail":[{"loc":["body","job_id"],"msg":"field required"}]}`},
		{"blank detail", `{"detail":"   "}`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte(c.body))
			}))
			defer srv.Close()

			_, err := NewClient(Options{BaseURL: srv.URL}).GenerateVideo(context.Background(), types.GenerateVideoRequest{})
			var berr *BackendError
			require.True(t, errors.As(err, &berr))
			require.Empty(t, berr.Detail)
			require.Contains(t, berr.Error(), "502")
		})
	}
}

func TestDecodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := NewClient(Options{BaseURL: srv.URL}).GenerateVideo(context.Background(), types.GenerateVideoRequest{})
	require.Error(t, err)
	var berr *BackendError
	require.False(t, errors.As(err, &berr))
}

func TestResolveURL(t *testing.T) {
	c := NewClient(Options{BaseURL: "http://localhost:8000/"})

	require.Equal(t, "http://localhost:8000", c.BaseURL())
	require.Equal(t, "http://localhost:8000/static/images/j1/image-1.png", c.ResolveURL("/static/images/j1/image-1.png"))
	require.Equal(t, "http://localhost:8000/v.mp4", c.ResolveURL("v.mp4"))
	require.Equal(t, "https://cdn.example.com/x.png", c.ResolveURL("https://cdn.example.com/x.png"))
	require.Equal(t, "", c.ResolveURL(""))
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Options{})
	require.Equal(t, "http://localhost:8000", c.BaseURL())
	require.NotNil(t, c.httpClient)
	require.Zero(t, c.httpClient.Timeout)
}

func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/static/images/j1/image-1.png" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("png-bytes"))
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL})
	var buf bytes.Buffer
	require.NoError(t, c.Download(context.Background(), "/static/images/j1/image-1.png", &buf))
	require.Equal(t, "png-bytes", buf.String())

	err := c.Download(context.Background(), "/static/images/j1/missing.png", &buf)
	var berr *BackendError
	require.True(t, errors.As(err, &berr))
	require.Equal(t, http.StatusNotFound, berr.StatusCode)
}
